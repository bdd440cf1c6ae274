package server

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/Belphemur/AniWiki/internal/client"
	"github.com/Belphemur/AniWiki/internal/quiz"
	"github.com/Belphemur/AniWiki/internal/render"
	"github.com/gin-gonic/gin"
)

//go:embed web
var webFS embed.FS

// DefaultPort is the port the proxy listens on when none is configured.
const DefaultPort = 3000

// shellData feeds web/index.html.
type shellData struct {
	Questions [quiz.CodeLength]quiz.Question
	Theme     render.Theme
	ThemeIcon string
}

// NewRouter wires the API, the view renderer and the shell on one gin engine.
func NewRouter(c client.Client) *gin.Engine {
	engine := gin.New()
	engine.Use(requestLogger(), instrument(), gin.Recovery())
	_ = engine.SetTrustedProxies(nil)

	engine.SetHTMLTemplate(template.Must(template.ParseFS(webFS, "web/index.html")))

	static, err := fs.Sub(webFS, "web/static")
	if err != nil {
		panic(fmt.Sprintf("embedded static assets missing: %v", err))
	}
	engine.StaticFS("/static", http.FS(static))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	NewHandler(c).RegisterRoutes(engine.Group("/api"))
	NewViewHandler(c).RegisterRoutes(engine.Group("/view"))

	engine.NoRoute(shell)
	return engine
}

// shell serves the single page for every unknown GET path.
func shell(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
		return
	}
	c.HTML(http.StatusOK, "index.html", shellData{
		Questions: quiz.Questions,
		Theme:     render.Light,
		ThemeIcon: render.Light.Icon(),
	})
}

// NewHTTPServer wraps the engine in an http.Server bound to address:port.
func NewHTTPServer(address string, port int, handler http.Handler) *http.Server {
	if port == 0 {
		port = DefaultPort
	}
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", address, port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
