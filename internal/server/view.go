package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/Belphemur/AniWiki/internal/config"
	"github.com/Belphemur/AniWiki/internal/render"
	"github.com/Belphemur/AniWiki/internal/router"
	"github.com/gin-gonic/gin"
)

// viewResponse is one rendered navigation for the shell.
type viewResponse struct {
	HTML       string `json:"html"`
	Route      string `json:"route"`
	LastSearch string `json:"lastSearch"`
	Redirect   string `json:"redirect,omitempty"`
}

// ViewHandler runs the router on the server so the shell only swaps HTML.
// The shell sends back the last executed search with every navigation.
// Each request gets its own Navigator, so superseded navigations are
// discarded by the shell's generation counter rather than by ErrStale.
type ViewHandler struct {
	Fetcher router.Fetcher
}

func NewViewHandler(f router.Fetcher) *ViewHandler {
	return &ViewHandler{Fetcher: f}
}

func (h *ViewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.view)            // GET /view?fragment=&last=
	rg.GET("/loading", h.loading) // GET /view/loading?fragment=
	rg.GET("/quiz", h.quiz)       // GET /view/quiz?code=&last=
}

func (h *ViewHandler) view(c *gin.Context) {
	nav := router.NewNavigator(h.Fetcher, router.WithLastSearch(c.Query("last")))
	view, err := nav.Navigate(c.Request.Context(), c.Query("fragment"))
	h.write(c, nav, view, err)
}

func (h *ViewHandler) quiz(c *gin.Context) {
	nav := router.NewNavigator(h.Fetcher, router.WithLastSearch(c.Query("last")))
	view, err := nav.Quiz(c.Request.Context(), c.Query("code"))
	h.write(c, nav, view, err)
}

func (h *ViewHandler) loading(c *gin.Context) {
	fragment := c.Query("fragment")
	out, err := render.HTML(router.Loading(fragment))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, viewResponse{HTML: out, Route: router.Parse(fragment).Route.String(), LastSearch: c.Query("last")})
}

func (h *ViewHandler) write(c *gin.Context, nav *router.Navigator, view *router.View, err error) {
	if err != nil {
		status := http.StatusInternalServerError
		// the shell dropped the request before it finished
		if errors.Is(err, context.Canceled) || c.Request.Context().Err() != nil {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	out, err := view.HTML()
	if err != nil {
		config.GetLogger().Error().Err(err).Msg("Failed to serialize view")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, viewResponse{
		HTML:       out,
		Route:      view.State.Route.String(),
		LastSearch: nav.LastSearch(),
		Redirect:   view.Redirect,
	})
}
