// Package server exposes the catalog proxy, the server-side view renderer and
// the single-page shell over HTTP using gin.
package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Belphemur/AniWiki/internal/client"
	"github.com/Belphemur/AniWiki/internal/config"
	"github.com/Belphemur/AniWiki/internal/models"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// Handler serves the /api endpoints by forwarding them to the catalog.
type Handler struct {
	Client client.Client
}

func NewHandler(c client.Client) *Handler {
	return &Handler{Client: c}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.Use(cors())
	rg.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rg.GET("/anime", h.searchAnime)              // GET /api/anime?q=&page=
	rg.GET("/anime/:id", h.animeDetail)          // GET /api/anime/:id
	rg.GET("/characters", h.searchCharacters)    // GET /api/characters?q=&page=
	rg.GET("/characters/:id", h.characterDetail) // GET /api/characters/:id
	rg.GET("/top/anime", h.topAnime)             // GET /api/top/anime?page=
	rg.GET("/top/characters", h.topCharacters)   // GET /api/top/characters?page=
}

func (h *Handler) searchAnime(c *gin.Context) {
	page, err := h.Client.SearchAnime(c.Request.Context(), searchOptions(c))
	h.respond(c, page, err)
}

func (h *Handler) searchCharacters(c *gin.Context) {
	page, err := h.Client.SearchCharacters(c.Request.Context(), searchOptions(c))
	h.respond(c, page, err)
}

func (h *Handler) topAnime(c *gin.Context) {
	page, err := h.Client.TopAnime(c.Request.Context(), parsePage(c.Query("page")))
	h.respond(c, page, err)
}

func (h *Handler) topCharacters(c *gin.Context) {
	page, err := h.Client.TopCharacters(c.Request.Context(), parsePage(c.Query("page")))
	h.respond(c, page, err)
}

func (h *Handler) animeDetail(c *gin.Context) {
	detail, err := h.Client.AnimeDetail(c.Request.Context(), c.Param("id"))
	h.respond(c, detail, err)
}

func (h *Handler) characterDetail(c *gin.Context) {
	detail, err := h.Client.CharacterDetail(c.Request.Context(), c.Param("id"))
	h.respond(c, detail, err)
}

// respond writes body, or a 500 with the error message. Every failure is
// reported the same way: there is no retry and no partial result.
func (h *Handler) respond(c *gin.Context, body any, err error) {
	if err != nil {
		config.GetLogger().Error().
			Err(err).
			Str("route", c.FullPath()).
			Str("request_id", c.GetString(requestIDKey)).
			Msg("Catalog request failed")
		reportError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, body)
}

// reportError sends err to Sentry. Without a configured DSN this is a no-op.
func reportError(c *gin.Context, err error) {
	hub := sentry.CurrentHub().Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("route", c.FullPath())
		scope.SetTag("request_id", c.GetString(requestIDKey))
		scope.SetRequest(c.Request)
		hub.CaptureException(err)
	})
}

func searchOptions(c *gin.Context) models.SearchOptions {
	return models.SearchOptions{
		Query:   c.Query("q"),
		Page:    parsePage(c.Query("page")),
		OrderBy: c.Query("order_by"),
		Sort:    c.Query("sort"),
	}
}

// parsePage returns a positive page number, 1 when missing or invalid.
func parsePage(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
