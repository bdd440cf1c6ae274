package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/Belphemur/AniWiki/internal/config"
	"github.com/Belphemur/AniWiki/internal/models"
)

// pageSize is the fixed page size of search and top list requests.
const pageSize = 12

// Client defines the interface for querying the catalog API
type Client interface {
	SearchAnime(ctx context.Context, opts models.SearchOptions) (*models.Page, error)
	SearchCharacters(ctx context.Context, opts models.SearchOptions) (*models.Page, error)
	TopAnime(ctx context.Context, page int) (*models.Page, error)
	TopCharacters(ctx context.Context, page int) (*models.Page, error)

	// Detail methods return the upstream "full" record with image_url normalized
	// to the large image variant.
	AnimeDetail(ctx context.Context, id string) (models.Detail, error)
	CharacterDetail(ctx context.Context, id string) (models.Detail, error)
}

// client implements the Client interface
type client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new catalog client with proxy and rate limit configuration if provided
func NewClient(cfg *config.Config) Client {
	logger := config.GetLogger()

	// No timeout unless configured: a hung upstream call hangs only its own request.
	var timeout time.Duration
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, continuing without timeout")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to preserve its pooling and HTTP/2 settings
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	var transport http.RoundTripper = newCompressionTransport(baseTransport)
	transport = newRateLimitedTransport(transport, cfg.RateLimit.PerSecond, cfg.RateLimit.MaxWait)

	baseURL := cfg.CatalogBaseURL
	if baseURL == "" {
		baseURL = config.DefaultCatalogBaseURL
	}

	return &client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		baseURL: baseURL,
	}
}
