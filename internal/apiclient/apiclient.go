// Package apiclient calls the AniWiki proxy's /api endpoints. It implements
// router.Fetcher so a terminal client can navigate against a running proxy.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Belphemur/AniWiki/internal/config"
	"github.com/Belphemur/AniWiki/internal/models"
)

// DefaultBaseURL is where a locally started proxy listens.
const DefaultBaseURL = "http://localhost:3000"

// Error is a non-2xx proxy response. The proxy reports failures as {"error": "..."}.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("proxy returned status %d", e.StatusCode)
}

// Client talks to one proxy instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the proxy at baseURL. A nil httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/"), httpClient: httpClient}
}

func (c *Client) SearchAnime(ctx context.Context, opts models.SearchOptions) (*models.Page, error) {
	return c.page(ctx, "/api/anime", searchQuery(opts))
}

func (c *Client) SearchCharacters(ctx context.Context, opts models.SearchOptions) (*models.Page, error) {
	return c.page(ctx, "/api/characters", searchQuery(opts))
}

func (c *Client) TopAnime(ctx context.Context, page int) (*models.Page, error) {
	return c.page(ctx, "/api/top/anime", pageQuery(page))
}

func (c *Client) TopCharacters(ctx context.Context, page int) (*models.Page, error) {
	return c.page(ctx, "/api/top/characters", pageQuery(page))
}

func (c *Client) AnimeDetail(ctx context.Context, id string) (models.Detail, error) {
	return c.detail(ctx, "/api/anime/"+url.PathEscape(id))
}

func (c *Client) CharacterDetail(ctx context.Context, id string) (models.Detail, error) {
	return c.detail(ctx, "/api/characters/"+url.PathEscape(id))
}

func (c *Client) page(ctx context.Context, path string, query url.Values) (*models.Page, error) {
	var p models.Page
	if err := c.get(ctx, path, query, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) detail(ctx context.Context, path string) (models.Detail, error) {
	var d models.Detail
	if err := c.get(ctx, path, nil, &d); err != nil {
		return nil, err
	}
	return d, nil
}

func pageQuery(page int) url.Values {
	return url.Values{"page": {strconv.Itoa(max(page, 1))}}
}

func searchQuery(opts models.SearchOptions) url.Values {
	q := pageQuery(opts.Page)
	q.Set("q", opts.Query)
	if opts.OrderBy != "" {
		q.Set("order_by", opts.OrderBy)
	}
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}
	return q
}

func (c *Client) get(ctx context.Context, path string, query url.Values, target any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", config.GetUserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach proxy: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body)
		return &Error{StatusCode: resp.StatusCode, Message: body.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode proxy response: %w", err)
	}
	return nil
}
