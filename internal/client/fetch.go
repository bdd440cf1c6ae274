package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Belphemur/AniWiki/internal/apperrors"
	"github.com/Belphemur/AniWiki/internal/config"
	"github.com/Belphemur/AniWiki/internal/metrics"
)

// maxErrorBody caps how much of an error response is read for its message.
const maxErrorBody = 64 << 10

// request describes one catalog call. Endpoint is the path template used as
// the metrics label, path is the concrete request path.
type request struct {
	endpoint string
	path     string
	query    url.Values
}

// getJSON performs a GET against the catalog and decodes the JSON body into target.
func (c *client) getJSON(ctx context.Context, r request, target any) error {
	logger := config.GetLogger()

	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", config.GetUserAgent())
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(r.endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(r.endpoint, "error").Inc()
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestsTotal.WithLabelValues(r.endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstreamErr := &apperrors.ErrUpstream{
			Endpoint:   r.endpoint,
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
		logger.Warn().
			Str("endpoint", r.endpoint).
			Str("url", u).
			Int("status", resp.StatusCode).
			Msg("Catalog returned an error status")
		return upstreamErr
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode JSON response: %w", err)
	}

	logger.Debug().
		Str("endpoint", r.endpoint).
		Str("url", u).
		Dur("elapsed", time.Since(start)).
		Msg("Catalog request completed")
	return nil
}

// readErrorMessage extracts the human readable message of a catalog error body.
func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var e errorResponse
	if err := json.Unmarshal(raw, &e); err != nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
