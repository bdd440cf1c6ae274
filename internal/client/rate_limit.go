package client

import (
	"net/http"
	"time"

	"github.com/Belphemur/AniWiki/internal/config"
	"github.com/failsafe-go/failsafe-go/failsafehttp"
	"github.com/failsafe-go/failsafe-go/ratelimiter"
)

// defaultMaxWait bounds how long a request queues for a rate limiter permit.
const defaultMaxWait = 10 * time.Second

// newRateLimitedTransport spaces outgoing requests so that at most perSecond
// requests per second reach the catalog API. Requests wait up to maxWait for a
// permit and fail with ratelimiter.ErrExceeded after that; they are never retried.
// A non-positive perSecond disables limiting.
func newRateLimitedTransport(next http.RoundTripper, perSecond int, maxWait string) http.RoundTripper {
	if perSecond <= 0 {
		return next
	}

	wait := defaultMaxWait
	if maxWait != "" {
		if parsed, err := time.ParseDuration(maxWait); err != nil {
			logger := config.GetLogger()
			logger.Warn().Err(err).Str("max_wait", maxWait).Msg("Invalid rate limit max wait, using default")
		} else {
			wait = parsed
		}
	}

	limiter := ratelimiter.NewSmoothBuilderWithMaxRate[*http.Response](time.Second / time.Duration(perSecond)).
		WithMaxWaitTime(wait).
		Build()

	return failsafehttp.NewRoundTripper(next, limiter)
}
