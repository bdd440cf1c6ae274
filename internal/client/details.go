package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Belphemur/AniWiki/internal/apperrors"
	"github.com/Belphemur/AniWiki/internal/config"
	"github.com/Belphemur/AniWiki/internal/models"
)

// AnimeDetail fetches the full anime record
func (c *client) AnimeDetail(ctx context.Context, id string) (models.Detail, error) {
	d, err := c.fetchDetail(ctx, "anime", "/anime/{id}/full", fmt.Sprintf("/anime/%s/full", url.PathEscape(id)), id)
	if err != nil {
		return nil, fmt.Errorf("anime detail: %w", err)
	}
	return d, nil
}

// CharacterDetail fetches the full character record
func (c *client) CharacterDetail(ctx context.Context, id string) (models.Detail, error) {
	d, err := c.fetchDetail(ctx, "character", "/characters/{id}/full", fmt.Sprintf("/characters/%s/full", url.PathEscape(id)), id)
	if err != nil {
		return nil, fmt.Errorf("character detail: %w", err)
	}
	return d, nil
}

func (c *client) fetchDetail(ctx context.Context, resource, endpoint, path, id string) (models.Detail, error) {
	logger := config.GetLogger()
	logger.Debug().Str("resource", resource).Str("id", id).Msg("Fetching catalog detail")

	var resp detailResponse
	if err := c.getJSON(ctx, request{endpoint: endpoint, path: path}, &resp); err != nil {
		var upstream *apperrors.ErrUpstream
		if errors.As(err, &upstream) && upstream.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %w", apperrors.NewNotFoundError(resource, id), err)
		}
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("catalog response has no data")
	}

	normalizeImage(resp.Data)
	return resp.Data, nil
}
