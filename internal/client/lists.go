package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Belphemur/AniWiki/internal/config"
	"github.com/Belphemur/AniWiki/internal/models"
	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

// SearchAnime searches anime titles, pageSize per page
func (c *client) SearchAnime(ctx context.Context, opts models.SearchOptions) (*models.Page, error) {
	var resp listResponse[animeRecord]
	if err := c.getJSON(ctx, request{endpoint: "/anime", path: "/anime", query: searchQuery(opts)}, &resp); err != nil {
		return nil, fmt.Errorf("search anime: %w", err)
	}
	return toPage(resp, animeRecord.toListItem)
}

// SearchCharacters searches characters by name, pageSize per page
func (c *client) SearchCharacters(ctx context.Context, opts models.SearchOptions) (*models.Page, error) {
	var resp listResponse[characterRecord]
	if err := c.getJSON(ctx, request{endpoint: "/characters", path: "/characters", query: searchQuery(opts)}, &resp); err != nil {
		return nil, fmt.Errorf("search characters: %w", err)
	}
	return toPage(resp, characterRecord.toListItem)
}

// TopAnime returns one page of the top-ranked anime, pageSize per page
func (c *client) TopAnime(ctx context.Context, page int) (*models.Page, error) {
	var resp listResponse[animeRecord]
	if err := c.getJSON(ctx, request{endpoint: "/top/anime", path: "/top/anime", query: pageQuery(page)}, &resp); err != nil {
		return nil, fmt.Errorf("top anime: %w", err)
	}
	return toPage(resp, animeRecord.toListItem)
}

// TopCharacters returns one page of the most favorited characters, pageSize per page
func (c *client) TopCharacters(ctx context.Context, page int) (*models.Page, error) {
	var resp listResponse[characterRecord]
	if err := c.getJSON(ctx, request{endpoint: "/top/characters", path: "/top/characters", query: pageQuery(page)}, &resp); err != nil {
		return nil, fmt.Errorf("top characters: %w", err)
	}
	return toPage(resp, characterRecord.toListItem)
}

func toPage[T any](resp listResponse[T], toItem func(T) models.ListItem) (*models.Page, error) {
	if resp.Data == nil {
		return nil, fmt.Errorf("catalog response has no data")
	}

	page := &models.Page{
		Results: lo.Map(resp.Data, func(r T, _ int) models.ListItem { return toItem(r) }),
		HasMore: resp.Pagination.HasNextPage,
	}

	logger := config.GetLogger()
	logger.Debug().Int("count", len(page.Results)).Bool("has_more", page.HasMore).Msg("Mapped catalog list")
	return page, nil
}

func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	return url.Values{"page": {strconv.Itoa(page)}, "limit": {strconv.Itoa(pageSize)}}
}

func searchQuery(opts models.SearchOptions) url.Values {
	q := pageQuery(opts.Page)
	q.Set("q", NormalizeQuery(opts.Query))
	if opts.OrderBy != "" {
		q.Set("order_by", opts.OrderBy)
	}
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}
	return q
}

// NormalizeQuery trims the free-text query and puts it in Unicode NFC form so
// visually identical inputs reach the catalog as the same bytes.
func NormalizeQuery(q string) string {
	return norm.NFC.String(strings.TrimSpace(q))
}
