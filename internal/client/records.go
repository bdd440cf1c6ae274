package client

import (
	"strings"

	"github.com/Belphemur/AniWiki/internal/models"
)

// imageSet is the catalog's per-format image block.
type imageSet struct {
	JPG struct {
		ImageURL      string `json:"image_url"`
		SmallImageURL string `json:"small_image_url"`
		LargeImageURL string `json:"large_image_url"`
	} `json:"jpg"`
}

// pagination is the catalog's list pagination block.
type pagination struct {
	LastVisiblePage int  `json:"last_visible_page"`
	HasNextPage     bool `json:"has_next_page"`
}

type animeRecord struct {
	MalID  int      `json:"mal_id"`
	Title  string   `json:"title"`
	Images imageSet `json:"images"`
	Score  *float64 `json:"score"`
}

type characterRecord struct {
	MalID  int      `json:"mal_id"`
	Name   string   `json:"name"`
	Images imageSet `json:"images"`
	About  *string  `json:"about"`
}

// listResponse is the envelope of every list endpoint.
type listResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination pagination `json:"pagination"`
}

// detailResponse is the envelope of the "full" detail endpoints.
type detailResponse struct {
	Data models.Detail `json:"data"`
}

// errorResponse is the catalog's error body.
type errorResponse struct {
	Status  any    `json:"status"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (a animeRecord) toListItem() models.ListItem {
	return models.ListItem{
		MalID:    a.MalID,
		Title:    a.Title,
		ImageURL: a.Images.JPG.ImageURL,
		Score:    a.Score,
	}
}

func (c characterRecord) toListItem() models.ListItem {
	return models.ListItem{
		MalID:    c.MalID,
		Name:     c.Name,
		ImageURL: c.Images.JPG.ImageURL,
		About:    firstLine(c.About),
	}
}

// firstLine returns the first line of a biography, or "" when absent.
func firstLine(about *string) string {
	if about == nil {
		return ""
	}
	line, _, _ := strings.Cut(*about, "\n")
	return line
}

// normalizeImage sets image_url on a detail record, preferring the large JPEG
// and falling back to the standard thumbnail.
func normalizeImage(d models.Detail) {
	jpg := map[string]any{}
	if images, ok := d["images"].(map[string]any); ok {
		if j, ok := images["jpg"].(map[string]any); ok {
			jpg = j
		}
	}
	if large, _ := jpg["large_image_url"].(string); large != "" {
		d["image_url"] = large
		return
	}
	thumb, _ := jpg["image_url"].(string)
	d["image_url"] = thumb
}
