package models

import "encoding/json"

// ListItem is the reduced view-model for one anime or character in a list or grid.
// Anime items carry Title and Score, character items carry Name and About.
type ListItem struct {
	MalID    int      `json:"mal_id"`
	Title    string   `json:"title,omitempty"`
	Name     string   `json:"name,omitempty"`
	ImageURL string   `json:"image_url"`
	Score    *float64 `json:"score,omitempty"`
	About    string   `json:"about,omitempty"`
}

// MarshalJSON always writes score for anime items, as null when the catalog
// has none. Character items never carry a score.
func (i ListItem) MarshalJSON() ([]byte, error) {
	type plain ListItem
	if i.Title == "" && i.Name != "" {
		return json.Marshal(plain(i))
	}
	return json.Marshal(struct {
		plain
		Score *float64 `json:"score"`
	}{plain(i), i.Score})
}

// DisplayName returns the title for anime items and the name for characters.
func (i ListItem) DisplayName() string {
	if i.Title != "" {
		return i.Title
	}
	return i.Name
}

// Page is one page of list results. HasMore only gates forward pagination,
// there is no total count.
type Page struct {
	Results []ListItem `json:"results"`
	HasMore bool       `json:"hasMore"`
}
