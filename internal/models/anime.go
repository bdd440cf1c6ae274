package models

// Named is a catalog entity referenced only by name (genre, studio).
type Named struct {
	MalID int    `json:"mal_id,omitempty"`
	Name  string `json:"name"`
}

// Aired holds the human readable airing period.
type Aired struct {
	String string `json:"string"`
}

// AnimeDetail is the view-model rendered on the anime wiki page.
// Nullable scalars are pointers so a missing value can render as "N/A".
type AnimeDetail struct {
	MalID      int      `json:"mal_id"`
	Title      string   `json:"title"`
	ImageURL   string   `json:"image_url"`
	Type       *string  `json:"type"`
	Episodes   *int     `json:"episodes"`
	Score      *float64 `json:"score"`
	Aired      *Aired   `json:"aired"`
	Synopsis   string   `json:"synopsis"`
	Genres     []Named  `json:"genres"`
	Background string   `json:"background"`
	Studios    []Named  `json:"studios"`
}

// GenreNames returns the genre names in catalog order.
func (a *AnimeDetail) GenreNames() []string {
	return names(a.Genres)
}

// StudioNames returns the studio names in catalog order.
func (a *AnimeDetail) StudioNames() []string {
	return names(a.Studios)
}

func names(in []Named) []string {
	out := make([]string, 0, len(in))
	for _, n := range in {
		out = append(out, n.Name)
	}
	return out
}
