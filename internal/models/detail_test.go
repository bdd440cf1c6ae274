package models

import (
	"encoding/json"
	"testing"
)

func decodeDetail(t *testing.T, raw string) Detail {
	t.Helper()
	var d Detail
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("Failed to decode fixture: %v", err)
	}
	return d
}

func ptr[T any](v T) *T { return &v }

func TestDetail_AnimeDetail(t *testing.T) {
	d := decodeDetail(t, `{
		"mal_id": 16498,
		"title": "Shingeki no Kyojin",
		"image_url": "https://cdn.example/l.jpg",
		"type": "TV",
		"episodes": 25,
		"score": 8.55,
		"aired": {"string": "Apr 7, 2013 to Sep 29, 2013"},
		"synopsis": "Humanity lives behind walls. Titans roam outside.",
		"genres": [{"mal_id": 1, "name": "Action"}, {"mal_id": 8, "name": "Drama"}],
		"background": "",
		"studios": [{"mal_id": 858, "name": "Wit Studio"}],
		"trailer": {"youtube_id": "abc"}
	}`)

	if d.MalID() != 16498 {
		t.Errorf("Expected MalID 16498, got %d", d.MalID())
	}
	if d.ImageURL() != "https://cdn.example/l.jpg" {
		t.Errorf("Unexpected image url %q", d.ImageURL())
	}

	a, err := d.AnimeDetail()
	if err != nil {
		t.Fatalf("AnimeDetail failed: %v", err)
	}
	if a.Title != "Shingeki no Kyojin" {
		t.Errorf("Expected title, got %q", a.Title)
	}
	if a.Type == nil || *a.Type != "TV" {
		t.Errorf("Expected type TV, got %v", a.Type)
	}
	if a.Episodes == nil || *a.Episodes != 25 {
		t.Errorf("Expected 25 episodes, got %v", a.Episodes)
	}
	if a.Aired == nil || a.Aired.String != "Apr 7, 2013 to Sep 29, 2013" {
		t.Errorf("Unexpected aired %v", a.Aired)
	}
	if got := a.GenreNames(); len(got) != 2 || got[0] != "Action" || got[1] != "Drama" {
		t.Errorf("Unexpected genres %v", got)
	}
	if got := a.StudioNames(); len(got) != 1 || got[0] != "Wit Studio" {
		t.Errorf("Unexpected studios %v", got)
	}
}

func TestDetail_AnimeDetail_NullFields(t *testing.T) {
	d := decodeDetail(t, `{"mal_id": 1, "title": "Unknown", "type": null, "episodes": null, "score": null, "aired": null}`)

	a, err := d.AnimeDetail()
	if err != nil {
		t.Fatalf("AnimeDetail failed: %v", err)
	}
	if a.Type != nil || a.Episodes != nil || a.Score != nil || a.Aired != nil {
		t.Errorf("Expected nil nullable fields, got %+v", a)
	}
}

func TestDetail_CharacterDetail_NestedCatalogShape(t *testing.T) {
	d := decodeDetail(t, `{
		"mal_id": 40882,
		"name": "Eren Yeager",
		"nicknames": ["Titan boy"],
		"favorites": 123,
		"about": "Age: 15\nHeight: 170 cm",
		"anime": [{"role": "Main", "anime": {"mal_id": 16498, "url": "https://myanimelist.net/anime/16498", "images": {"jpg": {"image_url": "https://cdn/16498.jpg"}}, "title": "Shingeki no Kyojin"}}],
		"manga": [{"role": "Main", "manga": {"mal_id": 23390, "url": "https://myanimelist.net/manga/23390", "title": "Shingeki no Kyojin"}}],
		"voices": [{"language": "Japanese", "person": {"mal_id": 11297, "name": "Kaji, Yuuki"}}]
	}`)

	c, err := d.CharacterDetail()
	if err != nil {
		t.Fatalf("CharacterDetail failed: %v", err)
	}
	if c.Name != "Eren Yeager" {
		t.Errorf("Expected name, got %q", c.Name)
	}
	if c.MemberFavorites == nil || *c.MemberFavorites != 123 {
		t.Errorf("Expected favorites 123, got %v", c.MemberFavorites)
	}
	if len(c.Animeography) != 1 || c.Animeography[0].MalID != 16498 || c.Animeography[0].Name != "Shingeki no Kyojin" || c.Animeography[0].Role != "Main" {
		t.Errorf("Unexpected animeography %+v", c.Animeography)
	}
	if len(c.Mangaography) != 1 || c.Mangaography[0].Name != "Shingeki no Kyojin" {
		t.Errorf("Unexpected mangaography %+v", c.Mangaography)
	}
	if len(c.VoiceActors) != 1 || c.VoiceActors[0].Person.MalID != 11297 || c.VoiceActors[0].Language != "Japanese" {
		t.Errorf("Unexpected voice actors %+v", c.VoiceActors)
	}
}

func TestDetail_CharacterDetail_FlatShape(t *testing.T) {
	d := decodeDetail(t, `{
		"name": "Levi",
		"animeography": [{"mal_id": 5, "name": "Show", "role": "Supporting"}],
		"mangaography": [{"name": "Book", "role": "Supporting"}],
		"voice_actors": [{"language": "English", "person": {"mal_id": 9, "name": "Someone"}}]
	}`)

	c, err := d.CharacterDetail()
	if err != nil {
		t.Fatalf("CharacterDetail failed: %v", err)
	}
	if len(c.Animeography) != 1 || c.Animeography[0].MalID != 5 || c.Animeography[0].Name != "Show" {
		t.Errorf("Unexpected animeography %+v", c.Animeography)
	}
	if len(c.Mangaography) != 1 || c.Mangaography[0].Name != "Book" {
		t.Errorf("Unexpected mangaography %+v", c.Mangaography)
	}
	if len(c.VoiceActors) != 1 || c.VoiceActors[0].Person.Name != "Someone" {
		t.Errorf("Unexpected voice actors %+v", c.VoiceActors)
	}
}

func TestListItem_DisplayName(t *testing.T) {
	if got := (ListItem{Title: "Naruto"}).DisplayName(); got != "Naruto" {
		t.Errorf("Expected Naruto, got %q", got)
	}
	if got := (ListItem{Name: "Levi"}).DisplayName(); got != "Levi" {
		t.Errorf("Expected Levi, got %q", got)
	}
}

func TestListItem_MarshalScore(t *testing.T) {
	tests := []struct {
		name     string
		item     ListItem
		expected string
	}{
		{"anime without score", ListItem{MalID: 1735, Title: "Naruto: Shippuuden", ImageURL: "x"}, `{"mal_id":1735,"title":"Naruto: Shippuuden","image_url":"x","score":null}`},
		{"anime with score", ListItem{MalID: 20, Title: "Naruto", ImageURL: "x", Score: ptr(8.0)}, `{"mal_id":20,"title":"Naruto","image_url":"x","score":8}`},
		{"character", ListItem{MalID: 17, Name: "Naruto Uzumaki", ImageURL: "x", About: "Ninja"}, `{"mal_id":17,"name":"Naruto Uzumaki","image_url":"x","about":"Ninja"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.item)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(out) != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, out)
			}
		})
	}
}
