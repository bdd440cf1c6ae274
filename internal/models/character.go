package models

import "encoding/json"

// AnimeCredit is one entry of a character's animeography.
type AnimeCredit struct {
	MalID int    `json:"mal_id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// MangaCredit is one entry of a character's mangaography.
type MangaCredit struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Person identifies a voice actor.
type Person struct {
	MalID int    `json:"mal_id"`
	Name  string `json:"name"`
}

// VoiceActor is one voice credit of a character.
type VoiceActor struct {
	Language string `json:"language"`
	Person   Person `json:"person"`
}

// CharacterDetail is the view-model rendered on the character wiki page.
type CharacterDetail struct {
	MalID           int           `json:"mal_id"`
	Name            string        `json:"name"`
	ImageURL        string        `json:"image_url"`
	Nicknames       []string      `json:"nicknames"`
	MemberFavorites *int          `json:"member_favorites"`
	About           string        `json:"about"`
	Animeography    []AnimeCredit `json:"animeography"`
	Mangaography    []MangaCredit `json:"mangaography"`
	VoiceActors     []VoiceActor  `json:"voice_actors"`
}

// catalogEntry is the nested title reference used by the catalog's "full" records.
type catalogEntry struct {
	MalID int    `json:"mal_id"`
	Title string `json:"title"`
	Name  string `json:"name"`
}

func (e *catalogEntry) label() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Name
}

// UnmarshalJSON accepts both the flat credit shape and the catalog's "full"
// record, which nests credits as anime/manga {"role", "anime"|"manga": {...}}
// entries, lists voice credits under "voices" and counts "favorites".
func (c *CharacterDetail) UnmarshalJSON(data []byte) error {
	type plain CharacterDetail
	type animeCredit struct {
		MalID int           `json:"mal_id"`
		Name  string        `json:"name"`
		Role  string        `json:"role"`
		Anime *catalogEntry `json:"anime"`
	}
	type mangaCredit struct {
		Name  string        `json:"name"`
		Role  string        `json:"role"`
		Manga *catalogEntry `json:"manga"`
	}
	var raw struct {
		plain
		Animeography []animeCredit `json:"animeography"`
		Mangaography []mangaCredit `json:"mangaography"`
		Anime        []animeCredit `json:"anime"`
		Manga        []mangaCredit `json:"manga"`
		Voices       []VoiceActor  `json:"voices"`
		Favorites    *int          `json:"favorites"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = CharacterDetail(raw.plain)

	animeography := raw.Animeography
	if len(animeography) == 0 {
		animeography = raw.Anime
	}
	c.Animeography = make([]AnimeCredit, 0, len(animeography))
	for _, a := range animeography {
		credit := AnimeCredit{MalID: a.MalID, Name: a.Name, Role: a.Role}
		if a.Anime != nil {
			credit.MalID = a.Anime.MalID
			credit.Name = a.Anime.label()
		}
		c.Animeography = append(c.Animeography, credit)
	}

	mangaography := raw.Mangaography
	if len(mangaography) == 0 {
		mangaography = raw.Manga
	}
	c.Mangaography = make([]MangaCredit, 0, len(mangaography))
	for _, m := range mangaography {
		credit := MangaCredit{Name: m.Name, Role: m.Role}
		if m.Manga != nil {
			credit.Name = m.Manga.label()
		}
		c.Mangaography = append(c.Mangaography, credit)
	}

	if len(c.VoiceActors) == 0 && len(raw.Voices) > 0 {
		c.VoiceActors = raw.Voices
	}
	if c.MemberFavorites == nil {
		c.MemberFavorites = raw.Favorites
	}
	return nil
}
