package render

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Belphemur/AniWiki/internal/bio"
	"github.com/Belphemur/AniWiki/internal/models"
	"github.com/samber/lo"
	"golang.org/x/net/html"
)

const (
	notAvailable  = "N/A"
	noSynopsis    = "No synopsis available."
	merchSearch   = "https://www.amazon.com/s?k="
	merchLinkText = "Shop on Amazon"
)

var sentenceBreak = regexp.MustCompile(`\. +`)

type row struct {
	label string
	value *html.Node
}

// AnimeDetail renders the wiki page of an anime. backHref is the target of the
// back button.
func AnimeDetail(a *models.AnimeDetail, backHref string) *html.Node {
	aired := notAvailable
	if a.Aired != nil && a.Aired.String != "" {
		aired = a.Aired.String
	}

	box := infobox(a.Title, a.ImageURL,
		row{"Type", text(orNA(a.Type, func(s string) string { return s }))},
		row{"Episodes", text(orNA(a.Episodes, strconv.Itoa))},
		row{"Score", text(formatScore(a.Score))},
		row{"Aired", text(aired)},
		row{"Merch", merchLink(a.Title)},
	)

	content := el("div", class("wiki-content"), synopsis(a.Synopsis))
	if genres := a.GenreNames(); len(genres) > 0 {
		appendAll(content, section("Genres", tagList(genres)))
	}
	if a.Background != "" {
		appendAll(content, section("Background", textEl("p", nil, a.Background)))
	}
	if studios := a.StudioNames(); len(studios) > 0 {
		appendAll(content, section("Studios", tagList(studios)))
	}

	return article(backHref, box, content)
}

// CharacterDetail renders the wiki page of a character.
func CharacterDetail(c *models.CharacterDetail, backHref string) *html.Node {
	nicknames := strings.Join(c.Nicknames, ", ")
	if nicknames == "" {
		nicknames = notAvailable
	}

	box := infobox(c.Name, c.ImageURL,
		row{"Nicknames", text(nicknames)},
		row{"Favorites", text(orNA(c.MemberFavorites, strconv.Itoa))},
		row{"Merch", merchLink(c.Name)},
	)

	content := el("div", class("wiki-content"))
	if c.About != "" {
		appendAll(content, biography(c.About))
	}
	if len(c.Animeography) > 0 {
		appendAll(content, section("Animeography", el("ul", nil,
			lo.Map(c.Animeography, func(a models.AnimeCredit, _ int) *html.Node {
				return el("li", nil,
					textEl("a", []attr{{"href", "#details/" + strconv.Itoa(a.MalID)}}, a.Name),
					text(" as "+a.Role),
				)
			})...)))
	}
	if len(c.Mangaography) > 0 {
		appendAll(content, section("Mangaography", el("ul", nil,
			lo.Map(c.Mangaography, func(m models.MangaCredit, _ int) *html.Node {
				return textEl("li", nil, m.Name+" as "+m.Role)
			})...)))
	}
	if len(c.VoiceActors) > 0 {
		appendAll(content, section("Voice Actors", el("ul", nil,
			lo.Map(c.VoiceActors, func(va models.VoiceActor, _ int) *html.Node {
				return el("li", nil,
					text(va.Language+": "),
					textEl("a", []attr{{"href", "#chardetails/" + strconv.Itoa(va.Person.MalID)}}, va.Person.Name),
				)
			})...)))
	}

	return article(backHref, box, content)
}

// DetailLoading is shown while a detail record is fetched.
func DetailLoading(backHref string) *html.Node {
	return el("div", []attr{{"id", "details"}},
		backButton(backHref),
		el("div", []attr{{"id", "anime-details"}}, textEl("p", class("loading"), "Loading…")),
	)
}

// Sentences splits a synopsis into one sentence per paragraph. A period is
// added back only to sentences without closing punctuation.
func Sentences(synopsis string) []string {
	var out []string
	for _, s := range sentenceBreak.Split(synopsis, -1) {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if !strings.ContainsAny(s[len(s)-1:], ".!?)]\"") {
			s += "."
		}
		out = append(out, s)
	}
	return out
}

func synopsis(s string) *html.Node {
	sentences := Sentences(s)
	if len(sentences) == 0 {
		return section("Synopsis", textEl("p", nil, noSynopsis))
	}
	return section("Synopsis", lo.Map(sentences, func(s string, _ int) *html.Node {
		return textEl("p", nil, s)
	})...)
}

func biography(about string) *html.Node {
	sec := section("Biography")
	for _, e := range bio.Parse(about) {
		if e.Kind == bio.Field {
			appendAll(sec, textEl("h3", nil, e.Label))
		}
		appendAll(sec, textEl("p", nil, e.Text))
	}
	return sec
}

func article(backHref string, box, content *html.Node) *html.Node {
	return el("div", []attr{{"id", "details"}},
		backButton(backHref),
		el("div", []attr{{"id", "anime-details"}},
			el("div", []attr{{"id", "wiki-article"}}, box, content),
		),
	)
}

func backButton(href string) *html.Node {
	return textEl("button", []attr{{"id", "back-btn"}, {"data-href", href}}, "← Back")
}

func infobox(title, image string, rows ...row) *html.Node {
	table := el("table", nil)
	for _, r := range rows {
		appendAll(table, el("tr", nil, textEl("th", nil, r.label), el("td", nil, r.value)))
	}
	return el("aside", class("infobox"),
		textEl("h2", nil, title),
		el("img", []attr{{"src", image}, {"alt", title}}),
		table,
	)
}

func section(title string, children ...*html.Node) *html.Node {
	sec := el("section", nil, textEl("h2", nil, title))
	appendAll(sec, children...)
	return sec
}

func tagList(items []string) *html.Node {
	return el("ul", class("tag-list"), lo.Map(items, func(s string, _ int) *html.Node {
		return textEl("li", nil, s)
	})...)
}

func merchLink(name string) *html.Node {
	return textEl("a", []attr{
		{"href", merchSearch + EncodeComponent(name)},
		{"target", "_blank"},
		{"rel", "noopener"},
	}, merchLinkText)
}

func orNA[T any](v *T, format func(T) string) string {
	if v == nil {
		return notAvailable
	}
	return format(*v)
}
