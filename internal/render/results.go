package render

import (
	"strconv"

	"github.com/Belphemur/AniWiki/internal/models"
	"golang.org/x/net/html"
)

// ResultsView is one page of search results.
type ResultsView struct {
	Characters bool
	Page       int
	Items      []models.ListItem
	HasMore    bool
	PrevHref   string
	NextHref   string
	HrefFor    HrefFunc
}

// Results renders a result grid with its pagination bar. Previous is disabled
// on the first page, next when the catalog reports no further page.
func Results(v ResultsView) *html.Node {
	var cards []*html.Node
	switch {
	case len(v.Items) == 0 && v.Characters:
		cards = []*html.Node{textEl("p", class("empty"), "No characters found.")}
	case len(v.Items) == 0:
		cards = []*html.Node{textEl("p", class("empty"), "No anime found.")}
	default:
		hrefFor := v.HrefFor
		if hrefFor == nil {
			hrefFor = func(models.ListItem) string { return "" }
		}
		cards = Cards(v.Items, v.Characters, hrefFor)
	}

	return el("div", []attr{{"id", "results"}},
		el("div", []attr{{"id", "results-container"}, {"class", "grid"}}, cards...),
		pagination(v.Page, v.PrevHref, v.NextHref, v.Page <= 1, !v.HasMore),
	)
}

// ResultsLoading is a result page filled with skeleton cards.
func ResultsLoading(page int) *html.Node {
	return el("div", []attr{{"id", "results"}},
		el("div", []attr{{"id", "results-container"}, {"class", "grid"}}, Skeletons(ResultsSkeletons)...),
		pagination(page, "", "", true, true),
	)
}

func pagination(page int, prevHref, nextHref string, prevDisabled, nextDisabled bool) *html.Node {
	return el("div", class("pagination"),
		pageButton("prev-page", "Previous", prevHref, prevDisabled),
		textEl("span", []attr{{"id", "page-info"}}, "Page "+strconv.Itoa(page)),
		pageButton("next-page", "Next", nextHref, nextDisabled),
	)
}

func pageButton(id, label, href string, disabled bool) *html.Node {
	attrs := []attr{{"id", id}, {"class", "page-btn"}, {"data-href", href}}
	if disabled {
		attrs = append(attrs, attr{"disabled", ""})
	}
	return textEl("button", attrs, label)
}
