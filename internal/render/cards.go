package render

import (
	"strconv"

	"github.com/Belphemur/AniWiki/internal/models"
	"github.com/samber/lo"
	"golang.org/x/net/html"
)

// Placeholder counts shown while a fetch is pending.
const (
	HomeSkeletons    = 6
	ResultsSkeletons = 12
)

// HrefFunc builds the navigation target of a card.
type HrefFunc func(item models.ListItem) string

// Card renders one list item. Anime cards show the score, character cards the
// first line of the biography.
func Card(item models.ListItem, isCharacter bool, href string) *html.Node {
	name := item.DisplayName()

	caption := "★ " + formatScore(item.Score)
	if isCharacter {
		caption = item.About
	}

	return el("div", []attr{{"class", "card"}, {"data-id", strconv.Itoa(item.MalID)}},
		el("img", []attr{{"class", "card-img"}, {"src", item.ImageURL}, {"alt", name}, {"loading", "lazy"}}),
		el("div", class("card-body"),
			textEl("h3", class("card-title"), name),
			textEl("p", class("card-score"), caption),
		),
		textEl("a", []attr{{"class", "view-btn"}, {"href", href}}, "View Details"),
	)
}

// Cards renders items in order.
func Cards(items []models.ListItem, isCharacter bool, hrefFor HrefFunc) []*html.Node {
	return lo.Map(items, func(item models.ListItem, _ int) *html.Node {
		return Card(item, isCharacter, hrefFor(item))
	})
}

// Skeleton is a loading placeholder with the shape of a card.
func Skeleton() *html.Node {
	return el("div", []attr{{"class", "card skeleton"}, {"aria-hidden", "true"}},
		el("div", class("skeleton-img")),
		el("div", class("skeleton-line")),
		el("div", class("skeleton-line short")),
	)
}

// Skeletons returns n placeholders.
func Skeletons(n int) []*html.Node {
	return lo.Times(n, func(_ int) *html.Node { return Skeleton() })
}

// formatScore prints a score the way JavaScript prints a number, or N/A.
func formatScore(score *float64) string {
	if score == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*score, 'f', -1, 64)
}
