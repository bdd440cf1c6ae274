package render

import (
	"github.com/Belphemur/AniWiki/internal/models"
	"golang.org/x/net/html"
)

// Carousel track ids on the home view.
const (
	PopularAnimeID      = "popular-anime"
	PopularCharactersID = "popular-characters"
)

// HomeView is the data of the home page.
type HomeView struct {
	TopAnime      []models.ListItem
	TopCharacters []models.ListItem
	// HrefFor builds card links; nil cards link nowhere.
	HrefFor func(item models.ListItem, isCharacter bool) string
}

// Home renders both carousels.
func Home(v HomeView) *html.Node {
	href := func(isCharacter bool) HrefFunc {
		return func(item models.ListItem) string {
			if v.HrefFor == nil {
				return ""
			}
			return v.HrefFor(item, isCharacter)
		}
	}
	return el("div", []attr{{"id", "home"}},
		carousel("Popular Anime", PopularAnimeID, Cards(v.TopAnime, false, href(false))),
		carousel("Popular Characters", PopularCharactersID, Cards(v.TopCharacters, true, href(true))),
	)
}

// HomeLoading is the home page with skeleton cards in both carousels.
func HomeLoading() *html.Node {
	return el("div", []attr{{"id", "home"}},
		carousel("Popular Anime", PopularAnimeID, Skeletons(HomeSkeletons)),
		carousel("Popular Characters", PopularCharactersID, Skeletons(HomeSkeletons)),
	)
}

func carousel(title, trackID string, cards []*html.Node) *html.Node {
	return el("section", class("carousel-section"),
		textEl("h2", nil, title),
		el("div", class("carousel"),
			textEl("button", []attr{{"class", "carousel-btn prev"}, {"data-target", trackID}, {"aria-label", "Previous"}}, "‹"),
			el("div", []attr{{"class", "carousel-track"}, {"id", trackID}}, cards...),
			textEl("button", []attr{{"class", "carousel-btn next"}, {"data-target", trackID}, {"aria-label", "Next"}}, "›"),
		),
	)
}
