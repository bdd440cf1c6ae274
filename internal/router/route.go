// Package router owns AniWiki navigation: it parses URL fragments into a
// State, runs the fetch for that state and renders the resulting view.
package router

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/Belphemur/AniWiki/internal/render"
)

// Route is one of the named views.
type Route int

const (
	Home Route = iota
	AnimeSearch
	AnimeDetails
	CharacterSearch
	CharacterDetails
	Error
)

var routeNames = map[Route]string{
	Home:             "home",
	AnimeSearch:      "search",
	AnimeDetails:     "details",
	CharacterSearch:  "charsearch",
	CharacterDetails: "chardetails",
	Error:            "error",
}

func (r Route) String() string {
	if name, ok := routeNames[r]; ok {
		return name
	}
	return "unknown"
}

// IsSearch reports whether r is a paginated search route.
func (r Route) IsSearch() bool {
	return r == AnimeSearch || r == CharacterSearch
}

// IsDetails reports whether r is a detail route.
func (r Route) IsDetails() bool {
	return r == AnimeDetails || r == CharacterDetails
}

// State is the navigation state derived from a fragment. It is a value and is
// rebuilt from scratch on every navigation.
type State struct {
	Route    Route
	ID       string
	Query    string
	Page     int
	FromHome bool
}

// Parse reads a fragment of the form #<route>[/<id>][?<query>]. Unknown routes
// and detail routes without an id resolve to Home.
func Parse(fragment string) State {
	fragment = strings.TrimPrefix(fragment, "#")
	path, rawQuery, _ := strings.Cut(fragment, "?")
	name, id, _ := strings.Cut(path, "/")
	id, _, _ = strings.Cut(id, "/")

	params, _ := url.ParseQuery(rawQuery)

	switch name {
	case "search", "charsearch":
		route := AnimeSearch
		if name == "charsearch" {
			route = CharacterSearch
		}
		return State{Route: route, Query: params.Get("q"), Page: parsePage(params.Get("page"))}
	case "details", "chardetails":
		if id == "" {
			break
		}
		route := AnimeDetails
		if name == "chardetails" {
			route = CharacterDetails
		}
		return State{Route: route, ID: id, Page: 1, FromHome: params.Get("from") == "home"}
	}
	return State{Route: Home, Page: 1}
}

// parsePage returns a positive page number, 1 when missing or invalid.
func parsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Fragment returns the fragment that parses back to s.
func (s State) Fragment() string {
	switch s.Route {
	case AnimeSearch, CharacterSearch:
		return SearchFragment(s.Route, s.Query, s.Page)
	case AnimeDetails, CharacterDetails:
		return DetailsFragment(s.Route, s.ID, s.FromHome)
	}
	return HomeFragment
}

// HomeFragment is the fragment of the home view.
const HomeFragment = "#home"

// SearchFragment builds the fragment of one result page.
func SearchFragment(route Route, query string, page int) string {
	return "#" + route.String() + "?q=" + render.EncodeComponent(query) + "&page=" + strconv.Itoa(page)
}

// DetailsFragment builds the fragment of a detail view.
func DetailsFragment(route Route, id string, fromHome bool) string {
	f := "#" + route.String() + "/" + id
	if fromHome {
		f += "?from=home"
	}
	return f
}

// Mode selects what the search box searches for.
type Mode string

const (
	AnimeMode     Mode = "anime"
	CharacterMode Mode = "character"
)

// SearchFromInput builds the fragment for a search box submission. A blank
// query produces no navigation.
func SearchFromInput(mode Mode, input string) (string, bool) {
	q := strings.TrimSpace(input)
	if q == "" {
		return "", false
	}
	route := AnimeSearch
	if mode == CharacterMode {
		route = CharacterSearch
	}
	return SearchFragment(route, q, 1), true
}
