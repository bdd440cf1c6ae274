package router

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/Belphemur/AniWiki/internal/config"
	"github.com/Belphemur/AniWiki/internal/metrics"
	"github.com/Belphemur/AniWiki/internal/models"
	"github.com/Belphemur/AniWiki/internal/render"
	"golang.org/x/net/html"
)

// ErrStale is returned when a newer navigation started while this one was
// fetching. Its result must not be shown.
var ErrStale = errors.New("navigation superseded by a newer one")

// Fetcher is the data source of the router. Both the catalog client and the
// proxy API client implement it.
type Fetcher interface {
	SearchAnime(ctx context.Context, opts models.SearchOptions) (*models.Page, error)
	SearchCharacters(ctx context.Context, opts models.SearchOptions) (*models.Page, error)
	TopAnime(ctx context.Context, page int) (*models.Page, error)
	TopCharacters(ctx context.Context, page int) (*models.Page, error)
	AnimeDetail(ctx context.Context, id string) (models.Detail, error)
	CharacterDetail(ctx context.Context, id string) (models.Detail, error)
}

// View is the outcome of one navigation.
type View struct {
	State State
	Node  *html.Node
	// Back is the target of the detail views' back button.
	Back string
	// Redirect is set when the navigation ended on another fragment.
	Redirect string
	// Message is the error text of an Error view.
	Message string
}

// HTML serializes the view.
func (v *View) HTML() (string, error) {
	return render.HTML(v.Node)
}

// Navigator runs navigations against a Fetcher. It keeps the last executed
// search so detail views can link back to it.
type Navigator struct {
	fetcher    Fetcher
	generation atomic.Uint64

	mu         sync.Mutex
	lastSearch *State
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLastSearch restores the last executed search from its fragment. Anything
// that does not parse to a search route is ignored.
func WithLastSearch(fragment string) Option {
	return func(n *Navigator) {
		if fragment == "" {
			return
		}
		if s := Parse(fragment); s.Route.IsSearch() {
			n.lastSearch = &s
		}
	}
}

// NewNavigator creates a Navigator.
func NewNavigator(fetcher Fetcher, opts ...Option) *Navigator {
	n := &Navigator{fetcher: fetcher}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// LastSearch returns the fragment of the last executed search, or "".
func (n *Navigator) LastSearch() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.lastSearch == nil {
		return ""
	}
	return n.lastSearch.Fragment()
}

// Loading returns the placeholder shown while fragment is being fetched.
func Loading(fragment string) *html.Node {
	s := Parse(fragment)
	switch {
	case s.Route == Home:
		return render.HomeLoading()
	case s.Route.IsSearch():
		return render.ResultsLoading(s.Page)
	default:
		return render.DetailLoading("")
	}
}

// Navigate derives a State from fragment, fetches its data and renders it.
// Fetch failures become Error views; ErrStale is returned when a newer
// navigation has started in the meantime.
func (n *Navigator) Navigate(ctx context.Context, fragment string) (*View, error) {
	gen := n.generation.Add(1)
	state := Parse(fragment)

	if state.Route.IsSearch() {
		n.mu.Lock()
		n.lastSearch = &state
		n.mu.Unlock()
	}

	view, err := n.resolve(ctx, state)
	if err == nil && n.generation.Load() != gen {
		err = ErrStale
	}

	outcome := "ok"
	switch {
	case errors.Is(err, ErrStale):
		outcome = "stale"
	case err != nil:
		outcome = "canceled"
	case view.State.Route == Error:
		outcome = "error"
	}
	metrics.NavigationsTotal.WithLabelValues(state.Route.String(), outcome).Inc()

	if err != nil {
		config.GetLogger().Debug().Err(err).Str("fragment", fragment).Msg("Navigation discarded")
		return nil, err
	}
	return view, nil
}

func (n *Navigator) resolve(ctx context.Context, s State) (*View, error) {
	var view *View
	switch s.Route {
	case AnimeSearch, CharacterSearch:
		view = n.search(ctx, s)
	case AnimeDetails:
		view = n.animeDetails(ctx, s)
	case CharacterDetails:
		view = n.characterDetails(ctx, s)
	default:
		view = n.home(ctx)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return view, nil
}

func (n *Navigator) home(ctx context.Context) *View {
	animeCh := make(chan models.Result[*models.Page], 1)
	charCh := make(chan models.Result[*models.Page], 1)

	go func() {
		page, err := n.fetcher.TopAnime(ctx, 1)
		animeCh <- models.Result[*models.Page]{Value: page, Err: err}
	}()
	go func() {
		page, err := n.fetcher.TopCharacters(ctx, 1)
		charCh <- models.Result[*models.Page]{Value: page, Err: err}
	}()

	anime, chars := <-animeCh, <-charCh
	if err := firstErr(anime.Err, chars.Err); err != nil {
		return errorView(State{Route: Home, Page: 1}, "Failed to load home data: "+err.Error())
	}

	return &View{
		State: State{Route: Home, Page: 1},
		Node: render.Home(render.HomeView{
			TopAnime:      anime.Value.Results,
			TopCharacters: chars.Value.Results,
			HrefFor: func(item models.ListItem, isCharacter bool) string {
				return DetailsFragment(detailsRoute(isCharacter), strconv.Itoa(item.MalID), true)
			},
		}),
	}
}

func (n *Navigator) search(ctx context.Context, s State) *View {
	isCharacter := s.Route == CharacterSearch
	opts := models.SearchOptions{Query: s.Query, Page: s.Page}

	fetch, failure := n.fetcher.SearchAnime, "Search failed: "
	if isCharacter {
		fetch, failure = n.fetcher.SearchCharacters, "Character search failed: "
	}

	page, err := fetch(ctx, opts)
	if err != nil {
		return errorView(s, failure+err.Error())
	}

	return &View{
		State: s,
		Node: render.Results(render.ResultsView{
			Characters: isCharacter,
			Page:       s.Page,
			Items:      page.Results,
			HasMore:    page.HasMore,
			PrevHref:   SearchFragment(s.Route, s.Query, max(s.Page-1, 1)),
			NextHref:   SearchFragment(s.Route, s.Query, s.Page+1),
			HrefFor: func(item models.ListItem) string {
				return DetailsFragment(detailsRoute(isCharacter), strconv.Itoa(item.MalID), false)
			},
		}),
	}
}

func (n *Navigator) animeDetails(ctx context.Context, s State) *View {
	const failure = "Could not load anime details: "
	detail, err := n.fetcher.AnimeDetail(ctx, s.ID)
	if err != nil {
		return errorView(s, failure+err.Error())
	}
	anime, err := detail.AnimeDetail()
	if err != nil {
		return errorView(s, failure+err.Error())
	}
	back := n.back(s)
	return &View{State: s, Back: back, Node: render.AnimeDetail(anime, back)}
}

func (n *Navigator) characterDetails(ctx context.Context, s State) *View {
	const failure = "Could not load character details: "
	detail, err := n.fetcher.CharacterDetail(ctx, s.ID)
	if err != nil {
		return errorView(s, failure+err.Error())
	}
	character, err := detail.CharacterDetail()
	if err != nil {
		return errorView(s, failure+err.Error())
	}
	back := n.back(s)
	return &View{State: s, Back: back, Node: render.CharacterDetail(character, back)}
}

// back is Home for views entered from Home, else the last executed search.
func (n *Navigator) back(s State) string {
	if s.FromHome {
		return HomeFragment
	}
	if last := n.LastSearch(); last != "" {
		return last
	}
	return HomeFragment
}

func errorView(s State, message string) *View {
	return &View{
		State:   State{Route: Error, ID: s.ID, Query: s.Query, Page: s.Page},
		Node:    render.Error(message),
		Message: message,
	}
}

func detailsRoute(isCharacter bool) Route {
	if isCharacter {
		return CharacterDetails
	}
	return AnimeDetails
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
