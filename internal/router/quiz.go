package router

import (
	"context"
	"strconv"

	"github.com/Belphemur/AniWiki/internal/apperrors"
	"github.com/Belphemur/AniWiki/internal/models"
	"github.com/Belphemur/AniWiki/internal/quiz"
)

const quizFailure = "Quiz failed: "

// Quiz resolves a five-answer code to its recommended title, searches the
// catalog for it and opens the first match as if it was picked from Home.
// An unmapped code or an empty search ends on an Error view.
func (n *Navigator) Quiz(ctx context.Context, code string) (*View, error) {
	gen := n.generation.Add(1)
	state := State{Route: Home, Page: 1}

	title, err := quiz.Lookup(code)
	if err != nil {
		return errorView(state, quizFailure+err.Error()), nil
	}

	page, err := n.fetcher.SearchAnime(ctx, models.SearchOptions{Query: title, Page: 1})
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if n.generation.Load() != gen {
		return nil, ErrStale
	}
	if err != nil {
		return errorView(state, quizFailure+err.Error()), nil
	}
	if len(page.Results) == 0 {
		return errorView(state, quizFailure+(&apperrors.ErrNoRecommendation{Code: code, Title: title}).Error()), nil
	}

	target := DetailsFragment(AnimeDetails, strconv.Itoa(page.Results[0].MalID), true)
	view, err := n.Navigate(ctx, target)
	if err != nil {
		return nil, err
	}
	view.Redirect = target
	return view, nil
}
