package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/Belphemur/AniWiki/internal/models"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeClient records the last search and answers from canned data.
type fakeClient struct {
	mu       sync.Mutex
	lastOpts models.SearchOptions
	lastPage int
	err      error
	page     *models.Page
	detail   models.Detail
}

func (f *fakeClient) search(opts models.SearchOptions) (*models.Page, error) {
	f.mu.Lock()
	f.lastOpts = opts
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func (f *fakeClient) top(page int) (*models.Page, error) {
	f.mu.Lock()
	f.lastPage = page
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func (f *fakeClient) SearchAnime(_ context.Context, opts models.SearchOptions) (*models.Page, error) {
	return f.search(opts)
}

func (f *fakeClient) SearchCharacters(_ context.Context, opts models.SearchOptions) (*models.Page, error) {
	return f.search(opts)
}

func (f *fakeClient) TopAnime(_ context.Context, page int) (*models.Page, error) {
	return f.top(page)
}

func (f *fakeClient) TopCharacters(_ context.Context, page int) (*models.Page, error) {
	return f.top(page)
}

func (f *fakeClient) AnimeDetail(_ context.Context, _ string) (models.Detail, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.detail, nil
}

func (f *fakeClient) CharacterDetail(_ context.Context, _ string) (models.Detail, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.detail, nil
}

func newFake() *fakeClient {
	score := 9.1
	return &fakeClient{
		page: &models.Page{
			Results: []models.ListItem{{MalID: 5114, Title: "Fullmetal Alchemist: Brotherhood", ImageURL: "https://img/fma.jpg", Score: &score}},
			HasMore: true,
		},
		detail: models.Detail{"mal_id": 5114.0, "title": "Fullmetal Alchemist: Brotherhood", "image_url": "https://img/fma-large.jpg"},
	}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func TestSearchAnime(t *testing.T) {
	fake := newFake()
	w := get(t, NewRouter(fake), "/api/anime?q=fullmetal&page=2&order_by=score&sort=desc")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Expected JSON content type, got %q", ct)
	}
	expected := models.SearchOptions{Query: "fullmetal", Page: 2, OrderBy: "score", Sort: "desc"}
	if fake.lastOpts != expected {
		t.Errorf("Expected options %+v, got %+v", expected, fake.lastOpts)
	}

	page := decode[models.Page](t, w)
	if len(page.Results) != 1 || page.Results[0].MalID != 5114 || !page.HasMore {
		t.Errorf("Unexpected page %+v", page)
	}
}

func TestPageParsing(t *testing.T) {
	tests := []struct {
		query    string
		expected int
	}{
		{"", 1},
		{"?page=3", 3},
		{"?page=abc", 1},
		{"?page=0", 1},
		{"?page=-4", 1},
	}
	for _, tt := range tests {
		fake := newFake()
		if w := get(t, NewRouter(fake), "/api/top/anime"+tt.query); w.Code != http.StatusOK {
			t.Fatalf("Expected status 200 for %q, got %d", tt.query, w.Code)
		}
		if fake.lastPage != tt.expected {
			t.Errorf("Expected page %d for %q, got %d", tt.expected, tt.query, fake.lastPage)
		}
	}
}

func TestDetail(t *testing.T) {
	w := get(t, NewRouter(newFake()), "/api/anime/5114")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	detail := decode[models.Detail](t, w)
	if detail.MalID() != 5114 || detail.ImageURL() != "https://img/fma-large.jpg" {
		t.Errorf("Unexpected detail %v", detail)
	}
}

func TestUpstreamFailure(t *testing.T) {
	fake := newFake()
	fake.err = errors.New("upstream /characters returned status 503")
	router := NewRouter(fake)

	for _, path := range []string{"/api/anime?q=x", "/api/characters?q=x", "/api/top/anime", "/api/top/characters", "/api/anime/1", "/api/characters/1"} {
		w := get(t, router, path)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected status 500 for %s, got %d", path, w.Code)
			continue
		}
		body := decode[map[string]string](t, w)
		if body["error"] != "upstream /characters returned status 503" {
			t.Errorf("Expected error message for %s, got %q", path, body["error"])
		}
	}
}

func TestCORS(t *testing.T) {
	router := NewRouter(newFake())

	w := get(t, router, "/api/top/characters")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected CORS header on API, got %q", got)
	}

	req := httptest.NewRequest(http.MethodOptions, "/api/anime", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	pre := httptest.NewRecorder()
	router.ServeHTTP(pre, req)
	if pre.Code != http.StatusNoContent {
		t.Errorf("Expected preflight status 204, got %d", pre.Code)
	}
	if got := pre.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "GET") {
		t.Errorf("Expected allowed methods, got %q", got)
	}

	if got := get(t, router, "/healthz").Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Expected no CORS header outside the API, got %q", got)
	}
}

func TestRequestID(t *testing.T) {
	router := NewRouter(newFake())
	w := get(t, router, "/healthz")
	if w.Header().Get(requestIDHeader) == "" {
		t.Error("Expected a generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if got := w.Header().Get(requestIDHeader); got != "abc-123" {
		t.Errorf("Expected request id to be propagated, got %q", got)
	}
}

func TestHealthz(t *testing.T) {
	w := get(t, NewRouter(newFake()), "/healthz")
	if w.Code != http.StatusOK || decode[map[string]string](t, w)["status"] != "ok" {
		t.Errorf("Unexpected health response %d %s", w.Code, w.Body.String())
	}
}

func TestView(t *testing.T) {
	w := get(t, NewRouter(newFake()), "/view?fragment=%23search%3Fq%3Dfma%26page%3D1")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	v := decode[viewResponse](t, w)
	if v.Route != "search" {
		t.Errorf("Expected search route, got %q", v.Route)
	}
	if v.LastSearch != "#search?q=fma&page=1" {
		t.Errorf("Expected last search, got %q", v.LastSearch)
	}
	if !strings.Contains(v.HTML, `href="#details/5114"`) {
		t.Errorf("Expected a detail link in %s", v.HTML)
	}
}

func TestView_BackUsesLastSearch(t *testing.T) {
	w := get(t, NewRouter(newFake()), "/view?fragment=%23details%2F5114&last=%23charsearch%3Fq%3Ded%26page%3D2")
	v := decode[viewResponse](t, w)
	if v.Route != "details" {
		t.Fatalf("Expected details route, got %q", v.Route)
	}
	if !strings.Contains(v.HTML, `data-href="#charsearch?q=ed&amp;page=2"`) {
		t.Errorf("Expected back button to the last search in %s", v.HTML)
	}
	if v.LastSearch != "#charsearch?q=ed&page=2" {
		t.Errorf("Expected last search to be kept, got %q", v.LastSearch)
	}
}

func TestView_ErrorView(t *testing.T) {
	fake := newFake()
	fake.err = errors.New("boom")
	w := get(t, NewRouter(fake), "/view?fragment=%23home")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for a rendered error view, got %d", w.Code)
	}
	v := decode[viewResponse](t, w)
	if v.Route != "error" || !strings.Contains(v.HTML, "Failed to load home data: boom") {
		t.Errorf("Unexpected error view %+v", v)
	}
}

func TestView_CanceledRequest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/view?fragment=%23search%3Fq%3Dfma%26page%3D1", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	NewRouter(newFake()).ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503 for a dropped navigation, got %d: %s", w.Code, w.Body.String())
	}
}

func TestViewQuiz(t *testing.T) {
	w := get(t, NewRouter(newFake()), "/view/quiz?code=00000")
	v := decode[viewResponse](t, w)
	if v.Redirect != "#details/5114?from=home" {
		t.Errorf("Expected redirect to the first result, got %q", v.Redirect)
	}
	if v.Route != "details" {
		t.Errorf("Expected details route, got %q", v.Route)
	}

	w = get(t, NewRouter(newFake()), "/view/quiz?code=%20%20%20%20%20")
	v = decode[viewResponse](t, w)
	if v.Route != "error" || v.Redirect != "" {
		t.Errorf("Expected an error view for an unknown code, got %+v", v)
	}
}

func TestViewLoading(t *testing.T) {
	w := get(t, NewRouter(newFake()), "/view/loading?fragment=%23home")
	v := decode[viewResponse](t, w)
	if got := strings.Count(v.HTML, "skeleton-img"); got != 12 {
		t.Errorf("Expected 12 home skeletons, got %d", got)
	}
}

func TestShell(t *testing.T) {
	router := NewRouter(newFake())

	for _, path := range []string{"/", "/anything/else", "/api/unknown"} {
		w := get(t, router, path)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200 for %s, got %d", path, w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, `<main id="app">`) || !strings.Contains(body, "Pick a mood") {
			t.Errorf("Expected the shell with quiz questions for %s", path)
		}
	}

	w := get(t, router, "/static/app.js")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected static script, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "location.hash !== view.redirect") {
		t.Error("Expected the quiz redirect to skip a fragment that is already current")
	}
}
