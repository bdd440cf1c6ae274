package render

import "golang.org/x/net/html"

// Error renders the error view with a single message.
func Error(message string) *html.Node {
	return el("div", []attr{{"id", "error"}, {"class", "error-view"}},
		textEl("p", []attr{{"id", "error-message"}}, message),
		textEl("a", []attr{{"href", "#home"}, {"class", "home-link"}}, "Back to home"),
	)
}
