// Package render builds the AniWiki views as golang.org/x/net/html node trees.
//
// Every function is pure: it takes a view-model and returns a detached element
// that can be serialized with HTML, converted with Text, or inserted into a
// larger document. Text and attribute values are escaped on serialization.
package render

import (
	"bytes"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// attr is a key/value pair for el.
type attr [2]string

func el(tag string, attrs []attr, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, a := range attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a[0], Val: a[1]})
	}
	appendAll(n, children...)
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// textEl is an element holding a single text child.
func textEl(tag string, attrs []attr, s string) *html.Node {
	return el(tag, attrs, text(s))
}

func appendAll(parent *html.Node, children ...*html.Node) {
	for _, c := range children {
		if c != nil {
			parent.AppendChild(c)
		}
	}
}

func class(name string) []attr {
	return []attr{{"class", name}}
}

// HTML serializes a rendered view.
func HTML(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Attr returns the value of an attribute of n, and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// EncodeComponent escapes s like a browser's encodeURIComponent: spaces become %20.
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
