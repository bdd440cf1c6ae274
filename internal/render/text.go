package render

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"golang.org/x/net/html"
)

// DefaultWidth is the terminal width used when none is given.
const DefaultWidth = 80

// Text converts a rendered view to plain text for a terminal. Links are kept
// as fragments in angle brackets so they can be followed by hand.
func Text(n *html.Node, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	var b strings.Builder
	writeChildren(&b, goquery.NewDocumentFromNode(n).Selection, width)
	return strings.TrimSpace(b.String()) + "\n"
}

func writeChildren(b *strings.Builder, s *goquery.Selection, width int) {
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		switch goquery.NodeName(c) {
		case "#text", "img", "script", "style":
		case "h2":
			b.WriteString("\n" + inline(c) + "\n")
		case "h3":
			b.WriteString(inline(c) + ":\n")
		case "span":
			b.WriteString(inline(c) + "\n")
		case "p":
			b.WriteString(fill(inline(c), width, 0) + "\n")
		case "li":
			b.WriteString(fill("• "+withLinks(c), width, 2) + "\n")
		case "tr":
			b.WriteString(fill(inline(c.Find("th"))+": "+withLinks(c.Find("td")), width, 0) + "\n")
		case "button":
			writeButton(b, c)
		case "a":
			b.WriteString(withLinks(c) + "\n")
		case "div":
			if c.HasClass("card") {
				writeCard(b, c, width)
				return
			}
			writeChildren(b, c, width)
		default:
			writeChildren(b, c, width)
		}
	})
}

func writeCard(b *strings.Builder, c *goquery.Selection, width int) {
	if c.HasClass("skeleton") {
		b.WriteString("  ...\n")
		return
	}
	b.WriteString("- " + inline(c.Find(".card-title")) + "\n")
	if sub := inline(c.Find(".card-score")); sub != "" {
		b.WriteString(fill(sub, width, 4) + "\n")
	}
	if href, ok := c.Find("a.view-btn").Attr("href"); ok && href != "" {
		b.WriteString("    <" + href + ">\n")
	}
}

func writeButton(b *strings.Builder, c *goquery.Selection) {
	if _, disabled := c.Attr("disabled"); disabled {
		return
	}
	href, ok := c.Attr("data-href")
	if !ok || href == "" {
		return
	}
	b.WriteString("[" + inline(c) + "] <" + href + ">\n")
}

// withLinks is the text of s followed by the targets of its links.
func withLinks(s *goquery.Selection) string {
	out := inline(s)
	s.Find("a[href]").AddBackFiltered("a[href]").Each(func(_ int, a *goquery.Selection) {
		if href, _ := a.Attr("href"); href != "" {
			out += " <" + href + ">"
		}
	})
	return out
}

func inline(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// fill wraps s at word boundaries, hard-wraps words longer than the line and
// indents every line.
func fill(s string, width int, pad uint) string {
	limit := width - int(pad)
	if limit < 10 {
		limit = 10
	}
	return indent.String(wrap.String(wordwrap.String(s, limit), limit), pad)
}
