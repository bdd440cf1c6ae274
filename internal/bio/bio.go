// Package bio turns a free-form character biography into labeled fields and
// plain paragraphs.
//
// The catalog's biography text has no schema. The parser splits it on blank
// lines into blocks, then reads every line of a block on its own:
//
//   - "Label: value" becomes a Field (split on the first colon, both sides trimmed)
//   - "Label:" with nothing after the colon is dropped
//   - a line without a colon becomes a Paragraph
//
// The heuristic is lossy: prose that happens to contain a colon is read as a field.
package bio

import (
	"regexp"
	"strings"
)

// Kind distinguishes the two entry types.
type Kind int

const (
	Paragraph Kind = iota
	Field
)

// Entry is one parsed line of a biography.
type Entry struct {
	Kind  Kind
	Label string
	Text  string
}

var blankLine = regexp.MustCompile(`\n\s*\n`)

// Parse splits a biography into ordered entries. An empty biography yields nil.
func Parse(about string) []Entry {
	about = strings.ReplaceAll(about, "\r\n", "\n")

	var entries []Entry
	for _, block := range blankLine.Split(about, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		for _, line := range strings.Split(block, "\n") {
			if e, ok := parseLine(line); ok {
				entries = append(entries, e)
			}
		}
	}
	return entries
}

func parseLine(line string) (Entry, bool) {
	label, rest, hasColon := strings.Cut(line, ":")
	if !hasColon {
		text := strings.TrimSpace(line)
		return Entry{Kind: Paragraph, Text: text}, text != ""
	}

	text := strings.TrimSpace(rest)
	if text == "" {
		return Entry{}, false
	}
	return Entry{Kind: Field, Label: strings.TrimSpace(label), Text: text}, true
}
