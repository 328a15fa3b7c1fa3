package listing

import (
	"strings"
)

// Segment is a piece of text that either matched the search query or did not.
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits text into segments, marking substring matches of any query token.
// Abbreviation matches are not highlighted.
func Highlight(text, query string) []Segment {
	tokens := Tokens(query)
	if text == "" {
		return nil
	}
	if len(tokens) == 0 {
		return []Segment{{Text: text}}
	}

	lower := strings.ToLower(text)
	if len(lower) != len(text) {
		// case folding changed byte offsets; give up on highlighting
		return []Segment{{Text: text}}
	}

	marked := make([]bool, len(text))
	for _, tok := range tokens {
		for from := 0; from < len(lower); {
			i := strings.Index(lower[from:], tok)
			if i < 0 {
				break
			}
			start := from + i
			for j := start; j < start+len(tok); j++ {
				marked[j] = true
			}
			from = start + len(tok)
		}
	}

	var segments []Segment
	start := 0
	for i := 1; i <= len(text); i++ {
		if i == len(text) || marked[i] != marked[start] {
			segments = append(segments, Segment{Text: text[start:i], Match: marked[start]})
			start = i
		}
	}
	return segments
}
