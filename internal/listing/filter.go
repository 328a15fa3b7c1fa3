// Package listing narrows and pages a section's content: topic filter, free-text
// search, and page slicing. Every function here is pure and preserves source order.
package listing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/harshbutfairx/signoz-web/internal/content"
)

// AllTopic is the pseudo-topic that means "no topic filter". Routes carrying it are
// redirected to the unscoped listing rather than filtered.
const AllTopic = "all"

// Normalize lowercases s and removes all whitespace, so "Dev Ops" and "devops" compare equal.
func Normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}

// IsAll reports whether topic selects the unscoped listing.
func IsAll(topic string) bool {
	return Normalize(topic) == AllTopic
}

// FilterByTopic returns the items whose normalized tags contain the normalized topic.
// An empty topic selects nothing; an unknown topic yields an empty result.
func FilterByTopic(items []content.Item, topic string) []content.Item {
	topic = Normalize(topic)
	out := make([]content.Item, 0)
	if topic == "" {
		return out
	}
	for _, it := range items {
		if hasTopic(it, topic) {
			out = append(out, it)
		}
	}
	return out
}

func hasTopic(it content.Item, normalized string) bool {
	for _, tag := range it.Tags {
		if Normalize(tag) == normalized {
			return true
		}
	}
	return false
}

// Search returns the items matching every token of query. An empty query returns
// items unchanged. Search is idempotent.
func Search(items []content.Item, query string) []content.Item {
	tokens := Tokens(query)
	if len(tokens) == 0 {
		return items
	}
	out := make([]content.Item, 0, len(items))
	for _, it := range items {
		if Matches(it, tokens) {
			out = append(out, it)
		}
	}
	return out
}

// Tokens splits a query into lowercase search tokens.
func Tokens(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Matches reports whether every token matches the item's title, description or tags.
func Matches(it content.Item, tokens []string) bool {
	fields := make([]string, 0, 2+len(it.Tags))
	fields = append(fields, it.Title, it.Description)
	fields = append(fields, it.Tags...)
	for _, tok := range tokens {
		if !anyFieldMatches(fields, tok) {
			return false
		}
	}
	return true
}

func anyFieldMatches(fields []string, token string) bool {
	for _, f := range fields {
		if tokenMatches(strings.ToLower(f), token) {
			return true
		}
	}
	return false
}

// tokenMatches accepts a substring hit, or an abbreviation: token is an in-order
// subsequence of one word that starts with the token's first letter ("otel" in "opentelemetry").
func tokenMatches(field, token string) bool {
	if strings.Contains(field, token) {
		return true
	}
	first, _ := utf8.DecodeRuneInString(token)
	words := strings.FieldsFunc(field, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if lead, _ := utf8.DecodeRuneInString(w); lead != first {
			continue
		}
		if isSubsequence(token, w) {
			return true
		}
	}
	return false
}

func isSubsequence(needle, hay string) bool {
	rest := []rune(needle)
	if len(rest) == 0 {
		return true
	}
	for _, r := range hay {
		if r == rest[0] {
			rest = rest[1:]
			if len(rest) == 0 {
				return true
			}
		}
	}
	return false
}
