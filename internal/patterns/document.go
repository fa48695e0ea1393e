package patterns

import (
	"strings"

	"slugline/internal/textutil"
)

// Document wraps one scene's text with its normalized form and token counts
// precomputed, so repeated vocabulary lookups do not re-normalize the scene.
type Document struct {
	raw        string
	normalized string
	tokens     map[string]int
}

// NewDocument normalizes and tokenizes text once for repeated matching.
func NewDocument(text string) *Document {
	normalized := textutil.Normalize(text)
	tokens := make(map[string]int)
	for _, word := range textutil.Words(normalized) {
		tokens[word]++
	}
	return &Document{raw: text, normalized: normalized, tokens: tokens}
}

// Raw returns the original text.
func (d *Document) Raw() string {
	return d.raw
}

// Normalized returns the normalized text.
func (d *Document) Normalized() string {
	return d.normalized
}

// Count returns how many times phrase occurs in the document. Single
// Latin words count whole tokens so "car" does not match inside "carpet";
// everything else counts normalized substring occurrences.
func (d *Document) Count(phrase string) int {
	needle := textutil.Normalize(phrase)
	if needle == "" {
		return 0
	}
	if isLatinWord(needle) {
		return d.tokens[needle]
	}
	return strings.Count(d.normalized, needle)
}

// Has reports whether phrase occurs at least once.
func (d *Document) Has(phrase string) bool {
	return d.Count(phrase) > 0
}

// HasAny reports whether any of the phrases occurs.
func (d *Document) HasAny(phrases ...string) bool {
	for _, phrase := range phrases {
		if d.Has(phrase) {
			return true
		}
	}
	return false
}

// MatchCount returns how many of the phrases occur at least once. Each
// phrase contributes at most one to the count.
func (d *Document) MatchCount(phrases []string) int {
	count := 0
	for _, phrase := range phrases {
		if d.Has(phrase) {
			count++
		}
	}
	return count
}

// IndexAfter returns the position of the first occurrence of phrase at or
// after start in the normalized text, or -1.
func (d *Document) IndexAfter(phrase string, start int) int {
	needle := textutil.Normalize(phrase)
	if needle == "" || start < 0 || start > len(d.normalized) {
		return -1
	}
	idx := strings.Index(d.normalized[start:], needle)
	if idx < 0 {
		return -1
	}
	return start + idx
}

func isLatinWord(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return s != ""
}
