package textutil

import (
	"strings"
	"unicode"
)

// Words splits text into whitespace-delimited words with surrounding
// punctuation trimmed. Words that trim to nothing are dropped.
func Words(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		word := strings.TrimFunc(field, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if word != "" {
			words = append(words, word)
		}
	}
	return words
}

// IsAlphabetic reports whether every rune in the token is a letter.
// Empty tokens are not alphabetic.
func IsAlphabetic(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// NameLike reports whether the candidate looks like a character name:
// one to maxTokens whitespace-separated tokens, each purely alphabetic.
func NameLike(candidate string, maxTokens int) bool {
	tokens := strings.Fields(candidate)
	if len(tokens) == 0 || len(tokens) > maxTokens {
		return false
	}
	for _, token := range tokens {
		if !IsAlphabetic(token) {
			return false
		}
	}
	return true
}

// Excerpt returns up to limit characters of text cut at a word boundary,
// appending an ellipsis when the text was truncated. Counting is rune-based
// so Arabic text is not cut mid-letter.
func Excerpt(text string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	cut := limit - 3
	if cut < 1 {
		cut = 1
	}
	trimmed := strings.TrimRight(string(runes[:cut]), " ")
	if idx := strings.LastIndex(trimmed, " "); idx > 0 {
		trimmed = trimmed[:idx]
	}
	return trimmed + "..."
}
