package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	arabicTatweel     = 'ـ'
	arabicAlefMadda   = 'آ'
	arabicAlefHamza   = 'أ'
	arabicAlefHamzaLo = 'إ'
	arabicAlefWasla   = 'ٱ'
	arabicAlef        = 'ا'
	arabicTehMarbuta  = 'ة'
	arabicHeh         = 'ه'
	arabicAlefMaksura = 'ى'
	arabicYeh         = 'ي'
)

// markStripper removes combining marks after NFC composition. Latin accents
// survive because NFC recomposes them before the mark pass; Arabic harakat
// never compose and are dropped.
var markStripper = transform.Chain(norm.NFC, runes.Remove(runes.In(unicode.Mn)))

// Normalize prepares text for keyword matching: NFC, diacritic and tatweel
// removal, Arabic orthography folding, Latin lowercasing. Whitespace runs
// collapse to single spaces.
func Normalize(text string) string {
	stripped, _, err := transform.String(markStripper, text)
	if err != nil {
		stripped = text
	}
	var b strings.Builder
	b.Grow(len(stripped))
	lastSpace := false
	for _, r := range stripped {
		switch r {
		case arabicTatweel:
			continue
		case arabicAlefMadda, arabicAlefHamza, arabicAlefHamzaLo, arabicAlefWasla:
			r = arabicAlef
		case arabicTehMarbuta:
			r = arabicHeh
		case arabicAlefMaksura:
			r = arabicYeh
		}
		if unicode.IsSpace(r) {
			if !lastSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			lastSpace = true
			continue
		}
		lastSpace = false
		b.WriteRune(unicode.ToLower(r))
	}
	return strings.TrimRight(b.String(), " ")
}

// NormalizeCompact is Normalize with all spaces removed, for lookups keyed on
// multi-word names where source spacing is unreliable.
func NormalizeCompact(text string) string {
	return strings.ReplaceAll(Normalize(text), " ", "")
}

// EqualNormalized reports whether two strings normalize to the same form.
func EqualNormalized(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Contains reports whether the normalized haystack contains the normalized
// needle. Empty needles never match.
func Contains(haystack, needle string) bool {
	n := Normalize(needle)
	if n == "" {
		return false
	}
	return strings.Contains(Normalize(haystack), n)
}

// ContainsAny reports whether any of the needles appears in the haystack
// under normalization.
func ContainsAny(haystack string, needles ...string) bool {
	h := Normalize(haystack)
	for _, needle := range needles {
		n := Normalize(needle)
		if n != "" && strings.Contains(h, n) {
			return true
		}
	}
	return false
}

// CountMatches returns how many of the needles appear in the haystack under
// normalization. Each needle counts at most once.
func CountMatches(haystack string, needles []string) int {
	h := Normalize(haystack)
	count := 0
	for _, needle := range needles {
		n := Normalize(needle)
		if n != "" && strings.Contains(h, n) {
			count++
		}
	}
	return count
}
