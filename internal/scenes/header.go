package scenes

import (
	"strings"

	"slugline/internal/breakdown"
	"slugline/internal/patterns"
	"slugline/internal/textutil"
)

// Header is the parsed scene heading. Location is stored in normalized form
// and is never empty; unresolvable headings fall back to the unspecified
// sentinel.
type Header struct {
	Placement breakdown.Placement
	TimeOfDay string
	Location  string
}

// HeaderParser extracts placement, time of day, and location from a block's
// heading line, with body fallbacks where the heading is silent.
type HeaderParser struct {
	lib *patterns.Library
}

// NewHeaderParser returns a parser over the given pattern library.
func NewHeaderParser(lib *patterns.Library) *HeaderParser {
	return &HeaderParser{lib: lib}
}

// Parse reads the block heading. Time of day falls back to a scan of the
// whole block before defaulting to day; placement defaults to interior.
func (p *HeaderParser) Parse(block Block) Header {
	remainder := p.stripMarker(block.Header)
	headerTokens := tokenSet(remainder)

	header := Header{
		Placement: p.placement(headerTokens),
		TimeOfDay: p.timeOfDay(headerTokens, block.Text),
		Location:  p.location(remainder, block),
	}
	return header
}

// stripMarker removes the scene marker and number prefix from the heading.
func (p *HeaderParser) stripMarker(heading string) string {
	loc := p.lib.SceneMarker.FindStringIndex(heading)
	if loc == nil || loc[0] != 0 {
		return heading
	}
	return heading[loc[1]:]
}

func (p *HeaderParser) placement(tokens map[string]bool) breakdown.Placement {
	interior := hasAnyToken(tokens, p.lib.InteriorTokens)
	exterior := hasAnyToken(tokens, p.lib.ExteriorTokens)
	switch {
	case interior && exterior:
		return breakdown.PlacementMixed
	case exterior:
		return breakdown.PlacementExterior
	default:
		return breakdown.PlacementInterior
	}
}

func (p *HeaderParser) timeOfDay(headerTokens map[string]bool, body string) string {
	for _, bucket := range p.lib.TimeBuckets {
		if hasAnyToken(headerTokens, bucket.Keywords) {
			return bucket.Canonical
		}
	}
	bodyTokens := tokenSet(body)
	for _, bucket := range p.lib.TimeBuckets {
		if hasAnyToken(bodyTokens, bucket.Keywords) {
			return bucket.Canonical
		}
	}
	return "day"
}

// location strips classifier tokens from each separator-delimited part of
// the heading remainder. A result of three or fewer runes falls back to the
// block's second line, then to the unspecified sentinel.
func (p *HeaderParser) location(remainder string, block Block) string {
	var kept []string
	for _, part := range splitParts(remainder) {
		words := p.contentWords(part)
		if len(words) == 0 {
			continue
		}
		kept = append(kept, strings.Join(words, " "))
	}
	location := strings.Join(kept, " - ")

	if len([]rune(location)) <= 3 {
		location = textutil.Normalize(block.SecondLine())
	}
	if len([]rune(location)) <= 3 {
		return breakdown.LocationUnspecified
	}
	return location
}

// contentWords returns the part's normalized words with classifier tokens
// and bare numbers removed.
func (p *HeaderParser) contentWords(part string) []string {
	var words []string
	for _, word := range textutil.Words(textutil.Normalize(part)) {
		if p.isClassifierToken(word) || isNumeric(word) {
			continue
		}
		words = append(words, word)
	}
	return words
}

func (p *HeaderParser) isClassifierToken(word string) bool {
	for _, token := range p.lib.InteriorTokens {
		if word == token {
			return true
		}
	}
	for _, token := range p.lib.ExteriorTokens {
		if word == token {
			return true
		}
	}
	for _, bucket := range p.lib.TimeBuckets {
		for _, keyword := range bucket.Keywords {
			if word == keyword {
				return true
			}
		}
	}
	return false
}

func splitParts(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case '-', '–', '—', '|':
			return true
		}
		return false
	})
}

var separatorReplacer = strings.NewReplacer(
	"/", " ", ".", " ", ":", " ", ",", " ",
	"-", " ", "–", " ", "—", " ", "|", " ",
)

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range textutil.Words(textutil.Normalize(separatorReplacer.Replace(text))) {
		set[word] = true
	}
	return set
}

func hasAnyToken(set map[string]bool, keywords []string) bool {
	for _, keyword := range keywords {
		if set[keyword] {
			return true
		}
	}
	return false
}

func isNumeric(word string) bool {
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return word != ""
}
