package knowledge

import (
	"strings"

	"slugline/internal/textutil"
)

// Base bundles the knowledge tables behind normalized lookup indexes.
// Construct with NewBase; a Base is read-only and safe for concurrent use.
type Base struct {
	characters []characterEntry
	aliasIndex map[string]int

	celebrities []Entity
	brands      []Entity
	songs       []Entity

	propLabels map[string]string
	locations  []locationRule
}

// NewBase builds the knowledge base with all indexes populated.
func NewBase() *Base {
	b := &Base{
		characters:  knownCharacters(),
		celebrities: celebrityRegistry(),
		brands:      brandRegistry(),
		songs:       songRegistry(),
		propLabels:  propLabelTable(),
		locations:   locationRules(),
	}
	b.aliasIndex = make(map[string]int)
	for i, entry := range b.characters {
		for _, alias := range entry.aliases {
			b.aliasIndex[textutil.Normalize(alias)] = i
		}
		b.aliasIndex[textutil.Normalize(entry.profile.Name)] = i
		b.aliasIndex[textutil.Normalize(entry.profile.FullName)] = i
	}
	return b
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
