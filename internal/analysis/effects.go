package analysis

import "slugline/internal/patterns"

// EffectsAnalyzer collects special-effects and sound requirements. Matches
// are additive with no cross-category ambiguity; a scene with no detected
// sound still lists dialogue, since a shooting day always records something.
type EffectsAnalyzer struct {
	lib *patterns.Library
}

// NewEffectsAnalyzer returns an effects analyzer over the shared tables.
func NewEffectsAnalyzer(lib *patterns.Library) *EffectsAnalyzer {
	return &EffectsAnalyzer{lib: lib}
}

// Name implements Analyzer.
func (a *EffectsAnalyzer) Name() string { return "effects" }

// Analyze implements Analyzer.
func (a *EffectsAnalyzer) Analyze(scene *Scene) (*Result, error) {
	result := &Result{}
	result.Effects = collectTerms(a.lib.Effects, scene.Doc)
	result.Sound = collectTerms(a.lib.Sound, scene.Doc)
	if len(result.Sound) == 0 {
		result.Sound = []string{"dialogue"}
	}
	return result, nil
}

func collectTerms(terms []patterns.Term, doc *patterns.Document) []string {
	var found []string
	seen := make(map[string]bool)
	for _, term := range terms {
		if seen[term.Canonical] || !term.Matches(doc) {
			continue
		}
		seen[term.Canonical] = true
		found = append(found, term.Canonical)
	}
	return found
}
