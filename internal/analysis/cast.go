package analysis

import (
	"strings"

	"slugline/internal/knowledge"
	"slugline/internal/patterns"
	"slugline/internal/textutil"
)

// CastAnalyzer extracts character names from dialogue cues and stage
// directions, canonicalizing each through the knowledge base. Dialogue cues
// come first, then stage-direction hits, deduplicated in first-seen order.
type CastAnalyzer struct {
	lib *patterns.Library
	kb  *knowledge.Base
}

// NewCastAnalyzer returns a cast analyzer over the shared tables.
func NewCastAnalyzer(lib *patterns.Library, kb *knowledge.Base) *CastAnalyzer {
	return &CastAnalyzer{lib: lib, kb: kb}
}

// Name implements Analyzer.
func (a *CastAnalyzer) Name() string { return "cast" }

// Analyze implements Analyzer.
func (a *CastAnalyzer) Analyze(scene *Scene) (*Result, error) {
	text := scene.Block.Text

	var candidates []string
	for _, match := range a.lib.DialogueCue.FindAllStringSubmatch(text, -1) {
		candidates = append(candidates, match[1])
	}
	for _, match := range a.lib.StageNameBefore.FindAllStringSubmatch(text, -1) {
		candidates = append(candidates, match[1])
	}
	for _, match := range a.lib.StageNameAfter.FindAllStringSubmatch(text, -1) {
		candidates = append(candidates, match[1])
	}

	result := &Result{Profiles: make(map[string]knowledge.CharacterProfile)}
	seen := make(map[string]bool)
	for _, candidate := range candidates {
		name := strings.Join(strings.Fields(candidate), " ")
		if !a.acceptable(name) {
			continue
		}
		canonical := a.kb.CanonicalName(name)
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		result.Cast = append(result.Cast, canonical)
		result.Profiles[canonical] = a.kb.Profile(canonical)
	}
	return result, nil
}

// acceptable filters out non-name captures: too short, too many tokens,
// non-alphabetic content, or a stopword such as a scene marker or pronoun.
func (a *CastAnalyzer) acceptable(name string) bool {
	if len([]rune(name)) < 2 {
		return false
	}
	if !textutil.NameLike(name, 3) {
		return false
	}
	normalized := textutil.Normalize(name)
	for _, stopword := range a.lib.NameStopwords {
		if normalized == stopword {
			return false
		}
	}
	return true
}
