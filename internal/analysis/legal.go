package analysis

import (
	"fmt"

	"slugline/internal/breakdown"
	"slugline/internal/knowledge"
	"slugline/internal/patterns"
)

// Legal flag kinds.
const (
	LegalKindCelebrity = "celebrity"
	LegalKindBrand     = "brand"
	LegalKindMusic     = "music"
)

// LegalAnalyzer flags rights-clearance concerns: celebrity and brand
// mentions warn, copyrighted song titles are critical. Generic music
// activity with no recognized title still warns once, so a clearance need
// is never silently dropped.
type LegalAnalyzer struct {
	lib *patterns.Library
	kb  *knowledge.Base
}

// NewLegalAnalyzer returns a legal analyzer over the shared tables.
func NewLegalAnalyzer(lib *patterns.Library, kb *knowledge.Base) *LegalAnalyzer {
	return &LegalAnalyzer{lib: lib, kb: kb}
}

// Name implements Analyzer.
func (a *LegalAnalyzer) Name() string { return "legal" }

// Analyze implements Analyzer.
func (a *LegalAnalyzer) Analyze(scene *Scene) (*Result, error) {
	result := &Result{}

	for _, entity := range a.kb.Celebrities() {
		if scene.Doc.HasAny(entity.Aliases...) {
			result.LegalFlags = append(result.LegalFlags, breakdown.LegalFlag{
				Kind:     LegalKindCelebrity,
				Entity:   entity.Name,
				Detail:   fmt.Sprintf("mention of %q needs legal review", entity.Name),
				Severity: breakdown.SeverityWarning,
			})
		}
	}

	for _, entity := range a.kb.Brands() {
		if scene.Doc.HasAny(entity.Aliases...) {
			result.LegalFlags = append(result.LegalFlags, breakdown.LegalFlag{
				Kind:     LegalKindBrand,
				Entity:   entity.Name,
				Detail:   fmt.Sprintf("brand %q on screen, review usage rights", entity.Name),
				Severity: breakdown.SeverityWarning,
			})
		}
	}

	musicFlagged := false
	for _, entity := range a.kb.Songs() {
		if scene.Doc.HasAny(entity.Aliases...) {
			musicFlagged = true
			result.LegalFlags = append(result.LegalFlags, breakdown.LegalFlag{
				Kind:     LegalKindMusic,
				Entity:   entity.Name,
				Detail:   fmt.Sprintf("song %q requires playback rights", entity.Name),
				Severity: breakdown.SeverityCritical,
			})
		}
	}

	if !musicFlagged && scene.Doc.HasAny(a.lib.MusicCues...) {
		result.LegalFlags = append(result.LegalFlags, breakdown.LegalFlag{
			Kind:     LegalKindMusic,
			Entity:   "unspecified music",
			Detail:   "musical content present, confirm playback rights",
			Severity: breakdown.SeverityWarning,
		})
	}
	return result, nil
}
