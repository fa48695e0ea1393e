package analysis

import (
	"fmt"
	"strings"

	"slugline/internal/breakdown"
	"slugline/internal/knowledge"
	"slugline/internal/patterns"
	"slugline/internal/scenes"
)

// Scene is the read-only context analyzers work from. The orchestrator
// fills Cast and Profiles from the cast analyzer's result before any
// analyzer that depends on them runs.
type Scene struct {
	Block  scenes.Block
	Header scenes.Header
	Type   breakdown.SceneType
	Doc    *patterns.Document

	Cast     []string
	Profiles map[string]knowledge.CharacterProfile
}

// Result is one analyzer's partial contribution to a scene breakdown.
// Unset fields leave the record untouched when merged.
type Result struct {
	Cast     []string
	Profiles map[string]knowledge.CharacterProfile

	Elements map[breakdown.Category][]string

	Wardrobe []breakdown.WardrobeNote
	Effects  []string
	Sound    []string

	LegalFlags []breakdown.LegalFlag

	Cinematic      *breakdown.CinematicNote
	CameraLighting string

	Synopsis string
	Extras   string
	Makeup   []string
}

// MergeInto folds the partial result into the breakdown record, applying
// the record's deduplication rules.
func (r *Result) MergeInto(b *breakdown.Breakdown) {
	if r == nil {
		return
	}
	for _, name := range r.Cast {
		b.AddCast(name)
	}
	for category, items := range r.Elements {
		for _, item := range items {
			b.AddElement(category, item)
		}
	}
	if len(r.Wardrobe) > 0 {
		b.Wardrobe = append(b.Wardrobe, r.Wardrobe...)
	}
	for _, item := range r.Effects {
		b.AddEffect(item)
	}
	for _, item := range r.Sound {
		b.AddSound(item)
	}
	if len(r.LegalFlags) > 0 {
		b.LegalFlags = append(b.LegalFlags, r.LegalFlags...)
	}
	if r.Cinematic != nil {
		b.Cinematic = *r.Cinematic
	}
	if r.CameraLighting != "" {
		b.CameraLighting = r.CameraLighting
	}
	if r.Synopsis != "" {
		b.Synopsis = r.Synopsis
	}
	if r.Extras != "" {
		b.Extras = r.Extras
	}
	if len(r.Makeup) > 0 {
		b.Makeup = append(b.Makeup, r.Makeup...)
	}
}

// Analyzer is one specialized pass over a scene.
type Analyzer interface {
	// Name identifies the analyzer in logs and errors.
	Name() string
	// Analyze derives this analyzer's partial result from the scene.
	Analyze(scene *Scene) (*Result, error)
}

// Error marks a scene-local analyzer failure. The orchestrator drops the
// failed analyzer's contribution and keeps going.
type Error struct {
	Analyzer string
	Scene    int
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("analyzer %s failed on scene %d: %v", e.Analyzer, e.Scene, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ClassifyScene buckets a scene by its dominant texture: dialogue density
// first, then discovery verbs, action verb count, and emotional cues, in
// that order. Everything else is a transition.
func ClassifyScene(lib *patterns.Library, doc *patterns.Document, block scenes.Block) breakdown.SceneType {
	lines := 1 + strings.Count(block.Text, "\n")
	cues := len(lib.DialogueCue.FindAllString(block.Text, -1))
	if float64(cues)/float64(lines) > 0.4 {
		if doc.HasAny(lib.ConfrontationCues...) {
			return breakdown.SceneConfrontation
		}
		return breakdown.SceneDialogue
	}
	if doc.HasAny(lib.DiscoveryCues...) {
		return breakdown.SceneDiscovery
	}
	if doc.MatchCount(lib.ActionCues) >= 2 {
		return breakdown.SceneAction
	}
	if doc.HasAny(lib.EmotionCues...) {
		return breakdown.SceneEmotional
	}
	return breakdown.SceneTransition
}
