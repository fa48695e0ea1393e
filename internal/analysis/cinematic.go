package analysis

import (
	"slugline/internal/breakdown"
	"slugline/internal/patterns"
	"slugline/internal/scenes"
)

// CinematicAnalyzer matches staging patterns against the scene and settles
// the camera and lighting note. A pattern fires when all but one of its
// triggers match; the first firing pattern wins. Without a match the note
// falls back to a scene-type default.
type CinematicAnalyzer struct {
	lib *patterns.Library
}

// NewCinematicAnalyzer returns a cinematic analyzer over the shared tables.
func NewCinematicAnalyzer(lib *patterns.Library) *CinematicAnalyzer {
	return &CinematicAnalyzer{lib: lib}
}

// Name implements Analyzer.
func (a *CinematicAnalyzer) Name() string { return "cinematic" }

// Analyze implements Analyzer.
func (a *CinematicAnalyzer) Analyze(scene *Scene) (*Result, error) {
	note := a.match(scene)
	result := &Result{Cinematic: &note}
	if note.CameraNote != "" {
		result.CameraLighting = note.CameraNote
	} else {
		result.CameraLighting = defaultCameraLighting(scene.Header)
	}
	return result, nil
}

func (a *CinematicAnalyzer) match(scene *Scene) breakdown.CinematicNote {
	for _, pattern := range a.lib.Cinematic {
		if pattern.MatchCount(scene.Doc) >= len(pattern.Triggers)-1 {
			return breakdown.CinematicNote{
				Pattern:    pattern.Name,
				Note:       pattern.Note,
				CameraNote: pattern.CameraNote,
			}
		}
	}
	return defaultCinematicNote(scene.Type)
}

func defaultCinematicNote(sceneType breakdown.SceneType) breakdown.CinematicNote {
	switch sceneType {
	case breakdown.SceneDialogue:
		return breakdown.CinematicNote{
			Note:       "Dialogue scene: focus on performance and interplay.",
			CameraNote: "Shot-reverse-shot with medium coverage",
		}
	case breakdown.SceneAction:
		return breakdown.CinematicNote{
			Note:       "Action sequence: coordinate movement and blocking.",
			CameraNote: "Dynamic camera movement, multiple angles",
		}
	case breakdown.SceneConfrontation:
		return breakdown.CinematicNote{
			Note:       "Confrontation: escalate the rhythm gradually.",
			CameraNote: "Tightening shots as the tension builds",
		}
	default:
		return breakdown.CinematicNote{
			Note: "Review continuity against adjacent scenes.",
		}
	}
}

// defaultCameraLighting names the base lighting setup from placement and
// time of day when no pattern suggested anything more specific.
func defaultCameraLighting(header scenes.Header) string {
	switch header.Placement {
	case breakdown.PlacementExterior:
		return header.TimeOfDay + " exterior"
	case breakdown.PlacementMixed:
		return header.TimeOfDay + " interior and exterior"
	default:
		return header.TimeOfDay + " interior"
	}
}
