package analysis

import (
	"testing"

	"slugline/internal/breakdown"
	"slugline/internal/patterns"
	"slugline/internal/scenes"
)

func TestCinematicPatternTolerantMajority(t *testing.T) {
	// Two of the three discovery triggers fire; the missing surprise cue
	// must not block the match.
	scene := testScene("يجد مدحت الظرف القديم على المكتب", interiorDay("office"))

	result, err := NewCinematicAnalyzer(patterns.New()).Analyze(scene)
	if err != nil {
		t.Fatal(err)
	}
	if result.Cinematic.Pattern != "discovery_moment" {
		t.Fatalf("pattern = %q, want discovery_moment", result.Cinematic.Pattern)
	}
	if result.CameraLighting != result.Cinematic.CameraNote {
		t.Errorf("camera lighting should take the pattern note, got %q", result.CameraLighting)
	}
}

func TestCinematicOrderedTriggerPattern(t *testing.T) {
	scene := testScene("يجلس كريم أمام المكتب في مواجهة المدير وهو رجل شديد الوقار", interiorDay("office"))

	result, err := NewCinematicAnalyzer(patterns.New()).Analyze(scene)
	if err != nil {
		t.Fatal(err)
	}
	if result.Cinematic.Pattern != "power_confrontation" {
		t.Fatalf("pattern = %q, want power_confrontation", result.Cinematic.Pattern)
	}
}

func TestCinematicDefaultBySceneType(t *testing.T) {
	scene := testScene("نهال: أهلا بكم عندنا في البيت\nكريم: شكرا جزيلا لكم جميعا", interiorDay("home"))
	if scene.Type != breakdown.SceneDialogue {
		t.Fatalf("setup: scene type = %q", scene.Type)
	}

	result, err := NewCinematicAnalyzer(patterns.New()).Analyze(scene)
	if err != nil {
		t.Fatal(err)
	}
	if result.Cinematic.Pattern != "" {
		t.Fatalf("no pattern should fire, got %q", result.Cinematic.Pattern)
	}
	if result.CameraLighting != "Shot-reverse-shot with medium coverage" {
		t.Errorf("camera lighting = %q", result.CameraLighting)
	}
}

func TestCinematicLightingFallsBackToHeader(t *testing.T) {
	scene := testScene("قطع الى الميدان الواسع", scenes.Header{
		Placement: breakdown.PlacementExterior,
		TimeOfDay: "night",
		Location:  "street",
	})

	result, err := NewCinematicAnalyzer(patterns.New()).Analyze(scene)
	if err != nil {
		t.Fatal(err)
	}
	if result.CameraLighting != "night exterior" {
		t.Fatalf("camera lighting = %q, want night exterior", result.CameraLighting)
	}
	if result.Cinematic.Note == "" {
		t.Error("the transition default should still leave a note")
	}
}
