package analysis

import (
	"strings"
	"testing"

	"slugline/internal/breakdown"
	"slugline/internal/knowledge"
	"slugline/internal/patterns"
	"slugline/internal/scenes"
)

func newWardrobe() *WardrobeAnalyzer {
	return NewWardrobeAnalyzer(patterns.New(), knowledge.NewBase())
}

func wardrobeFor(t *testing.T, scene *Scene, character string) breakdown.WardrobeNote {
	t.Helper()
	result, err := newWardrobe().Analyze(scene)
	if err != nil {
		t.Fatal(err)
	}
	for _, note := range result.Wardrobe {
		if note.Character == character {
			return note
		}
	}
	t.Fatalf("no wardrobe note for %q in %+v", character, result.Wardrobe)
	return breakdown.WardrobeNote{}
}

func TestWardrobeDropsRepeatedLeadingConcept(t *testing.T) {
	scene := testScene("يقف مدحت في قسم المباحث", scenes.Header{
		Placement: breakdown.PlacementInterior,
		TimeOfDay: "day",
		Location:  "قسم المباحث",
	})
	scene.Cast = []string{"Medhat Mahfouz"}

	note := wardrobeFor(t, scene, "Medhat Mahfouz")
	if note.Description != "formal suit with concealed sidearm" {
		t.Fatalf("description = %q", note.Description)
	}
	if !note.Inferred {
		t.Error("wardrobe notes are always inferred")
	}
}

func TestWardrobeMergesDistinctConcepts(t *testing.T) {
	scene := testScene("OMAR waits by the window, anxious and restless", interiorDay("office"))
	scene.Cast = []string{"OMAR"}

	note := wardrobeFor(t, scene, "OMAR")
	want := "everyday clothes, restless body language | formal office attire"
	if note.Description != want {
		t.Fatalf("description = %q, want %q", note.Description, want)
	}
}

func TestWardrobeUnresolvedSentinel(t *testing.T) {
	scene := testScene("صمت طويل", interiorDay(breakdown.LocationUnspecified))
	scene.Cast = []string{"OMAR"}

	note := wardrobeFor(t, scene, "OMAR")
	if note.Description != WardrobeUnresolved {
		t.Fatalf("description = %q, want %q", note.Description, WardrobeUnresolved)
	}
}

func TestWardrobeReadsPsychologicalState(t *testing.T) {
	scene := testScene("صمت طويل في الغرفة المغلقة", interiorDay(breakdown.LocationUnspecified))
	scene.Cast = []string{"Raafat Farid"}

	note := wardrobeFor(t, scene, "Raafat Farid")
	if !strings.HasPrefix(note.Description, "loungewear") {
		t.Fatalf("paralyzed profile should imply loungewear, got %q", note.Description)
	}
}

func TestWardrobeUsesSceneProfilesFirst(t *testing.T) {
	scene := testScene("صمت", interiorDay(breakdown.LocationUnspecified))
	scene.Cast = []string{"GUEST"}
	scene.Profiles["GUEST"] = knowledge.CharacterProfile{
		Name: "GUEST", FullName: "GUEST",
		Profession: knowledge.ProfessionActress,
	}

	note := wardrobeFor(t, scene, "GUEST")
	if note.Description != "elegant fashionable wardrobe styled per scene" {
		t.Fatalf("description = %q", note.Description)
	}
}
