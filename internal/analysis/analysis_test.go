package analysis

import (
	"errors"
	"strings"
	"testing"

	"slugline/internal/breakdown"
	"slugline/internal/knowledge"
	"slugline/internal/patterns"
	"slugline/internal/scenes"
)

// testScene builds an analyzer-ready scene from raw block text. Cast and
// profiles start empty; tests that need them set the fields directly.
func testScene(text string, header scenes.Header) *Scene {
	lib := patterns.New()
	block := scenes.Block{Number: 1, Header: strings.SplitN(text, "\n", 2)[0], Text: text}
	doc := patterns.NewDocument(text)
	return &Scene{
		Block:    block,
		Header:   header,
		Type:     ClassifyScene(lib, doc, block),
		Doc:      doc,
		Profiles: make(map[string]knowledge.CharacterProfile),
	}
}

func interiorDay(location string) scenes.Header {
	return scenes.Header{Placement: breakdown.PlacementInterior, TimeOfDay: "day", Location: location}
}

func TestClassifyScene(t *testing.T) {
	tests := []struct {
		name string
		text string
		want breakdown.SceneType
	}{
		{
			name: "dialogue heavy arabic",
			text: "نهال: كيف حالك يا كريم\nكريم: الحمد لله كله تمام",
			want: breakdown.SceneDialogue,
		},
		{
			name: "dialogue heavy english",
			text: "JOHN: good morning everyone\nMARY: you are late again",
			want: breakdown.SceneDialogue,
		},
		{
			name: "dialogue with conflict cues",
			text: "نهال: هذا جدال لن ينتهي بيننا\nكريم: لن أقبل بهذا أبدا",
			want: breakdown.SceneConfrontation,
		},
		{
			name: "discovery verb",
			text: "مدحت يجد الظرف على المكتب",
			want: breakdown.SceneDiscovery,
		},
		{
			name: "two action verbs",
			text: "يدخل كريم المكتب ثم يجري نحو الباب",
			want: breakdown.SceneAction,
		},
		{
			name: "single action verb is not enough",
			text: "يدخل كريم المكتب ببطء",
			want: breakdown.SceneTransition,
		},
		{
			name: "emotional cue",
			text: "تجلس نهال وحيدة في قلق شديد",
			want: breakdown.SceneEmotional,
		},
		{
			name: "plain transition",
			text: "قطع الى الشارع",
			want: breakdown.SceneTransition,
		},
	}

	lib := patterns.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := scenes.Block{Number: 1, Text: tt.text}
			got := ClassifyScene(lib, patterns.NewDocument(tt.text), block)
			if got != tt.want {
				t.Fatalf("ClassifyScene() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResultMergeIntoDeduplicates(t *testing.T) {
	var b breakdown.Breakdown

	first := &Result{
		Cast:     []string{"Nihal Samaha", "Karim Rizk"},
		Elements: map[breakdown.Category][]string{breakdown.CategoryProps: {"mail envelope"}},
		Sound:    []string{"dialogue"},
	}
	second := &Result{
		Cast:     []string{"Karim Rizk", "Medhat Mahfouz"},
		Elements: map[breakdown.Category][]string{breakdown.CategoryProps: {"mail envelope", "mobile phone"}},
		Sound:    []string{"dialogue", "door knock"},
		Synopsis: "Placeholder line.",
	}
	first.MergeInto(&b)
	second.MergeInto(&b)

	if got, want := strings.Join(b.Cast, ","), "Nihal Samaha,Karim Rizk,Medhat Mahfouz"; got != want {
		t.Errorf("cast = %q, want %q", got, want)
	}
	if got, want := strings.Join(b.Props, ","), "mail envelope,mobile phone"; got != want {
		t.Errorf("props = %q, want %q", got, want)
	}
	if got, want := strings.Join(b.Sound, ","), "dialogue,door knock"; got != want {
		t.Errorf("sound = %q, want %q", got, want)
	}
	if b.Synopsis != "Placeholder line." {
		t.Errorf("synopsis = %q", b.Synopsis)
	}
}

func TestMergeIntoSkipsEmptyFields(t *testing.T) {
	b := breakdown.Breakdown{Synopsis: "Kept.", CameraLighting: "day interior"}
	empty := &Result{}
	empty.MergeInto(&b)
	if b.Synopsis != "Kept." || b.CameraLighting != "day interior" {
		t.Fatalf("empty merge overwrote fields: %+v", b)
	}
}

func TestAnalyzerErrorWrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Analyzer: "cast", Scene: 7, Err: cause}
	if !errors.Is(err, cause) {
		t.Fatal("errors.Is should reach the cause")
	}
	if got := err.Error(); !strings.Contains(got, "cast") || !strings.Contains(got, "7") {
		t.Fatalf("message %q should name analyzer and scene", got)
	}
}
