package analysis

import (
	"strings"
	"testing"

	"slugline/internal/patterns"
)

func TestEffectsAndSoundCollection(t *testing.T) {
	text := "تفتح نهال اللابتوب وتنظر الى الشاشة بينما كاسيت قديم يعمل\n" +
		"طرق على الباب يقطع الصمت"

	analyzer := NewEffectsAnalyzer(patterns.New())
	result, err := analyzer.Analyze(testScene(text, interiorDay("room")))
	if err != nil {
		t.Fatal(err)
	}

	if got := strings.Join(result.Effects, ","); got != "screen playback" {
		t.Errorf("effects = %q, want screen playback", got)
	}
	want := "score music,door knock"
	if got := strings.Join(result.Sound, ","); got != want {
		t.Errorf("sound = %q, want %q", got, want)
	}
}

func TestScreenAloneIsNotPlayback(t *testing.T) {
	analyzer := NewEffectsAnalyzer(patterns.New())
	result, err := analyzer.Analyze(testScene("ينظر الى الشاشة الكبيرة في الميدان", interiorDay("street")))
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Effects) != 0 {
		t.Fatalf("a screen with no computer context should not flag playback, got %v", result.Effects)
	}
}

func TestSoundDefaultsToDialogue(t *testing.T) {
	analyzer := NewEffectsAnalyzer(patterns.New())
	result, err := analyzer.Analyze(testScene("صمت طويل في الغرفة", interiorDay("room")))
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Sound) != 1 || result.Sound[0] != "dialogue" {
		t.Fatalf("sound = %v, want the dialogue default", result.Sound)
	}
}
