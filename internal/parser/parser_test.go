package parser

import (
	"context"
	"errors"
	"testing"

	"slugline/internal/breakdown"
	"slugline/internal/config"
	"slugline/internal/scenes"
)

func newTestParser() *Parser {
	return New(config.Default().Analysis, nil)
}

func analyze(t *testing.T, p *Parser, text string, component breakdown.Component) *Result {
	t.Helper()
	result, err := p.Analyze(context.Background(), text, component)
	if err != nil {
		t.Fatal(err)
	}
	return result
}

func TestAnalyzeTwoSceneDocument(t *testing.T) {
	text := "Scene 1 INT DAY OFFICE\n" +
		"JOHN: we need to move the meeting to tonight\n" +
		"Scene 2 EXT NIGHT STREET\n" +
		"JOHN enters a car"

	result := analyze(t, newTestParser(), text, breakdown.ComponentFull)

	if len(result.Breakdowns) != 2 {
		t.Fatalf("breakdowns = %d, want 2", len(result.Breakdowns))
	}
	if result.Summary.Parsed != 2 || result.Summary.Failed != 0 {
		t.Fatalf("summary = %+v", result.Summary)
	}

	first, second := result.Breakdowns[0], result.Breakdowns[1]
	if !first.HasCast("JOHN") || !second.HasCast("JOHN") {
		t.Errorf("JOHN missing from a cast: %v / %v", first.Cast, second.Cast)
	}
	if first.Placement != breakdown.PlacementInterior || first.TimeOfDay != "day" || first.Location != "office" {
		t.Errorf("first header = %s/%s/%s", first.Placement, first.TimeOfDay, first.Location)
	}
	if second.Placement != breakdown.PlacementExterior || second.TimeOfDay != "night" || second.Location != "street" {
		t.Errorf("second header = %s/%s/%s", second.Placement, second.TimeOfDay, second.Location)
	}
	if len(second.Vehicles) != 1 || second.Vehicles[0] != "car" {
		t.Errorf("vehicles = %v, want [car]", second.Vehicles)
	}
	for _, item := range second.Props {
		if item == "car" {
			t.Error("car must not land under props")
		}
	}
	if second.IsContinuation {
		t.Error("different place and time must not continue")
	}
}

func TestAnalyzeDetectsContinuation(t *testing.T) {
	text := "Scene 1 INT DAY OFFICE\n" +
		"JOHN: the files are ready for review\n" +
		"Scene 2 INT DAY OFFICE\n" +
		"JOHN: then bring the files inside now\n" +
		"Scene 3 EXT NIGHT STREET\n" +
		"JOHN enters a car"

	result := analyze(t, newTestParser(), text, breakdown.ComponentFull)
	if len(result.Breakdowns) != 3 {
		t.Fatalf("breakdowns = %d, want 3", len(result.Breakdowns))
	}

	second := result.Breakdowns[1]
	if !second.IsContinuation || second.PreviousScene != 1 {
		t.Fatalf("scene 2 continuation = %v/%d, want true/1", second.IsContinuation, second.PreviousScene)
	}
	if len(second.ContinuityNotes) == 0 {
		t.Error("returning cast at the same location should leave a continuity note")
	}
	if third := result.Breakdowns[2]; third.IsContinuation {
		t.Error("scene 3 changes place and time, no continuation")
	}
}

func TestAnalyzeNoScenes(t *testing.T) {
	_, err := newTestParser().Analyze(context.Background(), "prose without any headings", breakdown.ComponentFull)
	if !errors.Is(err, scenes.ErrNoScenes) {
		t.Fatalf("err = %v, want ErrNoScenes", err)
	}
}

func TestAnalyzeHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestParser().Analyze(ctx, "Scene 1 INT\ntext", breakdown.ComponentFull)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestAnalyzeComponentScopes(t *testing.T) {
	text := "مشهد 1 داخلي مكتب نهار\n" +
		"نهال: سمعت أغنية عمرو دياب في الراديو صباح اليوم\n" +
		"تمسك نهال الهاتف بقلق"

	p := newTestParser()

	t.Run("cast only", func(t *testing.T) {
		b := analyze(t, p, text, breakdown.ComponentCast).Breakdowns[0]
		if !b.HasCast("Nihal Samaha") {
			t.Errorf("cast = %v", b.Cast)
		}
		if len(b.Props) != 0 || len(b.LegalFlags) != 0 || len(b.Wardrobe) != 0 {
			t.Errorf("cast scope leaked other sections: %+v", b)
		}
	})

	t.Run("props only", func(t *testing.T) {
		b := analyze(t, p, text, breakdown.ComponentProps).Breakdowns[0]
		if len(b.Props) == 0 || b.Props[0] != "mobile phone" {
			t.Errorf("props = %v", b.Props)
		}
		if len(b.Cast) != 0 {
			t.Errorf("props scope extracted cast: %v", b.Cast)
		}
	})

	t.Run("legal only", func(t *testing.T) {
		b := analyze(t, p, text, breakdown.ComponentLegal).Breakdowns[0]
		if len(b.LegalFlags) == 0 {
			t.Fatal("expected legal flags")
		}
		if b.LegalFlags[0].Entity != "Amr Diab" {
			t.Errorf("flags = %+v", b.LegalFlags)
		}
	})

	t.Run("wardrobe only", func(t *testing.T) {
		b := analyze(t, p, text, breakdown.ComponentWardrobe).Breakdowns[0]
		if len(b.Wardrobe) == 0 {
			t.Fatal("expected wardrobe notes")
		}
		if len(b.Props) != 0 {
			t.Errorf("wardrobe scope extracted props: %v", b.Props)
		}
	})
}

func TestAnalyzeTogglesShapeFullRun(t *testing.T) {
	text := "مشهد 1 داخلي نهار\n" +
		"نهال: سمعت أغنية عمرو دياب في الراديو صباح اليوم"

	cfg := config.Default().Analysis
	cfg.EnableWardrobeInference = false
	cfg.EnableLegalAlerts = false

	b := analyze(t, New(cfg, nil), text, breakdown.ComponentFull).Breakdowns[0]
	if len(b.Wardrobe) != 0 {
		t.Errorf("wardrobe should be disabled, got %v", b.Wardrobe)
	}
	if len(b.LegalFlags) != 0 {
		t.Errorf("legal alerts should be disabled, got %v", b.LegalFlags)
	}
}

func TestAnalyzeSynopsisOfLastResort(t *testing.T) {
	b := analyze(t, newTestParser(), "Scene 3 INT", breakdown.ComponentFull).Breakdowns[0]
	if b.Synopsis != SynopsisUnavailable {
		t.Fatalf("synopsis = %q, want %q", b.Synopsis, SynopsisUnavailable)
	}
	if b.Confidence != 0 {
		t.Fatalf("confidence = %v, want 0", b.Confidence)
	}
}

func TestAnalyzeFillsProductionTotals(t *testing.T) {
	text := "Scene 1 EXT DAY STREET\n" +
		"A crowd gathers while JOHN walks past the gate"

	b := analyze(t, newTestParser(), text, breakdown.ComponentFull).Breakdowns[0]
	if b.Extras == "" {
		t.Error("crowd cue should request extras")
	}
	if len(b.Makeup) == 0 {
		t.Error("cast should get base makeup notes")
	}
}

func TestConfidenceScoring(t *testing.T) {
	empty := &breakdown.Breakdown{Location: breakdown.LocationUnspecified}
	if got := confidence(empty); got != 0 {
		t.Fatalf("empty confidence = %v", got)
	}

	full := &breakdown.Breakdown{
		Cast:     []string{"JOHN"},
		Props:    []string{"mobile phone"},
		Location: "office",
		Synopsis: "JOHN carries the scene in conversation.",
	}
	if got := confidence(full); got != 1.0 {
		t.Fatalf("full confidence = %v, want 1.0", got)
	}
}
