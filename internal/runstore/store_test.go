package runstore

import (
	"context"
	"math"
	"testing"

	"slugline/internal/breakdown"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleRecords() []breakdown.Breakdown {
	return []breakdown.Breakdown{
		{
			SceneNumber: 1,
			Placement:   breakdown.PlacementInterior,
			TimeOfDay:   "day",
			Location:    "office",
			SceneType:   breakdown.SceneDialogue,
			Synopsis:    "Medhat Mahfouz and Nihal Samaha talk over a career prospect.",
			Cast:        []string{"Medhat Mahfouz", "Nihal Samaha"},
			Props:       []string{"mail envelope", "mobile phone"},
			SetDressing: []string{"manager desk"},
			Confidence:  0.8,
		},
		{
			SceneNumber: 2,
			Placement:   breakdown.PlacementExterior,
			TimeOfDay:   "night",
			Location:    "street",
			SceneType:   breakdown.SceneAction,
			Synopsis:    "Nihal Samaha drives off.",
			Cast:        []string{"Nihal Samaha"},
			Props:       []string{"mobile phone"},
			Vehicles:    []string{"car"},
			LegalFlags: []breakdown.LegalFlag{{
				Kind:     "brand",
				Entity:   "Mercedes",
				Detail:   "brand visible on camera",
				Severity: breakdown.SeverityWarning,
			}},
			Confidence: 0.6,
		},
	}
}

func TestScenesByCastToleratesSpelling(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	if err := store.IndexBreakdowns(ctx, "job-1", sampleRecords()); err != nil {
		t.Fatalf("IndexBreakdowns: %v", err)
	}

	refs, err := store.ScenesByCast(ctx, "NIHAL SAMAHA")
	if err != nil {
		t.Fatalf("ScenesByCast: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("got %d scenes, want 2", len(refs))
	}
	if refs[0].SceneNumber != 1 || refs[1].SceneNumber != 2 {
		t.Fatalf("scene order = %d, %d", refs[0].SceneNumber, refs[1].SceneNumber)
	}
	if refs[1].Location != "street" || refs[1].TimeOfDay != "night" {
		t.Fatalf("scene 2 ref = %+v", refs[1])
	}

	refs, err = store.ScenesByCast(ctx, "Medhat Mahfouz")
	if err != nil {
		t.Fatalf("ScenesByCast: %v", err)
	}
	if len(refs) != 1 || refs[0].SceneNumber != 1 {
		t.Fatalf("Medhat refs = %+v", refs)
	}

	refs, err = store.ScenesByCast(ctx, "nobody")
	if err != nil {
		t.Fatalf("ScenesByCast: %v", err)
	}
	if len(refs) != 0 {
		t.Fatalf("unknown cast member returned %d scenes", len(refs))
	}
}

func TestElementSummaryCountsScenes(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	if err := store.IndexBreakdowns(ctx, "job-1", sampleRecords()); err != nil {
		t.Fatalf("IndexBreakdowns: %v", err)
	}

	counts, err := store.ElementSummary(ctx)
	if err != nil {
		t.Fatalf("ElementSummary: %v", err)
	}
	want := []ElementCount{
		{Category: breakdown.CategoryProps, Item: "mobile phone", Scenes: 2},
		{Category: breakdown.CategoryProps, Item: "mail envelope", Scenes: 1},
		{Category: breakdown.CategorySetDressing, Item: "manager desk", Scenes: 1},
		{Category: breakdown.CategoryVehicles, Item: "car", Scenes: 1},
	}
	if len(counts) != len(want) {
		t.Fatalf("got %d rows, want %d: %+v", len(counts), len(want), counts)
	}
	for i, row := range want {
		if counts[i] != row {
			t.Fatalf("row %d = %+v, want %+v", i, counts[i], row)
		}
	}
}

func TestReindexReplacesJobRows(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	if err := store.IndexBreakdowns(ctx, "job-1", sampleRecords()); err != nil {
		t.Fatalf("IndexBreakdowns: %v", err)
	}
	if err := store.IndexBreakdowns(ctx, "job-1", sampleRecords()[:1]); err != nil {
		t.Fatalf("re-IndexBreakdowns: %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Scenes != 1 {
		t.Fatalf("scenes after reindex = %d, want 1", stats.Scenes)
	}
	if stats.LegalFlags != 0 {
		t.Fatalf("legal flags after reindex = %d, want 0", stats.LegalFlags)
	}
	refs, err := store.ScenesByCast(ctx, "Nihal Samaha")
	if err != nil {
		t.Fatalf("ScenesByCast: %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("cast rows after reindex = %d, want 1", len(refs))
	}
}

func TestStatsAcrossJobs(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	if err := store.IndexBreakdowns(ctx, "job-1", sampleRecords()); err != nil {
		t.Fatalf("IndexBreakdowns: %v", err)
	}
	other := []breakdown.Breakdown{{
		SceneNumber: 1,
		Placement:   breakdown.PlacementInterior,
		TimeOfDay:   "day",
		Location:    "home",
		SceneType:   breakdown.SceneEmotional,
		Synopsis:    "Raafat Abaza waits alone.",
		Cast:        []string{"Raafat Abaza"},
		Props:       []string{"mobile phone"},
		Confidence:  1.0,
	}}
	if err := store.IndexBreakdowns(ctx, "job-2", other); err != nil {
		t.Fatalf("IndexBreakdowns job-2: %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Jobs != 2 {
		t.Fatalf("jobs = %d, want 2", stats.Jobs)
	}
	if stats.Scenes != 3 {
		t.Fatalf("scenes = %d, want 3", stats.Scenes)
	}
	if stats.CastMembers != 3 {
		t.Fatalf("cast members = %d, want 3", stats.CastMembers)
	}
	if stats.LegalFlags != 1 {
		t.Fatalf("legal flags = %d, want 1", stats.LegalFlags)
	}
	if got := stats.Elements[breakdown.CategoryProps]; got != 2 {
		t.Fatalf("distinct props = %d, want 2", got)
	}
	if got := stats.Elements[breakdown.CategoryVehicles]; got != 1 {
		t.Fatalf("distinct vehicles = %d, want 1", got)
	}
	if want := (0.8 + 0.6 + 1.0) / 3; math.Abs(stats.AvgConfidence-want) > 1e-9 {
		t.Fatalf("avg confidence = %f, want %f", stats.AvgConfidence, want)
	}
}

func TestEmptyStoreStats(t *testing.T) {
	store := openStore(t)
	stats, err := store.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Jobs != 0 || stats.Scenes != 0 || stats.AvgConfidence != 0 {
		t.Fatalf("empty stats = %+v", stats)
	}
}
