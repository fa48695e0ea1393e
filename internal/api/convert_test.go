package api

import (
	"testing"
	"time"

	"slugline/internal/breakdown"
	"slugline/internal/jobs"
	"slugline/internal/parser"
	"slugline/internal/stage"
)

func TestFromJobFormatsTimestamps(t *testing.T) {
	created := time.Date(2026, time.March, 4, 10, 30, 0, 0, time.UTC)
	job := &jobs.Job{
		ID:        "job-1",
		Component: breakdown.ComponentFull,
		Priority:  3,
		Status:    jobs.StatusPending,
		CreatedAt: created,
	}

	view := FromJob(job)
	if view.ID != "job-1" || view.Status != "pending" {
		t.Fatalf("unexpected view identity: %+v", view)
	}
	if view.Component != "full_analysis" {
		t.Fatalf("component = %q", view.Component)
	}
	if view.CreatedAt != "2026-03-04T10:30:00.000Z" {
		t.Fatalf("created at = %q", view.CreatedAt)
	}
	if view.StartedAt != "" || view.CompletedAt != "" {
		t.Fatalf("zero times should format empty, got %q / %q", view.StartedAt, view.CompletedAt)
	}
	if view.SceneCount != 0 || view.Summary != nil || view.Scenes != nil {
		t.Fatalf("summary view should carry no result detail: %+v", view)
	}
}

func TestFromJobDetailIncludesScenes(t *testing.T) {
	job := &jobs.Job{
		ID:     "job-2",
		Status: jobs.StatusCompleted,
		Result: &parser.Result{
			Breakdowns: []breakdown.Breakdown{
				{SceneNumber: 1, Placement: breakdown.PlacementInterior, Location: "office"},
				{SceneNumber: 2, Placement: breakdown.PlacementExterior, Location: "street"},
			},
			Summary: parser.Summary{Scenes: 2, Parsed: 2, Duration: 40 * time.Millisecond},
		},
	}

	summary := FromJob(job)
	if summary.SceneCount != 2 {
		t.Fatalf("scene count = %d, want 2", summary.SceneCount)
	}
	if summary.Summary == nil || summary.Summary.Parsed != 2 || summary.Summary.Duration != "40ms" {
		t.Fatalf("result summary = %+v", summary.Summary)
	}
	if summary.Scenes != nil {
		t.Fatal("summary conversion must not include scene detail")
	}

	detail := FromJobDetail(job)
	if len(detail.Scenes) != 2 {
		t.Fatalf("detail scenes = %d, want 2", len(detail.Scenes))
	}
	if detail.Scenes[1].Placement != "exterior" || detail.Scenes[1].Location != "street" {
		t.Fatalf("scene 2 view = %+v", detail.Scenes[1])
	}
}

func TestFromBreakdownMapsNestedFields(t *testing.T) {
	record := breakdown.Breakdown{
		SceneNumber: 5,
		Placement:   breakdown.PlacementMixed,
		TimeOfDay:   "night",
		SceneType:   breakdown.SceneAction,
		Wardrobe: []breakdown.WardrobeNote{
			{Character: "Nihal Samaha", Description: "evening wear", Inferred: true},
		},
		LegalFlags: []breakdown.LegalFlag{
			{Kind: "brand", Entity: "Mercedes", Severity: breakdown.SeverityWarning},
		},
		Cinematic: breakdown.CinematicNote{Note: "handheld chase coverage", CameraNote: "wide lens"},
	}

	view := FromBreakdown(record)
	if view.Placement != "interior/exterior" || view.SceneType != "action" {
		t.Fatalf("enum mapping = %q / %q", view.Placement, view.SceneType)
	}
	if len(view.Wardrobe) != 1 || !view.Wardrobe[0].Inferred {
		t.Fatalf("wardrobe view = %+v", view.Wardrobe)
	}
	if len(view.LegalFlags) != 1 || view.LegalFlags[0].Severity != "warning" {
		t.Fatalf("legal view = %+v", view.LegalFlags)
	}
	if view.CinematicNote != "handheld chase coverage" {
		t.Fatalf("cinematic note = %q", view.CinematicNote)
	}
	if view.CameraLighting != "wide lens" {
		t.Fatalf("camera fallback = %q", view.CameraLighting)
	}

	record.CameraLighting = "key light from the street lamps"
	if got := FromBreakdown(record).CameraLighting; got != "key light from the street lamps" {
		t.Fatalf("explicit camera note lost: %q", got)
	}
}

func TestMergeJobCounts(t *testing.T) {
	counts := MergeJobCounts(jobs.Stats{Pending: 2, Processing: 1, Completed: 4, Failed: 1})
	if counts["pending"] != 2 || counts["processing"] != 1 || counts["completed"] != 4 {
		t.Fatalf("merged counts = %v", counts)
	}
	if counts["cancelled"] != 0 {
		t.Fatalf("expected explicit zero for cancelled, got %v", counts)
	}
}

func TestFromStageHealthKeepsPipelineOrder(t *testing.T) {
	health := FromStageHealth([]stage.Health{
		{Name: "analyze", Ready: true},
		{Name: "index", Ready: false, Detail: "store closed"},
	})
	if len(health) != 2 {
		t.Fatalf("health entries = %d", len(health))
	}
	if health[0].Name != "analyze" || health[1].Name != "index" {
		t.Fatalf("order not preserved: %+v", health)
	}
	if health[1].Ready || health[1].Detail != "store closed" {
		t.Fatalf("detail lost: %+v", health[1])
	}
}
