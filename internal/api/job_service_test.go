package api

import (
	"context"
	"errors"
	"strings"
	"testing"

	"slugline/internal/breakdown"
	"slugline/internal/jobs"
	"slugline/internal/parser"
	"slugline/internal/runstore"
)

func newTestService(t *testing.T) (*JobService, *jobs.Manager, *runstore.Store) {
	t.Helper()
	queue := jobs.NewManager(jobs.Options{MaxConcurrent: 2})
	store, err := runstore.Open(context.Background())
	if err != nil {
		t.Fatalf("open run store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	svc := NewJobService(queue, store, nil)
	if svc == nil {
		t.Fatal("service not constructed")
	}
	return svc, queue, store
}

func TestJobServiceSubmitValidation(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.Submit(SubmitRequest{Text: "   "}); err == nil {
		t.Fatal("empty text accepted")
	}
	if _, err := svc.Submit(SubmitRequest{Text: "Scene 1\ntext", Component: "vibes_only"}); err == nil {
		t.Fatal("unknown component accepted")
	}
	if _, err := svc.Submit(SubmitRequest{Text: "Scene 1\ntext", Priority: 9}); !errors.Is(err, jobs.ErrInvalidPriority) {
		t.Fatalf("priority error = %v", err)
	}
}

func TestJobServiceSubmitDescribeCancel(t *testing.T) {
	svc, _, _ := newTestService(t)

	view, err := svc.Submit(SubmitRequest{Text: "Scene 1 INT DAY\nJOHN waits.", Component: "cast_only", Priority: 2})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if view.Status != "pending" || view.Component != "cast_only" || view.QueuePosition != 1 {
		t.Fatalf("submit view = %+v", view)
	}

	got, err := svc.Describe(view.ID)
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if got == nil || got.ID != view.ID || got.QueuePosition != 1 {
		t.Fatalf("describe view = %+v", got)
	}

	missing, err := svc.Describe("no-such-job")
	if err != nil || missing != nil {
		t.Fatalf("missing job = %+v, err %v", missing, err)
	}

	cancelled, err := svc.Cancel(view.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled == nil || cancelled.Status != "cancelled" {
		t.Fatalf("cancel view = %+v", cancelled)
	}
	if gone, err := svc.Cancel("no-such-job"); err != nil || gone != nil {
		t.Fatalf("cancel missing = %+v, err %v", gone, err)
	}
}

func TestJobServiceListTracksQueuePositions(t *testing.T) {
	svc, queue, _ := newTestService(t)

	first, err := svc.Submit(SubmitRequest{Text: "first screenplay\nScene 1"})
	if err != nil {
		t.Fatalf("submit first: %v", err)
	}
	if _, err := svc.Submit(SubmitRequest{Text: "second screenplay\nScene 1"}); err != nil {
		t.Fatalf("submit second: %v", err)
	}

	views := svc.List()
	if len(views) != 2 {
		t.Fatalf("list length = %d", len(views))
	}
	if views[0].QueuePosition != 1 || views[1].QueuePosition != 2 {
		t.Fatalf("queue positions = %d, %d", views[0].QueuePosition, views[1].QueuePosition)
	}

	job, ok := queue.DequeueNext()
	if !ok || job.ID != first.ID {
		t.Fatalf("dequeue = %+v, ok %v", job, ok)
	}
	views = svc.List()
	if views[0].QueuePosition != 0 || views[0].Status != "processing" {
		t.Fatalf("processing view = %+v", views[0])
	}
	if views[1].QueuePosition != 1 {
		t.Fatalf("remaining position = %d", views[1].QueuePosition)
	}
}

func TestJobServiceStatsCombinesSurfaces(t *testing.T) {
	svc, queue, store := newTestService(t)
	ctx := context.Background()

	submitted, err := svc.Submit(SubmitRequest{Text: "Scene 1 INT DAY\nJOHN waits."})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	job, ok := queue.DequeueNext()
	if !ok {
		t.Fatal("no job dequeued")
	}
	records := []breakdown.Breakdown{{
		SceneNumber: 1,
		Placement:   breakdown.PlacementInterior,
		TimeOfDay:   "day",
		Location:    "office",
		Cast:        []string{"John"},
		Confidence:  0.75,
	}}
	if _, err := queue.Complete(job.ID, &parser.Result{Breakdowns: records}); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := store.IndexBreakdowns(ctx, submitted.ID, records); err != nil {
		t.Fatalf("index: %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Jobs.Total != 1 || stats.Jobs.Completed != 1 {
		t.Fatalf("job counts = %+v", stats.Jobs)
	}
	if stats.Cache.Misses != 1 {
		t.Fatalf("cache stats = %+v", stats.Cache)
	}
	if stats.Store.Scenes != 1 || stats.Store.CastMembers != 1 {
		t.Fatalf("store stats = %+v", stats.Store)
	}
}

func TestJobServiceScenesByCast(t *testing.T) {
	svc, _, store := newTestService(t)
	ctx := context.Background()

	err := store.IndexBreakdowns(ctx, "job-idx", []breakdown.Breakdown{
		{SceneNumber: 1, Location: "office", TimeOfDay: "day", Cast: []string{"Medhat Mahfouz"}},
		{SceneNumber: 3, Location: "street", TimeOfDay: "night", Cast: []string{"Medhat Mahfouz", "Nihal Samaha"}},
	})
	if err != nil {
		t.Fatalf("index: %v", err)
	}

	refs, err := svc.ScenesByCast(ctx, "medhat mahfouz")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(refs) != 2 || refs[0].SceneNumber != 1 || refs[1].Location != "street" {
		t.Fatalf("refs = %+v", refs)
	}

	if _, err := svc.ScenesByCast(ctx, "  "); err == nil || !strings.Contains(err.Error(), "character name") {
		t.Fatalf("empty name error = %v", err)
	}
}

func TestJobServiceNilSafety(t *testing.T) {
	if svc := NewJobService(nil, nil, nil); svc != nil {
		t.Fatal("service constructed without a queue")
	}
	var svc *JobService
	if views := svc.List(); views != nil {
		t.Fatalf("nil service list = %+v", views)
	}
	if view, err := svc.Describe("x"); err != nil || view != nil {
		t.Fatalf("nil service describe = %+v, err %v", view, err)
	}
	if _, err := svc.Submit(SubmitRequest{Text: "Scene 1"}); !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("nil service submit error = %v", err)
	}
}
