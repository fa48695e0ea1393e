package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"slugline/internal/breakdown"
	"slugline/internal/jobs"
	"slugline/internal/runstore"
	"slugline/internal/workflow"
)

// ErrServiceUnavailable is returned when a write operation arrives before
// the service is wired up.
var ErrServiceUnavailable = errors.New("job service unavailable")

// SubmitRequest carries a job submission from either transport surface.
type SubmitRequest struct {
	Text                string  `json:"text"`
	Component           string  `json:"component,omitempty"`
	Priority            int     `json:"priority,omitempty"`
	ConfidenceThreshold float64 `json:"confidenceThreshold,omitempty"`
}

// JobService exposes job, stats, and scene-query operations returning API
// DTOs. Both the IPC server and the HTTP API delegate here.
type JobService struct {
	queue *jobs.Manager
	store *runstore.Store
	flow  *workflow.Manager
}

// NewJobService constructs a JobService. The store and workflow manager
// are optional; read operations degrade to empty results without them.
func NewJobService(queue *jobs.Manager, store *runstore.Store, flow *workflow.Manager) *JobService {
	if queue == nil {
		return nil
	}
	return &JobService{queue: queue, store: store, flow: flow}
}

// Submit validates a request, enqueues the job, and wakes a worker.
// Cache hits come back already completed.
func (s *JobService) Submit(req SubmitRequest) (JobView, error) {
	if s == nil || s.queue == nil {
		return JobView{}, ErrServiceUnavailable
	}
	if strings.TrimSpace(req.Text) == "" {
		return JobView{}, errors.New("screenplay text is empty")
	}
	component, ok := breakdown.ParseComponent(req.Component)
	if !ok {
		return JobView{}, fmt.Errorf("unknown component %q", req.Component)
	}

	job, err := s.queue.Submit(jobs.Request{
		Text:                req.Text,
		Component:           component,
		Priority:            req.Priority,
		ConfidenceThreshold: req.ConfidenceThreshold,
	})
	if err != nil {
		return JobView{}, err
	}
	if s.flow != nil && job.Status == jobs.StatusPending {
		s.flow.Notify()
	}

	view := FromJob(job)
	view.QueuePosition = s.queue.QueuePosition(job.ID)
	return view, nil
}

// Describe fetches a single job with its full scene detail. A missing id
// yields (nil, nil).
func (s *JobService) Describe(id string) (*JobView, error) {
	if s == nil || s.queue == nil {
		return nil, nil
	}
	job, err := s.queue.Get(id)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	view := FromJobDetail(job)
	view.QueuePosition = s.queue.QueuePosition(id)
	return &view, nil
}

// List returns every known job in submission order.
func (s *JobService) List() []JobView {
	if s == nil || s.queue == nil {
		return nil
	}
	views := FromJobs(s.queue.List())
	for i := range views {
		if views[i].Status == string(jobs.StatusPending) {
			views[i].QueuePosition = s.queue.QueuePosition(views[i].ID)
		}
	}
	return views
}

// Cancel withdraws a pending job. A missing id yields (nil, nil);
// cancelling a job past pending returns the transition error.
func (s *JobService) Cancel(id string) (*JobView, error) {
	if s == nil || s.queue == nil {
		return nil, ErrServiceUnavailable
	}
	job, err := s.queue.Cancel(id)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	view := FromJob(job)
	return &view, nil
}

// Stats aggregates job, cache, and run-store counters.
func (s *JobService) Stats(ctx context.Context) (StatsView, error) {
	if s == nil || s.queue == nil {
		return StatsView{}, nil
	}
	counts, cache := FromJobStats(s.queue.Stats())
	view := StatsView{Jobs: counts, Cache: cache}
	if s.store != nil {
		storeStats, err := s.store.Stats(ctx)
		if err != nil {
			return StatsView{}, err
		}
		view.Store = FromStoreStats(storeStats)
	}
	return view, nil
}

// ScenesByCast queries the run store for scenes featuring a character.
func (s *JobService) ScenesByCast(ctx context.Context, name string) ([]SceneRefView, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("character name is empty")
	}
	refs, err := s.store.ScenesByCast(ctx, name)
	if err != nil {
		return nil, err
	}
	return FromSceneRefs(refs), nil
}

// ElementSummary returns aggregated element usage across indexed scenes.
func (s *JobService) ElementSummary(ctx context.Context) ([]ElementCountView, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	counts, err := s.store.ElementSummary(ctx)
	if err != nil {
		return nil, err
	}
	return FromElementCounts(counts), nil
}

// WorkflowStatus snapshots workflow state for status payloads.
func (s *JobService) WorkflowStatus(ctx context.Context) WorkflowStatus {
	if s == nil || s.queue == nil {
		return WorkflowStatus{}
	}
	status := WorkflowStatus{JobCounts: MergeJobCounts(s.queue.Stats())}
	if s.flow != nil {
		status.Running = s.flow.Running()
		status.StageHealth = FromStageHealth(s.flow.Health(ctx))
	}
	return status
}
