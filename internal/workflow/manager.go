package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"slugline/internal/config"
	"slugline/internal/jobs"
	"slugline/internal/logging"
	"slugline/internal/parser"
	"slugline/internal/runstore"
	"slugline/internal/stage"
)

// Manager feeds queued jobs through the pipeline stages.
type Manager struct {
	logger *slog.Logger
	queue  *jobs.Manager
	store  *runstore.Store
	stages []stage.Handler

	workers           int
	pollInterval      time.Duration
	jobTimeout        time.Duration
	heartbeatInterval time.Duration

	// notify wakes one idle worker after a submission so fresh jobs do
	// not wait out a full poll interval.
	notify chan struct{}

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewManager wires the pipeline: an analyze stage around a parser built
// from the analysis settings, then an index stage around the run store.
func NewManager(cfg *config.Config, queue *jobs.Manager, store *runstore.Store, logger *slog.Logger) *Manager {
	componentLogger := logging.NewComponentLogger(logger, "workflow")
	return &Manager{
		logger: componentLogger,
		queue:  queue,
		store:  store,
		stages: []stage.Handler{
			NewAnalyzeStage(parser.New(cfg.Analysis, logger)),
			NewIndexStage(store),
		},
		workers:           cfg.Analysis.MaxConcurrentJobs,
		pollInterval:      cfg.QueuePollInterval(),
		jobTimeout:        cfg.JobTimeout(),
		heartbeatInterval: cfg.HeartbeatInterval(),
		notify:            make(chan struct{}, 1),
	}
}

// Start launches the worker pool. It returns immediately; processing
// stops when the context is cancelled or Stop is called.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return errors.New("workflow already running")
	}
	if len(m.stages) == 0 {
		m.mu.Unlock()
		return errors.New("workflow stages not configured")
	}
	workers := m.workers
	if workers < 1 {
		workers = 1
	}

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.running = true
	m.wg.Add(workers)
	m.mu.Unlock()

	for i := 0; i < workers; i++ {
		go m.runWorker(runCtx, i+1)
	}
	m.logger.Info("workflow started", logging.Int("workers", workers))
	return nil
}

// Stop halts processing and waits for the workers to drain.
func (m *Manager) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	cancel := m.cancel
	m.running = false
	m.cancel = nil
	m.mu.Unlock()

	cancel()
	m.wg.Wait()
	m.logger.Info("workflow stopped")
}

// Running reports whether the worker pool is active.
func (m *Manager) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Notify wakes an idle worker after a submission. Safe from any
// goroutine; the signal is dropped when one is already pending.
func (m *Manager) Notify() {
	select {
	case m.notify <- struct{}{}:
	default:
	}
}

// Health reports the readiness of every pipeline stage.
func (m *Manager) Health(ctx context.Context) []stage.Health {
	out := make([]stage.Health, 0, len(m.stages))
	for _, handler := range m.stages {
		out = append(out, handler.HealthCheck(ctx))
	}
	return out
}

func (m *Manager) runWorker(ctx context.Context, index int) {
	defer m.wg.Done()
	logger := m.logger.With(logging.Int("worker", index))

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		job, ok := m.queue.DequeueNext()
		if !ok {
			m.waitForJobOrShutdown(ctx)
			continue
		}
		m.processJob(ctx, logger, job)
	}
}

func (m *Manager) waitForJobOrShutdown(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-m.notify:
	case <-time.After(m.pollInterval):
	}
}

// processJob runs every stage in order and settles the job. A stage
// error fails the job; later stages never run.
func (m *Manager) processJob(ctx context.Context, logger *slog.Logger, job *jobs.Job) {
	runCtx := ctx
	if m.jobTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, m.jobTimeout)
		defer cancel()
	}

	task := &stage.Task{Job: job}
	for i, handler := range m.stages {
		if err := runCtx.Err(); err != nil {
			m.failJob(logger, job, handler.Name(), err)
			return
		}
		percent := float64(i) / float64(len(m.stages)) * 100
		if err := m.queue.SetProgress(job.ID, handler.Name(), percent); err != nil {
			logger.Warn("progress update rejected",
				logging.String(logging.FieldJobID, job.ID),
				logging.Error(err))
		}
		logger.Info("stage started",
			logging.String(logging.FieldStage, handler.Name()),
			logging.String(logging.FieldJobID, job.ID))

		if err := handler.Prepare(runCtx, task); err != nil {
			m.failJob(logger, job, handler.Name(), err)
			return
		}
		stopHeartbeat := m.startHeartbeat(runCtx, job.ID)
		err := handler.Execute(runCtx, task)
		stopHeartbeat()
		if err != nil {
			m.failJob(logger, job, handler.Name(), err)
			return
		}
		logger.Info("stage finished",
			logging.String(logging.FieldStage, handler.Name()),
			logging.String(logging.FieldJobID, job.ID))
	}

	if _, err := m.queue.Complete(job.ID, task.Result); err != nil {
		logger.Error("failed to settle completed job",
			logging.String(logging.FieldJobID, job.ID),
			logging.Error(err))
	}
}

func (m *Manager) failJob(logger *slog.Logger, job *jobs.Job, stageName string, cause error) {
	logger.Warn("stage failed",
		logging.String(logging.FieldStage, stageName),
		logging.String(logging.FieldJobID, job.ID),
		logging.Error(cause))
	if _, err := m.queue.Fail(job.ID, fmt.Errorf("%s: %w", stageName, cause)); err != nil {
		logger.Error("failed to settle failed job",
			logging.String(logging.FieldJobID, job.ID),
			logging.Error(err))
	}
}

// startHeartbeat bumps job liveness on the configured interval until the
// returned stop function runs.
func (m *Manager) startHeartbeat(ctx context.Context, id string) func() {
	if m.heartbeatInterval <= 0 {
		return func() {}
	}
	hbCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(m.heartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-hbCtx.Done():
				return
			case <-ticker.C:
				if err := m.queue.Heartbeat(id); err != nil {
					return
				}
			}
		}
	}()
	return func() {
		cancel()
		<-done
	}
}
