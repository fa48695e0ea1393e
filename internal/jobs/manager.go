package jobs

import (
	"crypto/md5"
	"encoding/hex"
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"slugline/internal/breakdown"
	"slugline/internal/config"
	"slugline/internal/logging"
	"slugline/internal/parser"
)

// Options configures a Manager.
type Options struct {
	// MaxConcurrent caps how many jobs may be processing at once.
	// Values below 1 are raised to 1.
	MaxConcurrent int
	// CacheTTL bounds how long a completed result satisfies resubmissions.
	// Zero or negative disables the cache.
	CacheTTL time.Duration
	Logger   *slog.Logger
	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

// FromConfig builds manager Options from the analysis settings.
func FromConfig(cfg config.Analysis, logger *slog.Logger) Options {
	return Options{
		MaxConcurrent: cfg.MaxConcurrentJobs,
		CacheTTL:      time.Duration(cfg.CacheTTLSeconds) * time.Second,
		Logger:        logger,
	}
}

type cacheEntry struct {
	result    *parser.Result
	expiresAt time.Time
}

// Manager owns the job table, the priority queue, and the result cache.
// All methods are safe for concurrent use.
type Manager struct {
	mu            sync.Mutex
	logger        *slog.Logger
	clock         func() time.Time
	maxConcurrent int
	cacheTTL      time.Duration

	jobs     map[string]*Job
	queue    []string
	cache    map[string]cacheEntry
	counters map[Status]int

	cacheHits   int
	cacheMisses int
}

// NewManager builds a Manager from the supplied options.
func NewManager(opts Options) *Manager {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	maxConcurrent := opts.MaxConcurrent
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Manager{
		logger:        logging.NewComponentLogger(opts.Logger, "jobs"),
		clock:         clock,
		maxConcurrent: maxConcurrent,
		cacheTTL:      opts.CacheTTL,
		jobs:          make(map[string]*Job),
		cache:         make(map[string]cacheEntry),
		counters:      make(map[Status]int),
	}
}

// CacheKey derives the deterministic cache identity of a submission.
// Submissions agreeing on text, component, and threshold share a key.
func CacheKey(text string, component breakdown.Component, threshold float64) string {
	payload := text + "_" + string(component) + "_" + strconv.FormatFloat(threshold, 'g', -1, 64)
	sum := md5.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// Submit registers a new job. A fresh cached result completes the job
// immediately; otherwise it waits in the queue until a worker takes it.
// Priority zero means lowest; anything else outside 1..5 is rejected.
func (m *Manager) Submit(req Request) (*Job, error) {
	component := req.Component
	if component == "" {
		component = breakdown.ComponentFull
	}
	priority := req.Priority
	if priority == 0 {
		priority = 1
	}
	if priority < 1 || priority > 5 {
		return nil, ErrInvalidPriority
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock()
	job := &Job{
		ID:                  uuid.NewString(),
		Component:           component,
		Priority:            priority,
		CacheKey:            CacheKey(req.Text, component, req.ConfidenceThreshold),
		Text:                req.Text,
		ConfidenceThreshold: req.ConfidenceThreshold,
		CreatedAt:           now,
	}

	if entry, ok := m.cache[job.CacheKey]; ok {
		if now.Before(entry.expiresAt) {
			m.cacheHits++
			job.Status = StatusCompleted
			job.CacheHit = true
			job.Result = entry.result
			job.StartedAt = now
			job.CompletedAt = now
			job.ProgressStage = "cached"
			job.ProgressPercent = 100
			m.jobs[job.ID] = job
			m.counters[StatusCompleted]++
			m.logger.Info("job served from cache",
				logging.String(logging.FieldJobID, job.ID),
				logging.String("analysis_component", string(component)))
			return job.clone(), nil
		}
		delete(m.cache, job.CacheKey)
	}
	m.cacheMisses++

	job.Status = StatusPending
	m.jobs[job.ID] = job
	m.counters[StatusPending]++
	m.enqueue(job)
	m.logger.Info("job queued",
		logging.String(logging.FieldJobID, job.ID),
		logging.String("analysis_component", string(component)),
		logging.Int("priority", priority))
	return job.clone(), nil
}

// enqueue inserts before the first strictly lower priority, so equal
// priorities keep submission order.
func (m *Manager) enqueue(job *Job) {
	idx := len(m.queue)
	for i, id := range m.queue {
		queued, ok := m.jobs[id]
		if ok && queued.Priority < job.Priority {
			idx = i
			break
		}
	}
	m.queue = append(m.queue, "")
	copy(m.queue[idx+1:], m.queue[idx:])
	m.queue[idx] = job.ID
}

// DequeueNext hands the next pending job to a worker, marking it
// processing in the same step. It returns false when the queue is empty
// or the concurrency cap is reached.
func (m *Manager) DequeueNext() (*Job, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.counters[StatusProcessing] >= m.maxConcurrent {
		return nil, false
	}
	for len(m.queue) > 0 {
		id := m.queue[0]
		m.queue = m.queue[1:]
		job, ok := m.jobs[id]
		if !ok || job.Status != StatusPending {
			continue
		}
		m.setStatus(job, StatusProcessing)
		job.StartedAt = m.clock()
		m.logger.Info("job started",
			logging.String(logging.FieldJobID, job.ID),
			logging.String("analysis_component", string(job.Component)))
		return job.clone(), true
	}
	return nil, false
}

// Complete stores the result of a processing job and fills the cache.
func (m *Manager) Complete(id string, result *parser.Result) (*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := m.transition(job, StatusCompleted); err != nil {
		return nil, err
	}
	now := m.clock()
	job.CompletedAt = now
	job.Result = result
	job.ProgressPercent = 100
	if m.cacheTTL > 0 {
		m.cache[job.CacheKey] = cacheEntry{result: result, expiresAt: now.Add(m.cacheTTL)}
	}
	m.logger.Info("job completed",
		logging.String(logging.FieldJobID, id),
		logging.Duration("duration", now.Sub(job.StartedAt)))
	return job.clone(), nil
}

// Fail records the failure cause for a processing job.
func (m *Manager) Fail(id string, cause error) (*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := m.transition(job, StatusFailed); err != nil {
		return nil, err
	}
	job.CompletedAt = m.clock()
	if cause != nil {
		job.ErrorMessage = cause.Error()
	}
	m.logger.Warn("job failed",
		logging.String(logging.FieldJobID, id),
		logging.Error(cause))
	return job.clone(), nil
}

// Cancel withdraws a pending job before any worker picks it up. Jobs
// already processing cannot be cancelled.
func (m *Manager) Cancel(id string) (*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := m.transition(job, StatusCancelled); err != nil {
		return nil, err
	}
	job.CompletedAt = m.clock()
	m.logger.Info("job cancelled", logging.String(logging.FieldJobID, id))
	return job.clone(), nil
}

// SetProgress updates stage and percent for an in-flight job.
func (m *Manager) SetProgress(id, stage string, percent float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return ErrNotFound
	}
	if job.Status != StatusProcessing {
		return ErrNotProcessing
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	job.ProgressStage = stage
	job.ProgressPercent = percent
	return nil
}

// Heartbeat records liveness for a processing job.
func (m *Manager) Heartbeat(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return ErrNotFound
	}
	if job.Status != StatusProcessing {
		return ErrNotProcessing
	}
	job.LastHeartbeat = m.clock()
	return nil
}

// Get returns a copy of the job.
func (m *Manager) Get(id string) (*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return job.clone(), nil
}

// List returns copies of every known job in submission order.
func (m *Manager) List() []*Job {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*Job, 0, len(m.jobs))
	for _, job := range m.jobs {
		out = append(out, job.clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// QueuePosition reports the 1-based place of a pending job, 0 otherwise.
func (m *Manager) QueuePosition(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	pos := 0
	for _, queued := range m.queue {
		job, ok := m.jobs[queued]
		if !ok || job.Status != StatusPending {
			continue
		}
		pos++
		if queued == id {
			return pos
		}
	}
	return 0
}

// Stats aggregates lifecycle counters and cache behaviour.
type Stats struct {
	Total        int
	Pending      int
	Processing   int
	Completed    int
	Failed       int
	Cancelled    int
	QueueLength  int
	CacheEntries int
	CacheHits    int
	CacheMisses  int
}

// Stats returns a consistent snapshot of the manager.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneCache(m.clock())
	return Stats{
		Total:        len(m.jobs),
		Pending:      m.counters[StatusPending],
		Processing:   m.counters[StatusProcessing],
		Completed:    m.counters[StatusCompleted],
		Failed:       m.counters[StatusFailed],
		Cancelled:    m.counters[StatusCancelled],
		QueueLength:  m.counters[StatusPending],
		CacheEntries: len(m.cache),
		CacheHits:    m.cacheHits,
		CacheMisses:  m.cacheMisses,
	}
}

// transition guards every status change. Callers hold m.mu.
func (m *Manager) transition(job *Job, to Status) error {
	if !CanTransition(job.Status, to) {
		return &InvalidTransitionError{From: job.Status, To: to}
	}
	if job.Status == StatusPending {
		m.removeQueued(job.ID)
	}
	m.setStatus(job, to)
	return nil
}

func (m *Manager) setStatus(job *Job, to Status) {
	m.counters[job.Status]--
	job.Status = to
	m.counters[to]++
}

func (m *Manager) removeQueued(id string) {
	for i, queued := range m.queue {
		if queued == id {
			m.queue = append(m.queue[:i], m.queue[i+1:]...)
			return
		}
	}
}

func (m *Manager) pruneCache(now time.Time) {
	for key, entry := range m.cache {
		if !now.Before(entry.expiresAt) {
			delete(m.cache, key)
		}
	}
}
