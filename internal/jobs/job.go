package jobs

import (
	"time"

	"slugline/internal/breakdown"
	"slugline/internal/parser"
)

// Request describes one analysis submission.
type Request struct {
	Text                string
	Component           breakdown.Component
	Priority            int
	ConfidenceThreshold float64
}

// Job tracks a single analysis through the queue. Zero timestamps mean the
// job has not reached that point yet. Result is shared with the cache and
// must be treated as read-only.
type Job struct {
	ID                  string
	Component           breakdown.Component
	Priority            int
	Status              Status
	CacheKey            string
	CacheHit            bool
	Text                string
	ConfidenceThreshold float64
	CreatedAt           time.Time
	StartedAt           time.Time
	CompletedAt         time.Time
	ProgressStage       string
	ProgressPercent     float64
	LastHeartbeat       time.Time
	Result              *parser.Result
	ErrorMessage        string
}

func (j *Job) clone() *Job {
	cp := *j
	return &cp
}
