package stage

import (
	"context"

	"slugline/internal/jobs"
	"slugline/internal/parser"
)

// Task is the unit of work a stage advances: one dequeued job plus the
// artifacts accumulated by earlier stages.
type Task struct {
	Job    *jobs.Job
	Result *parser.Result
}

// Handler describes the contract the workflow manager needs from each
// pipeline stage.
type Handler interface {
	// Name labels the stage in progress updates and logs.
	Name() string
	Prepare(context.Context, *Task) error
	Execute(context.Context, *Task) error
	HealthCheck(context.Context) Health
}
