package workflow

import (
	"context"
	"errors"
	"strings"

	"slugline/internal/parser"
	"slugline/internal/runstore"
	"slugline/internal/stage"
)

// AnalyzeStage runs the parser over the submitted screenplay.
type AnalyzeStage struct {
	parser *parser.Parser
}

// NewAnalyzeStage wraps a parser as the first pipeline stage.
func NewAnalyzeStage(p *parser.Parser) *AnalyzeStage {
	return &AnalyzeStage{parser: p}
}

func (s *AnalyzeStage) Name() string { return "analyze" }

func (s *AnalyzeStage) Prepare(_ context.Context, task *stage.Task) error {
	if task.Job == nil {
		return errors.New("task carries no job")
	}
	if strings.TrimSpace(task.Job.Text) == "" {
		return errors.New("screenplay text is empty")
	}
	return nil
}

func (s *AnalyzeStage) Execute(ctx context.Context, task *stage.Task) error {
	result, err := s.parser.Analyze(ctx, task.Job.Text, task.Job.Component)
	if err != nil {
		return err
	}
	task.Result = result
	return nil
}

func (s *AnalyzeStage) HealthCheck(context.Context) stage.Health {
	if s.parser == nil {
		return stage.Unhealthy("analyze", "parser not configured")
	}
	return stage.Healthy("analyze")
}

// IndexStage writes finished breakdowns into the run store.
type IndexStage struct {
	store *runstore.Store
}

// NewIndexStage wraps the run store as the final pipeline stage.
func NewIndexStage(store *runstore.Store) *IndexStage {
	return &IndexStage{store: store}
}

func (s *IndexStage) Name() string { return "index" }

func (s *IndexStage) Prepare(_ context.Context, task *stage.Task) error {
	if task.Result == nil {
		return errors.New("no analysis result to index")
	}
	return nil
}

func (s *IndexStage) Execute(ctx context.Context, task *stage.Task) error {
	if s.store == nil {
		// Indexing is optional; the job still completes with its result.
		return nil
	}
	return s.store.IndexBreakdowns(ctx, task.Job.ID, task.Result.Breakdowns)
}

func (s *IndexStage) HealthCheck(ctx context.Context) stage.Health {
	if s.store == nil {
		return stage.Unhealthy("index", "run store not configured")
	}
	if err := s.store.Ping(ctx); err != nil {
		return stage.Unhealthy("index", err.Error())
	}
	return stage.Healthy("index")
}
