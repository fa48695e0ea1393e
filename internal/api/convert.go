package api

import (
	"time"

	"slugline/internal/breakdown"
	"slugline/internal/jobs"
	"slugline/internal/runstore"
	"slugline/internal/stage"
)

// FromJob converts a job record to its API summary representation.
func FromJob(job *jobs.Job) JobView {
	if job == nil {
		return JobView{}
	}

	view := JobView{
		ID:                  job.ID,
		Component:           string(job.Component),
		Priority:            job.Priority,
		Status:              string(job.Status),
		CacheHit:            job.CacheHit,
		ConfidenceThreshold: job.ConfidenceThreshold,
		Progress: JobProgress{
			Stage:   job.ProgressStage,
			Percent: job.ProgressPercent,
		},
		ErrorMessage: job.ErrorMessage,
		CreatedAt:    FormatTime(job.CreatedAt),
		StartedAt:    FormatTime(job.StartedAt),
		CompletedAt:  FormatTime(job.CompletedAt),
	}
	if job.Result != nil {
		view.SceneCount = len(job.Result.Breakdowns)
		view.Summary = &ResultSummary{
			Scenes:   job.Result.Summary.Scenes,
			Parsed:   job.Result.Summary.Parsed,
			Failed:   job.Result.Summary.Failed,
			Duration: job.Result.Summary.Duration.String(),
		}
	}
	return view
}

// FromJobs converts a slice of job records into API DTOs.
func FromJobs(list []*jobs.Job) []JobView {
	if len(list) == 0 {
		return nil
	}
	out := make([]JobView, 0, len(list))
	for _, job := range list {
		out = append(out, FromJob(job))
	}
	return out
}

// FromJobDetail converts a job including its full per-scene records.
func FromJobDetail(job *jobs.Job) JobView {
	view := FromJob(job)
	if job != nil && job.Result != nil {
		view.Scenes = FromBreakdowns(job.Result.Breakdowns)
	}
	return view
}

// FromBreakdown converts one scene record to its API representation.
func FromBreakdown(record breakdown.Breakdown) BreakdownView {
	view := BreakdownView{
		SceneNumber:     record.SceneNumber,
		Placement:       string(record.Placement),
		TimeOfDay:       record.TimeOfDay,
		Location:        record.Location,
		SceneType:       string(record.SceneType),
		Synopsis:        record.Synopsis,
		Cast:            record.Cast,
		Extras:          record.Extras,
		Props:           record.Props,
		SetDressing:     record.SetDressing,
		Vehicles:        record.Vehicles,
		Makeup:          record.Makeup,
		Effects:         record.Effects,
		Sound:           record.Sound,
		CinematicNote:   record.Cinematic.Note,
		CameraLighting:  record.CameraLighting,
		IsContinuation:  record.IsContinuation,
		PreviousScene:   record.PreviousScene,
		ContinuityNotes: record.ContinuityNotes,
		Confidence:      record.Confidence,
	}
	if record.CameraLighting == "" {
		view.CameraLighting = record.Cinematic.CameraNote
	}
	for _, note := range record.Wardrobe {
		view.Wardrobe = append(view.Wardrobe, WardrobeView{
			Character:   note.Character,
			Description: note.Description,
			Inferred:    note.Inferred,
		})
	}
	for _, flag := range record.LegalFlags {
		view.LegalFlags = append(view.LegalFlags, LegalFlagView{
			Kind:     flag.Kind,
			Entity:   flag.Entity,
			Detail:   flag.Detail,
			Severity: string(flag.Severity),
		})
	}
	return view
}

// FromBreakdowns converts a slice of scene records into API DTOs.
func FromBreakdowns(records []breakdown.Breakdown) []BreakdownView {
	if len(records) == 0 {
		return nil
	}
	out := make([]BreakdownView, 0, len(records))
	for _, record := range records {
		out = append(out, FromBreakdown(record))
	}
	return out
}

// FromSceneRefs converts run-store scene references into API DTOs.
func FromSceneRefs(refs []runstore.SceneRef) []SceneRefView {
	if len(refs) == 0 {
		return nil
	}
	out := make([]SceneRefView, 0, len(refs))
	for _, ref := range refs {
		out = append(out, SceneRefView{
			JobID:       ref.JobID,
			SceneNumber: ref.SceneNumber,
			Location:    ref.Location,
			TimeOfDay:   ref.TimeOfDay,
			Synopsis:    ref.Synopsis,
		})
	}
	return out
}

// FromElementCounts converts element summary rows into API DTOs.
func FromElementCounts(counts []runstore.ElementCount) []ElementCountView {
	if len(counts) == 0 {
		return nil
	}
	out := make([]ElementCountView, 0, len(counts))
	for _, row := range counts {
		out = append(out, ElementCountView{
			Category: string(row.Category),
			Item:     row.Item,
			Scenes:   row.Scenes,
		})
	}
	return out
}

// FromJobStats splits manager counters into job and cache stats.
func FromJobStats(stats jobs.Stats) (JobCounts, CacheStats) {
	counts := JobCounts{
		Total:       stats.Total,
		Pending:     stats.Pending,
		Processing:  stats.Processing,
		Completed:   stats.Completed,
		Failed:      stats.Failed,
		Cancelled:   stats.Cancelled,
		QueueLength: stats.QueueLength,
	}
	cache := CacheStats{
		Entries: stats.CacheEntries,
		Hits:    stats.CacheHits,
		Misses:  stats.CacheMisses,
	}
	return counts, cache
}

// MergeJobCounts produces a string-keyed representation of job counters.
func MergeJobCounts(stats jobs.Stats) map[string]int {
	return map[string]int{
		string(jobs.StatusPending):    stats.Pending,
		string(jobs.StatusProcessing): stats.Processing,
		string(jobs.StatusCompleted):  stats.Completed,
		string(jobs.StatusFailed):     stats.Failed,
		string(jobs.StatusCancelled):  stats.Cancelled,
	}
}

// FromStoreStats converts run-store aggregates into their API form.
func FromStoreStats(stats runstore.Stats) StoreStats {
	out := StoreStats{
		Jobs:          stats.Jobs,
		Scenes:        stats.Scenes,
		CastMembers:   stats.CastMembers,
		LegalFlags:    stats.LegalFlags,
		AvgConfidence: stats.AvgConfidence,
	}
	if len(stats.Elements) > 0 {
		out.Elements = make(map[string]int, len(stats.Elements))
		for category, count := range stats.Elements {
			out.Elements[string(category)] = count
		}
	}
	return out
}

// FromStageHealth converts stage health reports, keeping pipeline order.
func FromStageHealth(health []stage.Health) []StageHealth {
	if len(health) == 0 {
		return nil
	}
	out := make([]StageHealth, 0, len(health))
	for _, h := range health {
		out = append(out, StageHealth{Name: h.Name, Ready: h.Ready, Detail: h.Detail})
	}
	return out
}

// FormatTime converts a time to RFC3339 or returns empty string.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateTimeFormat)
}
