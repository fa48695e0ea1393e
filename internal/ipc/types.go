package ipc

import "slugline/internal/api"

// JobView mirrors the HTTP API job DTO for IPC callers.
type JobView = api.JobView

// StageHealth describes readiness of a workflow stage.
type StageHealth = api.StageHealth

// SceneRefView points at an indexed scene.
type SceneRefView = api.SceneRefView

// StatsView aggregates job, cache, and run-store counters.
type StatsView = api.StatsView

// StartRequest triggers daemon workflow startup.
type StartRequest struct{}

// StartResponse indicates whether the daemon was started.
type StartResponse struct {
	Started bool   `json:"started"`
	Message string `json:"message"`
}

// StopRequest stops daemon workflow.
type StopRequest struct{}

// StopResponse indicates stop result.
type StopResponse struct {
	Stopped bool `json:"stopped"`
}

// StatusRequest fetches daemon status.
type StatusRequest struct{}

// StatusResponse carries combined daemon/workflow status information.
type StatusResponse struct {
	Running         bool           `json:"running"`
	PID             int            `json:"pid"`
	SocketPath      string         `json:"socket_path"`
	LockPath        string         `json:"lock_path"`
	StartedAt       string         `json:"started_at,omitempty"`
	WorkflowRunning bool           `json:"workflow_running"`
	JobCounts       map[string]int `json:"job_counts"`
	StageHealth     []StageHealth  `json:"stage_health"`
}

// SubmitRequest enqueues an analysis job.
type SubmitRequest struct {
	Text                string  `json:"text"`
	Component           string  `json:"component"`
	Priority            int     `json:"priority"`
	ConfidenceThreshold float64 `json:"confidence_threshold"`
}

// SubmitResponse carries the created (or cache-served) job.
type SubmitResponse struct {
	Job JobView `json:"job"`
}

// JobGetRequest fetches one job with scene detail.
type JobGetRequest struct {
	ID string `json:"id"`
}

// JobGetResponse carries a single job.
type JobGetResponse struct {
	Job JobView `json:"job"`
}

// JobListRequest lists all jobs.
type JobListRequest struct{}

// JobListResponse carries jobs in submission order.
type JobListResponse struct {
	Jobs []JobView `json:"jobs"`
}

// JobCancelRequest withdraws a pending job.
type JobCancelRequest struct {
	ID string `json:"id"`
}

// JobCancelResponse carries the cancelled job.
type JobCancelResponse struct {
	Job JobView `json:"job"`
}

// StatsRequest fetches aggregate counters.
type StatsRequest struct{}

// StatsResponse carries aggregate counters.
type StatsResponse struct {
	Stats StatsView `json:"stats"`
}

// SceneQueryRequest looks up indexed scenes by cast member.
type SceneQueryRequest struct {
	Character string `json:"character"`
}

// SceneQueryResponse carries matching scenes in index order.
type SceneQueryResponse struct {
	Character string         `json:"character"`
	Scenes    []SceneRefView `json:"scenes"`
}
