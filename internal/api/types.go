package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// JobView describes an analysis job in a transport-friendly format.
// Scenes is populated only by FromJobDetail; list endpoints carry the
// summary fields alone.
type JobView struct {
	ID                  string          `json:"id"`
	Component           string          `json:"component"`
	Priority            int             `json:"priority"`
	Status              string          `json:"status"`
	CacheHit            bool            `json:"cacheHit"`
	QueuePosition       int             `json:"queuePosition,omitempty"`
	ConfidenceThreshold float64         `json:"confidenceThreshold,omitempty"`
	Progress            JobProgress     `json:"progress"`
	ErrorMessage        string          `json:"errorMessage,omitempty"`
	CreatedAt           string          `json:"createdAt,omitempty"`
	StartedAt           string          `json:"startedAt,omitempty"`
	CompletedAt         string          `json:"completedAt,omitempty"`
	SceneCount          int             `json:"sceneCount,omitempty"`
	Summary             *ResultSummary  `json:"summary,omitempty"`
	Scenes              []BreakdownView `json:"scenes,omitempty"`
}

// JobProgress captures stage progress information for a job.
type JobProgress struct {
	Stage   string  `json:"stage"`
	Percent float64 `json:"percent"`
}

// ResultSummary mirrors the per-run totals of a finished analysis.
type ResultSummary struct {
	Scenes   int    `json:"scenes"`
	Parsed   int    `json:"parsed"`
	Failed   int    `json:"failed"`
	Duration string `json:"duration,omitempty"`
}

// BreakdownView is the transport form of one scene's breakdown record.
type BreakdownView struct {
	SceneNumber     int             `json:"sceneNumber"`
	Placement       string          `json:"placement"`
	TimeOfDay       string          `json:"timeOfDay"`
	Location        string          `json:"location"`
	SceneType       string          `json:"sceneType"`
	Synopsis        string          `json:"synopsis"`
	Cast            []string        `json:"cast,omitempty"`
	Extras          string          `json:"extras,omitempty"`
	Props           []string        `json:"props,omitempty"`
	SetDressing     []string        `json:"setDressing,omitempty"`
	Vehicles        []string        `json:"vehicles,omitempty"`
	Wardrobe        []WardrobeView  `json:"wardrobe,omitempty"`
	Makeup          []string        `json:"makeup,omitempty"`
	Effects         []string        `json:"effects,omitempty"`
	Sound           []string        `json:"sound,omitempty"`
	LegalFlags      []LegalFlagView `json:"legalFlags,omitempty"`
	CinematicNote   string          `json:"cinematicNote,omitempty"`
	CameraLighting  string          `json:"cameraLighting,omitempty"`
	IsContinuation  bool            `json:"isContinuation"`
	PreviousScene   int             `json:"previousScene,omitempty"`
	ContinuityNotes []string        `json:"continuityNotes,omitempty"`
	Confidence      float64         `json:"confidence"`
}

// WardrobeView is one per-character costume note.
type WardrobeView struct {
	Character   string `json:"character"`
	Description string `json:"description"`
	Inferred    bool   `json:"inferred"`
}

// LegalFlagView is one rights-clearance concern.
type LegalFlagView struct {
	Kind     string `json:"kind"`
	Entity   string `json:"entity"`
	Detail   string `json:"detail,omitempty"`
	Severity string `json:"severity"`
}

// SceneRefView points at an indexed scene from a run-store query.
type SceneRefView struct {
	JobID       string `json:"jobId"`
	SceneNumber int    `json:"sceneNumber"`
	Location    string `json:"location"`
	TimeOfDay   string `json:"timeOfDay"`
	Synopsis    string `json:"synopsis,omitempty"`
}

// ElementCountView is one row of the element summary.
type ElementCountView struct {
	Category string `json:"category"`
	Item     string `json:"item"`
	Scenes   int    `json:"scenes"`
}

// JobCounts breaks job totals down by status.
type JobCounts struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	Processing  int `json:"processing"`
	Completed   int `json:"completed"`
	Failed      int `json:"failed"`
	Cancelled   int `json:"cancelled"`
	QueueLength int `json:"queueLength"`
}

// CacheStats reports result-cache activity.
type CacheStats struct {
	Entries int `json:"entries"`
	Hits    int `json:"hits"`
	Misses  int `json:"misses"`
}

// StoreStats reports run-store aggregates.
type StoreStats struct {
	Jobs          int            `json:"jobs"`
	Scenes        int            `json:"scenes"`
	CastMembers   int            `json:"castMembers"`
	LegalFlags    int            `json:"legalFlags"`
	Elements      map[string]int `json:"elements,omitempty"`
	AvgConfidence float64        `json:"avgConfidence"`
}

// StatsView aggregates every counter surface for one stats call.
type StatsView struct {
	Jobs  JobCounts  `json:"jobs"`
	Cache CacheStats `json:"cache"`
	Store StoreStats `json:"store"`
}

// StageHealth mirrors readiness reporting for workflow stages.
type StageHealth struct {
	Name   string `json:"name"`
	Ready  bool   `json:"ready"`
	Detail string `json:"detail,omitempty"`
}

// WorkflowStatus summarizes workflow execution state.
type WorkflowStatus struct {
	Running     bool           `json:"running"`
	JobCounts   map[string]int `json:"jobCounts"`
	StageHealth []StageHealth  `json:"stageHealth"`
}

// DaemonStatus aggregates daemon runtime information for API consumers.
type DaemonStatus struct {
	Running      bool           `json:"running"`
	PID          int            `json:"pid"`
	SocketPath   string         `json:"socketPath,omitempty"`
	LockFilePath string         `json:"lockFilePath,omitempty"`
	StartedAt    string         `json:"startedAt,omitempty"`
	Workflow     WorkflowStatus `json:"workflow"`
}

// JobListResponse wraps a collection of jobs for API responses.
type JobListResponse struct {
	Jobs []JobView `json:"jobs"`
}

// JobResponse wraps a single job.
type JobResponse struct {
	Job JobView `json:"job"`
}

// SceneQueryResponse wraps a scenes-by-cast query result.
type SceneQueryResponse struct {
	Character string         `json:"character"`
	Scenes    []SceneRefView `json:"scenes"`
}
