// Package api defines wire-format types and converters for the IPC and HTTP
// API layer. It translates internal job and breakdown models into
// transport-friendly DTOs so both surfaces return identical payloads.
//
// # Key Types
//
// JobView: transport representation of an analysis job with progress,
// queue position, cache provenance, and an optional per-scene detail list.
//
// BreakdownView: one scene's production record (cast, elements, wardrobe,
// effects, legal flags, continuity) in camelCase form.
//
// StatsView: job counters, cache counters, and run-store aggregates.
//
// DaemonStatus: daemon runtime information including workflow state and
// stage health.
//
// # Converters
//
// FromJob: jobs.Job -> JobView summary (scene count, result totals).
//
// FromJobDetail: FromJob plus the full BreakdownView list.
//
// FromStageHealth: stage health in pipeline order.
//
// # Design Notes
//
// DTOs use camelCase JSON tags for JavaScript/TypeScript consumers.
// Internal enums (jobs.Status, breakdown.Component) are exposed as
// lowercase strings. Timestamps use RFC3339 with milliseconds; durations
// are formatted strings. JobService wraps the jobs manager, run store, and
// workflow manager so IPC and HTTP share one implementation.
package api
