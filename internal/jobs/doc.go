// Package jobs schedules screenplay analysis work and caches finished
// results.
//
// A job moves from pending to processing and ends as completed, failed,
// or cancelled. Only a bounded number of jobs process at once; the rest
// wait in a priority queue. Completed results are cached by content, so
// resubmitting the same screenplay completes immediately while the cache
// entry is fresh.
package jobs
