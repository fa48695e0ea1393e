// Package parser orchestrates the screenplay breakdown pipeline: split the
// document into scene blocks, run the analyzer set the requested component
// scope calls for, then refine each record with continuity links and
// production totals. Scene failures are isolated; one bad scene never
// aborts the batch.
package parser
