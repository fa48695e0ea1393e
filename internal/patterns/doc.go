// Package patterns holds the compiled text patterns and vocabularies the
// breakdown pipeline matches against: scene markers, dialogue cues, stage
// directions, element taxonomies, and cinematic trigger sets. Entries are
// written in natural spelling for both scripts; matching happens against
// normalized text, so orthographic variants collapse to one entry.
//
// Build one Library per pipeline with New. The library is read-only after
// construction and safe for concurrent use.
package patterns
