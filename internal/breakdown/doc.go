// Package breakdown defines the per-scene production breakdown record and the
// enumerations shared across the pipeline.
//
// A Breakdown is the single artifact every analyzer contributes to: header
// facts (placement, time of day, location), cast, categorized physical
// elements, wardrobe and continuity notes, legal flags, and the synopsis.
// Treat this package as the source of truth for element categories and scene
// types; analyzers and the run store both key on these values.
package breakdown
