// Package analysis holds the specialized scene analyzers: cast extraction,
// prop classification, wardrobe inference, effects and sound detection,
// legal alert scanning, cinematic pattern matching, and synopsis generation.
//
// Each analyzer implements the Analyzer interface: it reads an immutable
// Scene context and returns a partial Result that the orchestrator merges
// into the scene's breakdown record. Analyzers share no mutable state, so a
// failed analyzer costs only its own contribution.
package analysis
