// Package continuity tracks characters, props, and locations across scenes
// and derives continuation links and continuity reminders from the
// accumulated graph. Scenes must be registered in script order; the graph
// only ever grows.
package continuity
