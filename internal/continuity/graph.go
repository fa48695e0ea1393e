package continuity

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"slugline/internal/breakdown"
)

// recentWindow bounds how far back in a character's timeline a continuation
// link may reach. A shared character further back no longer reads as one
// continuous sequence on screen.
const recentWindow = 3

type timelineEntry struct {
	scene    int
	location string
	time     string
}

// Graph is the cross-scene continuity state. Safe for concurrent use.
type Graph struct {
	mu         sync.Mutex
	characters map[string][]timelineEntry
	props      map[string][]int
	locations  map[string]map[string]bool
}

// NewGraph returns an empty continuity graph.
func NewGraph() *Graph {
	return &Graph{
		characters: make(map[string][]timelineEntry),
		props:      make(map[string][]int),
		locations:  make(map[string]map[string]bool),
	}
}

// RegisterScene records the scene's cast, props, and location in the graph.
// Call after the scene has been annotated, so a scene never links to itself.
func (g *Graph) RegisterScene(b *breakdown.Breakdown) {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry := timelineEntry{scene: b.SceneNumber, location: b.Location, time: b.TimeOfDay}
	for _, name := range b.Cast {
		g.characters[name] = append(g.characters[name], entry)
	}
	for _, item := range append(append([]string{}, b.Props...), b.Vehicles...) {
		g.props[item] = append(g.props[item], b.SceneNumber)
	}
	if b.Location != breakdown.LocationUnspecified {
		seen := g.locations[b.Location]
		if seen == nil {
			seen = make(map[string]bool)
			g.locations[b.Location] = seen
		}
		for _, name := range b.Cast {
			seen[name] = true
		}
	}
}

// DetectContinuation finds the most recent earlier scene this one continues:
// same location, same time of day, and a shared cast member for whom that
// scene still sits within the recent window of appearances. An unspecified
// location never anchors a continuation.
func (g *Graph) DetectContinuation(b *breakdown.Breakdown) (int, bool) {
	if b.Location == breakdown.LocationUnspecified {
		return 0, false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	best := 0
	found := false
	for _, name := range b.Cast {
		entries := g.characters[name]
		start := len(entries) - recentWindow
		if start < 0 {
			start = 0
		}
		for _, entry := range entries[start:] {
			if entry.location != b.Location || entry.time != b.TimeOfDay {
				continue
			}
			if entry.scene >= b.SceneNumber {
				continue
			}
			if entry.scene > best {
				best = entry.scene
				found = true
			}
		}
	}
	return best, found
}

// Notes derives continuity reminders for the scene from earlier
// registrations: props that carry over and characters already seen at this
// location.
func (g *Graph) Notes(b *breakdown.Breakdown) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var notes []string
	for _, item := range append(append([]string{}, b.Props...), b.Vehicles...) {
		priors := priorScenes(g.props[item], b.SceneNumber)
		if len(priors) == 0 {
			continue
		}
		notes = append(notes, fmt.Sprintf("prop %q carries over from scene %s", item, joinScenes(priors)))
	}

	if b.Location != breakdown.LocationUnspecified {
		seen := g.locations[b.Location]
		for _, name := range b.Cast {
			if seen[name] {
				notes = append(notes, fmt.Sprintf("keep wardrobe consistent for %s, seen at this location before", name))
			}
		}
	}
	return notes
}

// Annotate fills the scene's continuity fields from the graph state
// accumulated so far.
func (g *Graph) Annotate(b *breakdown.Breakdown) {
	if prev, ok := g.DetectContinuation(b); ok {
		b.IsContinuation = true
		b.PreviousScene = prev
	}
	for _, note := range g.Notes(b) {
		b.AddContinuityNote(note)
	}
}

func priorScenes(scenes []int, current int) []int {
	var priors []int
	for _, scene := range scenes {
		if scene < current {
			priors = append(priors, scene)
		}
	}
	sort.Ints(priors)
	return priors
}

func joinScenes(scenes []int) string {
	parts := make([]string, len(scenes))
	for i, scene := range scenes {
		parts[i] = strconv.Itoa(scene)
	}
	return strings.Join(parts, ", ")
}
