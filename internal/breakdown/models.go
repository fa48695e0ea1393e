package breakdown

import "strings"

// Category identifies which breakdown-sheet bucket a physical element
// belongs to. Every element lands in exactly one category.
type Category string

const (
	CategoryProps       Category = "props"
	CategorySetDressing Category = "set_dressing"
	CategoryVehicles    Category = "vehicles"
)

var allCategories = []Category{CategoryProps, CategorySetDressing, CategoryVehicles}

// Categories returns all element categories in priority order
// (vehicles > props > set_dressing is enforced by the classifier, not here).
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// ParseCategory converts a raw string to a Category.
func ParseCategory(value string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range allCategories {
		if c == known {
			return known, true
		}
	}
	return "", false
}

// Placement classifies a scene heading as interior, exterior, or both.
type Placement string

const (
	PlacementInterior    Placement = "interior"
	PlacementExterior    Placement = "exterior"
	PlacementMixed       Placement = "interior/exterior"
	PlacementUnspecified Placement = "unspecified"
)

// SceneType buckets a scene for synopsis templates and cinematic defaults.
type SceneType string

const (
	SceneDialogue      SceneType = "dialogue"
	SceneAction        SceneType = "action"
	SceneDiscovery     SceneType = "discovery"
	SceneConfrontation SceneType = "confrontation"
	SceneEmotional     SceneType = "emotional"
	SceneTransition    SceneType = "transition"
)

// Component selects which slice of the pipeline an analysis request runs.
type Component string

const (
	ComponentFull       Component = "full_analysis"
	ComponentCast       Component = "cast_only"
	ComponentProps      Component = "props_only"
	ComponentWardrobe   Component = "wardrobe_only"
	ComponentLegal      Component = "legal_only"
	ComponentSynopsis   Component = "synopsis_only"
	ComponentContinuity Component = "continuity_only"
)

var allComponents = []Component{
	ComponentFull, ComponentCast, ComponentProps, ComponentWardrobe,
	ComponentLegal, ComponentSynopsis, ComponentContinuity,
}

// Components returns every valid component scope.
func Components() []Component {
	out := make([]Component, len(allComponents))
	copy(out, allComponents)
	return out
}

// ParseComponent converts a raw string to a Component. An empty string
// selects the full analysis.
func ParseComponent(value string) (Component, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ComponentFull, true
	}
	c := Component(value)
	for _, known := range allComponents {
		if c == known {
			return known, true
		}
	}
	return "", false
}

// TimeUnspecified is the canonical value when neither heading nor body
// reveals a time of day. Known values are lowercase English buckets
// (day, night, dawn, dusk, morning, evening).
const TimeUnspecified = "unspecified"

// LocationUnspecified is the canonical value for an unresolvable location.
const LocationUnspecified = "unspecified"

// Severity ranks a legal flag.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// LegalFlag records a rights-clearance concern found in the scene text.
type LegalFlag struct {
	Kind     string   `json:"kind"`
	Entity   string   `json:"entity"`
	Detail   string   `json:"detail"`
	Severity Severity `json:"severity"`
}

// WardrobeNote is a per-character costume inference.
type WardrobeNote struct {
	Character   string `json:"character"`
	Description string `json:"description"`
	Inferred    bool   `json:"is_inferred"`
}

// CinematicNote carries the blocking/camera suggestion for a scene.
// Pattern is empty when the note came from the scene-type default.
type CinematicNote struct {
	Pattern    string `json:"pattern,omitempty"`
	Note       string `json:"note"`
	CameraNote string `json:"camera_note,omitempty"`
}

// Breakdown is the complete per-scene production record.
type Breakdown struct {
	SceneNumber int       `json:"scene_number"`
	Placement   Placement `json:"placement"`
	TimeOfDay   string    `json:"time_of_day"`
	Location    string    `json:"location"`
	SceneType   SceneType `json:"scene_type"`

	Synopsis string   `json:"synopsis"`
	Cast     []string `json:"cast"`
	Extras   string   `json:"extras,omitempty"`

	Props       []string `json:"props"`
	SetDressing []string `json:"set_dressing"`
	Vehicles    []string `json:"vehicles"`

	Wardrobe []WardrobeNote `json:"wardrobe,omitempty"`
	Makeup   []string       `json:"makeup,omitempty"`
	Effects  []string       `json:"effects,omitempty"`
	Sound    []string       `json:"sound,omitempty"`

	LegalFlags []LegalFlag   `json:"legal_flags,omitempty"`
	Cinematic  CinematicNote `json:"cinematic"`

	CameraLighting string `json:"camera_lighting,omitempty"`

	IsContinuation  bool     `json:"is_continuation"`
	PreviousScene   int      `json:"previous_scene,omitempty"`
	ContinuityNotes []string `json:"continuity_notes,omitempty"`

	// Confidence is a deterministic completeness score in [0,1] derived
	// from how many record sections the analyzers managed to populate.
	Confidence float64 `json:"confidence"`
}

// AddCast appends a cast member unless already present, preserving first
// appearance order.
func (b *Breakdown) AddCast(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	for _, existing := range b.Cast {
		if existing == name {
			return
		}
	}
	b.Cast = append(b.Cast, name)
}

// HasCast reports whether name is already in the cast list.
func (b *Breakdown) HasCast(name string) bool {
	for _, existing := range b.Cast {
		if existing == name {
			return true
		}
	}
	return false
}

// AddElement places an item in the bucket for the given category,
// deduplicating within that bucket.
func (b *Breakdown) AddElement(category Category, item string) {
	item = strings.TrimSpace(item)
	if item == "" {
		return
	}
	bucket := b.bucket(category)
	if bucket == nil {
		return
	}
	for _, existing := range *bucket {
		if existing == item {
			return
		}
	}
	*bucket = append(*bucket, item)
}

// Elements returns the bucket contents for a category. The returned slice is
// the live backing array; callers must not mutate it.
func (b *Breakdown) Elements(category Category) []string {
	bucket := b.bucket(category)
	if bucket == nil {
		return nil
	}
	return *bucket
}

func (b *Breakdown) bucket(category Category) *[]string {
	switch category {
	case CategoryProps:
		return &b.Props
	case CategorySetDressing:
		return &b.SetDressing
	case CategoryVehicles:
		return &b.Vehicles
	default:
		return nil
	}
}

// AddEffect appends a deduplicated effects entry.
func (b *Breakdown) AddEffect(item string) {
	b.Effects = appendUnique(b.Effects, item)
}

// AddSound appends a deduplicated sound entry.
func (b *Breakdown) AddSound(item string) {
	b.Sound = appendUnique(b.Sound, item)
}

// AddContinuityNote appends a deduplicated continuity note.
func (b *Breakdown) AddContinuityNote(note string) {
	b.ContinuityNotes = appendUnique(b.ContinuityNotes, note)
}

func appendUnique(list []string, item string) []string {
	item = strings.TrimSpace(item)
	if item == "" {
		return list
	}
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}
