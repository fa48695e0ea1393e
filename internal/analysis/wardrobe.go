package analysis

import (
	"strings"

	"slugline/internal/breakdown"
	"slugline/internal/knowledge"
	"slugline/internal/patterns"
	"slugline/internal/textutil"
)

// WardrobeUnresolved is the description used when no inference rule fires.
const WardrobeUnresolved = "context-dependent"

type descriptorRule struct {
	cues     []string
	clothing string
}

type timeLocationKey struct {
	time     string
	location string
}

// WardrobeAnalyzer infers one costume note per cast member by merging every
// matching rule level: scene descriptors, time and location context,
// profession, social class, and psychological state. Later levels add to
// the description rather than replacing it; duplicate leading concepts are
// dropped at merge time.
type WardrobeAnalyzer struct {
	lib *patterns.Library
	kb  *knowledge.Base

	descriptors  []descriptorRule
	timeLocation map[timeLocationKey]string
	professions  map[string]string
}

// NewWardrobeAnalyzer returns a wardrobe analyzer over the shared tables.
func NewWardrobeAnalyzer(lib *patterns.Library, kb *knowledge.Base) *WardrobeAnalyzer {
	return &WardrobeAnalyzer{
		lib: lib,
		kb:  kb,
		descriptors: []descriptorRule{
			{[]string{"صرامة", "صارمة", "stern", "strict"}, "formal conservative wear, suit or tailored jacket"},
			{[]string{"وقار", "dignified", "stately"}, "formal refined suit"},
			{[]string{"عملية بشدة", "intensely practical"}, "practical plain outfit, minimal accessories"},
			{[]string{"وسامة", "وسيم", "handsome"}, "smart casual shirt and jacket"},
			{[]string{"جمال", "جميلة", "beautiful", "elegant"}, "elegant wear that flatters the look"},
			{[]string{"احباط", "محبط", "frustrated"}, "tidy clothes worn with visible strain"},
			{[]string{"قلق", "متوتر", "anxious", "worried"}, "everyday clothes, restless body language"},
			{[]string{"مشلول", "paralyzed"}, "loungewear, fine robe kept presentable"},
		},
		timeLocation: map[timeLocationKey]string{
			{"night", knowledge.LocationHome}:     "loungewear for the night, fine pajamas",
			{"night", knowledge.LocationRoom}:     "loungewear for the night",
			{"day", knowledge.LocationOffice}:     "formal office attire",
			{"day", knowledge.LocationPrecinct}:   "formal suit with concealed sidearm",
			{"day", knowledge.LocationStation}:    "smart casual work wear",
			{"day", knowledge.LocationVilla}:      "elegant wear fitting the household",
			{"day", knowledge.LocationExterior}:   "casual or semi-formal day wear",
			{"morning", knowledge.LocationOffice}: "formal office attire",
		},
		professions: map[string]string{
			knowledge.ProfessionDetective:   "formal dark suit, concealed sidearm",
			knowledge.ProfessionProducer:    "luxurious suit or upscale smart casual",
			knowledge.ProfessionActress:     "elegant fashionable wardrobe styled per scene",
			knowledge.ProfessionBroadcaster: "formal shirt with conservative jacket",
		},
	}
}

// Name implements Analyzer.
func (a *WardrobeAnalyzer) Name() string { return "wardrobe" }

// Analyze implements Analyzer. Requires the cast pass to have run.
func (a *WardrobeAnalyzer) Analyze(scene *Scene) (*Result, error) {
	result := &Result{}
	locationType := a.kb.LocationType(scene.Header.Location)

	for _, name := range scene.Cast {
		profile, ok := scene.Profiles[name]
		if !ok {
			profile = a.kb.Profile(name)
		}
		result.Wardrobe = append(result.Wardrobe, breakdown.WardrobeNote{
			Character:   profile.FullName,
			Description: a.describe(scene, profile, locationType),
			Inferred:    true,
		})
	}
	return result, nil
}

func (a *WardrobeAnalyzer) describe(scene *Scene, profile knowledge.CharacterProfile, locationType string) string {
	var elements []string

	for _, rule := range a.descriptors {
		if scene.Doc.HasAny(rule.cues...) {
			elements = append(elements, rule.clothing)
		}
	}

	if clothing, ok := a.timeLocation[timeLocationKey{scene.Header.TimeOfDay, locationType}]; ok {
		elements = append(elements, clothing)
	}

	if clothing, ok := a.professions[profile.Profession]; ok && profile.Profession != "" {
		elements = append(elements, clothing)
	}

	if profile.SocialClass == knowledge.ClassUpper && locationType == knowledge.LocationVilla {
		elements = append(elements, "luxurious high-end pieces")
	}

	if state := textutil.Normalize(profile.PsychologicalState); state != "" {
		if strings.Contains(state, "paralyzed") || strings.Contains(state, "sick") {
			elements = append(elements, "loungewear, quality robe or pajamas")
		}
	}

	return mergeWardrobe(elements)
}

// mergeWardrobe deduplicates by leading concept word and joins distinct
// elements with a separator. An empty rule set yields the unresolved
// sentinel.
func mergeWardrobe(elements []string) string {
	if len(elements) == 0 {
		return WardrobeUnresolved
	}
	var unique []string
	seen := make(map[string]bool)
	for _, element := range elements {
		fields := strings.Fields(element)
		if len(fields) == 0 {
			continue
		}
		concept := strings.ToLower(strings.Trim(fields[0], ","))
		if seen[concept] {
			continue
		}
		seen[concept] = true
		unique = append(unique, element)
	}
	if len(unique) == 0 {
		return WardrobeUnresolved
	}
	return strings.Join(unique, " | ")
}
