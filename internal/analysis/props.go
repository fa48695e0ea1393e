package analysis

import (
	"slugline/internal/breakdown"
	"slugline/internal/knowledge"
	"slugline/internal/patterns"
	"slugline/internal/textutil"
)

// Classifier assigns an element to exactly one category. Ambiguous mobility
// aids are resolved by context scoring; everything else follows vocabulary
// membership with portable props winning over set dressing, then the fixed
// priority vehicles, props, set dressing.
type Classifier struct {
	lib *patterns.Library
	kb  *knowledge.Base
}

// NewClassifier returns a classifier over the shared tables.
func NewClassifier(lib *patterns.Library, kb *knowledge.Base) *Classifier {
	return &Classifier{lib: lib, kb: kb}
}

// Classify returns the single category for an item plus its canonical
// production label. Context is the scene the item was seen in.
func (c *Classifier) Classify(item string, doc *patterns.Document) (breakdown.Category, string) {
	if c.isWheelchair(item) {
		return c.classifyWheelchair(doc)
	}

	inProps := matchesAnyLabel(c.lib.Props, item)
	inSet := matchesAnyLabel(c.lib.SetDressing, item)
	inVehicles := matchesAnyLabel(c.lib.Vehicles, item)

	switch {
	case inProps && inSet:
		// Portable handling outranks fixed furniture for shared tokens.
		return breakdown.CategoryProps, c.kb.CanonicalProp(item)
	case inVehicles:
		return breakdown.CategoryVehicles, c.kb.CanonicalProp(item)
	case inProps:
		return breakdown.CategoryProps, c.kb.CanonicalProp(item)
	case inSet:
		return breakdown.CategorySetDressing, c.kb.CanonicalProp(item)
	}
	return breakdown.CategoryProps, c.kb.CanonicalProp(item)
}

func (c *Classifier) isWheelchair(item string) bool {
	return textutil.ContainsAny(item, "كرسي متحرك", "wheelchair")
}

// classifyWheelchair scores the surrounding context for vehicle usage
// against medical usage. Vehicle wins only on a clear margin: strictly more
// cues and at least two of them. Ties stay with props.
func (c *Classifier) classifyWheelchair(doc *patterns.Document) (breakdown.Category, string) {
	vehicleScore := doc.MatchCount(c.lib.WheelchairVehicleCues)
	medicalScore := doc.MatchCount(c.lib.WheelchairMedicalCues)
	if vehicleScore > medicalScore && vehicleScore >= 2 {
		return breakdown.CategoryVehicles, "wheelchair"
	}
	return breakdown.CategoryProps, "medical wheelchair"
}

func matchesAnyLabel(terms []patterns.Term, item string) bool {
	for _, term := range terms {
		if term.MatchesLabel(item) {
			return true
		}
	}
	return false
}

// PropAnalyzer extracts candidate elements from the scene vocabulary and
// classifies each into one category. Location-typical set dressing is
// added afterwards so empty interiors still get a dressed set.
type PropAnalyzer struct {
	lib        *patterns.Library
	kb         *knowledge.Base
	classifier *Classifier
}

// NewPropAnalyzer returns a prop analyzer over the shared tables.
func NewPropAnalyzer(lib *patterns.Library, kb *knowledge.Base) *PropAnalyzer {
	return &PropAnalyzer{lib: lib, kb: kb, classifier: NewClassifier(lib, kb)}
}

// Name implements Analyzer.
func (a *PropAnalyzer) Name() string { return "props" }

// Analyze implements Analyzer.
func (a *PropAnalyzer) Analyze(scene *Scene) (*Result, error) {
	result := &Result{Elements: make(map[breakdown.Category][]string)}

	seen := make(map[string]bool)
	for _, terms := range [][]patterns.Term{a.lib.Props, a.lib.SetDressing, a.lib.Vehicles} {
		for _, term := range terms {
			if seen[term.Canonical] || !term.Matches(scene.Doc) {
				continue
			}
			seen[term.Canonical] = true
			category, label := a.classifier.Classify(term.Canonical, scene.Doc)
			result.Elements[category] = append(result.Elements[category], label)
		}
	}

	for _, item := range a.locationDressing(scene.Header.Location) {
		result.Elements[breakdown.CategorySetDressing] = append(result.Elements[breakdown.CategorySetDressing], item)
	}
	return result, nil
}

// locationDressing proposes set dressing typical for the location. The
// checks are ordered so a makeup room is not swallowed by the generic room
// branch.
func (a *PropAnalyzer) locationDressing(location string) []string {
	switch {
	case textutil.ContainsAny(location, "مكتب", "office"):
		return []string{"manager desk", "chairs", "shelves"}
	case textutil.ContainsAny(location, "مكياج", "makeup"):
		return []string{"lighted mirror", "makeup chair", "tool table"}
	case textutil.ContainsAny(location, "منزل", "بيت", "شقة", "غرفة", "home", "house", "apartment", "room"):
		if textutil.ContainsAny(location, "نوم", "bedroom") {
			return []string{"bed", "closet", "side lighting"}
		}
		return []string{"home furniture"}
	case textutil.ContainsAny(location, "فيلا", "villa"):
		return []string{"upscale furniture", "luxury decor"}
	}
	return nil
}
