package knowledge

import "slugline/internal/patterns"

// Location type values produced by LocationType.
const (
	LocationHome        = "home"
	LocationRoom        = "room"
	LocationOffice      = "office"
	LocationStation     = "station"
	LocationVilla       = "villa"
	LocationPrecinct    = "precinct"
	LocationCar         = "car"
	LocationExterior    = "exterior"
	LocationUnspecified = "unspecified"
)

type locationRule struct {
	kind     string
	keywords []string
}

// Ordered; the first keyword hit decides, so "غرفة نوم" types as a room
// even inside a home.
func locationRules() []locationRule {
	return []locationRule{
		{LocationHome, []string{"منزل", "بيت", "شقة", "home", "house", "apartment"}},
		{LocationRoom, []string{"غرفة", "room"}},
		{LocationOffice, []string{"مكتب", "office"}},
		{LocationStation, []string{"محطة", "station"}},
		{LocationVilla, []string{"فيلا", "villa"}},
		{LocationPrecinct, []string{"مباحث", "precinct", "police"}},
		{LocationCar, []string{"سيارة", "car"}},
		{LocationExterior, []string{"شارع", "طريق", "street", "road"}},
	}
}

// LocationType classifies a location string into a coarse type for wardrobe
// and set-dressing rules.
func (b *Base) LocationType(location string) string {
	doc := patterns.NewDocument(location)
	for _, rule := range b.locations {
		if doc.HasAny(rule.keywords...) {
			return rule.kind
		}
	}
	return LocationUnspecified
}
