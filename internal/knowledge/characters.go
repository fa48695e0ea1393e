package knowledge

import "slugline/internal/textutil"

// Profession and social class values used by wardrobe inference rules.
const (
	ProfessionDetective   = "state security detective"
	ProfessionProducer    = "producer"
	ProfessionActress     = "actress"
	ProfessionBroadcaster = "religious broadcaster"

	ClassUpper       = "upper"
	ClassUpperMiddle = "upper middle"
	ClassMiddle      = "middle"
)

// CharacterProfile describes a known or synthesized character. Profiles are
// shared by reference across scenes; only the knowledge base creates them.
type CharacterProfile struct {
	Name               string `json:"name"`
	FullName           string `json:"full_name"`
	Gender             string `json:"gender,omitempty"`
	AgeRange           string `json:"age_range,omitempty"`
	Profession         string `json:"profession,omitempty"`
	SocialClass        string `json:"social_class,omitempty"`
	PsychologicalState string `json:"psychological_state,omitempty"`
}

type characterEntry struct {
	profile CharacterProfile
	aliases []string
}

func knownCharacters() []characterEntry {
	return []characterEntry{
		{
			profile: CharacterProfile{
				Name: "Nihal", FullName: "Nihal Samaha",
				Gender: "female", AgeRange: "30s",
				SocialClass:        ClassUpperMiddle,
				PsychologicalState: "anxious, stern",
			},
			aliases: []string{"نهال", "nihal"},
		},
		{
			profile: CharacterProfile{
				Name: "Nour", FullName: "Nour Tawfik",
				Gender: "female", AgeRange: "30s",
				Profession:  ProfessionActress,
				SocialClass: ClassUpper,
			},
			aliases: []string{"نور", "nour"},
		},
		{
			profile: CharacterProfile{
				Name: "Karim", FullName: "Karim Rizk",
				Gender: "male", AgeRange: "50s",
				Profession:  ProfessionProducer,
				SocialClass: ClassUpper,
			},
			aliases: []string{"كريم", "karim"},
		},
		{
			profile: CharacterProfile{
				Name: "Medhat", FullName: "Medhat Mahfouz",
				Gender: "male", AgeRange: "30s",
				Profession:  ProfessionDetective,
				SocialClass: ClassMiddle,
			},
			aliases: []string{"مدحت", "medhat"},
		},
		{
			profile: CharacterProfile{
				Name: "Tarek", FullName: "Tarek Yehia",
				Gender: "male", AgeRange: "40s",
				Profession:  ProfessionBroadcaster,
				SocialClass: ClassUpperMiddle,
			},
			aliases: []string{"طارق", "tarek"},
		},
		{
			profile: CharacterProfile{
				Name: "Amira", FullName: "Amira Heshmat",
				Gender: "female", AgeRange: "30s",
				SocialClass: ClassUpper,
			},
			aliases: []string{"أميرة", "amira"},
		},
		{
			profile: CharacterProfile{
				Name: "Raafat", FullName: "Raafat Farid",
				Gender: "male", AgeRange: "40s",
				SocialClass:        ClassUpper,
				PsychologicalState: "paralyzed",
			},
			aliases: []string{"رأفت", "raafat"},
		},
	}
}

// LookupCharacter resolves an alias, short name, or full name to a known
// profile. Matching is exact after normalization, so case and hamza or teh
// marbuta spelling variants all hit the same entry.
func (b *Base) LookupCharacter(alias string) (CharacterProfile, bool) {
	idx, ok := b.aliasIndex[textutil.Normalize(alias)]
	if !ok {
		return CharacterProfile{}, false
	}
	return b.characters[idx].profile, true
}

// CanonicalName maps an alias to the character's full name, or returns the
// trimmed alias itself when unknown.
func (b *Base) CanonicalName(alias string) string {
	if profile, ok := b.LookupCharacter(alias); ok {
		return profile.FullName
	}
	return collapseSpaces(alias)
}

// Profile returns the known profile for a name, or a synthesized profile
// carrying only the name when the knowledge base has no entry.
func (b *Base) Profile(name string) CharacterProfile {
	if profile, ok := b.LookupCharacter(name); ok {
		return profile
	}
	name = collapseSpaces(name)
	return CharacterProfile{Name: name, FullName: name}
}
