package patterns

// Trigger is one evidence slot of a cinematic pattern. It fires when any
// phrase from Any occurs; when Then is set, a Then phrase must also occur
// after the Any hit, which captures ordered pairings like "sits ... facing".
type Trigger struct {
	Any  []string
	Then []string
}

// Matches reports whether the trigger fires in the document.
func (t Trigger) Matches(d *Document) bool {
	for _, anchor := range t.Any {
		at := d.IndexAfter(anchor, 0)
		if at < 0 {
			continue
		}
		if len(t.Then) == 0 {
			return true
		}
		for _, follow := range t.Then {
			if d.IndexAfter(follow, at+1) >= 0 {
				return true
			}
		}
	}
	return false
}

// CinematicPattern names a recognizable staging situation with the blocking
// note and camera note it implies. A pattern fires on a tolerant majority:
// all triggers but one.
type CinematicPattern struct {
	Name       string
	Triggers   []Trigger
	Note       string
	CameraNote string
}

// MatchCount returns how many triggers fire in the document.
func (p CinematicPattern) MatchCount(d *Document) int {
	count := 0
	for _, trigger := range p.Triggers {
		if trigger.Matches(d) {
			count++
		}
	}
	return count
}

func cinematicPatterns() []CinematicPattern {
	return []CinematicPattern{
		{
			Name: "power_confrontation",
			Triggers: []Trigger{
				{Any: []string{"يجلس", "sits"}, Then: []string{"امام", "أمام", "facing", "across from", "opposite"}},
				{Any: []string{"مكتب", "office", "desk"}, Then: []string{"مدير", "رئيس", "منتج", "manager", "director", "producer", "chief"}},
				{Any: []string{"رجل", "a man"}, Then: []string{"وقار", "dignified", "imposing"}},
			},
			Note:       "Confrontation scene: block to foreground the power struggle.",
			CameraNote: "Over-shoulder coverage with alternating angles to stress the dynamic",
		},
		{
			Name: "discovery_moment",
			Triggers: []Trigger{
				{Any: []string{"يجد", "يلمح", "يكتشف", "تقع عين", "finds", "glimpses", "discovers", "notices"}},
				{Any: []string{"ظرف", "مستند", "صورة", "envelope", "document", "photograph"}},
				{Any: []string{"استغراب", "مفاجأة", "surprise", "astonishment"}},
			},
			Note:       "Discovery scene: hold on the character's reaction, then the object.",
			CameraNote: "Close-up on the reaction plus an insert shot of the discovered object",
		},
		{
			Name: "phone_conversation",
			Triggers: []Trigger{
				{Any: []string{"هاتف", "موبايل", "تليفون", "phone"}},
				{Any: []string{"يتحدث في", "تتحدث في", "talks on", "speaking on", "on the phone"}},
			},
			Note:       "Phone call: stage one visible side of the conversation.",
			CameraNote: "Single-sided coverage, stay on the expressions",
		},
		{
			Name: "music_cue",
			Triggers: []Trigger{
				{Any: []string{"يغني", "تغني", "كاسيت", "موسيقى", "sings", "cassette", "music"}},
				{Any: []string{"أغنية", "اغنية", "song"}},
			},
			Note:       "Scored moment: confirm playback rights before the shoot day.",
			CameraNote: "Blend the cue into the scene rather than cutting on it",
		},
		{
			Name: "vehicle_scene",
			Triggers: []Trigger{
				{Any: []string{"سيارة", "يقود", "car", "drives"}},
				{Any: []string{"يدخل", "داخل", "enters", "inside"}, Then: []string{"سيارة", "car"}},
			},
			Note:       "Car scene: process trailer or green screen depending on budget.",
			CameraNote: "Car mounting rigs, match the exterior light",
		},
		{
			Name: "emotional_isolation",
			Triggers: []Trigger{
				{Any: []string{"وحيد", "وحيدة", "منعزل", "alone", "isolated"}},
				{Any: []string{"قلق", "حزن", "احباط", "anxious", "grief", "despair"}, Then: []string{"شديد", "شديدة", "deep", "heavy"}},
				{Any: []string{"يفكر", "تفكر", "thinks", "brooding"}},
			},
			Note:       "Emotional isolation beat: wide framing to underline the solitude.",
			CameraNote: "Wide angle with mood lighting for the internal state",
		},
		{
			Name: "rapid_search",
			Triggers: []Trigger{
				{Any: []string{"بسرعة", "quickly", "hurriedly"}},
				{Any: []string{"يبحث", "تبحث", "searches", "rummages"}},
				{Any: []string{"قلق", "توتر", "anxious", "tense"}},
			},
			Note:       "Search scene: handheld camera to push the urgency.",
			CameraNote: "Handheld with quick cuts for the rush",
		},
		{
			Name: "screen_action",
			Triggers: []Trigger{
				{Any: []string{"لابتوب", "حاسب", "laptop", "computer"}},
				{Any: []string{"يفتح", "تفتح", "ينظر", "تنظر", "opens", "looks at"}},
				{Any: []string{"شاشة", "صورة", "screen", "image"}},
			},
			Note:       "Screen content: keep playback matching across connected scenes.",
			CameraNote: "Screen playback with an over-shoulder angle",
		},
	}
}
