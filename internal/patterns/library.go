package patterns

import "regexp"

// TimeBucket pairs a canonical time-of-day value with the header and body
// keywords that select it. Buckets are checked in order, so night outranks
// day when a heading carries both.
type TimeBucket struct {
	Canonical string
	Keywords  []string
}

// Library is the full pattern set used by the splitter, header parser, and
// analyzers. Construct with New; instances are independent and immutable
// after construction.
type Library struct {
	// SceneMarker matches a scene heading line and captures the scene
	// number. Tolerant of either marker spelling and leading whitespace.
	SceneMarker *regexp.Regexp

	// DialogueCue matches a character cue line ("NAME:") and captures the
	// name portion before the colon.
	DialogueCue *regexp.Regexp

	// StageNameBefore captures a capitalized name preceding a stage verb
	// ("JOHN enters"). StageNameAfter captures a name following a
	// verb-initial stage direction, the usual order in Arabic action lines.
	StageNameBefore *regexp.Regexp
	StageNameAfter  *regexp.Regexp

	// NameStopwords are tokens never accepted as character names.
	NameStopwords []string

	InteriorTokens []string
	ExteriorTokens []string
	TimeBuckets    []TimeBucket

	Props       []Term
	SetDressing []Term
	Vehicles    []Term

	// Mobility-aid disambiguation cues, counted one per distinct cue.
	WheelchairVehicleCues []string
	WheelchairMedicalCues []string

	Effects []Term
	Sound   []Term

	MusicCues []string
	CrowdCues []string

	ConfrontationCues []string
	DiscoveryCues     []string
	ActionCues        []string
	EmotionCues       []string

	Cinematic []CinematicPattern
}

// New compiles a fresh pattern library.
func New() *Library {
	return &Library{
		SceneMarker: regexp.MustCompile(`(?im)^[ \t]*(?:scene|مشهد)[ \t]*([0-9]+)`),
		DialogueCue: regexp.MustCompile(`(?m)^[ \t]*([A-Za-z\x{0600}-\x{06FF}][A-Za-z\x{0600}-\x{06FF} \t]{0,40}?)[ \t]*:`),

		StageNameBefore: regexp.MustCompile(`\b([A-Z][A-Za-z]*(?:[ \t]+[A-Z][A-Za-z]*){0,2})[ \t]+(?:enters|exits|leaves|arrives|sits|stands|walks|runs)\b`),
		StageNameAfter:  regexp.MustCompile(`(?:يدخل|تدخل|يخرج|تخرج|يجلس|تجلس|يقف|تقف)[ \t]+([\x{0600}-\x{06FF}]{2,40})`),

		NameStopwords: []string{
			"scene", "مشهد", "int", "ext", "داخلي", "خارجي",
			"he", "she", "it", "they", "we", "i", "you",
			"the", "a", "an", "then", "and", "but", "who",
			"هو", "هي", "هم", "نحن", "انا", "انت",
		},

		InteriorTokens: []string{"int", "interior", "داخلي"},
		ExteriorTokens: []string{"ext", "exterior", "خارجي"},
		TimeBuckets: []TimeBucket{
			{Canonical: "night", Keywords: []string{"night", "ليل"}},
			{Canonical: "day", Keywords: []string{"day", "نهار"}},
			{Canonical: "dawn", Keywords: []string{"dawn", "فجر"}},
			{Canonical: "dusk", Keywords: []string{"dusk", "sunset", "غروب", "مغرب"}},
			{Canonical: "morning", Keywords: []string{"morning", "صباح"}},
			{Canonical: "evening", Keywords: []string{"evening", "مساء"}},
		},

		Props: []Term{
			{Canonical: "envelope", Any: []string{"ظرف", "مظروف", "envelope"}},
			{Canonical: "phone", Any: []string{"هاتف", "موبايل", "تليفون", "phone", "mobile"}},
			{Canonical: "magazine", Any: []string{"مجلة", "صحيفة", "magazine", "newspaper"}},
			{Canonical: "bag", Any: []string{"حقيبة", "شنطة", "bag", "briefcase"}},
			{Canonical: "cup", Any: []string{"كأس", "كوب", "فنجان", "cup", "glass"}},
			{Canonical: "key", Any: []string{"مفتاح", "مفاتيح", "key", "keys"}},
			{Canonical: "glasses", Any: []string{"نظارة", "نظارات", "eyeglasses", "glasses"}},
			{Canonical: "wristwatch", Any: []string{"ساعة يد", "ساعة حائط", "wristwatch"}},
			{Canonical: "laptop", Any: []string{"لابتوب", "حاسب آلي", "كمبيوتر", "laptop", "computer"}},
			{Canonical: "cassette", Any: []string{"كاسيت", "راديو", "cassette", "radio"}},
			{Canonical: "photograph", Any: []string{"صورة", "صور", "photograph", "photo"}},
			{Canonical: "document", Any: []string{"مستند", "ملف", "أوراق", "document", "file", "papers"}},
			{Canonical: "crutch", Any: []string{"عكاز", "عكازة", "crutch", "crutches"}},
			{Canonical: "medicine", Any: []string{"حبوب", "دواء", "علاج", "medicine", "pills"}},
			{Canonical: "wheelchair", Any: []string{"كرسي متحرك", "wheelchair"}},
		},
		SetDressing: []Term{
			{Canonical: "chair", Any: []string{"كرسي", "chair"}, Excludes: []string{"كرسي متحرك", "wheelchair"}},
			{Canonical: "table", Any: []string{"طاولة", "منضدة", "table", "desk"}},
			{Canonical: "mirror", Any: []string{"مرآة", "مراية", "mirror"}},
			{Canonical: "bed", Any: []string{"سرير", "bed"}},
			{Canonical: "closet", Any: []string{"خزانة", "دولاب", "closet", "cupboard"}},
			{Canonical: "shelf", Any: []string{"رف", "أرفف", "shelf", "shelves"}},
			{Canonical: "painting", Any: []string{"لوحة", "لوحات", "painting"}},
			{Canonical: "curtain", Any: []string{"ستارة", "ستائر", "curtain", "curtains"}},
			{Canonical: "sofa", Any: []string{"أريكة", "كنبة", "sofa", "couch"}},
		},
		Vehicles: []Term{
			{Canonical: "car", Any: []string{"سيارة", "car"}, Excludes: []string{"سيارة لعبة", "toy car"}},
			{Canonical: "motorcycle", Any: []string{"دراجة نارية", "دراجة بخارية", "دراجة", "motorcycle", "bike"}},
			{Canonical: "plane", Any: []string{"طائرة", "plane", "airplane"}},
			{Canonical: "boat", Any: []string{"قارب", "مركب", "boat"}},
			{Canonical: "bus", Any: []string{"حافلة", "أتوبيس", "bus"}},
		},

		WheelchairVehicleCues: []string{
			"يدفع", "سرعة", "يتحرك", "طريق", "شارع",
			"push", "pushed", "pushes", "speed", "moves", "road", "street",
		},
		WheelchairMedicalCues: []string{
			"طبي", "مريض", "يجلس", "مشلول", "إعاقة",
			"medical", "patient", "sitting", "sits", "paralyzed", "disability",
		},

		Effects: []Term{
			{Canonical: "practical effects", Any: []string{"انفجار", "تفجير", "دخان", "نار", "explosion", "smoke", "fire"}},
			{Canonical: "weather effects", Any: []string{"مطر", "ثلج", "رياح", "rain", "snow", "wind"}},
			{Canonical: "screen playback", Any: []string{"playback"}},
			{Canonical: "screen playback", Any: []string{"شاشة", "screen"}, With: []string{"حاسب", "كمبيوتر", "لابتوب", "computer", "laptop", "monitor", "desktop"}},
		},
		Sound: []Term{
			{Canonical: "dialogue", Any: []string{"حوار", "يتحدث", "تتحدث", "يقول", "تقول", "dialogue", "talks", "says", "speaks"}},
			{Canonical: "score music", Any: []string{"يغني", "موسيقى", "أغنية", "كاسيت", "sings", "music", "song", "cassette"}},
			{Canonical: "door knock", Any: []string{"يطرق", "طرق الباب", "طرق على الباب", "knock", "knocks", "knocking"}},
			{Canonical: "vehicle engine", Any: []string{"محرك", "صوت سيارة", "صوت السيارة", "engine", "horn"}},
		},

		MusicCues: []string{
			"يغني", "تغني", "أغنية", "موسيقى", "كاسيت",
			"sings", "song", "music", "soundtrack", "cassette",
		},
		CrowdCues: []string{
			"جمهور", "حشد", "زحام", "مارة", "ناس كتير",
			"crowd", "audience", "passersby", "onlookers",
		},

		ConfrontationCues: []string{
			"مواجهة", "صراع", "خلاف", "جدال",
			"confrontation", "conflict", "argument", "quarrel",
		},
		DiscoveryCues: []string{
			"يجد", "تجد", "يلمح", "تلمح", "يكتشف", "تكتشف", "يعثر", "تقع عين", "يلاحظ",
			"finds", "discovers", "notices", "spots", "glimpses", "comes across",
		},
		ActionCues: []string{
			"يدخل", "يخرج", "يجري", "يقفز", "يقود", "يضرب",
			"enters", "exits", "runs", "jumps", "drives", "hits",
		},
		EmotionCues: []string{
			"قلق", "حزن", "احباط", "سعادة", "فرح", "غضب",
			"anxious", "worried", "sad", "frustrated", "happy", "angry",
		},

		Cinematic: cinematicPatterns(),
	}
}
