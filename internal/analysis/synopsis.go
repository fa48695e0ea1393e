package analysis

import (
	"regexp"
	"strings"

	"slugline/internal/breakdown"
	"slugline/internal/patterns"
	"slugline/internal/textutil"
)

type labeledCue struct {
	label string
	cues  []string
}

// SynopsisAnalyzer writes a one-line scene summary. It extracts semantic
// entities from the scene, then walks the scene type's template list in
// order and takes the first template whose placeholders are all available.
// When no template qualifies it falls back to a verbatim excerpt of the
// first substantive action lines.
type SynopsisAnalyzer struct {
	lib *patterns.Library

	dialogueLine *regexp.Regexp
	placeholder  *regexp.Regexp

	actions    []labeledCue
	discoverbs []labeledCue
	emotions   []labeledCue
	objects    []labeledCue
	details    []labeledCue
	templates  map[breakdown.SceneType][]string
}

// NewSynopsisAnalyzer returns a synopsis analyzer over the shared tables.
func NewSynopsisAnalyzer(lib *patterns.Library) *SynopsisAnalyzer {
	return &SynopsisAnalyzer{
		lib:          lib,
		dialogueLine: regexp.MustCompile(`(?m):[ \t]*([^\n]{20,100})`),
		placeholder:  regexp.MustCompile(`\{(\w+)\}`),
		actions: []labeledCue{
			{"enters", []string{"يدخل", "تدخل", "enters"}},
			{"exits", []string{"يخرج", "تخرج", "exits", "leaves"}},
			{"heads out", []string{"يتجه", "تتجه", "heads"}},
			{"walks", []string{"يمشي", "تمشي", "walks"}},
			{"runs", []string{"يجري", "تجري", "runs"}},
			{"drives", []string{"يقود", "تقود", "drives"}},
			{"sits", []string{"يجلس", "تجلس", "sits"}},
			{"rises", []string{"ينهض", "تنهض", "rises", "stands up"}},
			{"opens", []string{"يفتح", "تفتح", "opens"}},
			{"closes", []string{"يغلق", "تغلق", "closes"}},
			{"takes", []string{"يأخذ", "تأخذ", "takes"}},
			{"puts", []string{"يضع", "تضع", "puts"}},
		},
		discoverbs: []labeledCue{
			{"finds", []string{"يجد", "تجد", "finds"}},
			{"glimpses", []string{"يلمح", "تلمح", "glimpses"}},
			{"discovers", []string{"يكتشف", "تكتشف", "discovers"}},
			{"comes across", []string{"يعثر", "comes across"}},
			{"notices", []string{"يلاحظ", "تقع عين", "notices", "spots"}},
			{"sees", []string{"يرى", "يشاهد", "sees", "watches"}},
		},
		emotions: []labeledCue{
			{"deep anxiety", []string{"قلق", "قلقة", "متوتر", "متوترة", "anxious", "worried", "tense"}},
			{"frustration", []string{"احباط", "محبط", "محبطة", "ضيق", "frustrated"}},
			{"anger", []string{"غضب", "غاضب", "غاضبة", "حدة", "angry", "furious"}},
			{"surprise", []string{"استغراب", "مستغرب", "يستغرب", "surprised", "astonished"}},
			{"happiness", []string{"سعادة", "سعيد", "سعيدة", "فرح", "happy", "joyful"}},
		},
		objects: []labeledCue{
			{"an envelope", []string{"ظرف", "envelope"}},
			{"a mobile phone", []string{"هاتف", "موبايل", "phone"}},
			{"a laptop", []string{"لابتوب", "حاسب آلي", "laptop"}},
			{"a photograph", []string{"صورة", "photo"}},
			{"a document", []string{"مستند", "ملف", "document", "papers"}},
		},
		details: []labeledCue{
			{"on the desk", []string{"على المكتب", "فوق المكتب", "on the desk", "on his desk", "on her desk"}},
			{"under the wipers", []string{"تحت المساح", "under the wiper"}},
			{"on the screen", []string{"على الشاشة", "on the screen"}},
			{"in the room", []string{"في الغرفة", "in the room"}},
			{"in the car", []string{"في السيارة", "in the car"}},
		},
		templates: map[breakdown.SceneType][]string{
			breakdown.SceneDialogue: {
				"{char1} and {char2} talk over {topic}",
				"{char1} and {char2} share an extended exchange",
				"{character} carries the scene in conversation",
			},
			breakdown.SceneAction: {
				"{character} {action} ({location})",
				"{character} {action}",
				"Action sequence around {character}",
			},
			breakdown.SceneDiscovery: {
				"{character} {discover_verb} {object} {detail}",
				"{character} {discover_verb} {object}",
				"{character} comes upon {object}",
			},
			breakdown.SceneConfrontation: {
				"A confrontation between {char1} and {char2} over {topic}",
				"{char1} confronts {char2}",
				"{character} is drawn into open conflict",
			},
			breakdown.SceneEmotional: {
				"{character} is gripped by {emotion} over {topic}",
				"{character} is gripped by {emotion}",
				"An emotional beat lands on {character}",
			},
			breakdown.SceneTransition: {
				"Transition at {location}: {character} {action}",
				"Transition to {location}",
			},
		},
	}
}

// Name implements Analyzer.
func (a *SynopsisAnalyzer) Name() string { return "synopsis" }

// Analyze implements Analyzer. Requires the cast pass to have run.
func (a *SynopsisAnalyzer) Analyze(scene *Scene) (*Result, error) {
	entities := a.extract(scene)

	for _, template := range a.templates[scene.Type] {
		if !a.eligible(template, entities) {
			continue
		}
		return &Result{Synopsis: a.refine(a.fill(template, entities))}, nil
	}
	return &Result{Synopsis: a.excerpt(scene.Block.Text)}, nil
}

// extract pulls the semantic entities templates draw from. Missing entities
// stay empty, which makes templates needing them ineligible.
func (a *SynopsisAnalyzer) extract(scene *Scene) map[string]string {
	entities := map[string]string{
		"action":        firstLabel(scene.Doc, a.actions),
		"discover_verb": firstLabel(scene.Doc, a.discoverbs),
		"emotion":       firstLabel(scene.Doc, a.emotions),
		"object":        firstLabel(scene.Doc, a.objects),
		"detail":        firstLabel(scene.Doc, a.details),
		"topic":         a.topic(scene.Block.Text),
	}
	if len(scene.Cast) > 0 {
		entities["character"] = scene.Cast[0]
		entities["char1"] = scene.Cast[0]
	}
	if len(scene.Cast) > 1 {
		entities["char2"] = scene.Cast[1]
	}
	if scene.Header.Location != breakdown.LocationUnspecified {
		entities["location"] = scene.Header.Location
	}
	return entities
}

// topic reads the first sufficiently long dialogue line and buckets it.
// Scenes without dialogue have no topic.
func (a *SynopsisAnalyzer) topic(text string) string {
	match := a.dialogueLine.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	line := patterns.NewDocument(match[1])
	switch {
	case line.HasAny("تلفزيون", "فيلم", "television", "film", "movie"):
		return "a career prospect"
	case line.HasAny("عمرو دياب", "تامر", "amr diab", "tamer"):
		return "staging a celebration"
	case line.HasAny("مظاهرة", "protest", "demonstration"):
		return "the security situation"
	}
	return "a private matter"
}

func (a *SynopsisAnalyzer) eligible(template string, entities map[string]string) bool {
	for _, match := range a.placeholder.FindAllStringSubmatch(template, -1) {
		if entities[match[1]] == "" {
			return false
		}
	}
	return true
}

func (a *SynopsisAnalyzer) fill(template string, entities map[string]string) string {
	filled := template
	for key, value := range entities {
		if value == "" {
			continue
		}
		filled = strings.ReplaceAll(filled, "{"+key+"}", value)
	}
	return filled
}

// refine finishes a template synopsis: trailing punctuation and a length
// cap around 250 characters.
func (a *SynopsisAnalyzer) refine(synopsis string) string {
	synopsis = strings.TrimSpace(synopsis)
	if synopsis == "" {
		return ""
	}
	if !strings.HasSuffix(synopsis, ".") && !strings.HasSuffix(synopsis, "!") &&
		!strings.HasSuffix(synopsis, "?") && !strings.HasSuffix(synopsis, "؟") {
		synopsis += "."
	}
	return textutil.Excerpt(synopsis, 250)
}

// excerpt summarizes by quoting the first substantive non-dialogue lines.
func (a *SynopsisAnalyzer) excerpt(text string) string {
	lines := strings.Split(text, "\n")
	var kept []string
	total := 0
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" || looksLikeCue(line) || len([]rune(line)) < 15 {
			continue
		}
		kept = append(kept, line)
		total += len(line)
		if total > 200 {
			break
		}
	}
	return textutil.Excerpt(strings.Join(kept, " "), 250)
}

// looksLikeCue reports a dialogue cue line: a short prefix then a colon.
func looksLikeCue(line string) bool {
	idx := strings.IndexByte(line, ':')
	return idx >= 0 && len([]rune(line[:idx])) <= 40
}

func firstLabel(doc *patterns.Document, cues []labeledCue) string {
	for _, entry := range cues {
		if doc.HasAny(entry.cues...) {
			return entry.label
		}
	}
	return ""
}
