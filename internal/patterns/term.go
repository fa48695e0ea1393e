package patterns

// Term is one vocabulary entry: a canonical element label plus the phrases
// that evidence it. A term matches when some phrase from Any occurs, the
// occurrence is not fully explained by an Excludes phrase, and (when With is
// set) a supporting phrase occurs too.
type Term struct {
	Canonical string
	Any       []string
	With      []string
	// Excludes lists longer phrases that swallow an Any hit, standing in
	// for negative lookahead: "chair" with exclude "wheelchair" matches
	// only when a plain chair occurs on its own.
	Excludes []string
}

// Matches reports whether the term is evidenced in the document.
func (t Term) Matches(d *Document) bool {
	hits := 0
	for _, phrase := range t.Any {
		hits += d.Count(phrase)
	}
	if hits == 0 {
		return false
	}
	for _, phrase := range t.Excludes {
		hits -= d.Count(phrase)
	}
	if hits <= 0 {
		return false
	}
	if len(t.With) == 0 {
		return true
	}
	return d.HasAny(t.With...)
}

// MatchesLabel reports whether an already-extracted item label names this
// term, either by canonical name or by any evidence phrase.
func (t Term) MatchesLabel(label string) bool {
	probe := NewDocument(label)
	if probe.Has(t.Canonical) {
		return true
	}
	for _, phrase := range t.Any {
		if probe.Has(phrase) {
			return true
		}
	}
	return false
}
