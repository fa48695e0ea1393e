package patterns

import "testing"

func TestDocumentCountTokenBoundaries(t *testing.T) {
	d := NewDocument("A red carpet. JOHN enters a car. The car stops.")
	if got := d.Count("car"); got != 2 {
		t.Fatalf("car count = %d, want 2", got)
	}
	if d.Has("carp") {
		t.Fatalf("partial token should not match")
	}
}

func TestDocumentArabicSubstring(t *testing.T) {
	d := NewDocument("تخرج نهال من المكتب وتحمل حقيبة كبيرة")
	if !d.Has("حقيبة") {
		t.Fatalf("expected bag phrase to match")
	}
	if !d.Has("مكتب") {
		t.Fatalf("expected office substring to match inside المكتب")
	}
	if d.Has("سيارة") {
		t.Fatalf("unexpected car match")
	}
}

func TestDocumentNormalizesNeedleAndText(t *testing.T) {
	d := NewDocument("أميرة تقف أمام المرآة")
	if !d.Has("اميره") {
		t.Fatalf("hamza and teh marbuta variants should fold together")
	}
}

func TestMatchCountCountsDistinctPhrases(t *testing.T) {
	d := NewDocument("pushed down the street at full speed, pushed hard")
	cues := []string{"pushed", "street", "speed", "patient"}
	if got := d.MatchCount(cues); got != 3 {
		t.Fatalf("MatchCount = %d, want 3", got)
	}
}

func TestIndexAfterOrdering(t *testing.T) {
	d := NewDocument("يجلس مدحت أمام المكتب")
	at := d.IndexAfter("يجلس", 0)
	if at < 0 {
		t.Fatalf("anchor not found")
	}
	if d.IndexAfter("امام", at+1) < 0 {
		t.Fatalf("follow phrase not found after anchor")
	}
	if d.IndexAfter("يجلس", at+1) >= 0 {
		t.Fatalf("anchor should not occur twice")
	}
}
