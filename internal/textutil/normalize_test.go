package textutil

import "testing"

func TestNormalizeFoldsArabicOrthography(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"alef hamza above", "أميرة", "اميره"},
		{"alef hamza below", "إعاقة", "اعاقه"},
		{"alef madda", "آلي", "الي"},
		{"teh marbuta", "سيارة", "سياره"},
		{"alef maksura", "مبنى", "مبني"},
		{"tatweel stripped", "هـــاتف", "هاتف"},
		{"diacritics stripped", "مَشْهَد", "مشهد"},
		{"latin lowered", "INT. Office", "int. office"},
		{"whitespace collapsed", "  ليل   خارجي ", "ليل خارجي"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeKeepsLatinAccents(t *testing.T) {
	if got := Normalize("Café"); got != "café" {
		t.Fatalf("expected composed accent to survive, got %q", got)
	}
}

func TestEqualNormalized(t *testing.T) {
	if !EqualNormalized("أميرة", "اميرة") {
		t.Fatal("expected hamza variants to compare equal")
	}
	if EqualNormalized("نور", "كريم") {
		t.Fatal("distinct names must not compare equal")
	}
}

func TestContainsAny(t *testing.T) {
	body := "يدفع الكرسي المتحرك بسرعة في الشارع"
	if !ContainsAny(body, "سرعة", "محرك") {
		t.Fatal("expected keyword hit")
	}
	if ContainsAny(body, "مستشفى") {
		t.Fatal("unexpected keyword hit")
	}
}

func TestCountMatches(t *testing.T) {
	body := "the wheelchair is pushed at speed down the street"
	got := CountMatches(body, []string{"pushed", "speed", "street", "patient"})
	if got != 3 {
		t.Fatalf("CountMatches = %d, want 3", got)
	}
}

func TestNameLike(t *testing.T) {
	cases := []struct {
		candidate string
		max       int
		want      bool
	}{
		{"JOHN", 3, true},
		{"نهال سماحة", 3, true},
		{"مدحت محفوظ الكبير", 3, true},
		{"one two three four", 3, false},
		{"R2D2", 3, false},
		{"", 3, false},
	}
	for _, tc := range cases {
		if got := NameLike(tc.candidate, tc.max); got != tc.want {
			t.Fatalf("NameLike(%q) = %v, want %v", tc.candidate, got, tc.want)
		}
	}
}

func TestExcerptCutsAtWordBoundary(t *testing.T) {
	text := "one two three four five six seven eight nine ten"
	got := Excerpt(text, 20)
	if len([]rune(got)) > 20 {
		t.Fatalf("excerpt too long: %q", got)
	}
	if got[len(got)-3:] != "..." {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}

func TestExcerptShortTextUnchanged(t *testing.T) {
	if got := Excerpt("short text", 250); got != "short text" {
		t.Fatalf("short text modified: %q", got)
	}
}
