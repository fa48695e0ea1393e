package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// TwoSceneScreenplay returns a short English screenplay that splits into two
// scenes with a recurring known character, so scene queries after indexing
// can resolve "Medhat Mahfouz".
func TwoSceneScreenplay() string {
	return "Scene 1 INT DAY OFFICE\n" +
		"MEDHAT: we sign the contract tonight\n" +
		"Scene 2 EXT NIGHT STREET\n" +
		"MEDHAT enters a car"
}

// ArabicScreenplay returns a two-scene fixture using the Arabic scene marker
// and Arabic character aliases.
func ArabicScreenplay() string {
	return "مشهد 1 ليل داخلي شقة نهال\n" +
		"نهال: الملفات دي لازم تتراجع الليلة\n" +
		"مشهد 2 نهار خارجي الشارع\n" +
		"مدحت يركب سيارة"
}

// WriteScreenplay stores the text under dir and returns the file path.
func WriteScreenplay(t testing.TB, dir, name, text string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
