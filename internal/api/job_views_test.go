package api

import "testing"

func TestSortJobsNewestFirst(t *testing.T) {
	views := []JobView{
		{ID: "a", CreatedAt: "2026-03-04T10:00:00.000Z"},
		{ID: "b", CreatedAt: "2026-03-04T12:00:00.000Z"},
		{ID: "c", CreatedAt: "2026-03-04T12:00:00.000Z"},
		{ID: "d"},
	}

	sorted := SortJobsNewestFirst(views)
	if len(sorted) != 4 {
		t.Fatalf("sorted length = %d", len(sorted))
	}
	want := []string{"c", "b", "a", "d"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Fatalf("position %d = %q, want %q (full order %+v)", i, sorted[i].ID, id, sorted)
		}
	}
	if views[0].ID != "a" {
		t.Fatal("input slice mutated")
	}

	if got := SortJobsNewestFirst(nil); got != nil {
		t.Fatalf("nil input = %+v", got)
	}
}

func TestParseJobTime(t *testing.T) {
	if ts := ParseJobTime("2026-03-04T10:00:00.000Z"); ts.IsZero() {
		t.Fatal("formatted timestamp did not parse")
	}
	if ts := ParseJobTime("not a time"); !ts.IsZero() {
		t.Fatalf("garbage parsed to %v", ts)
	}
	if ts := ParseJobTime(""); !ts.IsZero() {
		t.Fatalf("empty parsed to %v", ts)
	}
}
