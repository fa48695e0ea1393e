package main

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"slugline/internal/preflight"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Daemon", statusError, "not reachable", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Daemon:", "[ERROR] not reachable")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Daemon", statusOK, "running", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestPreflightLines(t *testing.T) {
	checks := []preflight.Result{
		{Name: "Log directory", Passed: true, Detail: "/tmp/logs (read/write ok)"},
		{Name: "API bind address", Passed: false, Detail: "missing bind address"},
	}
	lines := preflightLines(checks, false)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "[OK]") {
		t.Fatalf("expected OK line first, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "[ERROR] missing bind address") {
		t.Fatalf("expected error detail in second line, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "Failing checks") || !strings.Contains(lines[2], "API bind address") {
		t.Fatalf("expected failing-checks summary, got %q", lines[2])
	}
}

func TestRenderSectionHeader(t *testing.T) {
	lines := renderSectionHeader("Job Counts", false)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "== Job Counts ==" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != strings.Repeat("-", len(lines[0])) {
		t.Fatalf("unexpected rule line: %q", lines[1])
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatal("expected non-file writer to disable color")
	}
}
