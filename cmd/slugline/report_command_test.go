package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slugline/internal/testsupport"
)

func TestCLIReportHTML(t *testing.T) {
	configPath, baseDir := setupConfigOnly(t)
	socket := filepath.Join(baseDir, "unused.sock")
	path := testsupport.WriteScreenplay(t, baseDir, "screenplay.txt", testsupport.TwoSceneScreenplay())

	out, _, err := runCLI(t, []string{"report", path}, socket, configPath)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	requireContains(t, out, "Wrote breakdown sheets to")

	reportPath := filepath.Join(baseDir, "reports", "breakdown_sheets.html")
	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "office") {
		t.Fatalf("expected rendered sheet to mention the location, got %d bytes", len(data))
	}
}

func TestCLIReportPDF(t *testing.T) {
	configPath, baseDir := setupConfigOnly(t)
	socket := filepath.Join(baseDir, "unused.sock")
	path := testsupport.WriteScreenplay(t, baseDir, "screenplay.txt", testsupport.TwoSceneScreenplay())

	out, _, err := runCLI(t, []string{"report", path, "--format", "pdf"}, socket, configPath)
	if err != nil {
		t.Fatalf("report --format pdf: %v", err)
	}
	requireContains(t, out, "breakdown_sheets.pdf")

	info, err := os.Stat(filepath.Join(baseDir, "reports", "breakdown_sheets.pdf"))
	if err != nil {
		t.Fatalf("stat report: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty PDF")
	}
}

func TestCLIReportRejectsUnknownFormat(t *testing.T) {
	configPath, baseDir := setupConfigOnly(t)
	socket := filepath.Join(baseDir, "unused.sock")
	path := testsupport.WriteScreenplay(t, baseDir, "screenplay.txt", testsupport.TwoSceneScreenplay())

	_, _, err := runCLI(t, []string{"report", path, "--format", "docx"}, socket, configPath)
	if err == nil || !strings.Contains(err.Error(), "unknown report format") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}
