package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slugline/internal/config"
	"slugline/internal/logging"
)

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("startup message", logging.String("component", "test"))

	content, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "slugline.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "startup message") {
		t.Fatalf("log file missing message: %q", content)
	}
}

func TestConsoleHandlerFormatsFields(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "console.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("scene parsed",
		logging.String(logging.FieldComponent, "parser"),
		logging.Int(logging.FieldScene, 12),
		logging.String("location", "station platform"))

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := strings.TrimSpace(string(content))

	if !strings.Contains(line, "INFO parser: scene parsed") {
		t.Fatalf("component prefix missing: %q", line)
	}
	if !strings.Contains(line, "scene=12") {
		t.Fatalf("scene attribute missing: %q", line)
	}
	if !strings.Contains(line, `location="station platform"`) {
		t.Fatalf("expected quoted multiword value: %q", line)
	}
}

func TestConsoleHandlerOmitsCallerForInfo(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "info.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message without caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), ".go:") {
		t.Fatalf("expected no caller info at info level, got %q", content)
	}
}

func TestJSONHandlerUsesCanonicalKeys(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "json.log")

	logger, err := logging.New(logging.Options{
		Format:      "json",
		Level:       "warn",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Warn("cache miss", logging.String(logging.FieldJobID, "abc"))

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(content, &payload); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if payload["msg"] != "cache miss" {
		t.Fatalf("unexpected msg key: %v", payload)
	}
	if payload["level"] != "warn" {
		t.Fatalf("unexpected level value: %v", payload["level"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("missing ts key: %v", payload)
	}
	if payload["job_id"] != "abc" {
		t.Fatalf("missing job_id attr: %v", payload)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("should not panic", logging.Error(nil))
	component := logging.NewComponentLogger(nil, "jobs")
	component.Info("still fine")
}
