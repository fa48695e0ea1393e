package main

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"slugline/internal/testsupport"
)

func TestCLISubmitAndJobsFlow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"daemon", "start"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("daemon start: %v", err)
	}
	requireContains(t, out, "Daemon started")

	path := testsupport.WriteScreenplay(t, env.baseDir, "screenplay.txt", testsupport.TwoSceneScreenplay())

	out, _, err = runCLI(t, []string{"submit", path, "--priority", "high"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	requireContains(t, out, "Queued job")

	waitFor(t, 10*time.Second, func() bool {
		return env.queue.Stats().Completed == 1
	})

	list := env.queue.List()
	if len(list) != 1 {
		t.Fatalf("expected 1 job, got %d", len(list))
	}
	jobID := list[0].ID

	out, _, err = runCLI(t, []string{"jobs", "list"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("jobs list: %v", err)
	}
	requireContains(t, out, "full_analysis")
	requireContains(t, out, "completed")

	out, _, err = runCLI(t, []string{"jobs", "show", jobID}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("jobs show: %v", err)
	}
	requireContains(t, out, "Medhat Mahfouz")
	requireContains(t, out, "office")
	requireContains(t, out, "completed")

	out, _, err = runCLI(t, []string{"jobs", "show", jobID, "--json"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("jobs show --json: %v", err)
	}
	requireContains(t, out, `"sceneNumber": 1`)

	out, _, err = runCLI(t, []string{"scenes", "Medhat Mahfouz"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("scenes: %v", err)
	}
	requireContains(t, out, "office")
	requireContains(t, out, "street")

	out, _, err = runCLI(t, []string{"scenes", "Nobody"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("scenes unknown: %v", err)
	}
	requireContains(t, out, "No indexed scenes feature Nobody")

	out, _, err = runCLI(t, []string{"stats"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	requireContains(t, out, "Completed")
	requireContains(t, out, "Indexed scenes")

	if _, _, err = runCLI(t, []string{"jobs", "cancel", jobID}, env.socketPath, env.configPath); err == nil {
		t.Fatal("expected cancelling a completed job to fail")
	}

	out, _, err = runCLI(t, []string{"daemon", "status"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("daemon status: %v", err)
	}
	requireContains(t, out, "Running:")
	requireContains(t, out, "yes")

	out, _, err = runCLI(t, []string{"status"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Daemon")
	requireContains(t, out, "Preflight Checks")
	requireContains(t, out, "Job Counts")
}

func TestCLISubmitCacheHit(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"daemon", "start"}, env.socketPath, env.configPath); err != nil {
		t.Fatalf("daemon start: %v", err)
	}

	path := testsupport.WriteScreenplay(t, env.baseDir, "screenplay.txt", testsupport.ArabicScreenplay())

	if _, _, err := runCLI(t, []string{"submit", path}, env.socketPath, env.configPath); err != nil {
		t.Fatalf("submit: %v", err)
	}
	waitFor(t, 10*time.Second, func() bool {
		return env.queue.Stats().Completed == 1
	})

	out, _, err := runCLI(t, []string{"submit", path}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	requireContains(t, out, "Served from cache")
}

func TestCLISubmitRejectsBadPriority(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"submit", "ignored.txt", "--priority", "soon"}, env.socketPath, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "unknown priority") {
		t.Fatalf("expected unknown priority error, got %v", err)
	}
}

func TestCLIJobsRequiresDaemon(t *testing.T) {
	configPath, baseDir := setupConfigOnly(t)
	socket := filepath.Join(baseDir, "missing.sock")

	_, _, err := runCLI(t, []string{"jobs", "list"}, socket, configPath)
	if err == nil || !strings.Contains(err.Error(), "start the daemon") {
		t.Fatalf("expected daemon-not-running error, got %v", err)
	}
}

func TestCLIVersion(t *testing.T) {
	out, _, err := runCLI(t, []string{"version"}, "", "")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "slugline")
}

func setupConfigOnly(t *testing.T) (string, string) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	base := testsupport.BaseDir(cfg)
	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)
	return configPath, base
}
