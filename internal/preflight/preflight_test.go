package preflight

import (
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slugline/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckTCPBind_OK(t *testing.T) {
	result := CheckTCPBind("test", "127.0.0.1:7845")
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if result.Detail != "127.0.0.1:7845" {
		t.Fatalf("unexpected resolved address: %s", result.Detail)
	}
}

func TestCheckTCPBind_MissingPort(t *testing.T) {
	result := CheckTCPBind("test", "localhost")
	if result.Passed {
		t.Fatal("expected failure for address without port")
	}
}

func TestCheckTCPBind_Empty(t *testing.T) {
	result := CheckTCPBind("test", "   ")
	if result.Passed {
		t.Fatal("expected failure for blank address")
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	results := RunAll(nil)
	if results != nil {
		t.Fatal("expected nil results for nil config")
	}
}

func TestRunAll_DefaultSocketUnderLogDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Paths.ReportDir = t.TempDir()
	cfg.Paths.APIBind = "127.0.0.1:0"

	results := RunAll(&cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("check %q failed: %s", r.Name, r.Detail)
		}
	}
}

func TestRunAll_ChecksDistinctSocketDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Paths.ReportDir = t.TempDir()
	cfg.Paths.SocketPath = filepath.Join(t.TempDir(), "run", "sluglined.sock")
	cfg.Paths.APIBind = ""

	results := RunAll(&cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	socketCheck := results[2]
	if socketCheck.Name != "Control socket directory" {
		t.Fatalf("unexpected check name: %s", socketCheck.Name)
	}
	if socketCheck.Passed {
		t.Fatal("expected failure for missing socket dir")
	}
}

func TestProbeSocket_NoListener(t *testing.T) {
	probe := ProbeSocket(filepath.Join(t.TempDir(), "missing.sock"))
	if probe.Listening {
		t.Fatal("expected no listener")
	}
	if probe.Detail() != "no daemon listening" {
		t.Fatalf("unexpected detail: %s", probe.Detail())
	}
}

func TestProbeSocket_Listening(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.sock")
	listener, err := net.Listen("unix", path)
	if err != nil {
		if strings.Contains(err.Error(), "operation not permitted") {
			t.Skipf("skipping socket probe test: %v", err)
		}
		t.Fatalf("listen: %v", err)
	}
	defer listener.Close()

	probe := ProbeSocket(path)
	if !probe.Listening {
		t.Fatal("expected listener to be detected")
	}
	if !strings.Contains(probe.Detail(), path) {
		t.Fatalf("expected detail to name the socket, got: %s", probe.Detail())
	}
}
