package preflight

import (
	"path/filepath"

	"slugline/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every applicable preflight check for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Log directory", cfg.LogDir()),
		CheckDirectoryAccess("Report directory", cfg.ReportDir()),
	}

	// The control socket defaults under the log directory; a custom
	// location gets its own directory check.
	if socketDir := filepath.Dir(cfg.SocketPath()); socketDir != cfg.LogDir() {
		results = append(results, CheckDirectoryAccess("Control socket directory", socketDir))
	}

	if cfg.Paths.APIBind != "" {
		results = append(results, CheckTCPBind("API bind address", cfg.Paths.APIBind))
	}

	return results
}
