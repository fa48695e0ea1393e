// Package daemon hosts the long-running slugline process: the jobs
// manager, run store, and workflow manager behind a single-instance file
// lock, plus the optional HTTP API server.
//
// Start acquires the flock under the log directory, launches the workflow
// workers, and binds the HTTP listener when paths.api_bind is set. Stop
// shuts both down and releases the lock; Close also closes the run store.
// The IPC server is owned by the process bootstrap, not the daemon, so a
// stop request over IPC leaves the control socket responsive.
//
// All HTTP handlers delegate to the shared api.JobService, keeping the
// HTTP and IPC surfaces identical in behavior and payload shape.
package daemon
