// Package preflight provides readiness checks for the filesystem paths and
// bind addresses slugline depends on.
//
// These checks run in two contexts:
//   - The daemon bootstrap runs RunAll once at startup and logs every
//     failure before the workflow begins taking jobs.
//   - The CLI "slugline status" command renders the same results so a
//     misconfigured path is visible without reading daemon logs.
package preflight
