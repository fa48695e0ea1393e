// Package scenes cuts a screenplay document into ordered scene blocks and
// parses scene headings into placement, time of day, and location. Blocks
// are ordered by parsed scene number, not by position in the document.
package scenes
