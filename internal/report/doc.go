// Package report renders per-scene breakdown sheets.
//
// The HTML renderer produces the two-column A4 sheet layout production
// teams expect, one printable page per scene, bilingual field labels
// included. The PDF renderer carries the same content with Latin labels
// only: the built-in PDF fonts cannot shape Arabic script, and shipping
// an embedded font is not worth it while the HTML sheet prints fine.
// Output is deterministic for a given set of records.
package report
