// Package knowledge is the static production knowledge base: known
// characters with their profiles, rights-sensitive entities (celebrities,
// brands, song titles), prop label canonicalization, and location typing.
// Lookups are keyed on normalized text, so one table entry covers the
// orthographic variants of a name in either script.
package knowledge
