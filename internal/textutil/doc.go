// Package textutil normalizes and tokenizes screenplay text so keyword
// matching behaves identically across Arabic and Latin input.
//
// Normalization lowercases Latin text, applies NFC, strips Arabic diacritics
// and tatweel, and folds common orthography variants (alef forms, teh marbuta,
// final yeh) onto canonical letters. Every pattern and knowledge-base lookup
// in the module runs on normalized text; raw text is preserved for display.
//
// The package also carries filename sanitization for report export.
package textutil
