package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"slugline/internal/breakdown"
)

//go:embed sheet.html
var sheetTemplate string

var sheetTmpl = template.Must(template.New("sheet").Funcs(template.FuncMap{
	"join": func(items []string) string { return strings.Join(items, ", ") },
}).Parse(sheetTemplate))

// RenderHTML writes the full sheet document for the records, one
// printable A4 section per scene.
func RenderHTML(w io.Writer, title string, records []breakdown.Breakdown) error {
	if err := sheetTmpl.Execute(w, buildSheets(title, records)); err != nil {
		return fmt.Errorf("render html sheets: %w", err)
	}
	return nil
}
