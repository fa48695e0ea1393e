package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"slugline/internal/breakdown"
)

type fieldRow struct {
	label string
	value string
}

func (s sheetScene) rows() []fieldRow {
	return []fieldRow{
		{"Scene", strconv.Itoa(s.Number)},
		{"Synopsis", s.Synopsis},
		{"Cast", joinOr(s.Cast, "not listed")},
		{"Extras", valueOr(s.Extras, "none")},
		{"Wardrobe", linesOr(s.Wardrobe, "none")},
		{"Makeup", linesOr(s.Makeup, "none")},
		{"Props", joinOr(s.Props, "none")},
		{"Set dressing", joinOr(s.SetDressing, "none")},
		{"Vehicles", joinOr(s.Vehicles, "none")},
		{"Special effects", joinOr(s.Effects, "none")},
		{"Sound", joinOr(s.Sound, "none")},
		{"Camera and lighting", valueOr(s.CameraLighting, "none")},
		{"Legal", linesOr(s.LegalFlags, "no alerts")},
		{"Continuity", linesOr(s.Continuity, "standalone scene")},
	}
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

func linesOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, "\n")
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// RenderPDF writes one A4 page per scene. Built-in Helvetica keeps the
// text vector without font embedding, which limits values to what
// cp1252 can carry.
func RenderPDF(w io.Writer, title string, records []breakdown.Breakdown) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetAuthor("slugline", false)
	pdf.SetAutoPageBreak(true, 14)
	translate := pdf.UnicodeTranslatorFromDescriptor("")

	const (
		labelWidth = 58.0
		valueWidth = 128.0
		lineHeight = 5.6
	)

	for _, record := range records {
		sheet := buildSheet(record)
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 15)
		pdf.SetTextColor(15, 23, 42)
		pdf.CellFormat(0, 9, translate(fmt.Sprintf("Breakdown Sheet - Scene %d", sheet.Number)), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(102, 102, 102)
		pdf.CellFormat(0, 6, translate(fmt.Sprintf("%s | %s | %s", sheet.IntExt, sheet.DayNight, sheet.Location)), "", 1, "L", false, 0, "")
		pdf.Ln(3)

		pdf.SetTextColor(17, 17, 17)
		pdf.SetDrawColor(180, 180, 180)
		for _, row := range sheet.rows() {
			x, y := pdf.GetXY()
			pdf.SetXY(x+labelWidth, y)
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(valueWidth, lineHeight, translate(row.value), "1", "L", false)
			bottom := pdf.GetY()
			pdf.SetXY(x, y)
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetFillColor(243, 244, 246)
			pdf.CellFormat(labelWidth, bottom-y, translate(row.label), "1", 0, "L", true, 0, "")
			pdf.SetXY(x, bottom)
		}

		pdf.SetY(-20)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(102, 102, 102)
		pdf.CellFormat(0, 5, translate(fmt.Sprintf("Breakdown Sheets | Scenes 1-%d", len(records))), "", 1, "C", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf sheets: %w", err)
	}
	return nil
}
