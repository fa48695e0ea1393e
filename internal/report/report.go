package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"slugline/internal/breakdown"
)

// sheetScene is the per-scene view both renderers consume.
type sheetScene struct {
	Number         int
	IntExt         string
	DayNight       string
	Location       string
	Synopsis       string
	Cast           []string
	Extras         string
	Wardrobe       []string
	Makeup         []string
	Props          []string
	SetDressing    []string
	Vehicles       []string
	Effects        []string
	Sound          []string
	CameraLighting string
	LegalFlags     []string
	Continuity     []string
}

type sheetData struct {
	Title  string
	Total  int
	Scenes []sheetScene
}

func buildSheets(title string, records []breakdown.Breakdown) sheetData {
	data := sheetData{Title: title, Total: len(records)}
	for _, record := range records {
		data.Scenes = append(data.Scenes, buildSheet(record))
	}
	return data
}

func buildSheet(record breakdown.Breakdown) sheetScene {
	scene := sheetScene{
		Number:      record.SceneNumber,
		IntExt:      placementLabel(record.Placement),
		DayNight:    timeLabel(record.TimeOfDay),
		Location:    record.Location,
		Synopsis:    record.Synopsis,
		Cast:        record.Cast,
		Extras:      record.Extras,
		Makeup:      record.Makeup,
		Props:       record.Props,
		SetDressing: record.SetDressing,
		Vehicles:    record.Vehicles,
		Effects:     record.Effects,
		Sound:       record.Sound,
	}
	for _, note := range record.Wardrobe {
		scene.Wardrobe = append(scene.Wardrobe, fmt.Sprintf("%s: %s", note.Character, note.Description))
	}
	for _, flag := range record.LegalFlags {
		scene.LegalFlags = append(scene.LegalFlags,
			fmt.Sprintf("%s (%s, %s): %s", flag.Entity, flag.Kind, flag.Severity, flag.Detail))
	}
	if record.IsContinuation {
		scene.Continuity = append(scene.Continuity, fmt.Sprintf("continues scene %d", record.PreviousScene))
	}
	scene.Continuity = append(scene.Continuity, record.ContinuityNotes...)

	parts := make([]string, 0, 2)
	if record.Cinematic.Note != "" {
		parts = append(parts, record.Cinematic.Note)
	}
	if record.CameraLighting != "" && record.CameraLighting != record.Cinematic.Note {
		parts = append(parts, record.CameraLighting)
	}
	scene.CameraLighting = strings.Join(parts, "; ")
	return scene
}

func placementLabel(p breakdown.Placement) string {
	switch p {
	case breakdown.PlacementInterior:
		return "INT"
	case breakdown.PlacementExterior:
		return "EXT"
	case breakdown.PlacementMixed:
		return "INT/EXT"
	}
	return string(p)
}

func timeLabel(value string) string {
	if value == breakdown.TimeUnspecified {
		return value
	}
	return strings.ToUpper(value)
}

// WriteSheets renders the records into dir and returns the file path.
// Format is "html" (the default) or "pdf".
func WriteSheets(dir, format, title string, records []breakdown.Breakdown) (string, error) {
	var name string
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "html":
		name = "breakdown_sheets.html"
	case "pdf":
		name = "breakdown_sheets.pdf"
	default:
		return "", fmt.Errorf("unknown report format %q", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}

	var renderErr error
	if strings.HasSuffix(name, ".pdf") {
		renderErr = RenderPDF(f, title, records)
	} else {
		renderErr = RenderHTML(f, title, records)
	}
	if renderErr != nil {
		_ = f.Close()
		return "", renderErr
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report file: %w", err)
	}
	return path, nil
}
