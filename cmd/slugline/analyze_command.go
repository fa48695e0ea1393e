package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"slugline/internal/api"
	"slugline/internal/breakdown"
	"slugline/internal/logging"
	"slugline/internal/parser"
	"slugline/internal/scenes"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var componentFlag string
	var sceneFlag int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Break down a screenplay without the daemon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			component, ok := breakdown.ParseComponent(componentFlag)
			if !ok {
				return fmt.Errorf("unknown component %q (valid: %s)", componentFlag, componentChoices())
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read screenplay: %w", err)
			}

			p := parser.New(cfg.Analysis, logging.NewNop())
			result, err := p.Analyze(cmd.Context(), string(data), component)
			if errors.Is(err, scenes.ErrNoScenes) {
				return fmt.Errorf("%s contains no scene headings (expected lines like `مشهد 1` or `Scene 1`)", args[0])
			}
			if err != nil {
				return err
			}

			if sceneFlag > 0 {
				record, found := findScene(result.Breakdowns, sceneFlag)
				if !found {
					return fmt.Errorf("scene %d not found in %s", sceneFlag, args[0])
				}
				if jsonOutput {
					return writeJSON(cmd, api.FromBreakdown(record))
				}
				renderSceneDetail(cmd.OutOrStdout(), record)
				return nil
			}

			if jsonOutput {
				payload := struct {
					Scenes  []api.BreakdownView `json:"scenes"`
					Summary api.ResultSummary   `json:"summary"`
				}{
					Scenes: api.FromBreakdowns(result.Breakdowns),
					Summary: api.ResultSummary{
						Scenes:   result.Summary.Scenes,
						Parsed:   result.Summary.Parsed,
						Failed:   result.Summary.Failed,
						Duration: result.Summary.Duration.String(),
					},
				}
				return writeJSON(cmd, payload)
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(result.Breakdowns))
			for _, record := range result.Breakdowns {
				rows = append(rows, []string{
					strconv.Itoa(record.SceneNumber),
					placementLabel(record.Placement),
					record.TimeOfDay,
					record.Location,
					strings.Join(record.Cast, ", "),
					fmt.Sprintf("%.2f", record.Confidence),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Scene", "Set", "Time", "Location", "Cast", "Confidence"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
			))
			fmt.Fprintf(out, "%d scenes, %d parsed, %d failed (%s)\n",
				result.Summary.Scenes, result.Summary.Parsed, result.Summary.Failed, result.Summary.Duration)
			return nil
		},
	}

	cmd.Flags().StringVar(&componentFlag, "component", "", "Analysis component (default full_analysis)")
	cmd.Flags().IntVar(&sceneFlag, "scene", 0, "Show a single scene in detail")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func findScene(records []breakdown.Breakdown, number int) (breakdown.Breakdown, bool) {
	for _, record := range records {
		if record.SceneNumber == number {
			return record, true
		}
	}
	return breakdown.Breakdown{}, false
}

func renderSceneDetail(out io.Writer, record breakdown.Breakdown) {
	fmt.Fprintf(out, "Scene %d  %s  %s  %s\n",
		record.SceneNumber, placementLabel(record.Placement), record.TimeOfDay, record.Location)
	writeDetail(out, "Type", string(record.SceneType))
	writeDetail(out, "Synopsis", record.Synopsis)
	writeDetail(out, "Cast", strings.Join(record.Cast, ", "))
	writeDetail(out, "Extras", record.Extras)
	writeDetail(out, "Props", strings.Join(record.Props, ", "))
	writeDetail(out, "Set dressing", strings.Join(record.SetDressing, ", "))
	writeDetail(out, "Vehicles", strings.Join(record.Vehicles, ", "))
	for _, note := range record.Wardrobe {
		writeDetail(out, "Wardrobe", fmt.Sprintf("%s: %s", note.Character, note.Description))
	}
	writeDetail(out, "Makeup", strings.Join(record.Makeup, ", "))
	writeDetail(out, "Effects", strings.Join(record.Effects, ", "))
	writeDetail(out, "Sound", strings.Join(record.Sound, ", "))
	for _, flag := range record.LegalFlags {
		writeDetail(out, "Legal", fmt.Sprintf("%s (%s, %s)", flag.Entity, flag.Kind, flag.Severity))
	}
	writeDetail(out, "Camera", record.CameraLighting)
	if record.IsContinuation {
		writeDetail(out, "Continues", fmt.Sprintf("scene %d", record.PreviousScene))
	}
	writeDetail(out, "Continuity", strings.Join(record.ContinuityNotes, "; "))
	writeDetail(out, "Confidence", fmt.Sprintf("%.2f", record.Confidence))
}

func writeDetail(out io.Writer, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(out, "  %-14s %s\n", label+":", value)
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

func componentChoices() string {
	components := breakdown.Components()
	parts := make([]string, 0, len(components))
	for _, c := range components {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ", ")
}
