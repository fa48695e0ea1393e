package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"slugline/internal/breakdown"
	"slugline/internal/logging"
	"slugline/internal/parser"
	"slugline/internal/report"
	"slugline/internal/scenes"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "report FILE",
		Short: "Render breakdown sheets for a screenplay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read screenplay: %w", err)
			}

			p := parser.New(cfg.Analysis, logging.NewNop())
			result, err := p.Analyze(cmd.Context(), string(data), breakdown.ComponentFull)
			if errors.Is(err, scenes.ErrNoScenes) {
				return fmt.Errorf("%s contains no scene headings (expected lines like `مشهد 1` or `Scene 1`)", args[0])
			}
			if err != nil {
				return err
			}

			title := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			path, err := report.WriteSheets(cfg.ReportDir(), formatFlag, title, result.Breakdowns)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote breakdown sheets to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "html", "Report format: html or pdf")
	return cmd
}
