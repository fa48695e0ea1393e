package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slugline/internal/ipc"
)

func newHealthCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Show workflow stage health",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Status()
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, resp.StageHealth)
				}

				out := cmd.OutOrStdout()
				if len(resp.StageHealth) == 0 {
					fmt.Fprintln(out, "No stages registered")
					return nil
				}
				colorize := shouldColorize(out)
				for _, stage := range resp.StageHealth {
					kind := statusOK
					if !stage.Ready {
						kind = statusError
					}
					fmt.Fprintln(out, renderStatusLine(stage.Name, kind, stage.Detail, colorize))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit stage health as JSON")
	return cmd
}
