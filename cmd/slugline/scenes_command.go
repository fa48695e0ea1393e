package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"slugline/internal/ipc"
)

func newScenesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scenes CHARACTER",
		Short: "Find indexed scenes featuring a cast member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.SceneQuery(args[0])
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, resp)
				}

				out := cmd.OutOrStdout()
				if len(resp.Scenes) == 0 {
					fmt.Fprintf(out, "No indexed scenes feature %s\n", args[0])
					return nil
				}
				rows := make([][]string, 0, len(resp.Scenes))
				for _, scene := range resp.Scenes {
					rows = append(rows, []string{
						shortID(scene.JobID),
						strconv.Itoa(scene.SceneNumber),
						scene.Location,
						scene.TimeOfDay,
						scene.Synopsis,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Job", "Scene", "Location", "Time", "Synopsis"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit matches as JSON")
	return cmd
}
