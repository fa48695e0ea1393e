package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"slugline/internal/ipc"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show job, cache, and run-store counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Stats()
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, resp.Stats)
				}

				out := cmd.OutOrStdout()
				stats := resp.Stats

				fmt.Fprintln(out, "Jobs")
				fmt.Fprintln(out, renderTable(
					[]string{"Status", "Count"},
					[][]string{
						{"Pending", strconv.Itoa(stats.Jobs.Pending)},
						{"Processing", strconv.Itoa(stats.Jobs.Processing)},
						{"Completed", strconv.Itoa(stats.Jobs.Completed)},
						{"Failed", strconv.Itoa(stats.Jobs.Failed)},
						{"Cancelled", strconv.Itoa(stats.Jobs.Cancelled)},
						{"Queued", strconv.Itoa(stats.Jobs.QueueLength)},
						{"Total", strconv.Itoa(stats.Jobs.Total)},
					},
					[]columnAlignment{alignLeft, alignRight},
				))

				fmt.Fprintln(out, "Cache")
				fmt.Fprintln(out, renderTable(
					[]string{"Counter", "Count"},
					[][]string{
						{"Entries", strconv.Itoa(stats.Cache.Entries)},
						{"Hits", strconv.Itoa(stats.Cache.Hits)},
						{"Misses", strconv.Itoa(stats.Cache.Misses)},
					},
					[]columnAlignment{alignLeft, alignRight},
				))

				storeRows := [][]string{
					{"Indexed jobs", strconv.Itoa(stats.Store.Jobs)},
					{"Indexed scenes", strconv.Itoa(stats.Store.Scenes)},
					{"Cast members", strconv.Itoa(stats.Store.CastMembers)},
					{"Legal flags", strconv.Itoa(stats.Store.LegalFlags)},
					{"Avg confidence", fmt.Sprintf("%.2f", stats.Store.AvgConfidence)},
				}
				categories := make([]string, 0, len(stats.Store.Elements))
				for category := range stats.Store.Elements {
					categories = append(categories, category)
				}
				sort.Strings(categories)
				for _, category := range categories {
					storeRows = append(storeRows, []string{
						"Elements: " + category,
						strconv.Itoa(stats.Store.Elements[category]),
					})
				}
				fmt.Fprintln(out, "Run store")
				fmt.Fprintln(out, renderTable(
					[]string{"Metric", "Value"},
					storeRows,
					[]columnAlignment{alignLeft, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit counters as JSON")
	return cmd
}
