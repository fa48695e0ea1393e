package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slugline/internal/breakdown"
	"slugline/internal/ipc"
	"slugline/internal/jobs"
)

func newSubmitCommand(ctx *commandContext) *cobra.Command {
	var componentFlag string
	var priorityFlag string
	var thresholdFlag float64
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "submit FILE",
		Short: "Queue a screenplay for analysis on the daemon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := breakdown.ParseComponent(componentFlag); !ok {
				return fmt.Errorf("unknown component %q (valid: %s)", componentFlag, componentChoices())
			}
			priority, err := jobs.ParsePriority(priorityFlag)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read screenplay: %w", err)
			}

			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Submit(ipc.SubmitRequest{
					Text:                string(data),
					Component:           componentFlag,
					Priority:            priority,
					ConfidenceThreshold: thresholdFlag,
				})
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, resp.Job)
				}

				out := cmd.OutOrStdout()
				job := resp.Job
				if job.CacheHit {
					fmt.Fprintf(out, "Served from cache: job %s (%d scenes)\n", job.ID, job.SceneCount)
					return nil
				}
				if job.QueuePosition > 0 {
					fmt.Fprintf(out, "Queued job %s (%s, priority %d, position %d)\n",
						job.ID, job.Component, job.Priority, job.QueuePosition)
					return nil
				}
				fmt.Fprintf(out, "Queued job %s (%s, priority %d)\n", job.ID, job.Component, job.Priority)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&componentFlag, "component", "", "Analysis component (default full_analysis)")
	cmd.Flags().StringVar(&priorityFlag, "priority", "", "Job priority: low, normal, high, urgent, critical, or 1-5")
	cmd.Flags().Float64Var(&thresholdFlag, "threshold", 0, "Confidence threshold override (0 uses the configured value)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the created job as JSON")
	return cmd
}
