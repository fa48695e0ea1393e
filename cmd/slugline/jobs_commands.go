package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"slugline/internal/api"
	"slugline/internal/breakdown"
	"slugline/internal/ipc"
)

func newJobsCommand(ctx *commandContext) *cobra.Command {
	jobsCmd := &cobra.Command{
		Use:   "jobs",
		Short: "Inspect and manage analysis jobs",
	}

	jobsCmd.AddCommand(newJobsListCommand(ctx))
	jobsCmd.AddCommand(newJobsShowCommand(ctx))
	jobsCmd.AddCommand(newJobsCancelCommand(ctx))

	return jobsCmd
}

func newJobsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.JobList()
				if err != nil {
					return err
				}
				views := api.SortJobsNewestFirst(resp.Jobs)
				if jsonOutput {
					return writeJSON(cmd, ipc.JobListResponse{Jobs: views})
				}

				out := cmd.OutOrStdout()
				if len(views) == 0 {
					fmt.Fprintln(out, "No jobs")
					return nil
				}
				rows := make([][]string, 0, len(views))
				for _, job := range views {
					rows = append(rows, []string{
						shortID(job.ID),
						job.Component,
						job.Status,
						strconv.Itoa(job.Priority),
						jobSceneCell(job),
						job.CreatedAt,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Component", "Status", "Priority", "Scenes", "Created"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit jobs as JSON")
	return cmd
}

func newJobsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one job with its scene breakdowns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.JobGet(args[0])
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, resp.Job)
				}
				renderJobDetail(cmd.OutOrStdout(), resp.Job)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the job as JSON")
	return cmd
}

func newJobsCancelCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel ID",
		Short: "Withdraw a pending job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.JobCancel(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cancelled job %s\n", resp.Job.ID)
				return nil
			})
		},
	}
}

func renderJobDetail(out io.Writer, job ipc.JobView) {
	fmt.Fprintf(out, "Job %s\n", job.ID)
	writeDetail(out, "Component", job.Component)
	writeDetail(out, "Status", job.Status)
	writeDetail(out, "Priority", strconv.Itoa(job.Priority))
	writeDetail(out, "Cache hit", yesNo(job.CacheHit))
	if job.QueuePosition > 0 {
		writeDetail(out, "Queue position", strconv.Itoa(job.QueuePosition))
	}
	if job.Progress.Stage != "" {
		writeDetail(out, "Progress", fmt.Sprintf("%s (%.0f%%)", job.Progress.Stage, job.Progress.Percent))
	}
	writeDetail(out, "Created", job.CreatedAt)
	writeDetail(out, "Started", job.StartedAt)
	writeDetail(out, "Completed", job.CompletedAt)
	writeDetail(out, "Error", job.ErrorMessage)
	if job.Summary != nil {
		writeDetail(out, "Summary", fmt.Sprintf("%d scenes, %d parsed, %d failed (%s)",
			job.Summary.Scenes, job.Summary.Parsed, job.Summary.Failed, job.Summary.Duration))
	}
	if len(job.Scenes) == 0 {
		return
	}

	fmt.Fprintln(out)
	rows := make([][]string, 0, len(job.Scenes))
	for _, scene := range job.Scenes {
		rows = append(rows, []string{
			strconv.Itoa(scene.SceneNumber),
			placementLabel(breakdown.Placement(scene.Placement)),
			scene.TimeOfDay,
			scene.Location,
			strings.Join(scene.Cast, ", "),
			fmt.Sprintf("%.2f", scene.Confidence),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Scene", "Set", "Time", "Location", "Cast", "Confidence"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	))
}

func jobSceneCell(job ipc.JobView) string {
	if job.SceneCount == 0 {
		return "-"
	}
	return strconv.Itoa(job.SceneCount)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
