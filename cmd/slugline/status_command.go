package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"slugline/internal/daemonctl"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show daemon, preflight, and job status",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := daemonctl.BuildStatusSnapshot(ctx.socketPath(), ctx.configValue())
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, snapshot)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, line := range renderSectionHeader("Daemon", colorize) {
				fmt.Fprintln(out, line)
			}
			if !snapshot.Reachable {
				fmt.Fprintln(out, renderStatusLine("Daemon", statusError,
					fmt.Sprintf("not reachable on %s", ctx.socketPath()), colorize))
			} else {
				daemonKind, daemonDetail := statusWarn, "stopped"
				if snapshot.Daemon.Running {
					daemonKind = statusOK
					daemonDetail = fmt.Sprintf("running (pid %d)", snapshot.Daemon.PID)
				}
				fmt.Fprintln(out, renderStatusLine("Daemon", daemonKind, daemonDetail, colorize))
				fmt.Fprintln(out, renderStatusLine("Socket", statusInfo, snapshot.Daemon.SocketPath, colorize))

				workflowKind, workflowDetail := statusWarn, "stopped"
				if snapshot.Daemon.WorkflowRunning {
					workflowKind = statusOK
					workflowDetail = "running"
				}
				fmt.Fprintln(out, renderStatusLine("Workflow", workflowKind, workflowDetail, colorize))
				if snapshot.Daemon.StartedAt != "" {
					fmt.Fprintln(out, renderStatusLine("Started", statusInfo, snapshot.Daemon.StartedAt, colorize))
				}
			}
			fmt.Fprintln(out)

			for _, line := range renderSectionHeader("Preflight Checks", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, line := range preflightLines(snapshot.Checks, colorize) {
				fmt.Fprintln(out, line)
			}

			if !snapshot.Reachable {
				return nil
			}

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Job Counts", colorize) {
				fmt.Fprintln(out, line)
			}
			rows := jobCountRows(snapshot.Daemon.JobCounts)
			if len(rows) == 0 {
				fmt.Fprintln(out, "No job activity")
			} else {
				fmt.Fprintln(out, renderTable(
					[]string{"Status", "Count"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
				))
			}

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Stage Health", colorize) {
				fmt.Fprintln(out, line)
			}
			if len(snapshot.Daemon.StageHealth) == 0 {
				fmt.Fprintln(out, "No stages registered")
				return nil
			}
			for _, stage := range snapshot.Daemon.StageHealth {
				kind := statusOK
				if !stage.Ready {
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(stage.Name, kind, stage.Detail, colorize))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the status snapshot as JSON")
	return cmd
}

func jobCountRows(counts map[string]int) [][]string {
	if len(counts) == 0 {
		return nil
	}
	statuses := make([]string, 0, len(counts))
	for status := range counts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	rows := make([][]string, 0, len(statuses))
	for _, status := range statuses {
		rows = append(rows, []string{status, strconv.Itoa(counts[status])})
	}
	return rows
}
