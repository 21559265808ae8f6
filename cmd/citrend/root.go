package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "citrend",
		Short: "Citrend compares CI job and step durations across a PR's workflow runs",
		Long: `Citrend fetches the workflow runs on a pull request's head branch and
prints how a job's or step's duration trends from run to run.

Workflow, job, and step are chosen interactively unless all three are
supplied; supplied values skip their prompt.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runTimings,
	}

	flags := cmd.Flags()
	flags.String("repo", "", "repository in owner/repo form (required)")
	flags.Int("pr", 0, "pull request number (required)")
	flags.BoolP("interactive", "i", false, "force interactive selection")
	flags.String("workflow", "", "workflow name")
	flags.String("job", "", "job name")
	flags.String("step", "", "step name, or \"total\" for whole-job duration")
	flags.String("format", "", "output format (pretty|json)")
	flags.Int("concurrency", 0, "parallel per-run job fetches")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	_ = cmd.MarkFlagRequired("repo")
	_ = cmd.MarkFlagRequired("pr")

	return cmd
}
