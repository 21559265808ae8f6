package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bgricker/citrend/internal/config"
	"github.com/bgricker/citrend/internal/discovery"
	"github.com/bgricker/citrend/internal/output"
	"github.com/bgricker/citrend/internal/provider/ghcli"
	"github.com/bgricker/citrend/internal/report"
	"github.com/bgricker/citrend/internal/selector"
	"github.com/bgricker/citrend/internal/timing"
	"github.com/bgricker/citrend/internal/version"
)

func runTimings(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	pr, err := cmd.Flags().GetInt("pr")
	if err != nil {
		return fmt.Errorf("parse --pr: %w", err)
	}

	// Argument validation happens before any network call.
	if err := config.ValidateRepo(cfg.Repo); err != nil {
		return err
	}
	if err := config.ValidatePR(pr); err != nil {
		return err
	}

	logger, closeLog := config.SetupLogger(cfg.Verbose)
	defer func() { _ = closeLog() }()

	info, err := version.DetectGH()
	if err != nil {
		if version.Missing(err) {
			return errors.New("gh executable not found; install the GitHub CLI from https://cli.github.com")
		}
		return fmt.Errorf("detect gh: %w", err)
	}
	logger.Debug("using gh", "version", info.Version)

	ctx := cmd.Context()
	client := ghcli.New(ghcli.Options{Logger: logger})
	if err := client.EnsureAuthenticated(ctx); err != nil {
		return err
	}

	fetched, err := discovery.PullRequestRuns(ctx, client, cfg.Repo, pr)
	if err != nil {
		return err
	}
	logger.Debug("fetched runs",
		"branch", fetched.PR.HeadBranch,
		"count", len(fetched.Runs),
		"workflows", len(fetched.WorkflowCounts))

	req := selector.Request{
		Workflow:    cfg.Workflow,
		Job:         cfg.Job,
		Step:        cfg.Step,
		IgnoreSteps: cfg.IgnoreSteps,
	}
	if cfg.Interactive {
		// -i discards pre-supplied values and prompts for all three.
		req.Workflow, req.Job, req.Step = "", "", ""
	}

	resolver := &selector.Resolver{
		Jobs:     client,
		Prompter: selector.NewTerminalPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		Logger:   logger,
	}
	sel, err := resolver.Resolve(ctx, cfg.Repo, fetched, req)
	if err != nil {
		return err
	}

	runs := fetched.RunsFor(sel.Workflow)
	rows := timing.Aggregate(ctx, client, cfg.Repo, runs, sel, timing.Options{
		Concurrency: cfg.Concurrency,
		Logger:      logger,
	})

	meta := report.Meta{
		Repo:     cfg.Repo,
		PR:       pr,
		Workflow: sel.Workflow,
		Job:      sel.Job,
		Step:     sel.Step,
		Total:    sel.Total,
		RunCount: len(runs),
	}

	switch strings.ToLower(cfg.Format) {
	case config.FormatPretty:
		return output.NewTable(cmd.OutOrStdout()).Render(meta, rows)
	case config.FormatJSON:
		return output.NewJSON(cmd.OutOrStdout()).Render(meta, rows)
	default:
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	root, err := os.Getwd()
	if err != nil {
		return config.Config{}, fmt.Errorf("determine working directory: %w", err)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return config.Config{}, err
	}

	flags, err := gatherFlags(cmd)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyFlags(&cfg, flags)

	return cfg, nil
}
