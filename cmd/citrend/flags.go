package main

import (
	"fmt"

	"github.com/bgricker/citrend/internal/config"
	"github.com/spf13/cobra"
)

func gatherFlags(cmd *cobra.Command) (config.FlagValues, error) {
	flags := cmd.Flags()
	var values config.FlagValues

	if flags.Changed("repo") {
		v, err := flags.GetString("repo")
		if err != nil {
			return values, fmt.Errorf("parse --repo: %w", err)
		}
		values.Repo = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("workflow") {
		v, err := flags.GetString("workflow")
		if err != nil {
			return values, fmt.Errorf("parse --workflow: %w", err)
		}
		values.Workflow = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("job") {
		v, err := flags.GetString("job")
		if err != nil {
			return values, fmt.Errorf("parse --job: %w", err)
		}
		values.Job = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("step") {
		v, err := flags.GetString("step")
		if err != nil {
			return values, fmt.Errorf("parse --step: %w", err)
		}
		values.Step = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("format") {
		v, err := flags.GetString("format")
		if err != nil {
			return values, fmt.Errorf("parse --format: %w", err)
		}
		values.Format = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("concurrency") {
		v, err := flags.GetInt("concurrency")
		if err != nil {
			return values, fmt.Errorf("parse --concurrency: %w", err)
		}
		values.Concurrency = config.IntFlag{Value: v, Set: true}
	}

	if flags.Changed("interactive") {
		v, err := flags.GetBool("interactive")
		if err != nil {
			return values, fmt.Errorf("parse --interactive: %w", err)
		}
		values.Interactive = config.BoolFlag{Value: v, Set: true}
	}

	if flags.Changed("verbose") {
		v, err := flags.GetBool("verbose")
		if err != nil {
			return values, fmt.Errorf("parse --verbose: %w", err)
		}
		values.Verbose = config.BoolFlag{Value: v, Set: true}
	}

	return values, nil
}
