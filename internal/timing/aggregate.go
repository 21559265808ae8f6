package timing

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bgricker/citrend/internal/provider"
	"github.com/bgricker/citrend/internal/report"
)

// Selection narrows all timing queries to one workflow, one job, and either
// one step or the whole-job duration. Chosen once per invocation.
type Selection struct {
	Workflow string
	Job      string
	Step     string
	Total    bool
}

// JobLister is the slice of the provider API the aggregator needs.
type JobLister interface {
	JobsForRun(ctx context.Context, repo string, runID int64) ([]provider.Job, error)
}

// Options configure an aggregation pass.
type Options struct {
	// Concurrency bounds the parallel per-run job fetches. Row order is
	// assembled by run index, so fetch order never leaks into the output.
	Concurrency int
	Logger      *slog.Logger
}

// Aggregate produces one row per run, preserving the runs' ascending
// run-number order. A failed job fetch, a missing job or step, or a missing
// timestamp degrades that single row to not-applicable; the delta baseline
// tracks the last valid duration, skipping not-applicable rows.
func Aggregate(ctx context.Context, lister JobLister, repo string, runs []provider.Run, sel Selection, opts Options) []report.Row {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	jobLists := make([][]provider.Job, len(runs))
	var g errgroup.Group
	g.SetLimit(opts.Concurrency)
	for i, run := range runs {
		g.Go(func() error {
			jobs, err := lister.JobsForRun(ctx, repo, run.ID)
			if err != nil {
				opts.Logger.Warn("job fetch failed, run marked n/a", "run", run.Number, "error", err)
				return nil
			}
			jobLists[i] = jobs
			return nil
		})
	}
	_ = g.Wait()

	rows := make([]report.Row, 0, len(runs))
	var lastValid time.Duration
	haveBaseline := false
	for i, run := range runs {
		row := report.Row{
			RunNumber: run.Number,
			SHA:       run.HeadSHA,
			Date:      run.CreatedAt,
			Message:   run.Message,
		}
		if d, ok := durationFor(jobLists[i], sel); ok {
			row.Duration = d
			row.HasDuration = true
			if haveBaseline {
				row.Delta = d - lastValid
				row.HasDelta = true
			}
			lastValid = d
			haveBaseline = true
		}
		rows = append(rows, row)
	}
	return rows
}

// durationFor locates the selected job (and step, unless the whole-job
// duration was selected) and computes its elapsed time. A Total selection
// always reads job-level timestamps, even when a step shares the name
// "total".
func durationFor(jobs []provider.Job, sel Selection) (time.Duration, bool) {
	for _, job := range jobs {
		if job.Name != sel.Job {
			continue
		}
		if sel.Total {
			return elapsed(job.StartedAt, job.CompletedAt)
		}
		for _, step := range job.Steps {
			if step.Name == sel.Step {
				return elapsed(step.StartedAt, step.CompletedAt)
			}
		}
		return 0, false
	}
	return 0, false
}

func elapsed(started, completed *time.Time) (time.Duration, bool) {
	if started == nil || completed == nil {
		return 0, false
	}
	return completed.Sub(*started).Truncate(time.Second), true
}
