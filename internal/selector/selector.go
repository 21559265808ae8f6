package selector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/bgricker/citrend/internal/discovery"
	"github.com/bgricker/citrend/internal/provider"
	"github.com/bgricker/citrend/internal/timing"
)

// TotalKeyword selects the whole-job duration instead of a single step.
const TotalKeyword = "total"

const totalLabel = "Total job time"

var (
	// ErrUnknownWorkflow indicates the requested workflow has no runs on the branch.
	ErrUnknownWorkflow = errors.New("unknown workflow")
	// ErrUnknownJob indicates the requested job was not observed in the workflow's runs.
	ErrUnknownJob = errors.New("unknown job")
	// ErrUnknownStep indicates the requested step was not observed for the job.
	ErrUnknownStep = errors.New("unknown step")
	// ErrInvalidSelection indicates an interactive choice was non-numeric or out of range.
	ErrInvalidSelection = errors.New("invalid selection")
)

// Request carries pre-supplied selection values. Empty fields are resolved
// through the prompter; filled ones are validated and used as-is.
type Request struct {
	Workflow    string
	Job         string
	Step        string
	IgnoreSteps []string
}

// Prompter presents a list of options and returns the chosen zero-based index.
type Prompter interface {
	Choose(title string, options []string) (int, error)
}

// Resolver narrows the fetched runs down to a single Selection.
type Resolver struct {
	Jobs     timing.JobLister
	Prompter Prompter
	Logger   *slog.Logger
}

// Resolve produces the (workflow, job, step-or-total) selection. Job and
// step candidates come from the union of the first and last run of the
// selected workflow, approximating the names that exist across the PR's
// lifetime without fetching every run.
func (r *Resolver) Resolve(ctx context.Context, repo string, fetched discovery.Result, req Request) (timing.Selection, error) {
	var sel timing.Selection

	workflow, err := r.resolveWorkflow(fetched, req.Workflow)
	if err != nil {
		return sel, err
	}
	sel.Workflow = workflow

	firstJobs, lastJobs, err := r.boundaryJobs(ctx, repo, fetched.RunsFor(workflow))
	if err != nil {
		return sel, err
	}

	job, err := r.resolveJob(firstJobs, lastJobs, workflow, req.Job)
	if err != nil {
		return sel, err
	}
	sel.Job = job

	step, total, err := r.resolveStep(firstJobs, lastJobs, job, req)
	if err != nil {
		return sel, err
	}
	sel.Step = step
	sel.Total = total
	return sel, nil
}

func (r *Resolver) resolveWorkflow(fetched discovery.Result, requested string) (string, error) {
	names := fetched.WorkflowNames()
	if requested != "" {
		if !contains(names, requested) {
			return "", fmt.Errorf("%w %q (choose from: %s)", ErrUnknownWorkflow, requested, strings.Join(names, ", "))
		}
		return requested, nil
	}

	labels := make([]string, len(names))
	for i, name := range names {
		labels[i] = fmt.Sprintf("%s (%d runs)", name, fetched.WorkflowCounts[name])
	}
	idx, err := r.Prompter.Choose("Select a workflow", labels)
	if err != nil {
		return "", err
	}
	return names[idx], nil
}

// boundaryJobs fetches the job lists of the first and last run. One of the
// two fetches may fail; both failing leaves nothing to select from.
func (r *Resolver) boundaryJobs(ctx context.Context, repo string, runs []provider.Run) ([]provider.Job, []provider.Job, error) {
	first := runs[0]
	last := runs[len(runs)-1]

	firstJobs, firstErr := r.Jobs.JobsForRun(ctx, repo, first.ID)
	if firstErr != nil {
		r.logger().Warn("job fetch failed for first run", "run", first.Number, "error", firstErr)
	}

	var lastJobs []provider.Job
	var lastErr error
	if last.ID != first.ID {
		lastJobs, lastErr = r.Jobs.JobsForRun(ctx, repo, last.ID)
		if lastErr != nil {
			r.logger().Warn("job fetch failed for last run", "run", last.Number, "error", lastErr)
		}
	}

	if firstErr != nil && (last.ID == first.ID || lastErr != nil) {
		return nil, nil, fmt.Errorf("list jobs for run %d: %w", first.ID, firstErr)
	}
	return firstJobs, lastJobs, nil
}

func (r *Resolver) resolveJob(firstJobs, lastJobs []provider.Job, workflow, requested string) (string, error) {
	names := unionJobNames(firstJobs, lastJobs)
	if len(names) == 0 {
		return "", fmt.Errorf("workflow %q has no recorded jobs", workflow)
	}
	if requested != "" {
		if !contains(names, requested) {
			return "", fmt.Errorf("%w %q in workflow %q (choose from: %s)", ErrUnknownJob, requested, workflow, strings.Join(names, ", "))
		}
		return requested, nil
	}

	idx, err := r.Prompter.Choose("Select a job", names)
	if err != nil {
		return "", err
	}
	return names[idx], nil
}

func (r *Resolver) resolveStep(firstJobs, lastJobs []provider.Job, job string, req Request) (string, bool, error) {
	names := unionStepNames(firstJobs, lastJobs, job, req.IgnoreSteps)

	if req.Step != "" {
		if req.Step == TotalKeyword {
			return "", true, nil
		}
		if !contains(names, req.Step) {
			valid := append([]string{TotalKeyword}, names...)
			return "", false, fmt.Errorf("%w %q in job %q (choose from: %s)", ErrUnknownStep, req.Step, job, strings.Join(valid, ", "))
		}
		return req.Step, false, nil
	}

	options := append([]string{totalLabel}, names...)
	idx, err := r.Prompter.Choose("Select a step", options)
	if err != nil {
		return "", false, err
	}
	if idx == 0 {
		return "", true, nil
	}
	return options[idx], false, nil
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func unionJobNames(firstJobs, lastJobs []provider.Job) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, jobs := range [][]provider.Job{firstJobs, lastJobs} {
		for _, job := range jobs {
			if _, ok := seen[job.Name]; ok {
				continue
			}
			seen[job.Name] = struct{}{}
			names = append(names, job.Name)
		}
	}
	sort.Strings(names)
	return names
}

func unionStepNames(firstJobs, lastJobs []provider.Job, job string, ignore []string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, jobs := range [][]provider.Job{firstJobs, lastJobs} {
		for _, j := range jobs {
			if j.Name != job {
				continue
			}
			for _, name := range timing.VisibleNames(j.Steps, ignore...) {
				if _, ok := seen[name]; ok {
					continue
				}
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
