package discovery

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/bgricker/citrend/internal/provider"
)

// ErrNoRuns indicates that the PR's head branch has no workflow runs.
var ErrNoRuns = errors.New("no workflow runs found")

// Result bundles a resolved pull request with its branch's runs,
// deduplicated by run ID and sorted ascending by run number.
type Result struct {
	PR             provider.PullRequest
	Runs           []provider.Run
	WorkflowCounts map[string]int
}

// PullRequestRuns resolves the PR's head branch and lists the workflow runs
// on it.
func PullRequestRuns(ctx context.Context, api provider.API, repo string, number int) (Result, error) {
	pr, err := api.PullRequest(ctx, repo, number)
	if err != nil {
		return Result{}, fmt.Errorf("pull request %s#%d: %w", repo, number, err)
	}

	runs, err := api.RunsForBranch(ctx, repo, pr.HeadBranch)
	if err != nil {
		return Result{}, fmt.Errorf("list runs for branch %q: %w", pr.HeadBranch, err)
	}

	seen := make(map[int64]struct{}, len(runs))
	deduped := make([]provider.Run, 0, len(runs))
	counts := make(map[string]int)
	for _, run := range runs {
		if _, ok := seen[run.ID]; ok {
			continue
		}
		seen[run.ID] = struct{}{}
		deduped = append(deduped, run)
		counts[run.Workflow]++
	}

	if len(deduped) == 0 {
		return Result{}, fmt.Errorf("branch %q: %w", pr.HeadBranch, ErrNoRuns)
	}

	sort.Slice(deduped, func(i, j int) bool {
		if deduped[i].Number != deduped[j].Number {
			return deduped[i].Number < deduped[j].Number
		}
		return deduped[i].ID < deduped[j].ID
	})

	return Result{PR: pr, Runs: deduped, WorkflowCounts: counts}, nil
}

// WorkflowNames returns the distinct workflow names, sorted.
func (r Result) WorkflowNames() []string {
	names := make([]string, 0, len(r.WorkflowCounts))
	for name := range r.WorkflowCounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunsFor returns the runs belonging to the named workflow, preserving
// ascending run-number order.
func (r Result) RunsFor(workflow string) []provider.Run {
	runs := make([]provider.Run, 0, r.WorkflowCounts[workflow])
	for _, run := range r.Runs {
		if run.Workflow == workflow {
			runs = append(runs, run)
		}
	}
	return runs
}
