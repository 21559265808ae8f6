package discovery

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/bgricker/citrend/internal/provider"
)

type fakeAPI struct {
	pr    provider.PullRequest
	prErr error
	runs  []provider.Run
}

func (f *fakeAPI) PullRequest(context.Context, string, int) (provider.PullRequest, error) {
	return f.pr, f.prErr
}

func (f *fakeAPI) RunsForBranch(context.Context, string, string) ([]provider.Run, error) {
	return f.runs, nil
}

func (f *fakeAPI) JobsForRun(context.Context, string, int64) ([]provider.Job, error) {
	return nil, nil
}

func TestPullRequestRunsDeduplicatesAndSorts(t *testing.T) {
	api := &fakeAPI{
		pr: provider.PullRequest{Number: 7, HeadBranch: "feature"},
		runs: []provider.Run{
			{ID: 3, Number: 3, Workflow: "CI"},
			{ID: 1, Number: 1, Workflow: "CI"},
			{ID: 3, Number: 3, Workflow: "CI"},
			{ID: 2, Number: 2, Workflow: "Docs"},
		},
	}

	result, err := PullRequestRuns(context.Background(), api, "o/r", 7)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if len(result.Runs) != 3 {
		t.Fatalf("expected duplicate run dropped, got %d runs", len(result.Runs))
	}
	for i := 1; i < len(result.Runs); i++ {
		if result.Runs[i-1].Number > result.Runs[i].Number {
			t.Fatalf("runs not sorted ascending: %+v", result.Runs)
		}
	}
	if result.WorkflowCounts["CI"] != 2 || result.WorkflowCounts["Docs"] != 1 {
		t.Fatalf("unexpected counts %v", result.WorkflowCounts)
	}
}

func TestPullRequestRunsNoRuns(t *testing.T) {
	api := &fakeAPI{pr: provider.PullRequest{HeadBranch: "feature"}}

	_, err := PullRequestRuns(context.Background(), api, "o/r", 7)
	if !errors.Is(err, ErrNoRuns) {
		t.Fatalf("expected ErrNoRuns, got %v", err)
	}
}

func TestPullRequestRunsMissingPR(t *testing.T) {
	api := &fakeAPI{prErr: provider.ErrNotFound}

	_, err := PullRequestRuns(context.Background(), api, "o/r", 999)
	if !errors.Is(err, provider.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResultWorkflowAccessors(t *testing.T) {
	result := Result{
		Runs: []provider.Run{
			{ID: 1, Number: 1, Workflow: "CI"},
			{ID: 2, Number: 2, Workflow: "Docs"},
			{ID: 3, Number: 3, Workflow: "CI"},
		},
		WorkflowCounts: map[string]int{"CI": 2, "Docs": 1},
	}

	if got := result.WorkflowNames(); !reflect.DeepEqual(got, []string{"CI", "Docs"}) {
		t.Fatalf("expected sorted names, got %v", got)
	}

	ci := result.RunsFor("CI")
	if len(ci) != 2 || ci[0].Number != 1 || ci[1].Number != 3 {
		t.Fatalf("unexpected CI runs %+v", ci)
	}
}
