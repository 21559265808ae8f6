package selector

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bgricker/citrend/internal/discovery"
	"github.com/bgricker/citrend/internal/provider"
)

type fakeJobs struct {
	jobs map[int64][]provider.Job
	fail map[int64]bool
}

func (f *fakeJobs) JobsForRun(_ context.Context, _ string, runID int64) ([]provider.Job, error) {
	if f.fail[runID] {
		return nil, errors.New("boom")
	}
	return f.jobs[runID], nil
}

// scriptedPrompter returns pre-programmed choices in order.
type scriptedPrompter struct {
	choices []int
	titles  []string
	menus   [][]string
}

func (s *scriptedPrompter) Choose(title string, options []string) (int, error) {
	s.titles = append(s.titles, title)
	s.menus = append(s.menus, options)
	if len(s.choices) == 0 {
		return 0, errors.New("unexpected prompt")
	}
	idx := s.choices[0]
	s.choices = s.choices[1:]
	return idx, nil
}

func stamp(offset time.Duration) *time.Time {
	t := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC).Add(offset)
	return &t
}

func jobWithSteps(name string, steps ...string) provider.Job {
	job := provider.Job{Name: name, StartedAt: stamp(0), CompletedAt: stamp(time.Minute)}
	for _, s := range steps {
		job.Steps = append(job.Steps, provider.Step{Name: s, StartedAt: stamp(0), CompletedAt: stamp(time.Minute)})
	}
	return job
}

func fetchedFixture() discovery.Result {
	return discovery.Result{
		PR: provider.PullRequest{Number: 1234, HeadBranch: "feature", HeadSHA: "abc"},
		Runs: []provider.Run{
			{ID: 100, Number: 1, Workflow: "CI"},
			{ID: 101, Number: 2, Workflow: "Docs"},
			{ID: 102, Number: 3, Workflow: "CI"},
		},
		WorkflowCounts: map[string]int{"CI": 2, "Docs": 1},
	}
}

func jobsFixture() *fakeJobs {
	return &fakeJobs{jobs: map[int64][]provider.Job{
		100: {jobWithSteps("build", "Set up job", "make", "Complete job")},
		102: {
			jobWithSteps("build", "Set up job", "make", "lint", "Post Run actions/checkout@v4"),
			jobWithSteps("docs", "render"),
		},
	}}
}

func TestResolveExplicitSelection(t *testing.T) {
	r := &Resolver{Jobs: jobsFixture(), Prompter: &scriptedPrompter{}}

	sel, err := r.Resolve(context.Background(), "o/r", fetchedFixture(), Request{Workflow: "CI", Job: "build", Step: "make"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if sel.Workflow != "CI" || sel.Job != "build" || sel.Step != "make" || sel.Total {
		t.Fatalf("unexpected selection %+v", sel)
	}
}

func TestResolveTotalKeyword(t *testing.T) {
	r := &Resolver{Jobs: jobsFixture(), Prompter: &scriptedPrompter{}}

	sel, err := r.Resolve(context.Background(), "o/r", fetchedFixture(), Request{Workflow: "CI", Job: "build", Step: "total"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !sel.Total || sel.Step != "" {
		t.Fatalf("expected total selection, got %+v", sel)
	}
}

func TestResolveUnknownWorkflow(t *testing.T) {
	r := &Resolver{Jobs: jobsFixture(), Prompter: &scriptedPrompter{}}

	_, err := r.Resolve(context.Background(), "o/r", fetchedFixture(), Request{Workflow: "Release"})
	if !errors.Is(err, ErrUnknownWorkflow) {
		t.Fatalf("expected ErrUnknownWorkflow, got %v", err)
	}
	if !strings.Contains(err.Error(), "CI") || !strings.Contains(err.Error(), "Docs") {
		t.Fatalf("error should list valid workflows, got %q", err)
	}
}

func TestResolveUnknownJob(t *testing.T) {
	r := &Resolver{Jobs: jobsFixture(), Prompter: &scriptedPrompter{}}

	_, err := r.Resolve(context.Background(), "o/r", fetchedFixture(), Request{Workflow: "CI", Job: "deploy"})
	if !errors.Is(err, ErrUnknownJob) {
		t.Fatalf("expected ErrUnknownJob, got %v", err)
	}
	if !strings.Contains(err.Error(), "build") {
		t.Fatalf("error should list valid jobs, got %q", err)
	}
}

func TestResolveUnknownStep(t *testing.T) {
	r := &Resolver{Jobs: jobsFixture(), Prompter: &scriptedPrompter{}}

	_, err := r.Resolve(context.Background(), "o/r", fetchedFixture(), Request{Workflow: "CI", Job: "build", Step: "Set up job"})
	if !errors.Is(err, ErrUnknownStep) {
		t.Fatalf("bookkeeping steps must not validate, got %v", err)
	}
	if !strings.Contains(err.Error(), "total") || !strings.Contains(err.Error(), "make") {
		t.Fatalf("error should list total and filtered steps, got %q", err)
	}
}

func TestResolveInteractiveMenus(t *testing.T) {
	prompter := &scriptedPrompter{choices: []int{0, 0, 0}}
	r := &Resolver{Jobs: jobsFixture(), Prompter: prompter}

	sel, err := r.Resolve(context.Background(), "o/r", fetchedFixture(), Request{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if sel.Workflow != "CI" || sel.Job != "build" || !sel.Total {
		t.Fatalf("unexpected selection %+v", sel)
	}

	if len(prompter.menus) != 3 {
		t.Fatalf("expected 3 prompts, got %d", len(prompter.menus))
	}
	if prompter.menus[0][0] != "CI (2 runs)" {
		t.Fatalf("workflow menu should carry run counts, got %v", prompter.menus[0])
	}
	stepMenu := prompter.menus[2]
	if stepMenu[0] != "Total job time" {
		t.Fatalf("total must be the first step option, got %v", stepMenu)
	}
	rest := stepMenu[1:]
	for i := 1; i < len(rest); i++ {
		if rest[i-1] > rest[i] {
			t.Fatalf("step names should be sorted, got %v", rest)
		}
	}
	for _, name := range rest {
		if name == "Set up job" || strings.HasPrefix(name, "Post ") {
			t.Fatalf("bookkeeping step leaked into menu: %v", rest)
		}
	}
}

func TestResolvePartialInputPromptsOnlyMissing(t *testing.T) {
	prompter := &scriptedPrompter{choices: []int{1}}
	r := &Resolver{Jobs: jobsFixture(), Prompter: prompter}

	sel, err := r.Resolve(context.Background(), "o/r", fetchedFixture(), Request{Workflow: "CI", Job: "build"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(prompter.titles) != 1 || prompter.titles[0] != "Select a step" {
		t.Fatalf("expected a single step prompt, got %v", prompter.titles)
	}
	if sel.Total || sel.Step == "" {
		t.Fatalf("expected a concrete step, got %+v", sel)
	}
}

func TestResolveJobUnionCoversFirstAndLastRun(t *testing.T) {
	r := &Resolver{Jobs: jobsFixture(), Prompter: &scriptedPrompter{}}

	// "docs" only exists in the last run; it must still validate.
	sel, err := r.Resolve(context.Background(), "o/r", fetchedFixture(), Request{Workflow: "CI", Job: "docs", Step: "render"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if sel.Job != "docs" || sel.Step != "render" {
		t.Fatalf("unexpected selection %+v", sel)
	}
}

func TestResolveSurvivesOneBoundaryFetchFailure(t *testing.T) {
	jobs := jobsFixture()
	jobs.fail = map[int64]bool{100: true}
	r := &Resolver{Jobs: jobs, Prompter: &scriptedPrompter{}}

	sel, err := r.Resolve(context.Background(), "o/r", fetchedFixture(), Request{Workflow: "CI", Job: "build", Step: "lint"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if sel.Step != "lint" {
		t.Fatalf("unexpected selection %+v", sel)
	}
}

func TestResolveBothBoundaryFetchesFailing(t *testing.T) {
	jobs := jobsFixture()
	jobs.fail = map[int64]bool{100: true, 102: true}
	r := &Resolver{Jobs: jobs, Prompter: &scriptedPrompter{}}

	_, err := r.Resolve(context.Background(), "o/r", fetchedFixture(), Request{Workflow: "CI", Job: "build", Step: "make"})
	if err == nil {
		t.Fatalf("expected error when no job list is reachable")
	}
}
