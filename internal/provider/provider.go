package provider

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates the remote API reported the requested resource as
// missing or access-denied.
var ErrNotFound = errors.New("not found")

// PullRequest carries the head information needed to locate a PR's runs.
type PullRequest struct {
	Number     int    `json:"number"`
	Title      string `json:"title"`
	HeadBranch string `json:"head_branch"`
	HeadSHA    string `json:"head_sha"`
}

// Run is one execution of a workflow on the PR's branch. Runs are immutable
// once fetched and ordered ascending by Number.
type Run struct {
	ID        int64     `json:"id"`
	Number    int       `json:"run_number"`
	Workflow  string    `json:"workflow"`
	HeadSHA   string    `json:"head_sha"`
	CreatedAt time.Time `json:"created_at"`
	Message   string    `json:"message"`
}

// Job is a named unit of work within a run. Timestamps are nil while the
// remote side has not reported them.
type Job struct {
	Name        string     `json:"name"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Steps       []Step     `json:"steps"`
}

// Step is a named unit of work within a job with its own timestamps.
type Step struct {
	Name        string     `json:"name"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// API is the remote surface the pipeline consumes. Implementations block
// until the response arrives; cancellation goes through ctx.
type API interface {
	PullRequest(ctx context.Context, repo string, number int) (PullRequest, error)
	RunsForBranch(ctx context.Context, repo, branch string) ([]Run, error)
	JobsForRun(ctx context.Context, repo string, runID int64) ([]Job, error)
}
