package ghcli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/bgricker/citrend/internal/provider"
)

// Runner executes gh subprocess invocations. Output captures both streams;
// Interactive attaches the invocation to the user's terminal.
type Runner interface {
	Output(ctx context.Context, args ...string) (stdout []byte, stderr string, err error)
	Interactive(ctx context.Context, args ...string) error
}

// Options configure the client.
type Options struct {
	Exe    string
	Runner Runner
	Logger *slog.Logger
}

// Client talks to the GitHub API through the gh CLI, which owns credentials
// and host configuration.
type Client struct {
	runner Runner
	logger *slog.Logger
}

// New creates a client with the supplied options.
func New(opts Options) *Client {
	if opts.Exe == "" {
		opts.Exe = "gh"
	}
	if opts.Runner == nil {
		opts.Runner = &execRunner{exe: opts.Exe}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{runner: opts.Runner, logger: opts.Logger}
}

// EnsureAuthenticated checks gh's credential state and falls back to an
// interactive `gh auth login` when the check fails. A failed login is fatal.
func (c *Client) EnsureAuthenticated(ctx context.Context) error {
	_, stderr, err := c.runner.Output(ctx, "auth", "status")
	if err == nil {
		return nil
	}
	c.logger.Debug("gh auth status failed, attempting login", "stderr", strings.TrimSpace(stderr))
	if loginErr := c.runner.Interactive(ctx, "auth", "login"); loginErr != nil {
		return fmt.Errorf("authentication required and `gh auth login` failed: %w", loginErr)
	}
	return nil
}

// PullRequest resolves a PR's head branch and SHA.
func (c *Client) PullRequest(ctx context.Context, repo string, number int) (provider.PullRequest, error) {
	var wire wirePullRequest
	path := fmt.Sprintf("repos/%s/pulls/%d", repo, number)
	if err := c.api(ctx, path, &wire); err != nil {
		return provider.PullRequest{}, err
	}
	return provider.PullRequest{
		Number:     wire.Number,
		Title:      wire.Title,
		HeadBranch: wire.Head.Ref,
		HeadSHA:    wire.Head.SHA,
	}, nil
}

// RunsForBranch lists workflow runs restricted to the given branch.
func (c *Client) RunsForBranch(ctx context.Context, repo, branch string) ([]provider.Run, error) {
	var wire wireRunList
	path := fmt.Sprintf("repos/%s/actions/runs?branch=%s&per_page=100", repo, url.QueryEscape(branch))
	if err := c.api(ctx, path, &wire); err != nil {
		return nil, err
	}
	runs := make([]provider.Run, 0, len(wire.WorkflowRuns))
	for _, r := range wire.WorkflowRuns {
		runs = append(runs, provider.Run{
			ID:        r.ID,
			Number:    r.RunNumber,
			Workflow:  r.Name,
			HeadSHA:   r.HeadSHA,
			CreatedAt: r.CreatedAt,
			Message:   r.HeadCommit.Message,
		})
	}
	return runs, nil
}

// JobsForRun lists a run's jobs including per-step timestamps.
func (c *Client) JobsForRun(ctx context.Context, repo string, runID int64) ([]provider.Job, error) {
	var wire wireJobList
	path := fmt.Sprintf("repos/%s/actions/runs/%d/jobs?per_page=100", repo, runID)
	if err := c.api(ctx, path, &wire); err != nil {
		return nil, err
	}
	jobs := make([]provider.Job, 0, len(wire.Jobs))
	for _, j := range wire.Jobs {
		job := provider.Job{
			Name:        j.Name,
			StartedAt:   j.StartedAt,
			CompletedAt: j.CompletedAt,
			Steps:       make([]provider.Step, 0, len(j.Steps)),
		}
		for _, s := range j.Steps {
			job.Steps = append(job.Steps, provider.Step{
				Name:        s.Name,
				StartedAt:   s.StartedAt,
				CompletedAt: s.CompletedAt,
			})
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (c *Client) api(ctx context.Context, path string, out any) error {
	c.logger.Debug("gh api", "path", path)
	stdout, stderr, err := c.runner.Output(ctx, "api", path)
	if err != nil {
		if isNotFound(stderr) {
			return fmt.Errorf("%s: %w", path, provider.ErrNotFound)
		}
		return fmt.Errorf("gh api %s: %w: %s", path, err, strings.TrimSpace(stderr))
	}
	if err := json.Unmarshal(stdout, out); err != nil {
		return fmt.Errorf("decode gh api %s response: %w", path, err)
	}
	return nil
}

func isNotFound(stderr string) bool {
	return strings.Contains(stderr, "HTTP 404") || strings.Contains(stderr, "Not Found")
}
