package ghcli

import "time"

// Wire structs mirror the REST payloads gh api returns. Timestamps that the
// remote side has not reported yet arrive as null and stay nil.

type wirePullRequest struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Head   struct {
		Ref string `json:"ref"`
		SHA string `json:"sha"`
	} `json:"head"`
}

type wireRunList struct {
	TotalCount   int       `json:"total_count"`
	WorkflowRuns []wireRun `json:"workflow_runs"`
}

type wireRun struct {
	ID         int64     `json:"id"`
	RunNumber  int       `json:"run_number"`
	Name       string    `json:"name"`
	HeadBranch string    `json:"head_branch"`
	HeadSHA    string    `json:"head_sha"`
	CreatedAt  time.Time `json:"created_at"`
	HeadCommit struct {
		Message string `json:"message"`
	} `json:"head_commit"`
}

type wireJobList struct {
	TotalCount int       `json:"total_count"`
	Jobs       []wireJob `json:"jobs"`
}

type wireJob struct {
	Name        string     `json:"name"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Steps       []wireStep `json:"steps"`
}

type wireStep struct {
	Name        string     `json:"name"`
	Number      int        `json:"number"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}
