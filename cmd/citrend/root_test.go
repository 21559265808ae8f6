package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestInvalidRepoFailsBeforeAnyNetworkCall(t *testing.T) {
	for _, repo := range []string{"redis", "a/b/c", "/repo", "owner/"} {
		_, err := execute(t, "--repo", repo, "--pr", "1")
		if err == nil {
			t.Fatalf("repo %q should fail validation", repo)
		}
		if !strings.Contains(err.Error(), "owner/repo") {
			t.Fatalf("repo %q: expected shape error, got %v", repo, err)
		}
	}
}

func TestNegativePRFailsValidation(t *testing.T) {
	_, err := execute(t, "--repo", "redis/redis", "--pr", "-5")
	if err == nil || !strings.Contains(err.Error(), "non-negative") {
		t.Fatalf("expected PR validation error, got %v", err)
	}
}

func TestMissingRequiredFlags(t *testing.T) {
	_, err := execute(t)
	if err == nil || !strings.Contains(err.Error(), "required") {
		t.Fatalf("expected required-flag error, got %v", err)
	}
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	_, err := execute(t, "--repo", "redis/redis", "--pr", "1", "--bogus")
	if err == nil || !strings.Contains(err.Error(), "unknown flag") {
		t.Fatalf("expected unknown flag error, got %v", err)
	}
}

func TestHelpSucceeds(t *testing.T) {
	out, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("help should exit cleanly: %v", err)
	}
	if !strings.Contains(out, "--repo") || !strings.Contains(out, "--step") {
		t.Fatalf("usage should document flags, got %q", out)
	}
}

func TestGatherFlags(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--repo", "o/r", "--pr", "7", "--step", "total", "-i"})
	if err := cmd.ParseFlags([]string{"--repo", "o/r", "--pr", "7", "--step", "total", "-i"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	values, err := gatherFlags(cmd)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if !values.Repo.Set || values.Repo.Value != "o/r" {
		t.Fatalf("repo flag not captured: %+v", values.Repo)
	}
	if !values.Step.Set || values.Step.Value != "total" {
		t.Fatalf("step flag not captured: %+v", values.Step)
	}
	if !values.Interactive.Set || !values.Interactive.Value {
		t.Fatalf("interactive flag not captured: %+v", values.Interactive)
	}
	if values.Workflow.Set {
		t.Fatalf("unset flags must stay unset: %+v", values.Workflow)
	}
}
