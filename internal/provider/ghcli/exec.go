package ghcli

import (
	"context"
	"os"
	"os/exec"
	"strings"
)

// execRunner invokes the gh binary directly.
type execRunner struct {
	exe string
}

func (r *execRunner) Output(ctx context.Context, args ...string) ([]byte, string, error) {
	cmd := exec.CommandContext(ctx, r.exe, args...)
	cmd.Stdin = nil
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return []byte(stdout.String()), stderr.String(), err
}

func (r *execRunner) Interactive(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, r.exe, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
