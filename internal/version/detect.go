package version

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// Info captures an external tool version installed on the system.
type Info struct {
	Name    string
	Version string
}

var ghRegex = regexp.MustCompile(`(?i)gh version\s+(\d+\.\d+(?:\.\d+)?)`)

// DetectGH returns the installed GitHub CLI version by calling `gh version`.
func DetectGH() (Info, error) {
	out, err := runCommand("gh", "version")
	if err != nil {
		return Info{}, err
	}
	return parseGH(out)
}

func parseGH(out string) (Info, error) {
	match := ghRegex.FindStringSubmatch(out)
	if len(match) < 2 {
		return Info{}, fmt.Errorf("unable to parse gh version from %q", out)
	}
	return Info{Name: "gh", Version: match[1]}, nil
}

func runCommand(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// Missing reports whether executing the command returns a not-found error.
func Missing(cmdErr error) bool {
	return errors.Is(cmdErr, exec.ErrNotFound)
}
