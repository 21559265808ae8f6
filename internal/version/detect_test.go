package version

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"
)

func TestParseGH(t *testing.T) {
	out := "gh version 2.45.0 (2024-03-04)\nhttps://github.com/cli/cli/releases/tag/v2.45.0"
	info, err := parseGH(out)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if info.Name != "gh" || info.Version != "2.45.0" {
		t.Fatalf("unexpected info %+v", info)
	}
}

func TestParseGHGarbage(t *testing.T) {
	if _, err := parseGH("command not found"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestMissing(t *testing.T) {
	wrapped := fmt.Errorf("run gh: %w", exec.ErrNotFound)
	if !Missing(wrapped) {
		t.Fatalf("expected wrapped ErrNotFound to report missing")
	}
	if Missing(errors.New("other")) {
		t.Fatalf("unrelated errors are not missing executables")
	}
}
