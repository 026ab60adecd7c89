package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
)

func TestParseSteps(t *testing.T) {
	t.Parallel()

	if steps, err := parseSteps(nil); err != nil || steps != 1 {
		t.Fatalf("expected default of 1 step, got %d err=%v", steps, err)
	}
	if steps, err := parseSteps([]string{" 3 "}); err != nil || steps != 3 {
		t.Fatalf("expected 3 steps, got %d err=%v", steps, err)
	}
	for _, raw := range []string{"0", "-1", "x"} {
		if _, err := parseSteps([]string{raw}); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	t.Parallel()

	if v, err := parseVersion("2"); err != nil || v != 2 {
		t.Fatalf("unexpected version %d err=%v", v, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected negative version error")
	}
	if v, err := parseTarget("1"); err != nil || v != 1 {
		t.Fatalf("unexpected target %d err=%v", v, err)
	}
	if _, err := parseTarget("-1"); err == nil {
		t.Fatalf("expected negative target error")
	}
}

func TestResolveMigrationsDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	got, err := resolveMigrationsDir("", filepath.Join(dir, "missing"), dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %q, got %q", dir, got)
	}

	if _, err := resolveMigrationsDir(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error when no candidate exists")
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	err := run([]string{"sideways"}, logging.NewNop())
	if !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if err := run(nil, logging.NewNop()); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error for empty args, got %v", err)
	}
}
