package cli

import (
	"io"
	"testing"

	"github.com/matzehuels/antennas/pkg/buildinfo"
)

func TestSetVersion(t *testing.T) {
	oldV, oldC, oldD := buildinfo.Version, buildinfo.Commit, buildinfo.Date
	t.Cleanup(func() { buildinfo.Version, buildinfo.Commit, buildinfo.Date = oldV, oldC, oldD })

	SetVersion("1.0.0", "abc123", "2024-01-01")

	if buildinfo.Version != "1.0.0" {
		t.Errorf("Version = %q, want %q", buildinfo.Version, "1.0.0")
	}
	if buildinfo.Commit != "abc123" {
		t.Errorf("Commit = %q, want %q", buildinfo.Commit, "abc123")
	}
	if buildinfo.Date != "2024-01-01" {
		t.Errorf("Date = %q, want %q", buildinfo.Date, "2024-01-01")
	}
}

func TestSetVersionEmptyKeepsDefaults(t *testing.T) {
	oldV, oldC, oldD := buildinfo.Version, buildinfo.Commit, buildinfo.Date
	t.Cleanup(func() { buildinfo.Version, buildinfo.Commit, buildinfo.Date = oldV, oldC, oldD })

	SetVersion("", "", "")

	if buildinfo.Version != oldV || buildinfo.Commit != oldC || buildinfo.Date != oldD {
		t.Errorf("SetVersion with empty values changed build info to %s", buildinfo.String())
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := []string{"summary", "vertices", "traverse", "paths", "intersect", "effects",
		"render", "serve", "explore", "cache", "config", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
