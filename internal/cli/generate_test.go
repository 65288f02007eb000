package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/pwaforge-labs/pwaforge/internal/name"
	"github.com/pwaforge-labs/pwaforge/internal/scaffold"
)

// newGenerateCmd returns a command whose output streams are buffers,
// so summary and prompt text stay out of the test log.
func newGenerateCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	return cmd, out
}

// useOutputDir points the generator at dir and restores the previous
// target when the test finishes.
func useOutputDir(t *testing.T, dir string) {
	t.Helper()
	prev := outputDir
	outputDir = dir
	t.Cleanup(func() { outputDir = prev })
}

func TestRunGenerateInvalidNameCreatesNothing(t *testing.T) {
	tests := []struct {
		raw  string
		want error
	}{
		{"   ", name.ErrEmptyName},
		{"\t\n", name.ErrEmptyName},
		{"!!!", name.ErrEmptyAfterSanitize},
		{"---", name.ErrEmptyAfterSanitize},
		{strings.Repeat("a", name.DefaultMaxLength+1), name.ErrTooLong},
	}

	for _, tt := range tests {
		dir := t.TempDir()
		useOutputDir(t, dir)
		cmd, _ := newGenerateCmd()

		err := runGenerate(cmd, []string{tt.raw})
		if !errors.Is(err, tt.want) {
			t.Errorf("runGenerate(%q) error = %v, want %v", tt.raw, err, tt.want)
		}

		entries, readErr := os.ReadDir(dir)
		if readErr != nil {
			t.Fatalf("ReadDir(%s) error: %v", dir, readErr)
		}
		if len(entries) != 0 {
			t.Errorf("runGenerate(%q) created %d entries, want none", tt.raw, len(entries))
		}
	}
}

func TestRunGenerateCreatesProject(t *testing.T) {
	dir := t.TempDir()
	useOutputDir(t, dir)
	cmd, out := newGenerateCmd()

	if err := runGenerate(cmd, []string{"Test Game"}); err != nil {
		t.Fatalf("runGenerate() error: %v", err)
	}

	root := filepath.Join(dir, "test-game")
	for _, rel := range []string{
		"index.html",
		"manifest.json",
		"service-worker.js",
		"js/scenes/GameScene.js",
	} {
		info, err := os.Stat(filepath.Join(root, rel))
		if err != nil {
			t.Errorf("missing %s: %v", rel, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", rel)
		}
	}

	if info, err := os.Stat(filepath.Join(root, "assets", "icons")); err != nil || !info.IsDir() {
		t.Errorf("assets/icons missing or not a directory: %v", err)
	}

	if !strings.Contains(out.String(), "Created") {
		t.Errorf("summary missing from output: %s", out.String())
	}
}

func TestRunGenerateRefusesExistingDestination(t *testing.T) {
	dir := t.TempDir()
	useOutputDir(t, dir)

	if err := os.Mkdir(filepath.Join(dir, "test-game"), 0755); err != nil {
		t.Fatalf("Mkdir() error: %v", err)
	}

	cmd, _ := newGenerateCmd()
	err := runGenerate(cmd, []string{"test-game"})
	if !errors.Is(err, scaffold.ErrDestinationExists) {
		t.Errorf("runGenerate() error = %v, want ErrDestinationExists", err)
	}
}
