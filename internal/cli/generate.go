package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pwaforge-labs/pwaforge/internal/config"
	"github.com/pwaforge-labs/pwaforge/internal/manifest"
	"github.com/pwaforge-labs/pwaforge/internal/name"
	"github.com/pwaforge-labs/pwaforge/internal/scaffold"
	"github.com/pwaforge-labs/pwaforge/internal/templates"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	config.Load()
	color.NoColor = color.NoColor || !config.ColorEnabled()

	maxLen := config.MaxNameLength()

	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		entered, err := promptName(os.Stdin, cmd.ErrOrStderr(), maxLen)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(cmd.ErrOrStderr(), "\nCancelled.")
				return nil
			}
			return fmt.Errorf("reading project name: %w", err)
		}
		raw = entered
	}

	canonical, err := name.SanitizeWithLimit(raw, maxLen)
	if err != nil {
		return fmt.Errorf("invalid project name: %w", err)
	}

	data, err := templates.NewData(canonical, appVersion)
	if err != nil {
		return err
	}

	plan, err := scaffold.NewPlan(data)
	if err != nil {
		return fmt.Errorf("assembling file manifest: %w", err)
	}

	root := filepath.Join(outputDir, canonical)
	result, err := scaffold.Materialize(afero.NewOsFs(), root, plan)
	if err != nil && result == nil {
		// Fatal: nothing (or only the fresh root) was written.
		return err
	}

	printSummary(cmd.OutOrStdout(), data, plan, result)
	return err
}

// printSummary reports the project path, per-file outcomes, schema
// warnings for the generated web-app manifest, and next steps.
func printSummary(w io.Writer, data *templates.Data, plan *scaffold.Plan, result *scaffold.Result) {
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)

	abs, err := filepath.Abs(result.Root)
	if err != nil {
		abs = result.Root
	}

	ok.Fprintf(w, "Created %s\n", data.DisplayName)
	fmt.Fprintf(w, "  Location: %s\n", abs)
	fmt.Fprintf(w, "  Files: %d of %d created\n", result.Created, result.Requested)

	if len(result.Failures) > 0 {
		warn.Fprintln(w, "\nWarnings:")
		for _, f := range result.Failures {
			warn.Fprintf(w, "  - %s: %v\n", f.Path, f.Err)
		}
	}

	for _, issue := range manifestIssues(plan) {
		warn.Fprintf(w, "  - manifest.json: %s\n", issue)
	}

	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. cd %s\n", data.Name)
	fmt.Fprintln(w, "  2. Serve the directory (e.g. python3 -m http.server 8000)")
	fmt.Fprintln(w, "  3. Open http://localhost:8000")
	fmt.Fprintln(w, "\nEdit js/scenes/GameScene.js to add your game logic.")
}

// manifestIssues runs the rendered web-app manifest through the schema
// validator. Issues are advisory only.
func manifestIssues(plan *scaffold.Plan) []string {
	var raw []byte
	for _, f := range plan.Files {
		if f.Path == "manifest.json" {
			raw = f.Content
			break
		}
	}
	if raw == nil {
		return nil
	}

	result, err := manifest.Validate(raw)
	if err != nil {
		return []string{fmt.Sprintf("could not validate: %v", err)}
	}

	var msgs []string
	for _, issue := range result.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		msgs = append(msgs, msg)
	}
	return msgs
}
