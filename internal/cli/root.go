package cli

import (
	"github.com/spf13/cobra"

	"github.com/pwaforge-labs/pwaforge/internal/branding"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	appVersion string
	outputDir  string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [name]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates a production-ready Progressive Web App game framework:
a fixed directory tree with an entry page, web-app manifest, service
worker, CSS, a modular JS engine, and empty asset directories.

The project name is sanitized (lowercased, spaces to hyphens); only
letters, numbers, hyphens, and underscores survive. When no name is
given, an interactive prompt asks for one.

Examples:
  pwaforge my-game
  pwaforge "Space Shooter"`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runGenerate,
}

func init() {
	rootCmd.Flags().StringVar(&appVersion, "app-version", "0.1.0", "Semver stamped into the generated HTML and README")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Parent directory for the generated project")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version
	return rootCmd.Execute()
}
