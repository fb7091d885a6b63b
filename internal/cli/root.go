package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarry-analytics/quarry-cli/internal/branding"
	"github.com/quarry-analytics/quarry-cli/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds new analytics applications: it creates the project
directory, installs the server and database driver packages, and renders the
starter files for the chosen template.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
// The command tree silences cobra's own error output, so failures are
// printed here — every error a command returns must reach the user.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}
