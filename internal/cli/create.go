package cli

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/quarry-analytics/quarry-cli/internal/npm"
	"github.com/quarry-analytics/quarry-cli/internal/prompt"
	"github.com/quarry-analytics/quarry-cli/internal/scaffold"
	"github.com/quarry-analytics/quarry-cli/internal/telemetry"
	"github.com/quarry-analytics/quarry-cli/internal/templates"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-_]*$`)

var (
	createDBType   string
	createTemplate string
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Scaffold a new Quarry application",
	Long: `Create a new Quarry application: a directory with a package manifest,
installed server and database driver packages, and template-rendered
starter files.

Examples:
  quarry create hello-world
  quarry create hello-world -d postgres
  quarry create hello-world -d hive -t docker`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createDBType, "db-type", "d", "", "Database type (prompted for when omitted)")
	createCmd.Flags().StringVarP(&createTemplate, "template", "t", templates.DefaultName, "Project template")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := validateName(name); err != nil {
		return err
	}

	if err := npm.CheckNodeVersion(cmd.Context()); err != nil {
		return err
	}

	events := telemetry.New(buildVersion)
	defer events.Flush()

	s := &scaffold.Scaffolder{
		Installer: &npm.Client{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
		Chooser:   prompt.Survey{},
		Events:    events,
		Out:       cmd.OutOrStdout(),
	}

	return s.Execute(cmd.Context(), scaffold.CreateOptions{
		ProjectName: name,
		Template:    createTemplate,
		DBType:      createDBType,
	})
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match pattern [a-z0-9][a-z0-9-_]*", name)
	}
	return nil
}
