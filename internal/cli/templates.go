package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/quarry-analytics/quarry-cli/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available project templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range templates.Names() {
			c, err := templates.Get(name)
			if err != nil {
				return err
			}

			files := make([]string, 0, len(c.Files))
			for f := range c.Files {
				files = append(files, f)
			}
			sort.Strings(files)

			marker := " "
			if name == templates.DefaultName {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", f)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\n* default")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
