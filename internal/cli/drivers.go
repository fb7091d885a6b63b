package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quarry-analytics/quarry-cli/internal/drivers"
)

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List supported database types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := drivers.Types()
		if err != nil {
			return err
		}

		for _, dbType := range types {
			packages, err := drivers.Packages(dbType)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %s\n", dbType, strings.Join(packages, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(driversCmd)
}
