package run

import (
	"soilgate/cmd/soilgate/run/migrations"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(migrations.Command.Get())
}

var Command = &cobra.Command{
	Use:     "run",
	Aliases: []string{"r"},
	Short:   "Runs one-off maintenance jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
