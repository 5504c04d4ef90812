package get

import (
	"soilgate/cmd/soilgate/get/history"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(history.Command.Get())
}

var Command = &cobra.Command{
	Use:     "get",
	Aliases: []string{"g"},
	Short:   "Retrieves stored data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
