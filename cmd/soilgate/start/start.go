package start

import (
	"soilgate/cmd/soilgate/start/gateway"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(gateway.Command.Get())
}

var Command = &cobra.Command{
	Use:     "start",
	Aliases: []string{"st"},
	Short:   "Starts one of soilgate's services",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
