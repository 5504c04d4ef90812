package check

import (
	"errors"
	"fmt"
	"soilgate/cmd/soilgate/check/cache"
	"soilgate/cmd/soilgate/check/database"
	"soilgate/internal/cli"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "all",
		DefaultValue: false,
		Usage:        "When this is defined, all checks are ran",
		Type:         cli.FlagTypeBool,
	},
}

func init() {
	Command.AddCommand(cache.Command.Get())
	Command.AddCommand(database.Command.Get())

	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:   "check",
	Short: "Runs checks on the stores the gateway depends on",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !viper.GetBool("all") {
			return cmd.Help()
		}
		errs := []error{}
		erroredCommands := []string{}
		for _, command := range cmd.Commands() {
			rootCmd := cmd.Root()
			rootCmd.SetArgs([]string{"check", command.Name()})
			if _, err := rootCmd.ExecuteC(); err != nil {
				errs = append(errs, err)
				erroredCommands = append(erroredCommands, command.Name())
			}
		}
		if len(errs) > 0 {
			cli.PrintBoxedErrorMessage(fmt.Sprintf(
				"You may be experiencing reduced functionality!\n\n"+
					"The following checks failed:\n- %s",
				strings.Join(erroredCommands, "\n- "),
			))
			return errors.Join(errs...)
		}
		cli.PrintBoxedSuccessMessage("All checks passed")
		return nil
	},
}
