package migrations

import (
	"fmt"
	"soilgate/internal/cli"
	"soilgate/internal/config"
	"soilgate/internal/database"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags = config.GetMysqlFlags().Append(cli.Flags{
	{
		Name:         "steps",
		DefaultValue: 0,
		Usage:        "number of migrations to apply, negative values roll back and 0 applies everything pending",
		Type:         cli.FlagTypeInteger,
	},
	{
		Name:         "dry-run",
		DefaultValue: false,
		Usage:        "when true, lists the bundled migrations without connecting to mysql",
		Type:         cli.FlagTypeBool,
	},
})

var Command = cli.NewCommand(cli.CommandOpts{
	Name:    "run.migrations",
	Flags:   flags,
	Use:     "migrations",
	Aliases: []string{"migrate", "m"},
	Short:   "Applies the mysql schema migrations for the readings store",
	Run: func(cmd *cobra.Command, opts *cli.Command, args []string) error {
		if viper.GetBool("dry-run") {
			migrationFiles, err := database.ListMigrations()
			if err != nil {
				return err
			}
			cli.PrintBoxedInfoMessage(fmt.Sprintf("Bundled migrations:\n- %s", strings.Join(migrationFiles, "\n- ")))
			return nil
		}

		serviceLogs := opts.GetServiceLogs()
		logrus.Infof("establishing connection to mysql...")
		mysqlConnection := config.NewMysqlConnection(opts.GetFullname(), &serviceLogs)
		opts.AddShutdownProcess(mysqlConnection.GetId(), mysqlConnection.Shutdown)
		if err := mysqlConnection.Init(); err != nil {
			return fmt.Errorf("failed to connect to mysql: %w", err)
		}
		steps := viper.GetInt("steps")
		if err := database.MigrateMysql(database.MigrateOpts{
			Connection:  mysqlConnection.GetClient(),
			Steps:       steps,
			ServiceLogs: serviceLogs,
		}); err != nil {
			return err
		}
		cli.PrintBoxedSuccessMessage(fmt.Sprintf(
			"Migrations applied to database[%s] at host[%s]",
			viper.GetString(config.MysqlDatabase),
			viper.GetString(config.MysqlHost),
		))
		return nil
	},
})
