package history

import (
	"context"
	"encoding/json"
	"fmt"
	"soilgate/internal/cli"
	"soilgate/internal/common"
	"soilgate/internal/config"
	"soilgate/internal/readings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var flags = cli.Flags{
	{
		Name:         "username",
		Short:        'u',
		DefaultValue: "",
		Usage:        "the user whose readings should be listed",
		Type:         cli.FlagTypeString,
	},
}.Append(config.GetStorageFlags()).
	Append(config.GetMongoFlags()).
	Append(config.GetMysqlFlags())

var Command = cli.NewCommand(cli.CommandOpts{
	Name:    "get.history",
	Flags:   flags,
	Use:     "history",
	Aliases: []string{"readings", "h"},
	Short:   "Lists the moisture readings stored for a user, oldest first",
	Run: func(cmd *cobra.Command, opts *cli.Command, args []string) error {
		username := viper.GetString("username")
		if username == "" {
			return fmt.Errorf("failed to receive a --username")
		}
		backend, err := config.GetBackend(config.ReadingsBackend, common.ReadingsBackends)
		if err != nil {
			return err
		}
		serviceLogs := opts.GetServiceLogs()

		var repository readings.Repository
		switch backend {
		case common.BackendMongo:
			mongoConnection := config.NewMongoConnection(opts.GetFullname(), &serviceLogs)
			opts.AddShutdownProcess(mongoConnection.GetId(), mongoConnection.Shutdown)
			if err := mongoConnection.Init(); err != nil {
				return fmt.Errorf("failed to connect to mongo: %w", err)
			}
			repository, err = readings.NewMongo(readings.NewMongoOpts{
				Database:   mongoConnection.GetDatabase(),
				Collection: viper.GetString(config.ReadingsCollection),
			})
		case common.BackendMysql:
			mysqlConnection := config.NewMysqlConnection(opts.GetFullname(), &serviceLogs)
			opts.AddShutdownProcess(mysqlConnection.GetId(), mysqlConnection.Shutdown)
			if err := mysqlConnection.Init(); err != nil {
				return fmt.Errorf("failed to connect to mysql: %w", err)
			}
			repository, err = readings.NewMysql(readings.NewMysqlOpts{Db: mysqlConnection.GetClient()})
		default:
			return fmt.Errorf("readings kept in memory only live inside a running gateway, use --%s to pick a persistent store", config.ReadingsBackend)
		}
		if err != nil {
			return fmt.Errorf("failed to create readings repository: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), common.DefaultDurationConnectionTimeout)
		defer cancel()
		history, err := repository.ListByUser(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to list readings of user[%s]: %w", username, err)
		}

		switch viper.GetString("output") {
		case cli.OutputJson:
			o, _ := json.MarshalIndent(history, "", "  ")
			fmt.Println(string(o))
		case cli.OutputYaml:
			o, err := yaml.Marshal(history)
			if err != nil {
				return fmt.Errorf("failed to marshal readings: %w", err)
			}
			fmt.Print(string(o))
		default:
			table := cli.NewTable(cli.NewTableOpts{
				Headers: []string{"#", "recorded at", "moisture"},
				Rows: func(t *cli.Table) error {
					for index, entry := range history {
						if err := t.NewRow(index+1, time.Unix(entry.Timestamp, 0).Format(time.RFC3339), entry.MoistureValue); err != nil {
							return err
						}
					}
					return nil
				},
			})
			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}
			fmt.Println(table.GetString())
			fmt.Printf("%v reading(s) for user[%s]\n", len(history), username)
		}
		return nil
	},
})
