package database

import (
	"context"
	"fmt"
	"soilgate/internal/cli"
	"soilgate/internal/common"
	"soilgate/internal/config"
	"soilgate/internal/persistence"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
)

var flags = config.GetStorageFlags().
	Append(config.GetMongoFlags()).
	Append(config.GetMysqlFlags())

var Command = cli.NewCommand(cli.CommandOpts{
	Name:    "check.database",
	Flags:   flags,
	Use:     "database",
	Aliases: []string{"db"},
	Short:   "Checks connectivity with the store moisture readings are kept in",
	Run: func(cmd *cobra.Command, opts *cli.Command, args []string) error {
		serviceLogs := opts.GetServiceLogs()
		backend, err := config.GetBackend(config.ReadingsBackend, common.ReadingsBackends)
		if err != nil {
			return err
		}

		logrus.Infof("verifying %s connectivity...", backend)
		var connection persistence.Connection
		var verify func() error
		switch backend {
		case common.BackendMongo:
			mongoConnection := config.NewMongoConnection(opts.GetFullname(), &serviceLogs)
			connection = mongoConnection
			verify = func() error {
				collections, err := mongoConnection.GetDatabase().ListCollectionNames(context.Background(), bson.M{})
				if err != nil {
					return fmt.Errorf("failed to list collections: %w", err)
				}
				logrus.Debugf("found collections %v", collections)
				return nil
			}
		case common.BackendMysql:
			mysqlConnection := config.NewMysqlConnection(opts.GetFullname(), &serviceLogs)
			connection = mysqlConnection
			verify = func() error {
				if _, err := mysqlConnection.GetClient().Exec("SELECT 1"); err != nil {
					return fmt.Errorf("failed to send test query to database: %w", err)
				}
				return nil
			}
		default:
			cli.PrintBoxedInfoMessage("Readings are kept in memory, there is nothing to check")
			return nil
		}

		opts.AddShutdownProcess(connection.GetId(), connection.Shutdown)
		if err := connection.Init(); err != nil {
			return fmt.Errorf("failed to connect to %s: %w", backend, err)
		}
		if err := verify(); err != nil {
			return err
		}
		target := viper.GetString(config.MysqlHost)
		if backend == common.BackendMongo {
			target = fmt.Sprintf("%v", config.GetMongoHosts(viper.GetStringSlice(config.MongoHosts), viper.GetString(config.MongoHost), viper.GetString(config.MongoPort)))
		}
		cli.PrintBoxedSuccessMessage(fmt.Sprintf("Successfully connected to %s at %s", backend, target))
		return nil
	},
})
