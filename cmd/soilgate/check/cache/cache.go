package cache

import (
	"fmt"
	"soilgate/internal/cache"
	"soilgate/internal/cli"
	"soilgate/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = cli.NewCommand(cli.CommandOpts{
	Name:    "check.cache",
	Flags:   config.GetRedisFlags(),
	Use:     "cache",
	Aliases: []string{"c"},
	Short:   "Checks connectivity with the redis session cache",
	Run: func(cmd *cobra.Command, opts *cli.Command, args []string) error {
		serviceLogs := opts.GetServiceLogs()

		logrus.Infof("verifying cache connectivity...")
		redisConnection := config.NewRedisConnection(opts.GetFullname(), &serviceLogs)
		opts.AddShutdownProcess(redisConnection.GetId(), redisConnection.Shutdown)
		if err := redisConnection.Init(); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		sessionCache, err := cache.NewRedis(cache.NewRedisOpts{
			Client:      redisConnection.GetInstance().Client,
			ServiceLogs: serviceLogs,
		})
		if err != nil {
			return fmt.Errorf("failed to initialise cache: %w", err)
		}
		if err := sessionCache.Ping(); err != nil {
			return fmt.Errorf("failed to establish connection to cache: %w", err)
		}
		cli.PrintBoxedSuccessMessage(fmt.Sprintf(
			"Successfully connected to cache at address[%s]",
			viper.GetString(config.RedisAddr),
		))
		return nil
	},
})
