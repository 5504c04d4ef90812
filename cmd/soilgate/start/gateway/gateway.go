package gateway

import (
	"fmt"
	"soilgate/internal/audit"
	"soilgate/internal/cache"
	"soilgate/internal/cli"
	"soilgate/internal/common"
	"soilgate/internal/config"
	"soilgate/internal/database"
	"soilgate/internal/dispatch"
	"soilgate/internal/gateway"
	"soilgate/internal/persistence"
	"soilgate/internal/readings"
	"soilgate/internal/session"
	"soilgate/internal/users"
	"soilgate/pkg/sensor"
	"soilgate/pkg/voice"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// livenessGracePeriod is how long a storage connection may stay broken
// before the liveness probe starts failing
const livenessGracePeriod = 30 * time.Second

var Command = cli.NewCommand(cli.CommandOpts{
	Name:    "start.gateway",
	Flags:   flags,
	Use:     "gateway",
	Aliases: []string{"gw", "g"},
	Short:   "Starts the gateway",
	Long:    "Starts the gateway which serves the dashboard, authenticates users and relays their commands to the rig's sensor and voice services",
	Run: func(cmd *cobra.Command, opts *cli.Command, args []string) error {
		appName := opts.GetFullname()
		serviceLogs := opts.GetServiceLogs()
		connections := []persistence.Connection{}

		readingsBackend, err := config.GetBackend(config.ReadingsBackend, common.ReadingsBackends)
		if err != nil {
			return err
		}
		sessionBackend, err := config.GetBackend(config.SessionBackend, common.SessionBackends)
		if err != nil {
			return err
		}

		var mongoConnection *persistence.Mongo
		var readingsRepository readings.Repository
		switch readingsBackend {
		case common.BackendMongo:
			logrus.Infof("establishing connection to mongo...")
			mongoConnection = config.NewMongoConnection(appName, &serviceLogs)
			opts.AddShutdownProcess(mongoConnection.GetId(), mongoConnection.Shutdown)
			if err := mongoConnection.Init(); err != nil {
				return fmt.Errorf("failed to connect to mongo: %w", err)
			}
			connections = append(connections, mongoConnection)
			readingsRepository, err = readings.NewMongo(readings.NewMongoOpts{
				Database:   mongoConnection.GetDatabase(),
				Collection: viper.GetString(config.ReadingsCollection),
			})
			if err != nil {
				return fmt.Errorf("failed to create mongo readings repository: %w", err)
			}
		case common.BackendMysql:
			logrus.Infof("establishing connection to mysql...")
			mysqlConnection := config.NewMysqlConnection(appName, &serviceLogs)
			opts.AddShutdownProcess(mysqlConnection.GetId(), mysqlConnection.Shutdown)
			if err := mysqlConnection.Init(); err != nil {
				return fmt.Errorf("failed to connect to mysql: %w", err)
			}
			connections = append(connections, mysqlConnection)
			if err := database.MigrateMysql(database.MigrateOpts{
				Connection:  mysqlConnection.GetClient(),
				ServiceLogs: serviceLogs,
			}); err != nil {
				return fmt.Errorf("failed to migrate mysql: %w", err)
			}
			readingsRepository, err = readings.NewMysql(readings.NewMysqlOpts{Db: mysqlConnection.GetClient()})
			if err != nil {
				return fmt.Errorf("failed to create mysql readings repository: %w", err)
			}
		default:
			logrus.Warnf("readings are kept in memory and will be lost on restart")
			readingsRepository = readings.NewMemory()
		}
		logrus.Debugf("readings will be stored in %s", readingsBackend)

		var auditLogger audit.Logger = audit.NewServiceLogger(serviceLogs)
		if viper.GetBool(config.AuditEnabled) {
			if mongoConnection == nil {
				logrus.Infof("establishing connection to mongo for the audit trail...")
				auditConnection := config.NewMongoConnection(appName, &serviceLogs)
				opts.AddShutdownProcess(auditConnection.GetId(), auditConnection.Shutdown)
				if err := auditConnection.Init(); err != nil {
					logrus.Warnf("audit trail will only be logged, failed to connect to mongo: %s", err)
				} else {
					mongoConnection = auditConnection
				}
			}
			if mongoConnection != nil {
				mongoAuditLogger, err := audit.NewMongo(mongoConnection.GetDatabase(), audit.DefaultCollection)
				if err != nil {
					return fmt.Errorf("failed to create audit trail: %w", err)
				}
				auditLogger = mongoAuditLogger
				logrus.Infof("audit trail is stored in collection[%s]", audit.DefaultCollection)
			}
		}

		var sessionCache cache.Cache
		switch sessionBackend {
		case common.BackendRedis:
			logrus.Infof("establishing connection to redis...")
			redisConnection := config.NewRedisConnection(appName, &serviceLogs)
			opts.AddShutdownProcess(redisConnection.GetId(), redisConnection.Shutdown)
			if err := redisConnection.Init(); err != nil {
				return fmt.Errorf("failed to connect to redis: %w", err)
			}
			connections = append(connections, redisConnection)
			sessionCache, err = cache.NewRedis(cache.NewRedisOpts{
				Client:      redisConnection.GetInstance().Client,
				ServiceLogs: serviceLogs,
			})
			if err != nil {
				return fmt.Errorf("failed to create redis session cache: %w", err)
			}
		default:
			sessionCache = cache.NewMemory(serviceLogs)
		}

		sessionTtl := viper.GetDuration(config.SessionTtl)
		sessions, err := session.NewStore(session.NewStoreOpts{
			Cache:        sessionCache,
			SigningToken: viper.GetString(config.SessionSigningToken),
			Ttl:          sessionTtl,
			ServiceLogs:  serviceLogs,
		})
		if err != nil {
			return fmt.Errorf("failed to create session store: %w", err)
		}
		userDirectory, err := users.NewFixedDirectory(viper.GetStringSlice(config.Users))
		if err != nil {
			return fmt.Errorf("failed to load users: %w", err)
		}

		logrus.Infof("initialising peer clients...")
		sensorClient, err := sensor.NewClient(sensor.NewClientOpts{
			SensorUrl: viper.GetString(config.SensorUrl),
			Timeout:   viper.GetDuration(config.SensorTimeout),
			Id:        appName,
		})
		if err != nil {
			return fmt.Errorf("failed to create sensor client: %w", err)
		}
		var inputDeviceIndex *int
		if index := viper.GetInt(config.VoiceInputDevice); index >= 0 {
			inputDeviceIndex = &index
		}
		voiceClient, err := voice.NewClient(voice.NewClientOpts{
			VoiceUrl:         viper.GetString(config.VoiceUrl),
			Timeout:          viper.GetDuration(config.VoiceTimeout),
			Id:               appName,
			Duration:         viper.GetInt(config.VoiceDuration),
			InputDeviceIndex: inputDeviceIndex,
		})
		if err != nil {
			return fmt.Errorf("failed to create voice client: %w", err)
		}
		dataDir, err := common.EnsureDirectory(viper.GetString(config.DataDir))
		if err != nil {
			return fmt.Errorf("failed to prepare data directory: %w", err)
		}

		dispatcher, err := dispatch.New(dispatch.NewOpts{
			Sensor:      sensorClient,
			Voice:       voiceClient,
			Readings:    readingsRepository,
			DataDir:     dataDir,
			Audit:       auditLogger,
			ServiceLogs: serviceLogs,
		})
		if err != nil {
			return fmt.Errorf("failed to create dispatcher: %w", err)
		}

		logrus.Infof("initialising application...")
		readinessChecks := []func() error{}
		livenessChecks := []func() error{}
		for _, connection := range connections {
			readinessChecks = append(readinessChecks, func() error {
				if err := connection.GetStatus().Ready(); err != nil {
					return fmt.Errorf("connection[%s] is not ready: %w", connection.GetId(), err)
				}
				return nil
			})
			livenessChecks = append(livenessChecks, func() error {
				status := connection.GetStatus()
				if status.Ready() != nil && status.GetLastChangedAt().Before(time.Now().Add(-livenessGracePeriod)) {
					return fmt.Errorf("connection[%s] has been down since %s", connection.GetId(), status.GetLastChangedAt().Format(time.RFC3339))
				}
				return nil
			})
		}
		handler, err := gateway.GetHttpApplication(gateway.HttpApplicationOpts{
			Audit:           auditLogger,
			CookieSecure:    viper.GetBool(config.SessionCookieSecure),
			Dispatcher:      dispatcher,
			LivenessChecks:  livenessChecks,
			ReadinessChecks: readinessChecks,
			ServiceLogs:     serviceLogs,
			Sessions:        sessions,
			SessionTtl:      sessionTtl,
			StaticDir:       viper.GetString(config.StaticDir),
			Users:           userDirectory,
		})
		if err != nil {
			return fmt.Errorf("failed to create application: %w", err)
		}

		serverDone := make(chan common.Done)
		server, err := common.NewHttpServer(common.NewHttpServerOpts{
			Addr: viper.GetString(config.ListenAddr),
			Done: serverDone,
			IpAllowlist: &common.NewHttpServerIpAllowlistOpts{
				AllowedIps: viper.GetStringSlice(config.AllowedIps),
			},
			Handler:     handler,
			ServiceLogs: serviceLogs,
		})
		if err != nil {
			return fmt.Errorf("failed to create http server: %w", err)
		}
		opts.OnSignal(func() { close(serverDone) })

		logrus.Infof("starting gateway for users[%v]...", userDirectory.List())
		return server.Start()
	},
})
