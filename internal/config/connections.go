package config

import (
	"fmt"
	"net"
	"soilgate/internal/common"
	"soilgate/internal/persistence"
	"soilgate/internal/types"

	"github.com/spf13/viper"
)

// NewMongoConnection builds a supervised mongo connection from the
// flags returned by GetMongoFlags, call Init on it to connect
func NewMongoConnection(appName string, serviceLogs *chan common.ServiceLog) *persistence.Mongo {
	return persistence.NewMongo(
		persistence.MongoConnectionOpts{
			AppName:  appName,
			Hosts:    GetMongoHosts(viper.GetStringSlice(MongoHosts), viper.GetString(MongoHost), viper.GetString(MongoPort)),
			Database: viper.GetString(MongoDatabase),
			IsDirect: viper.GetBool(MongoIsDirect),
		},
		persistence.MongoAuthOpts{
			Username: viper.GetString(MongoUsername),
			Password: viper.GetString(MongoPassword),
		},
		serviceLogs,
	)
}

// NewMysqlConnection builds a supervised mysql connection from the
// flags returned by GetMysqlFlags, call Init on it to connect
func NewMysqlConnection(appName string, serviceLogs *chan common.ServiceLog) *persistence.Mysql {
	return persistence.NewMysql(
		persistence.MysqlConnectionOpts{
			AppName:  appName,
			Host:     net.JoinHostPort(viper.GetString(MysqlHost), viper.GetString(MysqlPort)),
			Database: viper.GetString(MysqlDatabase),
		},
		persistence.MysqlAuthOpts{
			Username: viper.GetString(MysqlUsername),
			Password: viper.GetString(MysqlPassword),
		},
		serviceLogs,
	)
}

// NewRedisConnection builds a supervised redis connection from the
// flags returned by GetRedisFlags, call Init on it to connect
func NewRedisConnection(appName string, serviceLogs *chan common.ServiceLog) *persistence.Redis {
	return persistence.NewRedis(
		persistence.RedisConnectionOpts{
			AppName: appName,
			Addr:    viper.GetString(RedisAddr),
			DB:      viper.GetInt(RedisDb),
		},
		persistence.RedisAuthOpts{
			Username: viper.GetString(RedisUsername),
			Password: viper.GetString(RedisPassword),
		},
		serviceLogs,
	)
}

// GetBackend returns the value of the flag `name` if it is one of
// `allowed`
func GetBackend(name string, allowed []string) (string, error) {
	value := viper.GetString(name)
	for _, backend := range allowed {
		if value == backend {
			return value, nil
		}
	}
	return "", fmt.Errorf("failed to recognise --%s[%s], expected one of %v: %w", name, value, allowed, types.ErrorUnrecognisedBackend)
}
