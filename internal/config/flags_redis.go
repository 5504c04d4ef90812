package config

import "soilgate/internal/cli"

const (
	RedisAddr     = "redis-addr"
	RedisDb       = "redis-db"
	RedisUsername = "redis-username"
	RedisPassword = "redis-password"
)

func GetRedisFlags() cli.Flags {
	return cli.Flags{
		{
			Name:         RedisAddr,
			DefaultValue: "localhost:6379",
			Usage:        "defines the hostname (including port) of the redis server",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         RedisDb,
			DefaultValue: 0,
			Usage:        "defines the redis logical database to keep sessions in",
			Type:         cli.FlagTypeInteger,
		},
		{
			Name:         RedisUsername,
			DefaultValue: "",
			Usage:        "defines the username used to login to redis (leave empty when acls are not used)",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         RedisPassword,
			DefaultValue: "",
			Usage:        "defines the password used to login to redis",
			Type:         cli.FlagTypeString,
		},
	}
}
