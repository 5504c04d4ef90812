package config

import (
	"fmt"
	"soilgate/internal/cli"
)

const (
	MongoHosts    = "mongo-hosts"
	MongoHost     = "mongo-host"
	MongoPort     = "mongo-port"
	MongoUsername = "mongo-username"
	MongoPassword = "mongo-password"
	MongoDatabase = "mongo-database"
	MongoIsDirect = "mongo-direct"
)

// GetMongoHosts returns the hosts to connect to, --mongo-hosts wins when
// it holds anything other than its default
func GetMongoHosts(hosts []string, host, port string) []string {
	if len(hosts) > 0 && !(len(hosts) == 1 && hosts[0] == "127.0.0.1:27017") {
		return hosts
	}
	return []string{fmt.Sprintf("%s:%s", host, port)}
}

func GetMongoFlags() cli.Flags {
	return cli.Flags{
		{
			Name:         MongoHosts,
			DefaultValue: []string{"127.0.0.1:27017"},
			Usage:        fmt.Sprintf("Specifies the hostname(s) of the MongoDB instance (takes precedence over flags --%s and --%s when defined)", MongoHost, MongoPort),
			Type:         cli.FlagTypeStringSlice,
		},
		{
			Name:         MongoHost,
			DefaultValue: "127.0.0.1",
			Usage:        "Specifies the hostname of the MongoDB instance",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         MongoPort,
			DefaultValue: "27017",
			Usage:        "Specifies the port which the MongoDB instance is listening on",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         MongoUsername,
			DefaultValue: "",
			Usage:        "Specifies the username to use to login to the MongoDB instance",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         MongoPassword,
			DefaultValue: "",
			Usage:        "Specifies the password to use to login to the MongoDB instance",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         MongoDatabase,
			DefaultValue: "IOTProject",
			Usage:        "Specifies the database holding the moisture readings and audit logs",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         MongoIsDirect,
			DefaultValue: true,
			Usage:        "When true, connects directly to the first host instead of discovering a replica set",
			Type:         cli.FlagTypeBool,
		},
	}
}
