package gateway

import (
	"soilgate/internal/cli"
	"soilgate/internal/config"
)

const DefaultPort = 3000

var flags cli.Flags = config.GetListenAddrFlags(DefaultPort).
	Append(config.GetStaticFlags()).
	Append(config.GetSensorFlags()).
	Append(config.GetVoiceFlags()).
	Append(config.GetSessionFlags()).
	Append(config.GetStorageFlags()).
	Append(config.GetMongoFlags()).
	Append(config.GetMysqlFlags()).
	Append(config.GetRedisFlags())
