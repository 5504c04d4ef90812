package config

import (
	"fmt"
	"soilgate/internal/cli"
	"soilgate/internal/common"
	"strings"
)

const (
	ReadingsBackend    = "readings-backend"
	ReadingsCollection = "readings-collection"
	AuditEnabled       = "audit-enabled"
)

func GetStorageFlags() cli.Flags {
	return cli.Flags{
		{
			Name:         ReadingsBackend,
			DefaultValue: common.BackendMongo,
			Usage:        fmt.Sprintf("where moisture readings are stored (one of [%s])", strings.Join(common.ReadingsBackends, ", ")),
			Type:         cli.FlagTypeString,
		},
		{
			Name:         ReadingsCollection,
			DefaultValue: "moisture_levels",
			Usage:        "the mongo collection moisture readings are stored in",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         AuditEnabled,
			DefaultValue: false,
			Usage:        "when true and mongo is reachable, commands sent to the rig are recorded in an audit trail",
			Type:         cli.FlagTypeBool,
		},
	}
}
