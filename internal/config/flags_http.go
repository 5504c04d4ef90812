package config

import (
	"fmt"
	"soilgate/internal/cli"
)

const (
	ListenAddr = "listen-addr"
	AllowedIps = "allowed-ips"
	StaticDir  = "static-dir"
)

func GetListenAddrFlags(port int) cli.Flags {
	return cli.Flags{
		{
			Name:         ListenAddr,
			DefaultValue: fmt.Sprintf("0.0.0.0:%v", port),
			Usage:        "specifies the listen address of the server",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         AllowedIps,
			DefaultValue: []string{},
			Usage:        "when defined, only requests from these ips/cidrs are served",
			Type:         cli.FlagTypeStringSlice,
		},
	}
}

func GetStaticFlags() cli.Flags {
	return cli.Flags{
		{
			Name:         StaticDir,
			DefaultValue: "./public",
			Usage:        "specifies the directory holding index.html and the dashboard's assets",
			Type:         cli.FlagTypeString,
		},
	}
}
