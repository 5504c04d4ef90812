package config

import (
	"fmt"
	"soilgate/internal/cli"
	"soilgate/internal/common"
	"strings"
	"time"
)

const (
	Users               = "users"
	SessionBackend      = "session-backend"
	SessionTtl          = "session-ttl"
	SessionSigningToken = "session-signing-token"
	SessionCookieSecure = "session-cookie-secure"
)

var DefaultUsers = []string{"iotlab", "a", "project"}

func GetSessionFlags() cli.Flags {
	return cli.Flags{
		{
			Name:         Users,
			DefaultValue: DefaultUsers,
			Usage:        "the usernames that are allowed to log in",
			Type:         cli.FlagTypeStringSlice,
		},
		{
			Name:         SessionBackend,
			DefaultValue: common.BackendMemory,
			Usage:        fmt.Sprintf("where sessions are stored (one of [%s])", strings.Join(common.SessionBackends, ", ")),
			Type:         cli.FlagTypeString,
		},
		{
			Name:         SessionTtl,
			DefaultValue: time.Duration(0),
			Usage:        "how long a session lasts, 0 means sessions only end on logout",
			Type:         cli.FlagTypeDuration,
		},
		{
			Name:         SessionSigningToken,
			DefaultValue: "super_secret_session_signing_token",
			Usage:        "specifies the token used to sign sessions, change this to invalidate all sessions",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         SessionCookieSecure,
			DefaultValue: false,
			Usage:        "when true, the session cookie is only sent over https",
			Type:         cli.FlagTypeBool,
		},
	}
}
