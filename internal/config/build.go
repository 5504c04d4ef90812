package config

import (
	"fmt"
)

// these are overridden at build time via -ldflags "-X ..."
var (
	DistributionBranch  = "dev"
	DistributionEnv     = "local"
	DistributionVersion = "0.0.0"
	DistributionDate    = "unknown"
)

func GetVersion() string {
	return fmt.Sprintf("%s-%s-%s (%s)", DistributionVersion, DistributionBranch, DistributionDate, DistributionEnv)
}
