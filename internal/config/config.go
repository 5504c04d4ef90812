package config

import (
	"errors"
	"fmt"
	"os"
	"soilgate/internal/common"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var Global global

type global struct {
	// SourcePath is the resolved path of the configuration file that was
	// loaded, nil when no file was found
	SourcePath *string `json:"sourcePath" yaml:"sourcePath"`

	// EnvFile is the path of the dotenv file that was loaded, nil when
	// no file was found
	EnvFile *string `json:"envFile" yaml:"envFile"`
}

func (g *global) IsGlobalConfigExists() bool {
	return g.SourcePath != nil
}

// LoadGlobal reads the YAML file at `from` into viper so that every flag
// can also be set from the file. A missing file is not an error
func LoadGlobal(from string) error {
	resolvedPath, err := common.ToAbsolutePath(from)
	if err != nil {
		return fmt.Errorf("failed to resolve configuration path[%s]: %w", from, err)
	}
	logrus.Debugf("loading global configuration from path[%s]...", resolvedPath)

	fi, err := os.Stat(resolvedPath)
	if errors.Is(err, os.ErrNotExist) {
		logrus.Debugf("config file not found at path[%s], defaults will be used", resolvedPath)
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to check configuration path[%s]: %w", resolvedPath, err)
	} else if fi.IsDir() {
		logrus.Warnf("config file path[%s] led to a directory, defaults will be used", resolvedPath)
		return nil
	}
	viper.SetConfigFile(resolvedPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read configuration file: %w", err)
	}
	Global.SourcePath = &resolvedPath
	return nil
}

// LoadEnvFile loads environment variables from the dotenv file at
// `from` without overriding variables that are already set. A missing
// file is not an error
func LoadEnvFile(from string) error {
	if _, err := os.Stat(from); errors.Is(err, os.ErrNotExist) {
		logrus.Debugf("env file not found at path[%s], skipping", from)
		return nil
	}
	if err := godotenv.Load(from); err != nil {
		return fmt.Errorf("failed to load env file[%s]: %w", from, err)
	}
	Global.EnvFile = &from
	return nil
}
