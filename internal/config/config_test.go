package config

import (
	"os"
	"path/filepath"
	"soilgate/internal/common"
	"soilgate/internal/types"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGlobalMissingFileIsNotAnError(t *testing.T) {
	Global = global{}
	require.NoError(t, LoadGlobal(filepath.Join(t.TempDir(), "nope")))
	assert.False(t, Global.IsGlobalConfigExists())
}

func TestLoadGlobalReadsYaml(t *testing.T) {
	Global = global{}
	configPath := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(configPath, []byte("sensor-url: http://rig.local:5000\nusers:\n  - greenhouse\n"), 0644))
	require.NoError(t, LoadGlobal(configPath))
	assert.True(t, Global.IsGlobalConfigExists())
	assert.Equal(t, "http://rig.local:5000", viper.GetString(SensorUrl))
	assert.Equal(t, []string{"greenhouse"}, viper.GetStringSlice(Users))
}

func TestLoadEnvFile(t *testing.T) {
	Global = global{}
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("SOILGATE_TEST_VALUE=from-dotenv\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("SOILGATE_TEST_VALUE") })
	require.NoError(t, LoadEnvFile(envPath))
	assert.Equal(t, "from-dotenv", os.Getenv("SOILGATE_TEST_VALUE"))
	require.NotNil(t, Global.EnvFile)

	require.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".missing")))
}

func TestGetMongoHosts(t *testing.T) {
	assert.Equal(t, []string{"db:27018"}, GetMongoHosts([]string{"127.0.0.1:27017"}, "db", "27018"))
	assert.Equal(t, []string{"a:1", "b:2"}, GetMongoHosts([]string{"a:1", "b:2"}, "db", "27018"))
	assert.Equal(t, []string{"db:27017"}, GetMongoHosts(nil, "db", "27017"))
}

func TestGetBackend(t *testing.T) {
	viper.Set(ReadingsBackend, common.BackendMysql)
	t.Cleanup(func() { viper.Set(ReadingsBackend, nil) })
	backend, err := GetBackend(ReadingsBackend, common.ReadingsBackends)
	require.NoError(t, err)
	assert.Equal(t, common.BackendMysql, backend)

	viper.Set(ReadingsBackend, common.BackendRedis)
	_, err = GetBackend(ReadingsBackend, common.ReadingsBackends)
	assert.ErrorIs(t, err, types.ErrorUnrecognisedBackend)
}
