package config

import (
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
}

func TestUnmarshalYAML(t *testing.T) {
	data := []byte(`
logger:
  level: debug
  json: true
http-server:
  port: 9090
  read_header_timeout: 2s
  shutdown_timeout: 10s
limits:
  max_sequence_len: 500
  max_upload_bytes: 4096
`)

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.Logger.JSON)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 500, cfg.Limits.MaxSequenceLen)
	assert.Equal(t, int64(4096), cfg.Limits.MaxUploadBytes)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Logger.Level = "trace"
	cfg.Server.Port = 0
	cfg.Limits.MaxSequenceLen = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logger.level")
	assert.Contains(t, err.Error(), "http-server.port")
	assert.Contains(t, err.Error(), "limits.max_sequence_len")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvPort:     "7000",
		EnvLogLevel: "WARN",
		EnvLogJSON:  "true",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "WARN", cfg.Logger.Level)
	assert.True(t, cfg.Logger.JSON)

	env[EnvPort] = "eighty"
	assert.Error(t, cfg.ApplyEnv(lookup))
}
