package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
auth:
  secret: file-secret
  accessTTL: 5m
server:
  listenAddr: ":9000"
  postgresDsn: "host=db"
  redisAddr: "redis:6379"
`)

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-secret", config.Auth.Secret)
	assert.Equal(t, 5*time.Minute, config.AuthConfig().AccessTTL)
	assert.Equal(t, 7*24*time.Hour, config.AuthConfig().RefreshTTL)
	assert.Equal(t, "storykeep", config.Auth.Issuer)
	assert.Equal(t, ":9000", config.Server.ListenAddr)
	assert.Equal(t, "redis:6379", config.Server.RedisAddr)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
auth:
  secret: file-secret
server:
  postgresDsn: "host=db"
`)
	t.Setenv("STORYKEEP_JWT_SECRET", "env-secret")
	t.Setenv("STORYKEEP_REDIS_DB", "3")

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-secret", config.Auth.Secret)
	assert.Equal(t, 3, config.Server.RedisDB)
	assert.Equal(t, "env-secret", config.AuthConfig().Secret)
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	path := writeConfig(t, `
server:
  postgresDsn: "host=db"
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadEnv(t *testing.T) {
	path := writeConfig(t, `
auth:
  secret: s
server:
  postgresDsn: "host=db"
`)
	t.Setenv("STORYKEEP_REDIS_DB", "three")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadTTL(t *testing.T) {
	path := writeConfig(t, `
auth:
  secret: s
  refreshTTL: soon
server:
  postgresDsn: "host=db"
`)
	_, err := Load(path)
	assert.Error(t, err)
}
