package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	config, err := load("")
	require.NoError(t, err)

	assert.Equal(t, "local", config.Env)
	assert.Equal(t, "zikrhub.db", config.DB.Path)
	assert.Equal(t, ":8080", config.HTTPServer.Address)
	assert.Equal(t, "test-secret", config.Auth.JWTSecret)
	assert.Equal(t, 168*time.Hour, config.Auth.TokenTTL)
	assert.Equal(t, 10, config.Auth.BcryptCost)
	assert.Equal(t, 5, config.Auth.LockoutThreshold)
	assert.Equal(t, 15*time.Minute, config.Auth.LockoutDuration)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENV", "prod")
	t.Setenv("DB_PATH", "/data/app.db")
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("LOCKOUT_DURATION", "30m")

	config, err := load("")
	require.NoError(t, err)

	assert.Equal(t, "prod", config.Env)
	assert.Equal(t, "/data/app.db", config.DB.Path)
	assert.Equal(t, ":9090", config.HTTPServer.Address)
	assert.Equal(t, 30*time.Minute, config.Auth.LockoutDuration)
}

func TestLoad_MissingSecret(t *testing.T) {
	// t.Setenv регистрирует восстановление, затем переменная снимается
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	// JWT_SECRET обязателен: без него процесс не должен стартовать
	_, err := load("")
	assert.Error(t, err)
}

func TestLoad_YAMLFile(t *testing.T) {
	content := `
env: dev
db:
  path: test.db
http_server:
  address: ":3000"
auth:
  jwt_secret: file-secret
  token_ttl: 24h
`

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", config.Env)
	assert.Equal(t, "test.db", config.DB.Path)
	assert.Equal(t, ":3000", config.HTTPServer.Address)
	assert.Equal(t, "file-secret", config.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, config.Auth.TokenTTL)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := load("/nonexistent/config.yaml")
	assert.Error(t, err)
}
