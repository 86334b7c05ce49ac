package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
auth:
  jwt:
    secret: test-secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.GetAddr())
	assert.Equal(t, 60, cfg.Auth.JWT.ExpMinutes)
	assert.Equal(t, 12, cfg.Auth.Password.BcryptCost)
	assert.Equal(t, "/", cfg.Auth.Cookie.Path)
	assert.Equal(t, "lax", cfg.Auth.Cookie.SameSite)
	assert.Equal(t, "ticketdesk", cfg.Database.Database)
	assert.False(t, cfg.Auth.RateLimit.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
  mode: release
database:
  host: db.internal
  port: 3307
  username: app
  password: pw
  database: tickets
auth:
  jwt:
    secret: s3cret
    exp_minutes: 15
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 15, cfg.Auth.JWT.ExpMinutes)
	assert.Equal(t,
		"app:pw@tcp(db.internal:3307)/tickets?charset=utf8mb4&parseTime=True&loc=UTC",
		cfg.Database.GetDSN())
}

func TestLoad_MissingSecret(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 8000
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.jwt.secret")
}

func TestValidate_InvalidPort(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: -1
auth:
  jwt:
    secret: x
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server port")
}
