package infra

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 3200, cfg.APIPort)
	assert.Equal(t, "testnet", cfg.LedgerNetwork)
	assert.Equal(t, "postgres", cfg.StorageBackend)
	assert.False(t, cfg.KafkaEnabled)
}

func TestValidateRejectsDefaultSecret(t *testing.T) {
	cfg := &Config{JWTSecret: "change-me-in-production"}
	assert.Error(t, cfg.Validate())

	cfg.AllowInsecureDefaults = true
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsShortSecret(t *testing.T) {
	cfg := &Config{JWTSecret: "short"}
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = strings.Repeat("x", 32)
	assert.NoError(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		PGHost: "db", PGPort: 5433,
		PGUser: "arena", PGPassword: "secret", PGDatabase: "arena",
	}
	assert.Equal(t, "postgres://arena:secret@db:5433/arena?sslmode=disable", cfg.DSN())

	cfg.DatabaseURL = "postgres://other"
	assert.Equal(t, "postgres://other", cfg.DSN())
}
