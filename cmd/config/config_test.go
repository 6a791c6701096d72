package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "dev-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.JWTExpiration)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SESSION_EXPIRATION", "2h")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionExpTime)
	assert.False(t, cfg.Database.AutoMigrate)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestConfig_GetDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{User: "u", Password: "p", Host: "db", Port: 3306, Name: "app"}}
	assert.Equal(t, "u:p@tcp(db:3306)/app?parseTime=true&loc=UTC&charset=utf8mb4", cfg.GetDSN())
}
