package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "http://localhost:3000", cfg.Backend.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Backend.Timeout, "sin timeout por defecto")
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.JWT.Enabled())
	assert.False(t, cfg.DB.Enabled())
	assert.True(t, cfg.Metrics.Enabled)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("API_URL", "http://api.local:4000/")
	v.Set("BACKEND_TIMEOUT_SECONDS", "15")
	v.Set("HTTP_PORT", "9090")
	v.Set("DB_HOST", "db")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "http://api.local:4000", cfg.Backend.BaseURL, "se elimina la barra final")
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.DB.Enabled())
	assert.Contains(t, cfg.DB.ConnectionString(), "postgres://postgres:@db:5432/amazonia")
}

func TestFromViper_JWTRequiresPasswordHash(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "secreto")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_InvalidAPIURL(t *testing.T) {
	v := viper.New()
	v.Set("API_URL", "no es una url")

	_, err := fromViper(v)
	assert.Error(t, err)
}
