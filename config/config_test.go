package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFailsWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "fooddelivery.db", cfg.DBPath)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, "FoodDeliveryAPI", cfg.JWT.Issuer)
	assert.Equal(t, "FoodDeliveryClient", cfg.JWT.Audience)
	assert.Equal(t, 7, cfg.JWT.ExpireDays)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRE_DAYS", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 1, cfg.JWT.ExpireDays)
}
