package config

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// JWTConfig holds everything the token issuer needs. It is built once at
// startup and handed to the issuer at construction time.
type JWTConfig struct {
	Secret     string
	Issuer     string
	Audience   string
	ExpireDays int
}

type Config struct {
	Port    string
	DBPath  string
	GinMode string
	JWT     JWTConfig
}

// Load builds the configuration from the environment. A .env file in the
// working directory is loaded first when present. An empty JWT secret is a
// fatal configuration error: the process must not come up able to issue
// unsigned tokens.
func Load() (*Config, error) {
	// Best effort: absence of a .env file is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_PATH", "fooddelivery.db")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("JWT_ISSUER", "FoodDeliveryAPI")
	v.SetDefault("JWT_AUDIENCE", "FoodDeliveryClient")
	v.SetDefault("JWT_EXPIRE_DAYS", 7)
	v.AutomaticEnv()

	cfg := &Config{
		Port:    v.GetString("PORT"),
		DBPath:  v.GetString("DB_PATH"),
		GinMode: v.GetString("GIN_MODE"),
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Issuer:     v.GetString("JWT_ISSUER"),
			Audience:   v.GetString("JWT_AUDIENCE"),
			ExpireDays: v.GetInt("JWT_EXPIRE_DAYS"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is not configured")
	}

	return cfg, nil
}
