package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	DBPath       string
	IsProduction bool
	AllowOrigin  string
}

// Load reads configuration from environment variables, with a local .env file
// as a convenience when present.
func Load() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8089")
	viper.SetDefault("DB_PATH", "voucher.db")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ALLOW_ORIGIN", "http://localhost:3000")
	viper.AutomaticEnv()

	cfg := &Config{
		Port:         viper.GetString("PORT"),
		DBPath:       viper.GetString("DB_PATH"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
		AllowOrigin:  viper.GetString("ALLOW_ORIGIN"),
	}
	return cfg, nil
}
