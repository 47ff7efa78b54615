package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App AppConfig
	API APIConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// APIConfig points at the clinic's REST backend.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "3000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080/api")
	viper.SetDefault("API_TIMEOUT", "10s")

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine, the environment takes over
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	timeout, err := time.ParseDuration(viper.GetString("API_TIMEOUT"))
	if err != nil {
		timeout = 10 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		API: APIConfig{
			BaseURL: viper.GetString("API_BASE_URL"),
			Timeout: timeout,
		},
	}

	return config, nil
}
