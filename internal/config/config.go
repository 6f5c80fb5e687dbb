package config

import (
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port        string   `mapstructure:"port"`
	CORSOrigins []string `mapstructure:"corsOrigins"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type LubricationConfig struct {
	// DefaultWindowDays is the look-ahead window applied when the
	// upcoming-plans query does not pass one explicitly.
	DefaultWindowDays int `mapstructure:"defaultWindowDays"`
}

type HealthConfig struct {
	PollInterval time.Duration `mapstructure:"pollInterval"`
}

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Lubrication LubricationConfig `mapstructure:"lubrication"`
	Health      HealthConfig      `mapstructure:"health"`
}

// Load reads config.yaml from path and overlays environment variables.
// A missing file is not an error: defaults plus env are enough to run.
func Load(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "8000")
	viper.SetDefault("database.dsn", "lubritrack.db")
	viper.SetDefault("lubrication.defaultWindowDays", 7)
	viper.SetDefault("health.pollInterval", 30*time.Second)

	viper.AutomaticEnv()
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("database.dsn", "DATABASE_URL")
	viper.BindEnv("server.corsOrigins", "CORS_ALLOWED_ORIGINS")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
