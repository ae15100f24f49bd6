package config

import (
	"fmt"
	"strings"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/spf13/viper"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DBDriver      string        `mapstructure:"DB_DRIVER"`
	DBHost        string        `mapstructure:"DB_HOST"`
	DBPort        string        `mapstructure:"DB_PORT"`
	DBUser        string        `mapstructure:"DB_USER"`
	DBPassword    string        `mapstructure:"DB_PASSWORD"`
	DBName        string        `mapstructure:"DB_NAME"`
	DBPath        string        `mapstructure:"DB_PATH"`
	DBTxTimeout   time.Duration `mapstructure:"DB_TX_TIMEOUT"`
	RedisHost     string        `mapstructure:"REDIS_HOST"`
	RedisPort     string        `mapstructure:"REDIS_PORT"`
	SessionSecret string        `mapstructure:"SESSION_SECRET"`
	GinMode       string        `mapstructure:"GIN_MODE"`
	ServerPort    int           `mapstructure:"SERVER_PORT"`
	OpenAIAPIKey  string        `mapstructure:"OPENAI_API_KEY"`
}

var defaults = map[string]any{
	"DB_DRIVER":      DriverMySQL,
	"DB_HOST":        "localhost",
	"DB_PORT":        "3306",
	"DB_USER":        "homeuser",
	"DB_PASSWORD":    "homepassword",
	"DB_NAME":        "home_inventory",
	"DB_PATH":        "home_inventory.db",
	"DB_TX_TIMEOUT":  "10s",
	"REDIS_HOST":     "",
	"REDIS_PORT":     "6379",
	"SESSION_SECRET": "default-secret-key-change-me",
	"GIN_MODE":       "debug",
	"SERVER_PORT":    8080,
	"OPENAI_API_KEY": "",
}

// Load reads configuration from the environment, falling back to defaults.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	log := logger.New("config").Function("Load")

	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			log.Warn("Failed to bind environment variable", "env", key, "error", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, log.Err("could not unmarshal config", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))

	if err := cfg.Validate(); err != nil {
		return nil, log.Err("invalid config", err)
	}

	log.Info("Configuration loaded", "driver", cfg.DBDriver, "port", cfg.ServerPort, "redis", cfg.RedisHost != "")
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("invalid SERVER_PORT %d", c.ServerPort)
	}
	if c.DBTxTimeout <= 0 {
		return fmt.Errorf("DB_TX_TIMEOUT must be positive")
	}
	return nil
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}
