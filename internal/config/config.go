package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all application configuration, read from the environment.
type Config struct {
	HTTP    HTTPConfig
	Storage StorageConfig
	Auth    AuthConfig
	Log     LogConfig
}

// HTTPConfig contains HTTP server settings.
type HTTPConfig struct {
	Address string `env:"HTTP_ADDRESS" env-default:":3000"`
}

// StorageConfig selects and parameterizes the persistence backend.
type StorageConfig struct {
	Driver  string `env:"STORAGE_DRIVER" env-default:"json"` // "json" | "sqlite"
	DataDir string `env:"DATA_DIR" env-default:"data"`       // JSON files directory
	DBPath  string `env:"DB_PATH" env-default:"app.db"`      // SQLite database file path
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET"` // JWT signing secret
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

// Load loads configuration from a .env file (when present) and the
// environment. The JWT secret has no default: it must be supplied.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set; required for production")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadWithDefaults is like Load but uses a safe default for JWT_SECRET in development.
// WARNING: Only use in development! Use Load() in production.
func LoadWithDefaults() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = "dev-secret-change-me"
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "json", "sqlite":
		return nil
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q (want json or sqlite)", c.Storage.Driver)
	}
}

// LogLevel maps the configured level name to a slog.Level (info on unknown values).
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	return fmt.Sprintf("Config{HTTP: %s, Storage: %s/%s, Auth: *** (masked) ***}",
		c.HTTP.Address, c.Storage.Driver, c.storageTarget())
}

func (c *Config) storageTarget() string {
	if c.Storage.Driver == "sqlite" {
		return c.Storage.DBPath
	}
	return c.Storage.DataDir
}
