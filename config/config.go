package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// GlobalConfig is the full portal configuration.
type GlobalConfig struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Session  SessionConfig  `mapstructure:"session"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Log      LogConfig      `mapstructure:"log"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// DatabaseConfig selects the gorm driver and its DSN. Driver is one of
// sqlite, mysql, postgres; sqlite keeps everything in a single file.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// SessionConfig configures the server-side session store.
type SessionConfig struct {
	CookieName string `mapstructure:"cookie_name"`
	TTLHours   int    `mapstructure:"ttl_hours"`
	// SecretKey signs the flash cookie. Left empty, a random key is
	// generated at startup and flashes do not survive a restart.
	SecretKey string `mapstructure:"secret_key"`
}

// AdminConfig seeds the admin singleton. The account is keyed by email;
// the password is hashed before it is stored.
type AdminConfig struct {
	Name     string `mapstructure:"name"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

// LogConfig configures logrus.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// SeedConfig points at an optional yaml fixture file with demo data.
type SeedConfig struct {
	File string `mapstructure:"file"`
}

// InitConfig loads config.yaml (working directory or ./config) and applies
// PORTAL_* environment overrides. A missing file falls back to defaults so
// the portal runs out of the box.
func InitConfig() (*GlobalConfig, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("PORTAL")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg GlobalConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "")
	viper.SetDefault("server.port", "8080")

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "placement.db")

	viper.SetDefault("session.cookie_name", "session_token")
	viper.SetDefault("session.ttl_hours", 24)
	viper.SetDefault("session.secret_key", "")

	viper.SetDefault("admin.name", "admin")
	viper.SetDefault("admin.email", "admin@placement.local")
	viper.SetDefault("admin.password", "")

	viper.SetDefault("log.level", "info")

	viper.SetDefault("seed.file", "")
}
