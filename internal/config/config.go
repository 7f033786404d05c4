package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Log      LogConfig
	Registry RegistryConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RegistryConfig holds company-registry lookup settings.
type RegistryConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the FAKTURO_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FAKTURO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "fakturo")
	v.SetDefault("db.password", "fakturo_secret")
	v.SetDefault("db.name", "fakturo_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Registry defaults (Ministry of Finance white-list API)
	v.SetDefault("registry.base_url", "https://wl-api.mf.gov.pl")
	v.SetDefault("registry.timeout_secs", 10)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":           "FAKTURO_SERVER_PORT",
		"server.read_timeout":   "FAKTURO_SERVER_READ_TIMEOUT",
		"server.write_timeout":  "FAKTURO_SERVER_WRITE_TIMEOUT",
		"server.environment":    "FAKTURO_SERVER_ENVIRONMENT",
		"db.host":               "FAKTURO_DB_HOST",
		"db.port":               "FAKTURO_DB_PORT",
		"db.user":               "FAKTURO_DB_USER",
		"db.password":           "FAKTURO_DB_PASSWORD",
		"db.name":               "FAKTURO_DB_NAME",
		"db.sslmode":            "FAKTURO_DB_SSLMODE",
		"db.max_open":           "FAKTURO_DB_MAX_OPEN",
		"db.max_idle":           "FAKTURO_DB_MAX_IDLE",
		"log.level":             "FAKTURO_LOG_LEVEL",
		"log.format":            "FAKTURO_LOG_FORMAT",
		"registry.base_url":     "FAKTURO_REGISTRY_BASE_URL",
		"registry.timeout_secs": "FAKTURO_REGISTRY_TIMEOUT_SECS",
		"cors.allowed_origins":  "FAKTURO_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			Environment:  v.GetString("server.environment"),
		},
		DB: DBConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			Name:     v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),
			MaxOpen:  v.GetInt("db.max_open"),
			MaxIdle:  v.GetInt("db.max_idle"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Registry: RegistryConfig{
			BaseURL:     v.GetString("registry.base_url"),
			TimeoutSecs: v.GetInt("registry.timeout_secs"),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(v.GetString("cors.allowed_origins"), ","),
		},
	}

	if cfg.Server.Port != "" && !strings.HasPrefix(cfg.Server.Port, ":") {
		cfg.Server.Port = ":" + cfg.Server.Port
	}
	return cfg, nil
}
