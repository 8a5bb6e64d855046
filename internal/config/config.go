package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the locator service.
//
// Fields:
// - Env: The current environment (local, development, production).
// - Port: The port of the public API.
// - MonitoringPort: The port serving /healthz and /metrics.
// - MissingCoords: What to do with records lacking LAT or LON (skip, zero).
// - Source: Where service locations are read from.
// - Database: Configuration settings for the PostgreSQL source.
// - Geocoder: Optional address lookup provider.
type Config struct {
	Env            string         `mapstructure:"env"`
	Port           int            `mapstructure:"port"`
	MonitoringPort int            `mapstructure:"monitoring_port"`
	MissingCoords  string         `mapstructure:"missing_coords"`
	Source         SourceConfig   `mapstructure:"source"`
	Database       PostgresConfig `mapstructure:"postgres"`
	Geocoder       GeocoderConfig `mapstructure:"geocoder"`
}

// SourceConfig selects and configures the location source.
type SourceConfig struct {
	Type    string        `mapstructure:"type"`    // sheetdb or postgres
	URL     string        `mapstructure:"url"`     // SheetDB endpoint
	Token   string        `mapstructure:"token"`   // Optional bearer token for the endpoint
	Timeout time.Duration `mapstructure:"timeout"` // Upper bound of a single fetch
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"db_name"`
	Table    string `mapstructure:"table"` // Table holding unit_nm, unit_addr, lat, lon
}

// GeocoderConfig configures the address lookup provider. An empty Type disables it.
type GeocoderConfig struct {
	Type      string `mapstructure:"type"`
	APIKey    string `mapstructure:"api_key"`
	RateLimit int    `mapstructure:"rate_limit"`
	Region    string `mapstructure:"region"`
}

var defaults = map[string]any{
	"env":                 "production",
	"port":                8000,
	"monitoring_port":     8080,
	"missing_coords":      "skip",
	"source.type":         "sheetdb",
	"source.url":          "https://sheetdb.io/api/v1/y7b56e2q4vutg",
	"source.timeout":      "10s",
	"postgres.port":       "5432",
	"postgres.table":      "service_units",
	"geocoder.type":       "",
	"geocoder.region":     "",
	"geocoder.api_key":    "",
	"geocoder.rate_limit": 10,
}

// Environment names that differ from the LOCATOR_ prefixed default.
var envOverrides = map[string]string{
	"postgres.host":     "DB_HOST",
	"postgres.port":     "DB_PORT",
	"postgres.user":     "DB_USERNAME",
	"postgres.password": "DB_PASSWORD",
	"postgres.db_name":  "DB_NAME",
}

// MustLoad loads the configuration from .env, an optional YAML file and the environment.
// It panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix("LOCATOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envOverrides {
		_ = v.BindEnv(key, env)
	}

	v.SetConfigType("yaml")
	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic("failed to read config file: " + err.Error())
		}
	}

	port, err := cast.ToIntE(v.Get("port"))
	if err != nil {
		panic("failed to parse port for API server from configuration")
	}

	monitoringPort, err := cast.ToIntE(v.Get("monitoring_port"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	timeout, err := cast.ToDurationE(v.Get("source.timeout"))
	if err != nil || timeout <= 0 {
		panic("failed to parse source timeout from configuration")
	}

	rateLimit, err := cast.ToIntE(v.Get("geocoder.rate_limit"))
	if err != nil {
		panic("failed to parse geocoder rate limit from configuration, must be an integer")
	}

	return &Config{
		Env:            v.GetString("env"),
		Port:           port,
		MonitoringPort: monitoringPort,
		MissingCoords:  v.GetString("missing_coords"),
		Source: SourceConfig{
			Type:    v.GetString("source.type"),
			URL:     v.GetString("source.url"),
			Token:   v.GetString("source.token"),
			Timeout: timeout,
		},
		Database: PostgresConfig{
			Host:     v.GetString("postgres.host"),
			Port:     v.GetString("postgres.port"),
			User:     v.GetString("postgres.user"),
			Password: v.GetString("postgres.password"),
			Name:     v.GetString("postgres.db_name"),
			Table:    v.GetString("postgres.table"),
		},
		Geocoder: GeocoderConfig{
			Type:      v.GetString("geocoder.type"),
			APIKey:    v.GetString("geocoder.api_key"),
			RateLimit: rateLimit,
			Region:    v.GetString("geocoder.region"),
		},
	}
}
