// Package config loads and validates service settings from environment
// variables. Validation happens once at startup; a missing channel secret or
// access token fails the process immediately rather than surfacing on the
// first webhook call.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	// LINE Messaging API credentials and endpoints.
	LineAccessToken   string        `koanf:"line_channel_access_token" validate:"required"`
	LineChannelSecret string        `koanf:"line_channel_secret"       validate:"required"`
	LineAPIBaseURL    string        `koanf:"line_api_base_url"         validate:"url"`
	LineTimeout       time.Duration `koanf:"line_timeout"              validate:"min=1s"`

	// NOAA TGFTP mirror.
	NOAABaseURL string        `koanf:"noaa_base_url" validate:"url"`
	NOAATimeout time.Duration `koanf:"noaa_timeout"  validate:"min=1s"`

	HTTPAddr        string        `koanf:"http_addr"        validate:"required"`
	LogLevel        string        `koanf:"log_level"        validate:"oneof=debug info warn error"`
	LogFormat       string        `koanf:"log_format"       validate:"oneof=json text"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"min=1s"`

	// Query-log publishing (optional, feature-flagged).
	QueryLogEnabled bool     `koanf:"querylog_enabled"`
	KafkaBrokers    []string `koanf:"kafka_brokers"  validate:"required_if=QueryLogEnabled true"`
	QueryLogTopic   string   `koanf:"querylog_topic" validate:"required_if=QueryLogEnabled true"`
}

// Load reads configuration from environment variables, applying defaults
// where unset, and validates the result eagerly.
func Load() (*Config, error) {
	cfg := &Config{
		LineAPIBaseURL:  "https://api.line.me",
		LineTimeout:     10 * time.Second,
		NOAABaseURL:     "https://tgftp.nws.noaa.gov/data",
		NOAATimeout:     10 * time.Second,
		HTTPAddr:        ":5001",
		LogLevel:        "info",
		LogFormat:       "json",
		ShutdownTimeout: 10 * time.Second,
		KafkaBrokers:    []string{"localhost:9092"},
		QueryLogTopic:   "weather-query-log",
	}

	k := koanf.New(".")
	if err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, any) {
		key = strings.ToLower(key)
		// List-valued keys arrive as one comma-separated env value.
		if key == "kafka_brokers" {
			return key, strings.Split(value, ",")
		}
		return key, value
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
