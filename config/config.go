package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Engine specifics
	Assistant AssistantConfig
	Cache     CacheConfig
	Analytics AnalyticsConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AssistantConfig tunes classification and routing.
type AssistantConfig struct {
	ThresholdHandle   float64
	ThresholdFallback float64
	DefaultTimezone   string
	DefaultLanguage   string
}

type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type AnalyticsConfig struct {
	Capacity int
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Assistant engine
	cfg.Assistant.ThresholdHandle = viper.GetFloat64("assistant.threshold_handle")
	cfg.Assistant.ThresholdFallback = viper.GetFloat64("assistant.threshold_fallback")
	cfg.Assistant.DefaultTimezone = viper.GetString("assistant.default_timezone")
	cfg.Assistant.DefaultLanguage = viper.GetString("assistant.default_language")

	if cfg.Assistant.ThresholdFallback >= cfg.Assistant.ThresholdHandle {
		return nil, fmt.Errorf("assistant.threshold_fallback (%v) must be below assistant.threshold_handle (%v)",
			cfg.Assistant.ThresholdFallback, cfg.Assistant.ThresholdHandle)
	}

	// Response cache
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	// Analytics window
	cfg.Analytics.Capacity = viper.GetInt("analytics.capacity")

	// Rate limiting
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("assistant.threshold_handle", 0.55)
	viper.SetDefault("assistant.threshold_fallback", 0.30)
	viper.SetDefault("assistant.default_timezone", "UTC")
	viper.SetDefault("assistant.default_language", "en")

	viper.SetDefault("cache.size", 256)
	viper.SetDefault("cache.ttl", "5m")

	viper.SetDefault("analytics.capacity", 1000)

	viper.SetDefault("rate_limit.requests_per_min", 120)
}
