package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server        ServerConfig
	OpenFoodFacts OpenFoodFactsConfig
	Barcode       BarcodeConfig
	Upload        UploadConfig
	RateLimit     RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OpenFoodFactsConfig holds Open Food Facts API configuration
type OpenFoodFactsConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// BarcodeConfig holds barcode validation policy
type BarcodeConfig struct {
	// AcceptedLengths is a policy bound, not a protocol requirement:
	// the EAN/UPC family uses 8, 12, 13 and 14 digit codes.
	AcceptedLengths []int `mapstructure:"accepted_lengths"`
}

// UploadConfig holds image upload configuration
type UploadConfig struct {
	Dir               string   `mapstructure:"dir"`
	MaxSizeMB         int64    `mapstructure:"max_size_mb"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIPPerMinute    int `mapstructure:"per_ip_per_minute"`
	UpstreamPerMinute int `mapstructure:"upstream_per_minute"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/productlens/")

	// Environment variable settings
	v.SetEnvPrefix("PRODUCTLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Open Food Facts defaults
	v.SetDefault("openfoodfacts.base_url", "https://world.openfoodfacts.org")
	v.SetDefault("openfoodfacts.timeout", "5s")
	v.SetDefault("openfoodfacts.user_agent", "ProductLens/1.0 (productlens.app)")

	// Barcode defaults (EAN-8, UPC-A, EAN-13, GTIN-14)
	v.SetDefault("barcode.accepted_lengths", []int{8, 12, 13, 14})

	// Upload defaults
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.max_size_mb", 16)
	v.SetDefault("upload.allowed_extensions", []string{".png", ".jpg", ".jpeg", ".gif"})

	// Rate limit defaults: Open Food Facts asks for at most 100 product
	// queries per minute from a single client
	v.SetDefault("ratelimit.per_ip_per_minute", 60)
	v.SetDefault("ratelimit.upstream_per_minute", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.OpenFoodFacts.BaseURL == "" {
		return fmt.Errorf("Open Food Facts base URL is required (set PRODUCTLENS_OPENFOODFACTS_BASE_URL)")
	}

	if config.OpenFoodFacts.Timeout <= 0 {
		return fmt.Errorf("Open Food Facts timeout must be positive, got: %s", config.OpenFoodFacts.Timeout)
	}

	if len(config.Barcode.AcceptedLengths) == 0 {
		return fmt.Errorf("at least one accepted barcode length is required")
	}
	for _, l := range config.Barcode.AcceptedLengths {
		if l <= 0 {
			return fmt.Errorf("accepted barcode lengths must be positive, got: %d", l)
		}
	}

	if config.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("upload max size must be positive, got: %d", config.Upload.MaxSizeMB)
	}

	return nil
}
