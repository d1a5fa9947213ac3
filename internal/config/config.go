package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// General settings
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	DataDir   string `yaml:"data_dir"`
	OutputDir string `yaml:"output_dir"`

	// Decision engine settings
	Engine EngineConfig `yaml:"engine"`

	// Recon enrichment settings
	Recon ReconConfig `yaml:"recon"`

	// Cache settings
	Cache CacheConfig `yaml:"cache"`

	// Reporting settings
	Reporting ReportingConfig `yaml:"reporting"`
}

// EngineConfig controls the decision engine behaviour
type EngineConfig struct {
	DNSTimeout        int    `yaml:"dns_timeout"`
	DefaultObjective  string `yaml:"default_objective"`
	SkipDNSResolution bool   `yaml:"skip_dns_resolution"`
}

// ReconConfig controls the optional target enrichment collaborators
type ReconConfig struct {
	Enabled         bool   `yaml:"enabled"`
	Timeout         int    `yaml:"timeout"`
	UserAgent       string `yaml:"user_agent"`
	CrawlDepth      int    `yaml:"crawl_depth"`
	MaxEndpoints    int    `yaml:"max_endpoints"`
	MaxSubdomains   int    `yaml:"max_subdomains"`
	SubfinderThreads int   `yaml:"subfinder_threads"`
	RateLimit       int    `yaml:"rate_limit"`
	VerifySSL       bool   `yaml:"verify_ssl"`
}

// CacheConfig controls profile caching
type CacheConfig struct {
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	TTL           int    `yaml:"ttl"`
	Encrypt       bool   `yaml:"encrypt"`
	Secret        string `yaml:"secret"`
}

// ReportingConfig controls attack-plan rendering
type ReportingConfig struct {
	DefaultFormat    string   `yaml:"default_format"`
	Color            bool     `yaml:"color"`
	SupportedFormats []string `yaml:"supported_formats"`
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Set defaults
	setDefaults(config)

	// Load from config file
	if err := loadFromFile(config); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Override with environment variables
	loadFromEnv(config)

	// Validate configuration
	if err := validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func setDefaults(config *Config) {
	config.LogLevel = "info"
	config.LogFormat = "text"
	config.DataDir = expandPath("~/.hexstrike")
	config.OutputDir = "./output"

	config.Engine = EngineConfig{
		DNSTimeout:       3,
		DefaultObjective: "comprehensive",
	}

	config.Recon = ReconConfig{
		Enabled:          false,
		Timeout:          30,
		UserAgent:        "HexStrike/1.0",
		CrawlDepth:       2,
		MaxEndpoints:     200,
		MaxSubdomains:    500,
		SubfinderThreads: 10,
		RateLimit:        10,
		VerifySSL:        true,
	}

	config.Cache = CacheConfig{
		RedisAddr: "localhost:6379",
		TTL:       3600,
		Encrypt:   false,
	}

	config.Reporting = ReportingConfig{
		DefaultFormat:    "table",
		Color:            true,
		SupportedFormats: []string{"table", "json", "yaml"},
	}
}

func loadFromFile(config *Config) error {
	configPaths := []string{
		"./configs/default.yaml",
		expandPath("~/.hexstrike.yaml"),
		"/etc/hexstrike/config.yaml",
	}

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}

			if err := yaml.Unmarshal(data, config); err != nil {
				return fmt.Errorf("failed to parse config file %s: %w", path, err)
			}

			return nil
		}
	}

	// No config file found, use defaults
	return nil
}

func loadFromEnv(config *Config) {
	if v := os.Getenv("HEXSTRIKE_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	if v := os.Getenv("HEXSTRIKE_REDIS_ADDR"); v != "" {
		config.Cache.RedisAddr = v
	}
	if v := os.Getenv("HEXSTRIKE_REDIS_PASSWORD"); v != "" {
		config.Cache.RedisPassword = v
	}
	if v := os.Getenv("HEXSTRIKE_CACHE_SECRET"); v != "" {
		config.Cache.Secret = v
		config.Cache.Encrypt = true
	}
	if v := os.Getenv("HEXSTRIKE_USER_AGENT"); v != "" {
		config.Recon.UserAgent = v
	}
}

func validate(config *Config) error {
	// Create required directories
	dirs := []string{config.DataDir, config.OutputDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(expandPath(dir), 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if config.Engine.DNSTimeout < 1 || config.Engine.DNSTimeout > 60 {
		return fmt.Errorf("invalid dns_timeout: must be between 1 and 60 seconds")
	}

	if config.Recon.CrawlDepth < 1 || config.Recon.CrawlDepth > 10 {
		return fmt.Errorf("invalid crawl_depth: must be between 1 and 10")
	}

	if config.Recon.RateLimit < 1 {
		return fmt.Errorf("invalid rate_limit: must be at least 1 request per second")
	}

	if config.Cache.Encrypt && config.Cache.Secret == "" {
		return fmt.Errorf("cache encryption enabled but no secret configured")
	}

	format := config.Reporting.DefaultFormat
	supported := false
	for _, f := range config.Reporting.SupportedFormats {
		if f == format {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported report format: %s (supported: %s)",
			format, strings.Join(config.Reporting.SupportedFormats, ","))
	}

	return nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
