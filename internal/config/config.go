package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings for all shopchat services. Every binary
// reads the same file and picks its own section.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Rating  RatingConfig  `yaml:"rating"`
	Gateway GatewayConfig `yaml:"gateway"`
	Query   QueryConfig   `yaml:"query"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings for one service.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// CatalogConfig holds catalog backend settings.
type CatalogConfig struct {
	HTTP     HTTPConfig `yaml:"http"`
	DataFile string     `yaml:"data_file"`
}

// RatingConfig holds rating backend settings.
type RatingConfig struct {
	HTTP     HTTPConfig  `yaml:"http"`
	Driver   string      `yaml:"driver"` // memory, redis (default: memory)
	DataFile string      `yaml:"data_file"`
	Redis    RedisConfig `yaml:"redis"`
}

// RedisConfig holds connection settings for the redis rating driver.
type RedisConfig struct {
	Addrs               []string `yaml:"addrs"`
	Username            string   `yaml:"username"`
	Password            string   `yaml:"password"`
	KeyPrefix           string   `yaml:"key_prefix"`
	ReadinessTimeoutSec int      `yaml:"readiness_timeout_sec"`
}

// GatewayConfig holds orchestrator settings.
type GatewayConfig struct {
	HTTP                   HTTPConfig `yaml:"http"`
	CatalogURL             string     `yaml:"catalog_url"`
	RatingURL              string     `yaml:"rating_url"`
	UpstreamTimeoutSec     int        `yaml:"upstream_timeout_sec"`
	RatingLookupTimeoutSec int        `yaml:"rating_lookup_timeout_sec"`
}

// QueryConfig holds query service settings.
type QueryConfig struct {
	HTTP               HTTPConfig      `yaml:"http"`
	GatewayURL         string          `yaml:"gateway_url"`
	UpstreamTimeoutSec int             `yaml:"upstream_timeout_sec"`
	Narrator           NarratorConfig  `yaml:"narrator"`
	Retrieval          RetrievalConfig `yaml:"retrieval"`
}

// NarratorConfig holds settings for the model-backed narrative
// generator. An empty APIKey disables generation; the deterministic
// synthesizer is used on its own.
type NarratorConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// RetrievalConfig holds settings for the in-process retrieval aid.
type RetrievalConfig struct {
	Enabled bool `yaml:"enabled"`
	TopK    int  `yaml:"top_k"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values. Service ports
// default to the historical layout: catalog 8000, gateway 8001,
// query 8002, rating 8003.
func (c *Config) ApplyDefaults() {
	applyHTTPDefaults(&c.Catalog.HTTP, 8000)
	applyHTTPDefaults(&c.Gateway.HTTP, 8001)
	applyHTTPDefaults(&c.Query.HTTP, 8002)
	applyHTTPDefaults(&c.Rating.HTTP, 8003)

	if c.Catalog.DataFile == "" {
		c.Catalog.DataFile = "products.csv"
	}

	if c.Rating.Driver == "" {
		c.Rating.Driver = "memory"
	}
	if c.Rating.DataFile == "" {
		c.Rating.DataFile = "product_ratings.csv"
	}
	if c.Rating.Redis.KeyPrefix == "" {
		c.Rating.Redis.KeyPrefix = "shopchat:rating:"
	}
	if c.Rating.Redis.ReadinessTimeoutSec <= 0 {
		c.Rating.Redis.ReadinessTimeoutSec = 10
	}

	if c.Gateway.CatalogURL == "" {
		c.Gateway.CatalogURL = "http://localhost:8000"
	}
	if c.Gateway.RatingURL == "" {
		c.Gateway.RatingURL = "http://localhost:8003"
	}
	if c.Gateway.UpstreamTimeoutSec <= 0 {
		c.Gateway.UpstreamTimeoutSec = 30
	}
	if c.Gateway.RatingLookupTimeoutSec <= 0 {
		c.Gateway.RatingLookupTimeoutSec = 5
	}

	if c.Query.GatewayURL == "" {
		c.Query.GatewayURL = "http://localhost:8001"
	}
	if c.Query.UpstreamTimeoutSec <= 0 {
		c.Query.UpstreamTimeoutSec = 30
	}
	if c.Query.Narrator.TimeoutSec <= 0 {
		c.Query.Narrator.TimeoutSec = 60
	}
	if c.Query.Retrieval.TopK <= 0 {
		c.Query.Retrieval.TopK = 3
	}
}

func applyHTTPDefaults(h *HTTPConfig, port int) {
	if h.Port <= 0 {
		h.Port = port
	}
	if h.ReadTimeoutSec <= 0 {
		h.ReadTimeoutSec = 10
	}
	if h.WriteTimeoutSec <= 0 {
		h.WriteTimeoutSec = 30
	}
	if h.ShutdownSec <= 0 {
		h.ShutdownSec = 10
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	for name, h := range map[string]HTTPConfig{
		"catalog": c.Catalog.HTTP,
		"rating":  c.Rating.HTTP,
		"gateway": c.Gateway.HTTP,
		"query":   c.Query.HTTP,
	} {
		if h.Port <= 0 || h.Port > 65535 {
			return fmt.Errorf("%s.http.port must be between 1 and 65535, got %d", name, h.Port)
		}
	}

	switch c.Rating.Driver {
	case "memory":
		// ok
	case "redis":
		if len(c.Rating.Redis.Addrs) == 0 {
			return fmt.Errorf("rating.redis.addrs is required for the redis driver")
		}
	default:
		return fmt.Errorf("rating.driver must be \"memory\" or \"redis\", got %q", c.Rating.Driver)
	}

	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
