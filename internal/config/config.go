// Package config loads the runtime configuration from defaults, an optional
// config file, ALLTOOLS_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/ZaguanLabs/alltools/sitemap"
)

// EnvPrefix is the prefix of every environment variable.
const EnvPrefix = "ALLTOOLS"

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Default values
const (
	DefaultAddr      = "127.0.0.1:8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultCacheTTL  = time.Hour
	DefaultModel     = "gpt-4o-mini"
)

// Keys shared by flags, environment variables and config files.
const (
	KeyConfig          = "config"
	KeyAddr            = "addr"
	KeyBaseURL         = "base-url"
	KeyCatalog         = "catalog"
	KeyMessages        = "messages"
	KeyDefaultLanguage = "default-language"
	KeyLogLevel        = "log-level"
	KeyLogFormat       = "log-format"
	KeyCache           = "cache"
	KeyRedisURL        = "redis-url"
	KeyCacheTTL        = "cache-ttl"
	KeyCachePrefix     = "cache-prefix"
	KeyOpenAIKey       = "openai-api-key"
	KeyOpenAIModel     = "openai-model"
	KeyOpenAIBaseURL   = "openai-base-url"
)

// Config holds the configuration of the server and the CLI.
type Config struct {
	// HTTP surface
	Addr    string
	BaseURL string

	// Content
	CatalogPath     string   // Empty means the built-in catalog
	MessagesPaths   []string // Merged in order over the built-in texts
	DefaultLanguage string   // Overrides the catalog's default language

	// Logging
	LogLevel  string
	LogFormat string

	// Cache
	CacheBackend string
	RedisURL     string
	CacheTTL     time.Duration
	CachePrefix  string

	// Missing-text filling
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:         DefaultAddr,
		BaseURL:      sitemap.DefaultBaseURL,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
		CacheBackend: CacheMemory,
		CacheTTL:     DefaultCacheTTL,
		CachePrefix:  "alltools:",
		OpenAIModel:  DefaultModel,
	}
}

// AddFlags defines every configuration flag on flags.
func AddFlags(flags *pflag.FlagSet) {
	d := DefaultConfig()
	flags.String(KeyConfig, "", "Config file (YAML, TOML or JSON)")
	flags.String(KeyAddr, d.Addr, "HTTP listen address")
	flags.String(KeyBaseURL, d.BaseURL, "Public origin used in sitemap and canonical URLs")
	flags.String(KeyCatalog, "", "Catalog file (default: built-in catalog)")
	flags.StringSlice(KeyMessages, nil, "Message files merged over the built-in texts")
	flags.String(KeyDefaultLanguage, "", "Override the catalog's default language")
	flags.String(KeyLogLevel, d.LogLevel, "Log level (debug, info, warn, error)")
	flags.String(KeyLogFormat, d.LogFormat, "Log format (json, console)")
	flags.String(KeyCache, d.CacheBackend, "Cache backend (memory, redis)")
	flags.String(KeyRedisURL, "", "Redis URL (redis backend only)")
	flags.Duration(KeyCacheTTL, d.CacheTTL, "Cache entry lifetime (0 keeps entries forever)")
	flags.String(KeyCachePrefix, d.CachePrefix, "Cache key prefix (redis backend only)")
	flags.String(KeyOpenAIKey, "", "OpenAI API key (default: OPENAI_API_KEY env)")
	flags.String(KeyOpenAIModel, d.OpenAIModel, "OpenAI model used to fill missing texts")
	flags.String(KeyOpenAIBaseURL, "", "Custom OpenAI-compatible base URL")
}

// Load resolves the configuration. Precedence, highest first: flags set on
// the command line, environment, config file, defaults. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		Addr:            v.GetString(KeyAddr),
		BaseURL:         strings.TrimRight(v.GetString(KeyBaseURL), "/"),
		CatalogPath:     v.GetString(KeyCatalog),
		MessagesPaths:   v.GetStringSlice(KeyMessages),
		DefaultLanguage: v.GetString(KeyDefaultLanguage),
		LogLevel:        v.GetString(KeyLogLevel),
		LogFormat:       v.GetString(KeyLogFormat),
		CacheBackend:    v.GetString(KeyCache),
		RedisURL:        v.GetString(KeyRedisURL),
		CacheTTL:        v.GetDuration(KeyCacheTTL),
		CachePrefix:     v.GetString(KeyCachePrefix),
		OpenAIKey:       v.GetString(KeyOpenAIKey),
		OpenAIModel:     v.GetString(KeyOpenAIModel),
		OpenAIBaseURL:   v.GetString(KeyOpenAIBaseURL),
	}
	if cfg.OpenAIKey == "" {
		cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault(KeyAddr, d.Addr)
	v.SetDefault(KeyBaseURL, d.BaseURL)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyCache, d.CacheBackend)
	v.SetDefault(KeyCacheTTL, d.CacheTTL)
	v.SetDefault(KeyCachePrefix, d.CachePrefix)
	v.SetDefault(KeyOpenAIModel, d.OpenAIModel)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("listen address must not be empty")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base URL must be an absolute http(s) URL: %q", c.BaseURL)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("invalid log format %q (want json or console)", c.LogFormat)
	}

	switch c.CacheBackend {
	case CacheMemory:
	case CacheRedis:
		if c.RedisURL == "" {
			return errors.New("redis cache requires a Redis URL")
		}
	default:
		return fmt.Errorf("invalid cache backend %q (want memory or redis)", c.CacheBackend)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache TTL must not be negative: %s", c.CacheTTL)
	}

	return nil
}
