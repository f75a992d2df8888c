package app

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/aussiebroadwan/topfive/pkg/httpx"
	"github.com/aussiebroadwan/topfive/pkg/investsdk"
)

// EnvPrefix namespaces environment overrides. Nested keys use a double
// underscore: TOPFIVE_RATE_LIMIT__BURST sets rate_limit.burst.
const EnvPrefix = "TOPFIVE_"

// DefaultConfigFile is looked up in the working directory when no --config
// flag is given.
const DefaultConfigFile = "topfive.yml"

type Config struct {
	APIURL      string                `koanf:"api_url" yaml:"api_url"`           // API base URL including /api/v1
	Timeout     time.Duration         `koanf:"timeout" yaml:"timeout"`           // Per request timeout (default: 10s)
	SplashDelay time.Duration         `koanf:"splash_delay" yaml:"splash_delay"` // Time on the splash screen (default: 2.5s)
	Env         string                `koanf:"env" yaml:"env"`                   // Environment (dev, staging, prod) (default: dev)
	LogLevel    string                `koanf:"log_level" yaml:"log_level"`       // Log level (debug, info, warn, error) (default: warn)
	LogFormat   string                `koanf:"log_format" yaml:"log_format"`     // Log format (json, text) (default: text)
	RateLimit   httpx.RateLimitConfig `koanf:"rate_limit" yaml:"rate_limit"`     // Outgoing request pacing
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		APIURL:      investsdk.DefaultBaseURL,
		Timeout:     10 * time.Second,
		SplashDelay: 2500 * time.Millisecond,
		Env:         "dev",
		LogLevel:    "warn",
		LogFormat:   "text",
		RateLimit:   httpx.DefaultClientLimit,
	}
}

// LoadConfig reads path (a missing file is not an error), overlays TOPFIVE_*
// environment variables and finally the RATELIMIT_CLIENT_* variables shared
// with the rest of the stack.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.RateLimit = httpx.ParseRateLimitFromEnv("CLIENT", cfg.RateLimit)

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogFormats = map[string]bool{"json": true, "text": true}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid api_url %q: must be an absolute http(s) URL", c.APIURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.SplashDelay < 0 {
		return fmt.Errorf("splash_delay must be non-negative")
	}
	if !validLogFormats[c.LogFormat] {
		return fmt.Errorf("invalid log_format %q: must be json or text", c.LogFormat)
	}
	if c.RateLimit.RequestsPerWindow < 0 || c.RateLimit.Burst < 0 || c.RateLimit.Window < 0 {
		return fmt.Errorf("rate_limit values must be non-negative")
	}
	return nil
}
