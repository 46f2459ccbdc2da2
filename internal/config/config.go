// Package config layers flags, environment and an optional config file into
// the typed settings used by the command line tool.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jonfriesen/urlregex"
	"github.com/jonfriesen/urlregex/internal/logging"
	"github.com/spf13/viper"
)

const EnvPrefix = "URLREGEX"

const (
	KeyConfig    = "config"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyScorer    = "scorer"
	KeyInput     = "input"
	KeyBaseURL   = "base_url"
	KeySameHost  = "same_host"
)

const (
	ScorerDistance   = "distance"
	ScorerSimilarity = "similarity"
)

type Config struct {
	LogLevel  string
	LogFormat string
	Scorer    string
	Input     string
	BaseURL   string
	SameHost  bool
}

// New returns a viper instance with defaults and environment binding set up.
// URLREGEX_LOG_LEVEL overrides log_level, and so on.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, string(logging.LevelInfo))
	v.SetDefault(KeyLogFormat, string(logging.FormatText))
	v.SetDefault(KeyScorer, ScorerDistance)
	v.SetDefault(KeySameHost, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file named by the config key, if any, and returns
// the validated settings.
func Load(v *viper.Viper) (*Config, error) {
	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	c := &Config{
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat: strings.ToLower(v.GetString(KeyLogFormat)),
		Scorer:    strings.ToLower(v.GetString(KeyScorer)),
		Input:     v.GetString(KeyInput),
		BaseURL:   v.GetString(KeyBaseURL),
		SameHost:  v.GetBool(KeySameHost),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if err := c.Logging().Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	switch c.Scorer {
	case ScorerDistance, ScorerSimilarity:
	default:
		return fmt.Errorf("invalid config: unsupported scorer: %q", c.Scorer)
	}

	if c.BaseURL != "" {
		if _, err := c.Base(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	return nil
}

// Logging returns the logger settings. Colors are only used for the custom
// format.
func (c *Config) Logging() *logging.Config {
	return &logging.Config{
		Level:     logging.Level(c.LogLevel),
		Format:    logging.Format(c.LogFormat),
		Timestamp: true,
		Colors:    logging.Format(c.LogFormat) == logging.FormatCustom,
	}
}

func (c *Config) ScorerFunc() urlregex.Scorer {
	if c.Scorer == ScorerSimilarity {
		return urlregex.SimilarityScore
	}
	return urlregex.DistanceScore
}

// Base parses BaseURL, which must be absolute.
func (c *Config) Base() (*url.URL, error) {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", c.BaseURL)
	}
	return base, nil
}
