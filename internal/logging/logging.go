// Package logging builds the logrus logger shared by the command line tool
// and the lambda handler.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

type Format string

const (
	FormatText   Format = "text"
	FormatJSON   Format = "json"
	FormatCustom Format = "custom"
)

// Config controls how log entries are rendered.
type Config struct {
	Level     Level  `json:"level"`
	Format    Format `json:"format"`
	Timestamp bool   `json:"timestamp"`
	Colors    bool   `json:"colors"`
}

func DefaultConfig() *Config {
	return &Config{
		Level:     LevelInfo,
		Format:    FormatText,
		Timestamp: true,
	}
}

// Validate returns an error naming the first unsupported value.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatCustom:
	default:
		return fmt.Errorf("unsupported log format: %q", c.Format)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) level() (logrus.Level, error) {
	switch c.Level {
	case LevelDebug:
		return logrus.DebugLevel, nil
	case LevelInfo:
		return logrus.InfoLevel, nil
	case LevelWarn:
		return logrus.WarnLevel, nil
	case LevelError:
		return logrus.ErrorLevel, nil
	}
	return 0, fmt.Errorf("unsupported log level: %q", c.Level)
}

// New returns a logger writing to w, or to stderr when w is nil.
func New(config *Config, w io.Writer) (*logrus.Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}
	if w == nil {
		w = os.Stderr
	}

	logger := logrus.New()
	logger.SetOutput(w)

	level, _ := config.level()
	logger.SetLevel(level)

	switch config.Format {
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{
			DisableTimestamp: !config.Timestamp,
		})
	case FormatCustom:
		logger.SetFormatter(&LineFormatter{
			Timestamp: config.Timestamp,
			Colors:    config.Colors,
		})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: !config.Timestamp,
			FullTimestamp:    true,
			DisableColors:    !config.Colors,
			ForceColors:      config.Colors,
		})
	}
	return logger, nil
}
