package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	FormatText  = "text"
	FormatTable = "table"

	envPrefix = "PROFIT_REPORT"
)

type Settings struct {
	Currency string `mapstructure:"currency"`
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log_level"`
}

// LoadSettings reads defaults, PROFIT_REPORT_* environment variables and,
// when path is not empty, the given settings file.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("currency", "BDT")
	v.SetDefault("format", FormatText)
	v.SetDefault("log_level", "warn")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) Validate() error {
	s.Format = strings.ToLower(strings.TrimSpace(s.Format))
	switch s.Format {
	case FormatText, FormatTable:
	default:
		return fmt.Errorf("unsupported format %q, expected %q or %q", s.Format, FormatText, FormatTable)
	}
	if strings.TrimSpace(s.Currency) == "" {
		return fmt.Errorf("currency label must not be empty")
	}
	return nil
}
