// Package config loads runtime settings from an optional YAML file and
// PROPOSALGEN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g.
// PROPOSALGEN_ASSIST_API_KEY overrides assist.api_key.
const EnvPrefix = "PROPOSALGEN"

type Config struct {
	Export ExportConfig `mapstructure:"export"`
	Assist AssistConfig `mapstructure:"assist"`
}

type ExportConfig struct {
	// Dir receives files written by the generate command.
	Dir string `mapstructure:"dir"`
}

type AssistConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	APIKey    string        `mapstructure:"api_key"`
	Model     string        `mapstructure:"model"`
	MaxTokens int           `mapstructure:"max_tokens"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("export.dir", "./exports")

	v.SetDefault("assist.base_url", "https://api.anthropic.com")
	v.SetDefault("assist.api_key", "")
	v.SetDefault("assist.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("assist.max_tokens", 4096)
	v.SetDefault("assist.timeout", "60s")
}

// Load reads proposalgen.yaml from the given directories (the first match
// wins; none is fine), then applies environment overrides and defaults.
func Load(dirs ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("proposalgen")
	v.SetConfigType("yaml")
	for _, d := range dirs {
		v.AddConfigPath(d)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if len(dirs) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Assist.MaxTokens <= 0 {
		return nil, fmt.Errorf("assist.max_tokens must be positive, got %d", cfg.Assist.MaxTokens)
	}
	return &cfg, nil
}
