package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Load reads configuration from the environment and, when configFile is
// non-empty, from a yaml config file layered underneath the environment.
// The process must not start without a Gemini API key.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", 3001)
	v.SetDefault("gemini_model", "gemini-1.5-flash")
	v.SetDefault("allowed_origins", []string{"*"})

	v.AutomaticEnv()
	for _, key := range []string{"gemini_api_key", "gemini_model", "port"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding env var %s: %w", key, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var configuration Config
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validation
	if configuration.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required")
	}
	if configuration.Port <= 0 || configuration.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", configuration.Port)
	}

	return &configuration, nil
}
