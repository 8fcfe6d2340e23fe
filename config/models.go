package config

import "fmt"

// Config holds the application configuration.
type Config struct {
	// GeminiAPIKey authenticates calls to the Generative Language API.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	// GeminiModel is the model invoked for every route.
	GeminiModel string `mapstructure:"gemini_model"`
	// Port is the TCP port the HTTP server listens on.
	Port int `mapstructure:"port"`
	// AllowedOrigins configures CORS for the dashboard frontend.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ListenAddress returns the address passed to the HTTP server.
func (c *Config) ListenAddress() string {
	return fmt.Sprintf(":%d", c.Port)
}
