package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/soap-scribe-server/internal/domain"
)

// Manager loads and holds the application configuration using Viper.
type Manager struct {
	config *domain.Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	// Set configuration file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/soap-scribe-server/")

	// Set environment variable prefix and enable automatic env binding
	viper.SetEnvPrefix("SCRIBE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	m.setDefaults()

	// Read configuration file (optional - will use defaults and env vars if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using defaults and environment variables
	}

	// Unmarshal configuration into struct
	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "180s")
	viper.SetDefault("server.idle_timeout", "120s")
	viper.SetDefault("server.max_upload_size", 26214400) // 25 MiB, the provider's audio cap

	// Provider defaults. Temperature and token limit bias toward
	// deterministic, bounded-length output.
	viper.SetDefault("provider.api_key", "")
	viper.SetDefault("provider.base_url", "")
	viper.SetDefault("provider.chat_model", "gpt-4o-mini")
	viper.SetDefault("provider.transcription_model", "whisper-1")
	viper.SetDefault("provider.temperature", 0.3)
	viper.SetDefault("provider.max_output_tokens", 2000)
	viper.SetDefault("provider.completion_timeout", "45s")
	viper.SetDefault("provider.transcription_timeout", "120s")

	// CORS defaults cover the local dev frontend
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetServerConfig returns server configuration
func (m *Manager) GetServerConfig() *domain.ServerConfig {
	return &m.config.Server
}

// GetProviderConfig returns the external AI provider configuration
func (m *Manager) GetProviderConfig() *domain.ProviderConfig {
	return &m.config.Provider
}

// Reload reloads the configuration
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	// Validate server configuration
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Server.MaxUploadSize <= 0 {
		return fmt.Errorf("invalid max upload size: %d", config.Server.MaxUploadSize)
	}

	// Validate provider configuration
	if config.Provider.APIKey == "" {
		return fmt.Errorf("provider API key is required")
	}
	if config.Provider.ChatModel == "" {
		return fmt.Errorf("provider chat model is required")
	}
	if config.Provider.TranscriptionModel == "" {
		return fmt.Errorf("provider transcription model is required")
	}
	if config.Provider.Temperature < 0 || config.Provider.Temperature > 2 {
		return fmt.Errorf("invalid provider temperature: %f", config.Provider.Temperature)
	}
	if config.Provider.MaxOutputTokens <= 0 {
		return fmt.Errorf("invalid provider max output tokens: %d", config.Provider.MaxOutputTokens)
	}
	if config.Provider.CompletionTimeout <= 0 || config.Provider.TranscriptionTimeout <= 0 {
		return fmt.Errorf("provider timeouts must be positive")
	}

	// Validate logging configuration
	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}

// IsProduction returns true if running in production mode
func IsProduction() bool {
	return strings.ToLower(viper.GetString("environment")) == "production"
}
