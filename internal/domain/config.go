package domain

import (
	"time"
)

// Config represents the main application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Provider ProviderConfig `mapstructure:"provider"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	// MaxUploadSize bounds multipart audio uploads in bytes.
	MaxUploadSize int64 `mapstructure:"max_upload_size"`
}

// ProviderConfig represents the external AI provider configuration.
// Temperature and MaxOutputTokens are fixed service-level constants, not
// tunable per request; they live in config so deployments can pin models.
type ProviderConfig struct {
	APIKey               string        `mapstructure:"api_key"`
	BaseURL              string        `mapstructure:"base_url"`
	ChatModel            string        `mapstructure:"chat_model"`
	TranscriptionModel   string        `mapstructure:"transcription_model"`
	Temperature          float32       `mapstructure:"temperature"`
	MaxOutputTokens      int           `mapstructure:"max_output_tokens"`
	CompletionTimeout    time.Duration `mapstructure:"completion_timeout"`
	TranscriptionTimeout time.Duration `mapstructure:"transcription_timeout"`
}

// CORSConfig represents cross-origin configuration for browser frontends.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
