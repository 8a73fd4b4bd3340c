// Package provider implements the gateway to the external AI service.
// It is the only package that talks to the network besides the HTTP
// server itself.
package provider

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"github.com/soap-scribe-server/internal/domain"
)

// systemPrompt identifies the completion model's role for every request.
const systemPrompt = "You are a clinical scribe assistant. You convert clinical encounter text into structured SOAP documentation exactly as instructed, and you respond with JSON only."

// OpenAIGateway implements domain.Provider against the OpenAI API (or any
// API-compatible endpoint via BaseURL). It performs no retries and no
// backoff; each call is bounded by the configured per-stage timeout.
type OpenAIGateway struct {
	client *openai.Client
	cfg    domain.ProviderConfig
	logger *logrus.Logger
}

// NewOpenAIGateway creates a gateway from the provider configuration.
func NewOpenAIGateway(cfg domain.ProviderConfig, logger *logrus.Logger) *OpenAIGateway {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAIGateway{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
		logger: logger,
	}
}

// Transcribe sends raw audio to the speech-to-text model and returns the
// transcript as plain text. The filename's extension tells the provider
// the container format; contentType is logged for diagnosis only.
func (g *OpenAIGateway) Transcribe(ctx context.Context, audio []byte, filename, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.TranscriptionTimeout)
	defer cancel()

	g.logger.WithFields(logrus.Fields{
		"model":        g.cfg.TranscriptionModel,
		"filename":     filepath.Base(filename),
		"content_type": contentType,
		"audio_bytes":  len(audio),
	}).Debug("Sending transcription request")

	resp, err := g.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    g.cfg.TranscriptionModel,
		FilePath: filename,
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}

	return resp.Text, nil
}

// Complete sends the prompt to the chat-completion model and returns the
// raw completion text.
func (g *OpenAIGateway) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.CompletionTimeout)
	defer cancel()

	g.logger.WithFields(logrus.Fields{
		"model":       g.cfg.ChatModel,
		"prompt_size": len(prompt),
	}).Debug("Sending completion request")

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.cfg.ChatModel,
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxOutputTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
