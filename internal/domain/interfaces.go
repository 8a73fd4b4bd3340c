package domain

import "context"

// Provider is the gateway to the external AI service. It is the only
// collaborator with network concerns; everything above it can be tested
// against a stub.
type Provider interface {
	// Transcribe converts raw audio bytes into plain text. The filename is
	// forwarded so the provider can infer the container format from its
	// extension.
	Transcribe(ctx context.Context, audio []byte, filename, contentType string) (string, error)

	// Complete sends a prompt to the text-completion model and returns the
	// raw completion text, expected (but not guaranteed) to be a JSON
	// object as a string.
	Complete(ctx context.Context, prompt string) (string, error)
}
