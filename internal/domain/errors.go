package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Error codes for different failure scenarios
const (
	ErrInvalidInput      = "INVALID_INPUT"
	ErrTranscription     = "TRANSCRIPTION_FAILED"
	ErrNoteGeneration    = "NOTE_GENERATION_FAILED"
	ErrMalformedResponse = "MALFORMED_MODEL_RESPONSE"
	ErrValidation        = "VALIDATION_ERROR"
	ErrInternalServer    = "INTERNAL_SERVER_ERROR"
)

// ScribeError is the standardized error shape surfaced to the HTTP boundary.
type ScribeError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
	cause     error
}

// Error implements the error interface
func (e *ScribeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *ScribeError) Unwrap() error {
	return e.cause
}

// HTTPStatus maps the error code to an HTTP status. Only input validation
// is the client's fault; everything else in this service is a 500.
func (e *ScribeError) HTTPStatus() int {
	if e.Code == ErrInvalidInput {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// NewScribeError creates a new ScribeError with timestamp
func NewScribeError(code, message, details string) *ScribeError {
	return &ScribeError{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewInputError reports a missing or invalid request field.
func NewInputError(field, message string) *ScribeError {
	e := NewScribeError(ErrInvalidInput, message, "")
	e.Details = fmt.Sprintf("field: %s", field)
	return e
}

// NewTranscriptionError wraps a provider failure during the audio stage.
// Provider failures are opaque: auth, quota, malformed audio and timeouts
// all surface as the same failure kind.
func NewTranscriptionError(cause error) *ScribeError {
	e := NewScribeError(ErrTranscription, "audio transcription failed", cause.Error())
	e.cause = cause
	return e
}

// NewNoteGenerationError wraps a provider failure during note generation.
func NewNoteGenerationError(cause error) *ScribeError {
	e := NewScribeError(ErrNoteGeneration, "clinical note generation failed", cause.Error())
	e.cause = cause
	return e
}

// NewMalformedResponseError reports a model response that could not be
// parsed as a JSON object. The raw snippet goes into Details for logging;
// handlers decide how much of it reaches the client.
func NewMalformedResponseError(snippet string, cause error) *ScribeError {
	e := NewScribeError(ErrMalformedResponse, "model response is not a valid JSON object", snippet)
	e.cause = cause
	return e
}

// NewValidationError reports a parsed model response that could not be
// coerced into the expected note shape.
func NewValidationError(message string, cause error) *ScribeError {
	e := NewScribeError(ErrValidation, message, "")
	e.cause = cause
	return e
}

// AsScribeError extracts a ScribeError from an error chain, wrapping
// unrecognized errors as internal server errors so the HTTP layer always
// has a code and status to work with.
func AsScribeError(err error) *ScribeError {
	var se *ScribeError
	if errors.As(err, &se) {
		return se
	}
	wrapped := NewScribeError(ErrInternalServer, "internal server error", err.Error())
	wrapped.cause = err
	return wrapped
}
