package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScribeError_HTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrTranscription, http.StatusInternalServerError},
		{ErrNoteGeneration, http.StatusInternalServerError},
		{ErrMalformedResponse, http.StatusInternalServerError},
		{ErrValidation, http.StatusInternalServerError},
		{ErrInternalServer, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := NewScribeError(tt.code, "message", "")
			assert.Equal(t, tt.want, err.HTTPStatus())
		})
	}
}

func TestScribeError_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTranscriptionError(cause)

	assert.Equal(t, ErrTranscription, err.Code)
	assert.Contains(t, err.Details, "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestAsScribeError(t *testing.T) {
	t.Run("Passes through scribe errors", func(t *testing.T) {
		original := NewNoteGenerationError(errors.New("model down"))
		extracted := AsScribeError(original)
		assert.Same(t, original, extracted)
	})

	t.Run("Finds scribe error in a wrap chain", func(t *testing.T) {
		original := NewMalformedResponseError("snippet", nil)
		wrapped := fmt.Errorf("pipeline failed: %w", original)
		extracted := AsScribeError(wrapped)
		assert.Same(t, original, extracted)
	})

	t.Run("Wraps unknown errors as internal", func(t *testing.T) {
		plain := errors.New("something odd")
		extracted := AsScribeError(plain)
		require.Equal(t, ErrInternalServer, extracted.Code)
		assert.ErrorIs(t, extracted, plain)
	})
}

func TestNewMalformedResponseError_CarriesSnippet(t *testing.T) {
	err := NewMalformedResponseError("Here is your note: {...", nil)
	assert.Equal(t, ErrMalformedResponse, err.Code)
	assert.Contains(t, err.Details, "Here is your note")
}
