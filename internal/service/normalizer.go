package service

import (
	"encoding/json"
	"strings"

	"github.com/soap-scribe-server/internal/domain"
)

// maxSnippetLen bounds how much of a bad model response is carried in the
// error for diagnosis.
const maxSnippetLen = 200

// Normalize parses the model's raw completion text as a JSON object and
// coerces it onto the fixed AnalysisResult shape.
//
// The parse is strict: the entire payload must be exactly one JSON object.
// Responses that wrap the object in prose, markdown fences, or trailing
// commentary fail with MALFORMED_MODEL_RESPONSE rather than being
// repaired. A parsed object whose field types do not match the shape (a
// scalar where a list is expected) fails with VALIDATION_ERROR.
//
// Missing fields are filled with "" or [] so every key is always present
// in the result, and the disclaimer is always replaced with the fixed
// constant no matter what the model supplied.
func Normalize(raw string) (*domain.AnalysisResult, error) {
	trimmed := strings.TrimSpace(raw)

	dec := json.NewDecoder(strings.NewReader(trimmed))
	var probe map[string]json.RawMessage
	if err := dec.Decode(&probe); err != nil {
		return nil, domain.NewMalformedResponseError(snippet(raw), err)
	}
	if dec.More() {
		return nil, domain.NewMalformedResponseError(snippet(raw), nil)
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal([]byte(trimmed), &result); err != nil {
		if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
			return nil, domain.NewValidationError(
				"model response field '"+typeErr.Field+"' has wrong type: got "+typeErr.Value, err)
		}
		return nil, domain.NewMalformedResponseError(snippet(raw), err)
	}

	fillDefaults(&result)
	result.Disclaimer = domain.Disclaimer
	return &result, nil
}

// fillDefaults replaces nil list fields so serialized output carries []
// instead of null. Scalar fields already default to "".
func fillDefaults(r *domain.AnalysisResult) {
	if r.CriticalPoints == nil {
		r.CriticalPoints = []string{}
	}
	if r.CDICodes == nil {
		r.CDICodes = []string{}
	}
	if r.NextSteps == nil {
		r.NextSteps = []string{}
	}
	if r.FollowUpPriorities == nil {
		r.FollowUpPriorities = []string{}
	}
	if r.Recommendations == nil {
		r.Recommendations = []string{}
	}
}

func snippet(raw string) string {
	if len(raw) > maxSnippetLen {
		return raw[:maxSnippetLen] + "..."
	}
	return raw
}
