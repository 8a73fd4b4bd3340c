package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soap-scribe-server/internal/domain"
)

func TestPromptBuilder_Deterministic(t *testing.T) {
	builder := NewPromptBuilder(NewTemplateRegistry())

	text := "Patient reports chest pain for 2 days."
	first := builder.Build(text, domain.SpecialtyCardiology)
	second := builder.Build(text, domain.SpecialtyCardiology)

	assert.Equal(t, first, second, "equal inputs must yield byte-identical prompts")
}

func TestPromptBuilder_EmbedsTextVerbatim(t *testing.T) {
	builder := NewPromptBuilder(NewTemplateRegistry())

	tests := []struct {
		name string
		text string
	}{
		{"Plain text", "Patient reports chest pain for 2 days."},
		{"Text with quotes and braces", `He said "it hurts {right here}" and pointed.`},
		{"Multiline text", "Line one.\nLine two.\n\nLine four."},
		{"Empty text", ""},
		{"Large text", strings.Repeat("Vitals stable. ", 3400)}, // ~50k characters
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := builder.Build(tt.text, domain.SpecialtyDefault)
			assert.Contains(t, prompt, "---BEGIN ENCOUNTER TEXT---\n"+tt.text+"\n---END ENCOUNTER TEXT---")
		})
	}
}

func TestPromptBuilder_EmbedsSpecialtyAndSchema(t *testing.T) {
	registry := NewTemplateRegistry()
	builder := NewPromptBuilder(registry)

	for _, specialty := range domain.AllSpecialties() {
		t.Run(string(specialty), func(t *testing.T) {
			prompt := builder.Build("some notes", specialty)
			assert.Contains(t, prompt, "documenting a "+string(specialty)+" clinical encounter")
			assert.Contains(t, prompt, registry.SchemaJSON(specialty))
		})
	}
}

func TestPromptBuilder_IncludesGuidelines(t *testing.T) {
	builder := NewPromptBuilder(NewTemplateRegistry())
	prompt := builder.Build("notes", domain.SpecialtyDefault)

	require.Contains(t, prompt, "strictly from the encounter text")
	require.Contains(t, prompt, `Use "" for scalar fields and [] for list fields`)
	require.Contains(t, prompt, "Respond with the JSON object only")
}
