package service

import (
	"fmt"

	"github.com/soap-scribe-server/internal/domain"
)

const promptFormat = `You are documenting a %s clinical encounter.

The source text of the encounter is quoted verbatim between the markers below.

---BEGIN ENCOUNTER TEXT---
%s
---END ENCOUNTER TEXT---

Fill the following JSON shape from the encounter text. Each value describes what the field should contain; list fields show the shape of a single item.

%s

Guidelines:
1. Populate every field strictly from the encounter text above; do not invent clinical facts that the text does not support.
2. Use "" for scalar fields and [] for list fields the text does not support; never omit a key.
3. Respond with the JSON object only, with no surrounding prose, markdown, or code fences.`

// PromptBuilder turns raw clinical text and a specialty into the single
// prompt sent to the completion model. Building is pure string assembly:
// deterministic for equal inputs, no I/O, no secrets.
type PromptBuilder struct {
	registry *TemplateRegistry
}

// NewPromptBuilder creates a prompt builder over the given registry.
func NewPromptBuilder(registry *TemplateRegistry) *PromptBuilder {
	return &PromptBuilder{registry: registry}
}

// Build produces the prompt for the given text and specialty. The text is
// embedded verbatim and untruncated; an empty text yields a prompt with an
// empty quotation rather than an error.
func (b *PromptBuilder) Build(text string, specialty domain.Specialty) string {
	return fmt.Sprintf(promptFormat, specialty, text, b.registry.SchemaJSON(specialty))
}
