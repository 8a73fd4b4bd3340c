package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soap-scribe-server/internal/domain"
)

func TestTemplateRegistry_SupersetOfDefault(t *testing.T) {
	registry := NewTemplateRegistry()
	defaultFields := registry.Lookup(domain.SpecialtyDefault).FieldNames()
	require.NotEmpty(t, defaultFields)

	for _, specialty := range domain.AllSpecialties() {
		t.Run(string(specialty), func(t *testing.T) {
			tmpl := registry.Lookup(specialty)
			for _, name := range defaultFields {
				assert.True(t, tmpl.HasField(name), "template %s is missing default field %s", specialty, name)
			}
		})
	}
}

func TestTemplateRegistry_LookupFallsBackToDefault(t *testing.T) {
	registry := NewTemplateRegistry()

	tmpl := registry.Lookup(domain.Specialty("orthopedics"))
	assert.Equal(t, registry.Lookup(domain.SpecialtyDefault), tmpl)

	schema := registry.SchemaJSON(domain.Specialty("orthopedics"))
	assert.Equal(t, registry.SchemaJSON(domain.SpecialtyDefault), schema)
}

func TestTemplateRegistry_SchemaJSONIsCanonical(t *testing.T) {
	registry := NewTemplateRegistry()

	for _, specialty := range domain.AllSpecialties() {
		t.Run(string(specialty), func(t *testing.T) {
			schema := registry.SchemaJSON(specialty)

			// Valid JSON object with every template field present.
			var parsed map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(schema), &parsed))
			tmpl := registry.Lookup(specialty)
			assert.Len(t, parsed, len(tmpl.Fields))

			// Field order in the serialized form follows declaration order.
			direct, err := json.Marshal(tmpl)
			require.NoError(t, err)
			assert.Equal(t, string(direct), schema)
		})
	}
}

func TestTemplateRegistry_ListFieldsSerializeAsArrays(t *testing.T) {
	registry := NewTemplateRegistry()
	schema := registry.SchemaJSON(domain.SpecialtyDefault)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(schema), &parsed))

	for _, f := range registry.Lookup(domain.SpecialtyDefault).Fields {
		if f.List {
			items, ok := parsed[f.Name].([]interface{})
			require.True(t, ok, "field %s should serialize as an array", f.Name)
			require.Len(t, items, 1)
			assert.Equal(t, f.Description, items[0])
		} else {
			assert.Equal(t, f.Description, parsed[f.Name])
		}
	}
}
