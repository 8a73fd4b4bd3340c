package domain

import (
	"bytes"
	"encoding/json"
)

// TemplateField describes one slot of a note template. Scalar fields carry
// a description string; list fields serialize as a one-element array of
// strings so the model sees the expected item shape.
type TemplateField struct {
	Name        string
	Description string
	List        bool
}

// Template is the ordered set of fields the model is asked to populate for
// a given specialty. Field order is part of the template identity: the
// serialized form embedded into prompts must be byte-stable, so Template
// keeps a slice rather than a map and marshals fields in declared order.
type Template struct {
	Fields []TemplateField
}

// FieldNames returns the template's field names in declared order.
func (t Template) FieldNames() []string {
	names := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		names[i] = f.Name
	}
	return names
}

// HasField reports whether the template declares the named field.
func (t Template) HasField(name string) bool {
	for _, f := range t.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// MarshalJSON serializes the template as a JSON object with fields in
// declared order. encoding/json would sort map keys alphabetically, which
// would scramble the clinical reading order (subjective before objective).
func (t Template) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range t.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		desc, err := json.Marshal(f.Description)
		if err != nil {
			return nil, err
		}
		if f.List {
			buf.WriteByte('[')
			buf.Write(desc)
			buf.WriteByte(']')
		} else {
			buf.Write(desc)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
