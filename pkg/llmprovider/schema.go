package llmprovider

import (
	"encoding/json"
	"strings"
)

// SchemaType is a JSON Schema primitive type.
type SchemaType string

const (
	SchemaString  SchemaType = "string"
	SchemaNumber  SchemaType = "number"
	SchemaInteger SchemaType = "integer"
	SchemaBoolean SchemaType = "boolean"
	SchemaArray   SchemaType = "array"
	SchemaObject  SchemaType = "object"
)

// Schema describes the shape of a structured response. It is the common
// subset of JSON Schema and the OpenAPI schema Gemini accepts.
type Schema struct {
	Type        SchemaType         `json:"type"`
	Description string             `json:"description,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Nullable    bool               `json:"-"`
}

// JSON renders s as a JSON Schema document.
func (s *Schema) JSON() string {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

// jsonModeEnvelope is the field an array result is wrapped in for providers
// whose JSON mode only produces objects.
const jsonModeEnvelope = "items"

// jsonModeInstruction tells a JSON-mode provider what to produce.
func jsonModeInstruction(s *Schema) string {
	var sb strings.Builder
	sb.WriteString("Respond with a single JSON object and nothing else.")
	if s.Type == SchemaArray {
		sb.WriteString(` Put the result array in the "` + jsonModeEnvelope + `" field of that object.`)
		sb.WriteString(" Every array element must match this JSON Schema:\n")
		sb.WriteString(s.Items.JSON())
		return sb.String()
	}
	sb.WriteString(" It must match this JSON Schema:\n")
	sb.WriteString(s.JSON())
	return sb.String()
}

// unwrapJSONMode reverses the envelope added for array schemas. Anything
// that is not an enveloped array is returned unchanged.
func unwrapJSONMode(s *Schema, text string) string {
	if s == nil || s.Type != SchemaArray {
		return text
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &envelope); err != nil {
		return text
	}
	raw, ok := envelope[jsonModeEnvelope]
	if !ok {
		return text
	}
	return string(raw)
}

// withJSONModeInstruction returns the system text extended with the schema
// instruction when a schema is requested.
func withJSONModeInstruction(system string, s *Schema) string {
	if s == nil {
		return system
	}
	if system == "" {
		return jsonModeInstruction(s)
	}
	return system + "\n\n" + jsonModeInstruction(s)
}
