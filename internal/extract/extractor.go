package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Field describes one output field for the prompt instructions.
type Field struct {
	Name        string
	Type        string
	Required    bool
	Description string
}

// Extractor validates cleaned model output against a JSON Schema and decodes it into T.
type Extractor[T any] struct {
	name         string
	schema       *gojsonschema.Schema
	instructions string
	prepare      func(doc []byte) []byte
	decode       func(doc []byte) (T, error)
}

func mustExtractor[T any](name, schemaJSON, example string, fields []Field) *Extractor[T] {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("extract: invalid %s schema: %v", name, err))
	}
	return &Extractor[T]{
		name:         name,
		schema:       schema,
		instructions: renderInstructions(fields, example),
		decode: func(doc []byte) (T, error) {
			var out T
			err := json.Unmarshal(doc, &out)
			return out, err
		},
	}
}

// Name identifies the extractor in errors and logs.
func (e *Extractor[T]) Name() string {
	return e.name
}

// FormatInstructions is the plain-text description of the expected JSON,
// meant to be appended to a task prompt.
func (e *Extractor[T]) FormatInstructions() string {
	return e.instructions
}

// Parse validates cleaned against the schema and decodes it. Every failure is
// an *ExtractionError of kind schema_mismatch.
func (e *Extractor[T]) Parse(cleaned string) (T, error) {
	var zero T

	doc := bytes.TrimSpace([]byte(cleaned))
	if !json.Valid(doc) {
		return zero, mismatch(e.name, ErrNotJSON)
	}
	if e.prepare != nil {
		doc = e.prepare(doc)
	}

	result, err := e.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return zero, mismatch(e.name, err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, d := range result.Errors() {
			details = append(details, d.String())
		}
		return zero, mismatch(e.name, ErrSchemaMismatch, details...)
	}

	out, err := e.decode(doc)
	if err != nil {
		return zero, mismatch(e.name, err)
	}
	return out, nil
}

// BuildPrompt appends the format instructions after the task description.
func (e *Extractor[T]) BuildPrompt(task string) string {
	return strings.TrimRight(task, "\n") + "\n\n" + e.instructions
}

func renderInstructions(fields []Field, example string) string {
	var sb strings.Builder
	sb.WriteString("The output should be a JSON object with the following fields:\n")
	for _, f := range fields {
		req := "optional"
		if f.Required {
			req = "required"
		}
		fmt.Fprintf(&sb, "- %s (%s, %s): %s\n", f.Name, f.Type, req, f.Description)
	}
	sb.WriteString("\nExample:\n")
	sb.WriteString(example)
	sb.WriteString("\n\nReturn only the JSON object, with no extra text.")
	return sb.String()
}
