package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// render writes data in the selected format. Text output uses text when it
// is not empty and falls back to indented JSON.
func render(w io.Writer, format string, data json.RawMessage, text string) error {
	switch format {
	case outputYAML:
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case outputJSON:
		return writeIndented(w, data)
	default:
		if text != "" {
			_, err := fmt.Fprintln(w, text)
			return err
		}
		return writeIndented(w, data)
	}
}

func writeIndented(w io.Writer, data json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("format data: %w", err)
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}
