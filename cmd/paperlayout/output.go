package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// outputKind is the structured output format of CLI reports.
type outputKind string

const (
	outputYAML outputKind = "yaml"
	outputJSON outputKind = "json"
)

// writeOutput writes data to w in the given format.
func writeOutput(w io.Writer, format outputKind, data any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(data)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
