// Package batch loads manifests of "#"-delimited inputs, encodes every entry
// and renders the outcome as a report.
package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	APIVersion = "hashenc/v1"
	Kind       = "Batch"
)

// Manifest is a batch file. YAML and JSON are both accepted.
type Manifest struct {
	APIVersion string   `yaml:"apiVersion" json:"apiVersion"`
	Kind       string   `yaml:"kind" json:"kind"`
	Metadata   Metadata `yaml:"metadata,omitempty" json:"metadata,omitempty"`
	Inputs     []Entry  `yaml:"inputs" json:"inputs"`
}

type Metadata struct {
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Entry is one input to encode.
type Entry struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	Value string `yaml:"value" json:"value"`
}

// SchemaError is returned when a manifest does not match the schema.
type SchemaError struct {
	Errors []ValidationError
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, v := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Description))
	}
	return "manifest validation failed: " + strings.Join(parts, "; ")
}

// Load reads a manifest file, validates it against the schema and decodes it.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates raw YAML or JSON bytes and decodes them into a Manifest.
func Parse(data []byte) (*Manifest, error) {
	result, err := ValidateYAML(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &SchemaError{Errors: result.Errors}
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// FromInputs builds an ad hoc manifest from raw input strings.
func FromInputs(name string, inputs []string) *Manifest {
	m := &Manifest{APIVersion: APIVersion, Kind: Kind, Metadata: Metadata{Name: name}}
	for _, in := range inputs {
		m.Inputs = append(m.Inputs, Entry{Value: in})
	}
	return m
}

// Marshal renders a manifest as YAML, or JSON when asJSON is set.
func Marshal(m *Manifest, asJSON bool) ([]byte, error) {
	if asJSON {
		return json.MarshalIndent(m, "", "  ")
	}
	return yaml.Marshal(m)
}
