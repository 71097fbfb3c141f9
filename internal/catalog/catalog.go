// Package catalog carries the static registration data the host runtime
// consumes: provider metadata, the model catalog and the fixed header set
// for serving API calls. There is no logic here beyond loading the embedded
// document.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/kimicode/kimi-auth/internal/device"
	"go.yaml.in/yaml/v3"
)

//go:embed models.yaml
var rawCatalog []byte

type Provider struct {
	ID      string `json:"id"       yaml:"id"`
	Name    string `json:"name"     yaml:"name"`
	BaseURL string `json:"base_url" yaml:"base_url"`
	DocURL  string `json:"doc_url"  yaml:"doc_url"`
}

type Model struct {
	ID              string `json:"id"                yaml:"id"`
	Name            string `json:"name"              yaml:"name"`
	ContextWindow   int    `json:"context_window"    yaml:"context_window"`
	MaxOutputTokens int    `json:"max_output_tokens" yaml:"max_output_tokens"`
	SupportsTools   bool   `json:"supports_tools"    yaml:"supports_tools"`
}

type Catalog struct {
	Provider Provider `json:"provider" yaml:"provider"`
	Models   []Model  `json:"models"   yaml:"models"`
}

// Registration is the value handed to the host runtime when the provider is
// registered.
type Registration struct {
	Provider Provider          `json:"provider"`
	Models   []Model           `json:"models"`
	Headers  map[string]string `json:"headers"`
}

// Load parses the embedded catalog document.
func Load() (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(rawCatalog, &c); err != nil {
		return Catalog{}, fmt.Errorf("error parsing model catalog: %w", err)
	}

	return c, nil
}

// Registration returns the host-facing registration value. The header set is
// the smaller serving-API one, without device identity.
func (c Catalog) Registration() Registration {
	return Registration{
		Provider: c.Provider,
		Models:   c.Models,
		Headers:  device.APIHeaders(),
	}
}
