// Package styles holds the tailoring style registry: each style maps to a
// guidance sentence injected into the tailoring prompt.
package styles

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	Standard = "standard"
	Concise  = "concise"
	Detailed = "detailed"
)

var defaults = map[string]string{
	Standard: "Provide a balanced and standard tailored resume.",
	Concise:  "Make the tailored resume concise and to the point, focusing only on the most relevant information.",
	Detailed: "Provide a detailed and comprehensive tailored resume, elaborating on experiences where relevant.",
}

// Registry resolves style names to prompt guidance.
type Registry struct {
	styles map[string]string
}

func NewRegistry() *Registry {
	styles := make(map[string]string, len(defaults))
	for name, guidance := range defaults {
		styles[name] = guidance
	}
	return &Registry{styles: styles}
}

// Load reads a YAML file mapping style names to guidance sentences and merges
// it over the defaults, so operators can tune prompts without a rebuild.
func Load(path string) (*Registry, error) {
	r := NewRegistry()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read styles file: %w", err)
	}
	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse styles file: %w", err)
	}
	for name, guidance := range overrides {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || strings.TrimSpace(guidance) == "" {
			continue
		}
		r.styles[name] = guidance
	}
	return r, nil
}

// Guidance returns the prompt guidance for a style name, falling back to
// Standard for unknown or empty names.
func (r *Registry) Guidance(name string) string {
	if guidance, ok := r.styles[strings.ToLower(strings.TrimSpace(name))]; ok {
		return guidance
	}
	return r.styles[Standard]
}

// Names lists the registered style names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	return names
}
