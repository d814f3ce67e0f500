package catalog

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/sitemanifest/internal/model"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Load decodes and validates the embedded catalog.
// Each call returns a fresh Project, so callers may not observe each
// other's modifications.
func Load() (*model.Project, error) {
	return Parse(catalogYAML)
}

// Parse decodes a catalog document and validates it.
// Unknown keys are rejected so typos in the catalog fail loudly.
func Parse(data []byte) (*model.Project, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p model.Project
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return &p, nil
}
