// Package catalog is the read-only model registry. It is loaded once at startup
// from YAML (the embedded default or MODELS_FILE) and never changes afterwards,
// so lookups need no locking.
package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/davidbz/multimind/internal/domain"
)

//go:embed models.yaml
var defaultCatalog []byte

// Config selects the catalog source.
type Config struct {
	File string `env:"MODELS_FILE"`
}

type catalogFile struct {
	Models []domain.ModelDescriptor `yaml:"models"`
}

// Catalog implements domain.ModelRegistry.
type Catalog struct {
	models []domain.ModelDescriptor
	byID   map[string]int
}

// Load reads the catalog from cfg.File, or the embedded default when unset.
func Load(cfg *Config) (*Catalog, error) {
	data := defaultCatalog

	if cfg != nil && cfg.File != "" {
		fileData, err := os.ReadFile(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read model catalog: %w", err)
		}
		data = fileData
	}

	return Parse(data)
}

// Parse builds a catalog from YAML, rejecting duplicate ids and unknown providers.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse model catalog: %w", err)
	}

	if len(file.Models) == 0 {
		return nil, errors.New("model catalog is empty")
	}

	c := &Catalog{
		models: make([]domain.ModelDescriptor, 0, len(file.Models)),
		byID:   make(map[string]int, len(file.Models)),
	}

	for i, m := range file.Models {
		if m.ID == "" {
			return nil, fmt.Errorf("model #%d has no id", i)
		}
		if _, exists := c.byID[m.ID]; exists {
			return nil, fmt.Errorf("model %s registered twice", m.ID)
		}
		if !m.Provider.Valid() {
			return nil, fmt.Errorf("model %s: %w: %q", m.ID, domain.ErrUnknownProvider, m.Provider)
		}
		if m.UpstreamModelID == "" {
			return nil, fmt.Errorf("model %s has no upstream model", m.ID)
		}
		if m.Name == "" {
			m.Name = m.ID
		}

		c.byID[m.ID] = len(c.models)
		c.models = append(c.models, m)
	}

	return c, nil
}

// Lookup returns the descriptor for a public model id.
func (c *Catalog) Lookup(_ context.Context, id string) (domain.ModelDescriptor, error) {
	idx, exists := c.byID[id]
	if !exists {
		return domain.ModelDescriptor{}, fmt.Errorf("%w: %s", domain.ErrModelNotFound, id)
	}
	return c.models[idx], nil
}

// List returns every descriptor in registration order.
func (c *Catalog) List(_ context.Context) []domain.ModelDescriptor {
	out := make([]domain.ModelDescriptor, len(c.models))
	copy(out, c.models)
	return out
}
