package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/davidbz/multimind/internal/domain"
)

// Registry implements the AdapterRegistry interface.
type Registry struct {
	mu       sync.RWMutex
	adapters map[domain.ProviderTag]domain.Adapter
}

// NewRegistry creates a new adapter registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:       sync.RWMutex{},
		adapters: make(map[domain.ProviderTag]domain.Adapter),
	}
}

// Register adds an adapter to the registry.
func (r *Registry) Register(_ context.Context, adapter domain.Adapter) error {
	if adapter == nil {
		return errors.New("adapter cannot be nil")
	}

	tag := adapter.Provider()
	if !tag.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownProvider, tag)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.adapters[tag]; exists {
		return fmt.Errorf("adapter %s already registered", tag)
	}

	r.adapters[tag] = adapter

	return nil
}

// Get retrieves the adapter for a provider tag.
func (r *Registry) Get(_ context.Context, provider domain.ProviderTag) (domain.Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, exists := r.adapters[provider]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, provider)
	}

	return adapter, nil
}

// List returns the registered provider tags in sorted order.
func (r *Registry) List(_ context.Context) []domain.ProviderTag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]domain.ProviderTag, 0, len(r.adapters))
	for tag := range r.adapters {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	return tags
}
