package routing

import (
	"context"
	"errors"
	"fmt"

	"github.com/davidbz/multimind/internal/domain"
	"github.com/davidbz/multimind/internal/observability"
)

// Router resolves a public model id and opens the matching adapter stream.
type Router struct {
	models   domain.ModelRegistry
	adapters domain.AdapterRegistry
}

// NewRouter creates a new router.
func NewRouter(models domain.ModelRegistry, adapters domain.AdapterRegistry) *Router {
	return &Router{
		models:   models,
		adapters: adapters,
	}
}

// Route validates the request against the model catalog and returns the
// delta stream of the adapter owning the model's provider tag. Every
// validation failure happens before any upstream call.
func (r *Router) Route(ctx context.Context, req *domain.ChatRequest) (<-chan domain.DeltaChunk, error) {
	if req == nil {
		return nil, errors.New("chat request cannot be nil")
	}

	model, err := r.models.Lookup(ctx, req.ModelID)
	if err != nil {
		return nil, err
	}

	if req.Image != nil && !model.SupportsImage {
		return nil, &domain.ImageNotSupportedError{Model: model.Name}
	}

	adapter, err := r.adapterFor(ctx, model.Provider)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", model.Name, err)
	}

	ctx = observability.WithProvider(ctx, string(model.Provider))
	ctx = observability.WithModel(ctx, model.ID)

	logger := observability.FromContext(ctx)
	logger.Debug("routing request",
		observability.String("upstream_model", model.UpstreamModelID),
		observability.Int("history_turns", len(req.Conversation)),
		observability.Bool("has_image", req.Image != nil))

	payload, err := adapter.Translate(model, req)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", model.Name, err)
	}

	chunks, err := adapter.StreamDeltas(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", model.Name, err)
	}

	return chunks, nil
}

// adapterFor matches the closed set of provider tags.
func (r *Router) adapterFor(ctx context.Context, tag domain.ProviderTag) (domain.Adapter, error) {
	switch tag {
	case domain.ProviderGoogle, domain.ProviderOpenRouter, domain.ProviderAlibaba:
		return r.adapters.Get(ctx, tag)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProvider, tag)
	}
}
