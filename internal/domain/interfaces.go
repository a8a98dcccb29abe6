package domain

import "context"

// Payload is an upstream-specific request body built by an Adapter.
type Payload interface {
	// UpstreamModel returns the model identifier sent upstream.
	UpstreamModel() string
}

// Adapter translates normalized chat requests for one upstream and streams its deltas.
type Adapter interface {
	// Provider returns the tag this adapter serves.
	Provider() ProviderTag

	// Translate builds the upstream payload for a request.
	Translate(model ModelDescriptor, req *ChatRequest) (Payload, error)

	// StreamDeltas opens one upstream stream and returns its normalized deltas.
	// The channel is closed after a final or error chunk, or when ctx is done.
	StreamDeltas(ctx context.Context, payload Payload) (<-chan DeltaChunk, error)
}

// AdapterRegistry holds one adapter per provider tag.
type AdapterRegistry interface {
	// Register adds an adapter under its provider tag.
	Register(ctx context.Context, adapter Adapter) error

	// Get retrieves the adapter for a provider tag.
	Get(ctx context.Context, provider ProviderTag) (Adapter, error)

	// List returns the registered provider tags.
	List(ctx context.Context) []ProviderTag
}

// ModelRegistry resolves public model identifiers.
type ModelRegistry interface {
	// Lookup returns the descriptor for a public model id.
	Lookup(ctx context.Context, id string) (ModelDescriptor, error)

	// List returns every descriptor in registration order.
	List(ctx context.Context) []ModelDescriptor
}

// CompletionRouter opens the delta stream answering a chat request.
type CompletionRouter interface {
	// Route validates the request and returns the stream of the adapter that owns its model.
	Route(ctx context.Context, req *ChatRequest) (<-chan DeltaChunk, error)
}

// SessionStore persists finalized conversations.
type SessionStore interface {
	// Upsert replaces the messages of a chat, creating it when absent.
	Upsert(ctx context.Context, sessionID, modelID string, conversation []Turn) error
}

// ChatHistory manages stored chats.
type ChatHistory interface {
	List(ctx context.Context) ([]ChatSummary, error)
	Get(ctx context.Context, sessionID string) (*Chat, error)
	Create(ctx context.Context, title, modelID string) (*Chat, error)
	Delete(ctx context.Context, sessionID string) error
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
