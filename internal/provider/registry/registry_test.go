package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/multimind/internal/domain"
	"github.com/davidbz/multimind/internal/provider/registry"
)

// stubAdapter is a minimal domain.Adapter for registry tests.
type stubAdapter struct {
	tag domain.ProviderTag
}

func (s *stubAdapter) Provider() domain.ProviderTag {
	return s.tag
}

func (s *stubAdapter) Translate(_ domain.ModelDescriptor, _ *domain.ChatRequest) (domain.Payload, error) {
	return nil, nil
}

func (s *stubAdapter) StreamDeltas(_ context.Context, _ domain.Payload) (<-chan domain.DeltaChunk, error) {
	ch := make(chan domain.DeltaChunk)
	close(ch)
	return ch, nil
}

func TestRegistry_Register(t *testing.T) {
	t.Run("should register adapter successfully", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		err := reg.Register(ctx, &stubAdapter{tag: domain.ProviderGoogle})
		require.NoError(t, err)

		registered, err := reg.Get(ctx, domain.ProviderGoogle)
		require.NoError(t, err)
		require.Equal(t, domain.ProviderGoogle, registered.Provider())
	})

	t.Run("should return error when adapter is nil", func(t *testing.T) {
		reg := registry.NewRegistry()

		err := reg.Register(context.Background(), nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "adapter cannot be nil")
	})

	t.Run("should reject unknown provider tag", func(t *testing.T) {
		reg := registry.NewRegistry()

		err := reg.Register(context.Background(), &stubAdapter{tag: "anthropic"})
		require.ErrorIs(t, err, domain.ErrUnknownProvider)
	})

	t.Run("should return error when adapter already registered", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		require.NoError(t, reg.Register(ctx, &stubAdapter{tag: domain.ProviderAlibaba}))
		err := reg.Register(ctx, &stubAdapter{tag: domain.ProviderAlibaba})
		require.Error(t, err)
		require.Contains(t, err.Error(), "already registered")
	})
}

func TestRegistry_Get(t *testing.T) {
	t.Run("should return UnknownProvider when not registered", func(t *testing.T) {
		reg := registry.NewRegistry()

		adapter, err := reg.Get(context.Background(), domain.ProviderOpenRouter)
		require.ErrorIs(t, err, domain.ErrUnknownProvider)
		require.Nil(t, adapter)
	})
}

func TestRegistry_List(t *testing.T) {
	reg := registry.NewRegistry()
	ctx := context.Background()

	require.Empty(t, reg.List(ctx))

	for _, tag := range []domain.ProviderTag{domain.ProviderOpenRouter, domain.ProviderAlibaba, domain.ProviderGoogle} {
		require.NoError(t, reg.Register(ctx, &stubAdapter{tag: tag}))
	}

	require.Equal(t, []domain.ProviderTag{
		domain.ProviderAlibaba,
		domain.ProviderGoogle,
		domain.ProviderOpenRouter,
	}, reg.List(ctx))
}
