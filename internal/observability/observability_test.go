package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davidbz/multimind/internal/observability"
)

func TestFromContext_AddsRequestFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	observability.SetLogger(zap.New(core))
	t.Cleanup(func() { observability.SetLogger(zap.NewNop()) })

	ctx := context.Background()
	ctx = observability.WithRequestID(ctx, "req-1")
	ctx = observability.WithModel(ctx, "gemini-pro")
	ctx = observability.WithSessionID(ctx, "chat_1")

	observability.FromContext(ctx).Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "req-1", fields["request_id"])
	require.Equal(t, "gemini-pro", fields["model"])
	require.Equal(t, "chat_1", fields["session_id"])
	require.NotContains(t, fields, "trace_id")
}

func TestEventBus_Publish(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	observability.SetLogger(zap.New(core))
	t.Cleanup(func() { observability.SetLogger(zap.NewNop()) })

	bus := observability.NewEventBus()
	bus.Publish(context.Background(), "stream.completed", map[string]interface{}{
		"chunks": 3,
		"bytes":  9,
	})

	entries := logs.FilterMessage("stream.completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "stream.completed", fields["event"])
	require.EqualValues(t, 3, fields["chunks"])
}

func TestInitLogger_InvalidLevel(t *testing.T) {
	_, err := observability.InitLogger(&observability.LogConfig{Level: "loud"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log level")
}

func TestGenerateIDs(t *testing.T) {
	require.Len(t, observability.GenerateTraceID(), 32)
	require.Len(t, observability.GenerateSpanID(), 16)
	require.NotEqual(t, observability.GenerateRequestID(), observability.GenerateRequestID())
}
