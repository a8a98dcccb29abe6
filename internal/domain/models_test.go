package domain_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/multimind/internal/domain"
)

func TestChatRequest_Turns(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	img := &domain.Image{Data: "aGVsbG8=", MIMEType: "image/jpeg"}
	req := &domain.ChatRequest{
		ModelID: "gemini-pro",
		Conversation: []domain.Turn{
			{Role: domain.RoleSystem, Content: "be nice"},
			{Role: domain.RoleUser, Content: "hi"},
			{Role: domain.RoleAssistant, Content: "hello"},
		},
		Content: "look at this",
		Image:   img,
	}

	turns := req.Turns(now)

	require.Len(t, turns, 4)
	require.Equal(t, domain.RoleUser, turns[3].Role)
	require.Equal(t, "look at this", turns[3].Content)
	require.Same(t, img, turns[3].Image)
	require.Equal(t, now, turns[3].Timestamp)
	require.Len(t, req.Conversation, 3, "conversation must not be mutated")
}

func TestProviderTag_Valid(t *testing.T) {
	require.True(t, domain.ProviderGoogle.Valid())
	require.True(t, domain.ProviderOpenRouter.Valid())
	require.True(t, domain.ProviderAlibaba.Valid())
	require.False(t, domain.ProviderTag("anthropic").Valid())
}

func TestImageNotSupportedError(t *testing.T) {
	err := fmt.Errorf("routing: %w", &domain.ImageNotSupportedError{Model: "DeepSeek Chat V3"})

	require.ErrorIs(t, err, domain.ErrImageNotSupported)
	require.Contains(t, err.Error(), "DeepSeek Chat V3 does not support images")

	var target *domain.ImageNotSupportedError
	require.True(t, errors.As(err, &target))
	require.Equal(t, "DeepSeek Chat V3", target.Model)
	require.True(t, domain.IsValidationError(err))
	require.False(t, domain.IsValidationError(domain.ErrProviderUnavailable))
}
