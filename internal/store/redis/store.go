// Package redis stores chat sessions in Redis.
//
// Each chat is a JSON document under "chat:<sessionId>"; the sorted set
// "chats:updated" indexes session ids by last update (unix ms).
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/davidbz/multimind/internal/domain"
	"github.com/davidbz/multimind/internal/observability"
)

const (
	chatKeyPrefix  = "chat:"
	updatedIndex   = "chats:updated"
	maxTitleLength = 50
	maxTxRetries   = 3

	// DefaultTitle names chats created without a title.
	DefaultTitle = "New Chat"

	// DefaultModelID is assigned to chats created without a model.
	DefaultModelID = "gemini-pro"

	// SystemPrompt seeds every new chat.
	SystemPrompt = "You are MultiMind AI, a helpful, creative, and intelligent assistant."
)

// Store implements domain.SessionStore and domain.ChatHistory on Redis.
type Store struct {
	client *redis.Client
	now    func() time.Time
}

// NewStore creates a new Redis chat store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		now:    time.Now,
	}
}

func chatKey(sessionID string) string {
	return chatKeyPrefix + sessionID
}

// Upsert replaces the messages and model of a chat, creating it when absent.
// New chats are titled after the newest user message.
func (s *Store) Upsert(ctx context.Context, sessionID, modelID string, conversation []domain.Turn) error {
	if sessionID == "" {
		return errors.New("session id is required")
	}

	key := chatKey(sessionID)
	now := s.now().UTC()

	txf := func(tx *redis.Tx) error {
		chat, err := load(ctx, tx, key)
		switch {
		case errors.Is(err, domain.ErrChatNotFound):
			chat = &domain.Chat{
				SessionID: sessionID,
				Title:     titleFor(conversation),
				CreatedAt: now,
			}
		case err != nil:
			return err
		}

		chat.ModelID = modelID
		chat.Messages = conversation
		chat.UpdatedAt = now

		data, err := json.Marshal(chat)
		if err != nil {
			return fmt.Errorf("failed to marshal chat: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.ZAdd(ctx, updatedIndex, redis.Z{Score: float64(now.UnixMilli()), Member: sessionID})
			return nil
		})
		return err
	}

	for range maxTxRetries {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
		}

		observability.FromContext(ctx).Debug("chat upserted",
			observability.String("session_id", sessionID),
			observability.Int("messages", len(conversation)))
		return nil
	}

	return fmt.Errorf("%w: chat %s changed concurrently", domain.ErrPersistence, sessionID)
}

// List returns chat summaries, most recently updated first.
func (s *Store) List(ctx context.Context) ([]domain.ChatSummary, error) {
	ids, err := s.client.ZRevRange(ctx, updatedIndex, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}

	if len(ids) == 0 {
		return []domain.ChatSummary{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = chatKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load chats: %w", err)
	}

	logger := observability.FromContext(ctx)
	summaries := make([]domain.ChatSummary, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			logger.Warn("chat index entry without document", observability.String("session_id", ids[i]))
			continue
		}

		var chat domain.Chat
		if err := json.Unmarshal([]byte(raw), &chat); err != nil {
			logger.Warn("skipping unreadable chat",
				observability.String("session_id", ids[i]),
				observability.Error(err))
			continue
		}

		summaries = append(summaries, domain.ChatSummary{
			SessionID: chat.SessionID,
			Title:     chat.Title,
			ModelID:   chat.ModelID,
			CreatedAt: chat.CreatedAt,
			UpdatedAt: chat.UpdatedAt,
		})
	}

	return summaries, nil
}

// Get returns a chat with its messages.
func (s *Store) Get(ctx context.Context, sessionID string) (*domain.Chat, error) {
	return load(ctx, s.client, chatKey(sessionID))
}

// Create stores an empty chat seeded with the system prompt.
func (s *Store) Create(ctx context.Context, title, modelID string) (*domain.Chat, error) {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	if modelID == "" {
		modelID = DefaultModelID
	}

	now := s.now().UTC()
	chat := &domain.Chat{
		SessionID: newSessionID(now),
		Title:     title,
		ModelID:   modelID,
		Messages: []domain.Turn{
			{Role: domain.RoleSystem, Content: SystemPrompt, Timestamp: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	data, err := json.Marshal(chat)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat: %w", err)
	}

	key := chatKey(chat.SessionID)
	var created *redis.BoolCmd
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		created = pipe.SetNX(ctx, key, data, 0)
		pipe.ZAdd(ctx, updatedIndex, redis.Z{Score: float64(now.UnixMilli()), Member: chat.SessionID})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}
	if !created.Val() {
		return nil, fmt.Errorf("chat %s already exists", chat.SessionID)
	}

	return chat, nil
}

// Delete removes a chat and its index entry.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	var deleted *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, chatKey(sessionID))
		pipe.ZRem(ctx, updatedIndex, sessionID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete chat: %w", err)
	}

	if deleted.Val() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrChatNotFound, sessionID)
	}

	return nil
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func load(ctx context.Context, c getter, key string) (*domain.Chat, error) {
	raw, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", domain.ErrChatNotFound, strings.TrimPrefix(key, chatKeyPrefix))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read chat: %w", err)
	}

	var chat domain.Chat
	if err := json.Unmarshal(raw, &chat); err != nil {
		return nil, fmt.Errorf("failed to decode chat: %w", err)
	}

	return &chat, nil
}

// titleFor uses the first 50 characters of the newest user message, the
// one that opened this chat.
func titleFor(conversation []domain.Turn) string {
	for i := len(conversation) - 1; i >= 0; i-- {
		turn := conversation[i]
		if turn.Role != domain.RoleUser || turn.Content == "" {
			continue
		}
		if utf8.RuneCountInString(turn.Content) <= maxTitleLength {
			return turn.Content
		}
		return string([]rune(turn.Content)[:maxTitleLength])
	}
	return DefaultTitle
}

// newSessionID returns "chat_<unix ms>_<8 hex>".
func newSessionID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("chat_%d_%s", now.UnixMilli(), suffix)
}
