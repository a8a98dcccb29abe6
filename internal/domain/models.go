package domain

import "time"

// ProviderTag identifies the upstream integration a model belongs to.
type ProviderTag string

const (
	ProviderGoogle     ProviderTag = "google"
	ProviderOpenRouter ProviderTag = "openrouter"
	ProviderAlibaba    ProviderTag = "alibaba"
)

// Valid reports whether the tag names one of the supported upstreams.
func (p ProviderTag) Valid() bool {
	switch p {
	case ProviderGoogle, ProviderOpenRouter, ProviderAlibaba:
		return true
	default:
		return false
	}
}

// Role is the author of a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one of system, user or assistant.
func (r Role) Valid() bool {
	return r == RoleSystem || r == RoleUser || r == RoleAssistant
}

// ModelDescriptor describes one public model and how to reach it upstream.
type ModelDescriptor struct {
	ID              string      `json:"id"              yaml:"id"`
	Name            string      `json:"name"            yaml:"name"`
	Provider        ProviderTag `json:"provider"        yaml:"provider"`
	UpstreamModelID string      `json:"upstreamModelId" yaml:"upstream_model"`
	SupportsImage   bool        `json:"supportsImage"   yaml:"supports_image"`
	Description     string      `json:"description"     yaml:"description"`
}

// Turn is a single entry of a conversation.
type Turn struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Image     *Image    `json:"-"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest is a normalized chat call: prior conversation plus the new user turn.
type ChatRequest struct {
	ModelID      string
	Conversation []Turn
	Content      string
	Image        *Image
}

// Turns returns the conversation followed by the new user turn.
func (r *ChatRequest) Turns(now time.Time) []Turn {
	turns := make([]Turn, 0, len(r.Conversation)+1)
	turns = append(turns, r.Conversation...)
	return append(turns, Turn{
		Role:      RoleUser,
		Content:   r.Content,
		Image:     r.Image,
		Timestamp: now,
	})
}

// DeltaChunk is the normalized unit produced by every adapter.
// A chunk with Err set is always the last one on its channel.
type DeltaChunk struct {
	Text  string
	Final bool
	Err   error
}

// Chat is a persisted conversation.
type Chat struct {
	SessionID string    `json:"sessionId"`
	Title     string    `json:"title"`
	ModelID   string    `json:"modelId"`
	Messages  []Turn    `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ChatSummary is the metadata of a chat without its messages.
type ChatSummary struct {
	SessionID string    `json:"sessionId"`
	Title     string    `json:"title"`
	ModelID   string    `json:"modelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
