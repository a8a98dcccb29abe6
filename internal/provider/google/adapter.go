// Package google adapts the Gemini streamGenerateContent API (alt=sse).
//
// Fixed request policy: assistant turns are sent with role "model", system
// turns are joined into systemInstruction, the full history is always sent
// and the new user turn goes last with its image as inlineData ahead of the
// text part. Zero-length deltas are dropped; whitespace-only deltas are
// forwarded as-is.
package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/davidbz/multimind/internal/domain"
	"github.com/davidbz/multimind/internal/observability"
	"github.com/davidbz/multimind/internal/provider/sse"
)

const modelRole = "model"

// Adapter implements domain.Adapter for Google Gemini.
type Adapter struct {
	config Config
	client *sse.Client
}

// NewAdapter creates a Gemini adapter. A missing API key is logged; every
// stream then fails with ErrProviderAuth until it is configured.
func NewAdapter(config Config) *Adapter {
	if config.APIKey == "" {
		observability.FromContext(context.Background()).Warn("GOOGLE_API_KEY is not set, Gemini models will fail")
	}

	return &Adapter{
		config: config,
		client: sse.NewClient(time.Duration(config.Timeout) * time.Second),
	}
}

// Provider returns the provider tag.
func (a *Adapter) Provider() domain.ProviderTag {
	return domain.ProviderGoogle
}

// Translate converts a chat request into a Gemini request.
func (a *Adapter) Translate(model domain.ModelDescriptor, req *domain.ChatRequest) (domain.Payload, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	var system []string
	contents := make([]Content, 0, len(req.Conversation)+1)

	for _, turn := range req.Turns(time.Time{}) {
		switch turn.Role {
		case domain.RoleSystem:
			if turn.Content != "" {
				system = append(system, turn.Content)
			}
		case domain.RoleUser, domain.RoleAssistant:
			role := string(domain.RoleUser)
			if turn.Role == domain.RoleAssistant {
				role = modelRole
			}
			if parts := toParts(turn); len(parts) > 0 {
				contents = append(contents, Content{Role: role, Parts: parts})
			}
		}
	}

	payload := &Request{
		Model:    model.UpstreamModelID,
		Contents: contents,
		GenerationConfig: GenerationConfig{
			Temperature:     a.config.Temperature,
			MaxOutputTokens: a.config.MaxOutputTokens,
		},
	}

	if len(system) > 0 {
		payload.SystemInstruction = &Content{
			Parts: []Part{{Text: strings.Join(system, "\n\n")}},
		}
	}

	return payload, nil
}

// StreamDeltas opens the Gemini stream and forwards its text deltas.
func (a *Adapter) StreamDeltas(ctx context.Context, payload domain.Payload) (<-chan domain.DeltaChunk, error) {
	req, ok := payload.(*Request)
	if !ok {
		return nil, fmt.Errorf("google adapter: unexpected payload %T", payload)
	}

	if a.config.APIKey == "" {
		return nil, fmt.Errorf("%w: GOOGLE_API_KEY is not set", domain.ErrProviderAuth)
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling Gemini streaming API", observability.String("upstream_model", req.Model))

	streamURL := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse",
		strings.TrimRight(a.config.BaseURL, "/"), url.PathEscape(req.Model))

	//nolint:bodyclose // Response body is closed in the pump goroutine
	resp, err := a.client.Post(ctx, streamURL, map[string]string{"x-goog-api-key": a.config.APIKey}, req)
	if err != nil {
		logger.Error("Gemini API call failed", observability.Error(err))
		return nil, err
	}

	chunks := make(chan domain.DeltaChunk, 1)
	go a.pump(ctx, resp.Body, chunks)

	return chunks, nil
}

func (a *Adapter) pump(ctx context.Context, body io.ReadCloser, out chan<- domain.DeltaChunk) {
	defer close(out)
	defer body.Close()

	logger := observability.FromContext(ctx)
	defer logger.Debug("Gemini stream closed")

	scanner := sse.NewScanner(body)
	for {
		event, err := scanner.Next()
		if errors.Is(err, io.EOF) {
			logger.Debug("Gemini stream ended without a finish reason")
			return
		}
		if err != nil {
			if readErr := sse.ReadError(ctx, err); readErr != nil {
				sse.Send(ctx, out, domain.DeltaChunk{Err: readErr})
			}
			return
		}

		var chunk streamResponse
		if unmarshalErr := json.Unmarshal([]byte(event.Data), &chunk); unmarshalErr != nil {
			logger.Warn("skipping malformed Gemini event",
				observability.Error(fmt.Errorf("%w: %v", domain.ErrMalformedEvent, unmarshalErr)))
			continue
		}

		if chunk.Error != nil {
			sse.Send(ctx, out, domain.DeltaChunk{Err: upstreamError(chunk.Error.Code, chunk.Error.Message)})
			return
		}

		text, finished := chunk.delta()
		if text != "" && !sse.Send(ctx, out, domain.DeltaChunk{Text: text}) {
			return
		}
		if finished {
			sse.Send(ctx, out, domain.DeltaChunk{Final: true})
			return
		}
	}
}

func upstreamError(code int, message string) error {
	if code == http.StatusUnauthorized || code == http.StatusForbidden {
		return fmt.Errorf("%w: %s", domain.ErrProviderAuth, message)
	}
	return fmt.Errorf("%w: Gemini stream error %d: %s", domain.ErrProviderUnavailable, code, message)
}

// toParts builds the parts of one turn: image first, then text.
func toParts(turn domain.Turn) []Part {
	parts := make([]Part, 0, 2)
	if turn.Image != nil {
		parts = append(parts, Part{InlineData: &InlineData{
			MimeType: turn.Image.MIMEType,
			Data:     turn.Image.Data,
		}})
	}
	if turn.Content != "" {
		parts = append(parts, Part{Text: turn.Content})
	}
	return parts
}
