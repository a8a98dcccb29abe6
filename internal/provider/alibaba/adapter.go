// Package alibaba adapts the DashScope native streaming API (Qwen models).
//
// Fixed request policy: system turns are folded into one leading system
// message, the full history is always sent, and a request whose new turn
// carries an image goes to the multimodal endpoint with content blocks
// [{image: data-URI}, {text}]; otherwise the text endpoint with string
// content is used. Zero-length deltas are dropped; whitespace-only deltas
// are forwarded.
package alibaba

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/davidbz/multimind/internal/domain"
	"github.com/davidbz/multimind/internal/observability"
	"github.com/davidbz/multimind/internal/provider/sse"
)

const (
	resultFormatMessage = "message"
	finishReasonNull    = "null"
	errorEventType      = "error"
)

// authErrorCodes are DashScope codes that mean the credential was rejected.
var authErrorCodes = map[string]bool{ //nolint:gochecknoglobals // read-only lookup
	"InvalidApiKey": true,
	"AccessDenied":  true,
}

// Adapter implements domain.Adapter for Alibaba DashScope.
type Adapter struct {
	config Config
	client *sse.Client
}

// NewAdapter creates a DashScope adapter. A missing API key is logged; every
// stream then fails with ErrProviderAuth until it is configured.
func NewAdapter(config Config) *Adapter {
	if config.APIKey == "" {
		observability.FromContext(context.Background()).Warn("ALIBABA_API_KEY is not set, Qwen models will fail")
	}

	return &Adapter{
		config: config,
		client: sse.NewClient(time.Duration(config.Timeout) * time.Second),
	}
}

// Provider returns the provider tag.
func (a *Adapter) Provider() domain.ProviderTag {
	return domain.ProviderAlibaba
}

// Translate converts a chat request into a DashScope request.
func (a *Adapter) Translate(model domain.ModelDescriptor, req *domain.ChatRequest) (domain.Payload, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	multimodal := req.Image != nil

	var system []string
	messages := make([]Message, 0, len(req.Conversation)+2)
	for _, turn := range req.Turns(time.Time{}) {
		if turn.Role == domain.RoleSystem {
			if turn.Content != "" {
				system = append(system, turn.Content)
			}
			continue
		}
		messages = append(messages, Message{
			Role:    string(turn.Role),
			Content: content(turn, multimodal),
		})
	}

	if len(system) > 0 {
		head := Message{
			Role:    string(domain.RoleSystem),
			Content: content(domain.Turn{Content: strings.Join(system, "\n\n")}, multimodal),
		}
		messages = append([]Message{head}, messages...)
	}

	return &Request{
		Model: model.UpstreamModelID,
		Input: Input{Messages: messages},
		Parameters: Parameters{
			ResultFormat:      resultFormatMessage,
			IncrementalOutput: true,
			Temperature:       a.config.Temperature,
			MaxTokens:         a.config.MaxTokens,
		},
		Multimodal: multimodal,
	}, nil
}

// StreamDeltas opens the DashScope stream and forwards its text deltas.
func (a *Adapter) StreamDeltas(ctx context.Context, payload domain.Payload) (<-chan domain.DeltaChunk, error) {
	req, ok := payload.(*Request)
	if !ok {
		return nil, fmt.Errorf("alibaba adapter: unexpected payload %T", payload)
	}

	if a.config.APIKey == "" {
		return nil, fmt.Errorf("%w: ALIBABA_API_KEY is not set", domain.ErrProviderAuth)
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling DashScope streaming API",
		observability.String("upstream_model", req.Model),
		observability.Bool("multimodal", req.Multimodal))

	headers := map[string]string{
		"Authorization":   "Bearer " + a.config.APIKey,
		"X-DashScope-SSE": "enable",
	}

	//nolint:bodyclose // Response body is closed in the pump goroutine
	resp, err := a.client.Post(ctx, strings.TrimRight(a.config.BaseURL, "/")+req.path(), headers, req)
	if err != nil {
		logger.Error("DashScope API call failed", observability.Error(err))
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
	defer logger.Debug("DashScope stream closed")

	scanner := sse.NewScanner(body)
	for {
		event, err := scanner.Next()
		if errors.Is(err, io.EOF) {
			logger.Debug("DashScope stream ended without a finish reason")
			return
		}
		if err != nil {
			if readErr := sse.ReadError(ctx, err); readErr != nil {
				sse.Send(ctx, out, domain.DeltaChunk{Err: readErr})
			}
			return
		}

		if !gjson.Valid(event.Data) {
			logger.Warn("skipping malformed DashScope event",
				observability.Error(domain.ErrMalformedEvent),
				observability.Int("size", len(event.Data)))
			continue
		}

		result := gjson.Parse(event.Data)

		if code := result.Get("code").String(); code != "" || event.Type == errorEventType {
			sse.Send(ctx, out, domain.DeltaChunk{Err: upstreamError(code, result.Get("message").String())})
			return
		}

		text := generatedText(result)
		if text != "" && !sse.Send(ctx, out, domain.DeltaChunk{Text: text}) {
			return
		}

		if finished(result) {
			sse.Send(ctx, out, domain.DeltaChunk{Final: true})
			return
		}
	}
}

// generatedText reads the incremental text of one event. Message-format
// results carry output.choices[0].message.content as a string (text models)
// or a block array (multimodal models); legacy results carry output.text.
func generatedText(result gjson.Result) string {
	content := result.Get("output.choices.0.message.content")
	switch {
	case content.IsArray():
		var sb strings.Builder
		for _, block := range content.Array() {
			sb.WriteString(block.Get("text").String())
		}
		return sb.String()
	case content.Exists():
		return content.String()
	default:
		return result.Get("output.text").String()
	}
}

func finished(result gjson.Result) bool {
	reason := result.Get("output.choices.0.finish_reason").String()
	if reason == "" {
		reason = result.Get("output.finish_reason").String()
	}
	return reason != "" && reason != finishReasonNull
}

func upstreamError(code, message string) error {
	if authErrorCodes[code] {
		return fmt.Errorf("%w: %s: %s", domain.ErrProviderAuth, code, message)
	}
	return fmt.Errorf("%w: DashScope stream error %s: %s", domain.ErrProviderUnavailable, code, message)
}

func content(turn domain.Turn, multimodal bool) any {
	if !multimodal {
		return turn.Content
	}

	blocks := make([]ContentBlock, 0, 2)
	if turn.Image != nil {
		blocks = append(blocks, ContentBlock{Image: turn.Image.DataURI()})
	}
	if turn.Content != "" || turn.Image == nil {
		blocks = append(blocks, ContentBlock{Text: turn.Content})
	}
	return blocks
}
