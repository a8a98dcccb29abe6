// Package openrouter provides an adapter for OpenAI-compatible upstreams
// (OpenRouter) using the official OpenAI SDK.
//
// Fixed request policy: roles pass through unchanged, system turns stay in
// place, the full history is always sent and an image becomes an image_url
// content part carrying a data-URI after the text part of the new turn.
// Zero-length deltas are dropped; whitespace-only deltas are forwarded.
//
// The SDK builds and sends the request; the event stream itself is read with
// the shared SSE scanner so a frame that fails to decode is logged and
// skipped. Frames without choices are skipped too. A stream that ends
// without a finish_reason or the [DONE] sentinel closes with no final chunk.
package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/tidwall/gjson"

	"github.com/davidbz/multimind/internal/domain"
	"github.com/davidbz/multimind/internal/observability"
	"github.com/davidbz/multimind/internal/provider/sse"
)

// Request wraps the SDK parameters as a domain.Payload.
type Request struct {
	Params openai.ChatCompletionNewParams
}

// UpstreamModel implements domain.Payload.
func (r *Request) UpstreamModel() string {
	return string(r.Params.Model)
}

// Adapter implements domain.Adapter for OpenRouter.
type Adapter struct {
	client openai.Client
	config Config
}

// NewAdapter creates a new OpenRouter adapter. A missing API key is logged;
// every stream then fails with ErrProviderAuth until it is configured.
func NewAdapter(config Config) *Adapter {
	if config.APIKey == "" {
		observability.FromContext(context.Background()).Warn("OPENROUTER_API_KEY is not set, OpenRouter models will fail")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithHTTPClient(sse.NewHTTPClient(time.Duration(config.Timeout) * time.Second)),
		// Retry policy belongs to the caller.
		option.WithMaxRetries(0),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Referer != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", config.Referer))
	}

	if config.Title != "" {
		opts = append(opts, option.WithHeader("X-Title", config.Title))
	}

	return &Adapter{
		client: openai.NewClient(opts...),
		config: config,
	}
}

// Provider returns the provider tag.
func (a *Adapter) Provider() domain.ProviderTag {
	return domain.ProviderOpenRouter
}

// Translate converts a chat request to SDK ChatCompletionNewParams.
func (a *Adapter) Translate(model domain.ModelDescriptor, req *domain.ChatRequest) (domain.Payload, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	turns := req.Turns(time.Time{})
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns))
	for _, turn := range turns {
		switch turn.Role {
		case domain.RoleSystem:
			messages = append(messages, openai.SystemMessage(turn.Content))
		case domain.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(turn.Content))
		default:
			messages = append(messages, userMessage(turn))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model.UpstreamModelID),
		Messages: messages,
	}

	if a.config.Temperature > 0 {
		params.Temperature = openai.Float(a.config.Temperature)
	}

	if a.config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(a.config.MaxTokens))
	}

	return &Request{Params: params}, nil
}

// StreamDeltas posts the request through the SDK and forwards the text
// deltas of the event stream it returns.
func (a *Adapter) StreamDeltas(ctx context.Context, payload domain.Payload) (<-chan domain.DeltaChunk, error) {
	req, ok := payload.(*Request)
	if !ok {
		return nil, fmt.Errorf("openrouter adapter: unexpected payload %T", payload)
	}

	if a.config.APIKey == "" {
		return nil, fmt.Errorf("%w: OPENROUTER_API_KEY is not set", domain.ErrProviderAuth)
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenRouter streaming API", observability.String("upstream_model", req.UpstreamModel()))

	var resp *http.Response
	//nolint:bodyclose // Response body is closed in the pump goroutine
	err := a.client.Post(ctx, "chat/completions", req.Params, &resp,
		option.WithJSONSet("stream", true),
		option.WithHeader("Accept", "text/event-stream"),
	)
	if err != nil {
		logger.Error("OpenRouter API call failed", observability.Error(err))
		return nil, classify(err)
	}

	chunks := make(chan domain.DeltaChunk, 1)
	go a.pump(ctx, resp.Body, chunks)

	return chunks, nil
}

func (a *Adapter) pump(ctx context.Context, body io.ReadCloser, out chan<- domain.DeltaChunk) {
	defer close(out)
	defer body.Close()

	logger := observability.FromContext(ctx)
	defer logger.Debug("OpenRouter stream closed")

	scanner := sse.NewScanner(body)
	for {
		event, err := scanner.Next()
		if errors.Is(err, io.EOF) {
			// [DONE] without a finish_reason still ends the answer.
			if scanner.Done() {
				sse.Send(ctx, out, domain.DeltaChunk{Final: true})
			}
			return
		}
		if err != nil {
			if readErr := sse.ReadError(ctx, err); readErr != nil {
				sse.Send(ctx, out, domain.DeltaChunk{Err: readErr})
			}
			return
		}

		if !gjson.Valid(event.Data) {
			logger.Warn("skipping malformed OpenRouter event",
				observability.Error(fmt.Errorf("%w: invalid JSON", domain.ErrMalformedEvent)))
			continue
		}

		if inBand := gjson.Get(event.Data, "error"); inBand.Exists() {
			sse.Send(ctx, out, domain.DeltaChunk{Err: upstreamError(inBand)})
			return
		}

		var chunk openai.ChatCompletionChunk
		if unmarshalErr := json.Unmarshal([]byte(event.Data), &chunk); unmarshalErr != nil {
			logger.Warn("skipping malformed OpenRouter event",
				observability.Error(fmt.Errorf("%w: %v", domain.ErrMalformedEvent, unmarshalErr)))
			continue
		}

		if len(chunk.Choices) == 0 {
			continue
		}

		delta := chunk.Choices[0].Delta.Content
		if delta != "" && !sse.Send(ctx, out, domain.DeltaChunk{Text: delta}) {
			return
		}

		if chunk.Choices[0].FinishReason != "" {
			sse.Send(ctx, out, domain.DeltaChunk{Final: true})
			return
		}
	}
}

func userMessage(turn domain.Turn) openai.ChatCompletionMessageParamUnion {
	if turn.Image == nil {
		return openai.UserMessage(turn.Content)
	}

	return openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(turn.Content),
		openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
			URL: turn.Image.DataURI(),
		}),
	})
}

// upstreamError maps an in-band {"error":{...}} frame onto the domain taxonomy.
func upstreamError(inBand gjson.Result) error {
	code := inBand.Get("code").Int()
	message := inBand.Get("message").String()
	if code == http.StatusUnauthorized || code == http.StatusForbidden {
		return fmt.Errorf("%w: %s", domain.ErrProviderAuth, message)
	}
	return fmt.Errorf("%w: OpenRouter stream error %s: %s",
		domain.ErrProviderUnavailable, inBand.Get("code").String(), message)
}

// classify maps SDK errors onto the domain taxonomy.
func classify(err error) error {
	if errors.Is(err, domain.ErrProviderAuth) || errors.Is(err, domain.ErrProviderUnavailable) {
		return err
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden {
			return fmt.Errorf("%w: %v", domain.ErrProviderAuth, err)
		}
	}

	return fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
}
