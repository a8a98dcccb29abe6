package httpserver_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/multimind/internal/config"
	"github.com/davidbz/multimind/internal/domain"
	"github.com/davidbz/multimind/internal/httpserver"
	"github.com/davidbz/multimind/internal/mocks"
	"github.com/davidbz/multimind/internal/relay"
)

type fixture struct {
	router  *mocks.MockCompletionRouter
	models  *mocks.MockModelRegistry
	history *mocks.MockChatHistory
	store   *mocks.MockSessionStore
	relay   *relay.Relay
	handler http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		router:  mocks.NewMockCompletionRouter(t),
		models:  mocks.NewMockModelRegistry(t),
		history: mocks.NewMockChatHistory(t),
		store:   mocks.NewMockSessionStore(t),
	}
	f.relay = relay.NewRelay(f.store, nil, &relay.Config{PersistTimeout: time.Second})

	cfg := &config.ServerConfig{Port: 0, MaxBodyBytes: 1 << 20}
	handler := httpserver.NewHandler(f.router, f.models, f.history, f.relay, cfg)
	f.handler = httpserver.NewServer(cfg, handler, nil).Routes()

	return f
}

func (f *fixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

func stream(chunks ...domain.DeltaChunk) <-chan domain.DeltaChunk {
	ch := make(chan domain.DeltaChunk, len(chunks))
	for _, c := range chunks {
		ch <- c
	}
	close(ch)
	return ch
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandleChat_Streams(t *testing.T) {
	f := newFixture(t)

	f.router.EXPECT().
		Route(mock.Anything, mock.MatchedBy(func(req *domain.ChatRequest) bool {
			return req.ModelID == "gemini-pro" && req.Content == "Hello" && len(req.Conversation) == 0 && req.Image == nil
		})).
		Return(stream(
			domain.DeltaChunk{Text: "Hi"},
			domain.DeltaChunk{Text: " there"},
			domain.DeltaChunk{Text: "!"},
			domain.DeltaChunk{Final: true},
		), nil)

	f.store.EXPECT().
		Upsert(mock.Anything, "chat_1", "gemini-pro", mock.MatchedBy(func(conv []domain.Turn) bool {
			return len(conv) == 2 &&
				conv[0].Role == domain.RoleUser && conv[0].Content == "Hello" &&
				conv[1].Role == domain.RoleAssistant && conv[1].Content == "Hi there!"
		})).
		Return(nil)

	w := f.do(http.MethodPost, "/chat", map[string]any{
		"message":         "Hello",
		"selectedModelId": "gemini-pro",
		"chatHistory":     []any{},
		"sessionId":       "chat_1",
	})
	f.relay.Wait()

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	require.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
	require.Equal(t,
		"data: {\"text\":\"Hi\"}\n\n"+
			"data: {\"text\":\" there\"}\n\n"+
			"data: {\"text\":\"!\"}\n\n"+
			"data: [DONE]\n\n",
		w.Body.String())
}

func TestHandleChat_PassesHistoryAndImage(t *testing.T) {
	f := newFixture(t)

	f.router.EXPECT().
		Route(mock.Anything, mock.MatchedBy(func(req *domain.ChatRequest) bool {
			return len(req.Conversation) == 2 &&
				req.Conversation[0].Role == domain.RoleSystem &&
				req.Image != nil &&
				req.Image.MIMEType == "image/png" &&
				req.Image.Data == "aGVsbG8="
		})).
		Return(stream(domain.DeltaChunk{Final: true}), nil)

	w := f.do(http.MethodPost, "/chat", map[string]any{
		"message":         "What is this?",
		"selectedModelId": "gemini-pro",
		"imageBase64":     "data:image/png;base64,aGVsbG8=",
		"chatHistory": []map[string]string{
			{"role": "system", "content": "You are MultiMind AI."},
			{"role": "user", "content": "Hi", "timestamp": "2024-05-01T10:00:00.000Z"},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "data: [DONE]\n\n", w.Body.String())
}

func TestHandleChat_MidStreamFailure(t *testing.T) {
	f := newFixture(t)

	f.router.EXPECT().Route(mock.Anything, mock.Anything).Return(stream(
		domain.DeltaChunk{Text: "a"},
		domain.DeltaChunk{Text: "b"},
		domain.DeltaChunk{Err: fmt.Errorf("%w: reset", domain.ErrProviderUnavailable)},
	), nil)

	w := f.do(http.MethodPost, "/chat", map[string]any{
		"message":         "Hello",
		"selectedModelId": "gemini-pro",
		"sessionId":       "chat_1",
	})
	f.relay.Wait()

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Equal(t, 1, strings.Count(body, `"error"`))
	require.NotContains(t, body, "[DONE]")
	f.store.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleChat_SynchronousErrors(t *testing.T) {
	tests := []struct {
		name       string
		routeErr   error
		wantStatus int
		wantError  string
	}{
		{
			name:       "model not found",
			routeErr:   fmt.Errorf("%w: nope", domain.ErrModelNotFound),
			wantStatus: http.StatusBadRequest,
			wantError:  "model not found: nope",
		},
		{
			name:       "image not supported",
			routeErr:   &domain.ImageNotSupportedError{Model: "DeepSeek Chat"},
			wantStatus: http.StatusBadRequest,
			wantError:  "model DeepSeek Chat does not support images",
		},
		{
			name:       "unknown provider",
			routeErr:   fmt.Errorf("model X: %w", domain.ErrUnknownProvider),
			wantStatus: http.StatusInternalServerError,
			wantError:  "model X: unknown provider",
		},
		{
			name:       "provider auth",
			routeErr:   fmt.Errorf("model Gemini: %w", domain.ErrProviderAuth),
			wantStatus: http.StatusBadGateway,
			wantError:  "AI service error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.router.EXPECT().Route(mock.Anything, mock.Anything).Return(nil, tt.routeErr)

			w := f.do(http.MethodPost, "/chat", map[string]any{
				"message":         "Hello",
				"selectedModelId": "whatever",
			})

			require.Equal(t, tt.wantStatus, w.Code)
			require.Equal(t, "application/json", w.Header().Get("Content-Type"))
			require.Equal(t, tt.wantError, decodeBody(t, w)["error"])
		})
	}
}

func TestHandleChat_Validation(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{"missing message", map[string]any{"selectedModelId": "gemini-pro"}, http.StatusBadRequest},
		{"missing model", map[string]any{"message": "Hello"}, http.StatusBadRequest},
		{"malformed json", `{"message":`, http.StatusBadRequest},
		{
			"invalid role",
			map[string]any{
				"message":         "Hello",
				"selectedModelId": "gemini-pro",
				"chatHistory":     []map[string]string{{"role": "tool", "content": "x"}},
			},
			http.StatusBadRequest,
		},
		{
			"invalid image",
			map[string]any{"message": "Hello", "selectedModelId": "gemini-pro", "imageBase64": "not base64!"},
			http.StatusBadRequest,
		},
		{
			"body too large",
			map[string]any{"message": strings.Repeat("x", 2<<20), "selectedModelId": "gemini-pro"},
			http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			w := f.do(http.MethodPost, "/chat", tt.body)

			require.Equal(t, tt.wantStatus, w.Code)
			require.NotEmpty(t, decodeBody(t, w)["error"])
			f.router.AssertNotCalled(t, "Route", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleModels(t *testing.T) {
	f := newFixture(t)
	f.models.EXPECT().List(mock.Anything).Return([]domain.ModelDescriptor{
		{ID: "gemini-pro", Name: "Gemini 2.5 Pro", Provider: domain.ProviderGoogle, SupportsImage: true, Description: "Google"},
		{ID: "deepseek-chat", Name: "DeepSeek Chat", Provider: domain.ProviderOpenRouter},
	})

	w := f.do(http.MethodGet, "/chat/models", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"models":[
		{"id":"gemini-pro","name":"Gemini 2.5 Pro","supportsImage":true,"description":"Google"},
		{"id":"deepseek-chat","name":"DeepSeek Chat","supportsImage":false,"description":""}
	]}`, w.Body.String())
}

func TestHistoryEndpoints(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should list chats", func(t *testing.T) {
		f := newFixture(t)
		f.history.EXPECT().List(mock.Anything).Return([]domain.ChatSummary{
			{SessionID: "chat_2", Title: "Second", ModelID: "qwen-max", CreatedAt: created, UpdatedAt: created},
		}, nil)

		w := f.do(http.MethodGet, "/history", nil)

		require.Equal(t, http.StatusOK, w.Code)
		chats := decodeBody(t, w)["chats"].([]any)
		require.Len(t, chats, 1)
		require.Equal(t, "chat_2", chats[0].(map[string]any)["sessionId"])
	})

	t.Run("should return a chat", func(t *testing.T) {
		f := newFixture(t)
		f.history.EXPECT().Get(mock.Anything, "chat_1").Return(&domain.Chat{
			SessionID: "chat_1",
			Title:     "Hello",
			Messages:  []domain.Turn{{Role: domain.RoleUser, Content: "Hello"}},
		}, nil)

		w := f.do(http.MethodGet, "/history/chat_1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		chat := decodeBody(t, w)["chat"].(map[string]any)
		require.Equal(t, "Hello", chat["title"])
		require.Len(t, chat["messages"], 1)
	})

	t.Run("should return 404 for a missing chat", func(t *testing.T) {
		f := newFixture(t)
		f.history.EXPECT().Get(mock.Anything, "nope").Return(nil, fmt.Errorf("%w: nope", domain.ErrChatNotFound))

		w := f.do(http.MethodGet, "/history/nope", nil)

		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "Chat session not found", decodeBody(t, w)["error"])
	})

	t.Run("should create a chat without a body", func(t *testing.T) {
		f := newFixture(t)
		f.history.EXPECT().Create(mock.Anything, "", "").Return(&domain.Chat{
			SessionID: "chat_1714557600000_abcdef12",
			Title:     "New Chat",
			ModelID:   "gemini-pro",
			CreatedAt: created,
			UpdatedAt: created,
		}, nil)

		w := f.do(http.MethodPost, "/history", nil)

		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		require.Equal(t, "chat_1714557600000_abcdef12", body["sessionId"])
		require.Equal(t, "New Chat", body["title"])
	})

	t.Run("should create a chat with title and model", func(t *testing.T) {
		f := newFixture(t)
		f.history.EXPECT().Create(mock.Anything, "Trip", "qwen-max").
			Return(&domain.Chat{SessionID: "chat_1", Title: "Trip", ModelID: "qwen-max"}, nil)

		w := f.do(http.MethodPost, "/history", map[string]string{"title": "Trip", "modelId": "qwen-max"})

		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("should delete a chat", func(t *testing.T) {
		f := newFixture(t)
		f.history.EXPECT().Delete(mock.Anything, "chat_1").Return(nil)

		w := f.do(http.MethodDelete, "/history/chat_1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "Chat session deleted successfully", decodeBody(t, w)["message"])
	})

	t.Run("should return 404 when deleting a missing chat", func(t *testing.T) {
		f := newFixture(t)
		f.history.EXPECT().Delete(mock.Anything, "nope").Return(domain.ErrChatNotFound)

		w := f.do(http.MethodDelete, "/history/nope", nil)

		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("should return 500 when the store fails", func(t *testing.T) {
		f := newFixture(t)
		f.history.EXPECT().List(mock.Anything).Return(nil, fmt.Errorf("redis down"))

		w := f.do(http.MethodGet, "/history", nil)

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"healthy"}`, w.Body.String())

	root := f.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, root.Code)
	require.Equal(t, "ok", decodeBody(t, root)["status"])
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/chat", nil)

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
