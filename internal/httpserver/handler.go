package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/davidbz/multimind/internal/config"
	"github.com/davidbz/multimind/internal/domain"
	"github.com/davidbz/multimind/internal/observability"
	"github.com/davidbz/multimind/internal/relay"
)

const apiVersion = "1.0.0"

// Handler handles HTTP requests.
type Handler struct {
	router       domain.CompletionRouter
	models       domain.ModelRegistry
	history      domain.ChatHistory
	relay        *relay.Relay
	maxBodyBytes int64
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(
	router domain.CompletionRouter,
	models domain.ModelRegistry,
	history domain.ChatHistory,
	streamRelay *relay.Relay,
	cfg *config.ServerConfig,
) *Handler {
	return &Handler{
		router:       router,
		models:       models,
		history:      history,
		relay:        streamRelay,
		maxBodyBytes: cfg.MaxBodyBytes,
	}
}

// chatPayload is the POST /chat body.
type chatPayload struct {
	Message         string        `json:"message"`
	SelectedModelID string        `json:"selectedModelId"`
	ImageBase64     string        `json:"imageBase64"`
	ChatHistory     []domain.Turn `json:"chatHistory"`
	SessionID       string        `json:"sessionId"`
}

type createChatPayload struct {
	Title   string `json:"title"`
	ModelID string `json:"modelId"`
}

type modelView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	SupportsImage bool   `json:"supportsImage"`
	Description   string `json:"description"`
}

// HandleChat streams an assistant reply as server-sent events. Every
// validation or upstream-open failure is answered with a JSON error before
// the stream starts; later failures arrive as an error frame.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload chatPayload
	if !h.decode(w, r, &payload, false) {
		return
	}

	if payload.Message == "" || payload.SelectedModelID == "" {
		writeError(w, http.StatusBadRequest, "Message and model ID are required")
		return
	}

	for _, turn := range payload.ChatHistory {
		if !turn.Role.Valid() {
			writeError(w, http.StatusBadRequest, "invalid role in chat history: "+string(turn.Role))
			return
		}
	}

	image, err := domain.ParseImage(payload.ImageBase64)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx = observability.WithModel(ctx, payload.SelectedModelID)
	if payload.SessionID != "" {
		ctx = observability.WithSessionID(ctx, payload.SessionID)
	}
	logger := observability.FromContext(ctx)
	logger.Info("chat request received",
		observability.Int("history_turns", len(payload.ChatHistory)),
		observability.Bool("has_image", image != nil))

	req := &domain.ChatRequest{
		ModelID:      payload.SelectedModelID,
		Conversation: payload.ChatHistory,
		Content:      payload.Message,
		Image:        image,
	}

	upstreamCtx, cancel := context.WithCancel(ctx)
	chunks, err := h.router.Route(upstreamCtx, req)
	if err != nil {
		cancel()
		h.writeRouteError(ctx, w, err)
		return
	}

	// Set headers for SSE.
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	transport := newResponseTransport(w)
	if err := transport.Flush(); err != nil {
		logger.Debug("failed to flush stream headers", observability.Error(err))
	}

	h.relay.Stream(ctx, transport, relay.NewSession(chunks, cancel), relay.Transcript{
		SessionID:    payload.SessionID,
		ModelID:      payload.SelectedModelID,
		Conversation: req.Turns(time.Now().UTC()),
	})
}

func (h *Handler) writeRouteError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := observability.FromContext(ctx)

	switch {
	case domain.IsValidationError(err):
		logger.Info("chat request rejected", observability.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnknownProvider):
		logger.Error("no adapter for model", observability.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		logger.Error("AI service error", observability.Error(err))
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error":   "AI service error",
			"message": err.Error(),
		})
	}
}

// HandleModels lists the model catalog in registration order.
func (h *Handler) HandleModels(w http.ResponseWriter, r *http.Request) {
	descriptors := h.models.List(r.Context())

	views := make([]modelView, 0, len(descriptors))
	for _, d := range descriptors {
		views = append(views, modelView{
			ID:            d.ID,
			Name:          d.Name,
			SupportsImage: d.SupportsImage,
			Description:   d.Description,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"models": views})
}

// HandleListChats returns chat summaries, most recent first.
func (h *Handler) HandleListChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.history.List(r.Context())
	if err != nil {
		observability.FromContext(r.Context()).Error("failed to list chats", observability.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch chat history")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"chats": chats})
}

// HandleGetChat returns one chat with its messages.
func (h *Handler) HandleGetChat(w http.ResponseWriter, r *http.Request) {
	chat, err := h.history.Get(r.Context(), r.PathValue("sessionId"))
	if errors.Is(err, domain.ErrChatNotFound) {
		writeError(w, http.StatusNotFound, "Chat session not found")
		return
	}
	if err != nil {
		observability.FromContext(r.Context()).Error("failed to fetch chat", observability.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch chat session")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"chat": chat})
}

// HandleCreateChat creates an empty chat.
func (h *Handler) HandleCreateChat(w http.ResponseWriter, r *http.Request) {
	var payload createChatPayload
	if !h.decode(w, r, &payload, true) {
		return
	}

	chat, err := h.history.Create(r.Context(), payload.Title, payload.ModelID)
	if err != nil {
		observability.FromContext(r.Context()).Error("failed to create chat", observability.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create chat session")
		return
	}

	writeJSON(w, http.StatusCreated, domain.ChatSummary{
		SessionID: chat.SessionID,
		Title:     chat.Title,
		ModelID:   chat.ModelID,
		CreatedAt: chat.CreatedAt,
		UpdatedAt: chat.UpdatedAt,
	})
}

// HandleDeleteChat deletes a chat.
func (h *Handler) HandleDeleteChat(w http.ResponseWriter, r *http.Request) {
	err := h.history.Delete(r.Context(), r.PathValue("sessionId"))
	if errors.Is(err, domain.ErrChatNotFound) {
		writeError(w, http.StatusNotFound, "Chat session not found")
		return
	}
	if err != nil {
		observability.FromContext(r.Context()).Error("failed to delete chat", observability.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete chat session")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Chat session deleted successfully"})
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// HandleRoot reports that the API is running.
func (h *Handler) HandleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"message":   "MultiMind AI Chat API is running",
		"version":   apiVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// decode reads a JSON body into v. An empty body is accepted only when allowEmpty is set.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) bool {
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return true
		}

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}

	return true
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Already written status, can't change it, just log.
		observability.FromContext(context.Background()).Debug("failed to encode response", observability.Error(err))
	}
}
