// Package relay forwards adapter deltas to a client as server-sent events.
//
// A session moves IDLE -> STREAMING on its first chunk and ends in exactly
// one of COMPLETED (final chunk, "[DONE]" written), ABORTED (client gone or
// a client write failed) or FAILED (error chunk or upstream closed early,
// one error frame written). Only COMPLETED sessions are persisted; partial
// text of a FAILED session is discarded.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/davidbz/multimind/internal/domain"
	"github.com/davidbz/multimind/internal/observability"
)

const doneMarker = "[DONE]"

// DefaultPersistTimeout bounds one asynchronous session store write.
const DefaultPersistTimeout = 5 * time.Second

var errUpstreamEnded = errors.New("upstream stream ended unexpectedly")

// Transport is the client side of a stream.
type Transport interface {
	io.Writer

	// Flush pushes buffered frames to the client.
	Flush() error
}

// Transcript identifies the conversation a stream answers. Conversation
// already holds the new user turn; the assistant reply is appended on
// completion. An empty SessionID disables persistence.
type Transcript struct {
	SessionID    string
	ModelID      string
	Conversation []domain.Turn
}

// Config contains relay configuration.
type Config struct {
	PersistTimeout time.Duration `env:"SESSION_PERSIST_TIMEOUT" envDefault:"5s"`
}

// Relay drives stream sessions and hands completed conversations to the store.
type Relay struct {
	store          domain.SessionStore
	events         domain.EventPublisher
	persistTimeout time.Duration
	pending        sync.WaitGroup
	mu             sync.Mutex
	closed         bool
}

// NewRelay creates a relay. events may be nil.
func NewRelay(store domain.SessionStore, events domain.EventPublisher, config *Config) *Relay {
	timeout := DefaultPersistTimeout
	if config != nil && config.PersistTimeout > 0 {
		timeout = config.PersistTimeout
	}

	return &Relay{
		store:          store,
		events:         events,
		persistTimeout: timeout,
	}
}

type textFrame struct {
	Text string `json:"text"`
}

type errorFrame struct {
	Error string `json:"error"`
}

// Stream forwards sess to w until a terminal state is reached and returns it.
// ctx is the client context; its cancellation aborts the session. Calling
// Stream on a finished session writes nothing.
func (r *Relay) Stream(ctx context.Context, w Transport, sess *Session, transcript Transcript) State {
	if state := sess.State(); state.Terminal() {
		return state
	}

	if transcript.SessionID != "" {
		ctx = observability.WithSessionID(ctx, transcript.SessionID)
	}
	logger := observability.FromContext(ctx)
	started := time.Now()

	var (
		state  State
		reason error
	)

loop:
	for {
		select {
		case <-ctx.Done():
			state, reason = StateAborted, domain.ErrClientDisconnected
			break loop

		case chunk, ok := <-sess.chunks:
			if !ok {
				if ctx.Err() != nil {
					state, reason = StateAborted, domain.ErrClientDisconnected
				} else {
					state, reason = StateFailed, errUpstreamEnded
				}
				break loop
			}

			if sess.State() == StateIdle {
				sess.transition(StateStreaming)
			}

			if chunk.Err != nil {
				state, reason = StateFailed, chunk.Err
				break loop
			}

			if chunk.Text != "" {
				sess.text.WriteString(chunk.Text)
				if err := writeFrame(w, textFrame{Text: chunk.Text}); err != nil {
					state, reason = StateAborted, fmt.Errorf("%w: %v", domain.ErrClientDisconnected, err)
					break loop
				}
			}

			if chunk.Final {
				if err := writeRaw(w, doneMarker); err != nil {
					state, reason = StateAborted, fmt.Errorf("%w: %v", domain.ErrClientDisconnected, err)
				} else {
					state = StateCompleted
				}
				break loop
			}
		}
	}

	if state == StateFailed {
		if err := writeFrame(w, errorFrame{Error: reason.Error()}); err != nil {
			logger.Debug("failed to write error frame", observability.Error(err))
		}
	}

	sess.transition(state)
	sess.release()

	fields := []observability.Field{
		observability.String("state", state.String()),
		observability.Int("response_length", sess.text.Len()),
		observability.Duration("duration", time.Since(started)),
	}
	switch state {
	case StateCompleted:
		logger.Info("stream completed", fields...)
		r.persist(ctx, transcript, sess.Text())
	case StateAborted:
		logger.Info("stream aborted", append(fields, observability.Error(reason))...)
	case StateFailed:
		logger.Warn("stream failed", append(fields, observability.Error(reason))...)
	}

	r.publish(ctx, state, transcript, sess.text.Len())

	return state
}

// Wait blocks until every pending persistence write has finished. Streams
// completing after Wait has been called are no longer persisted.
func (r *Relay) Wait() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	r.pending.Wait()
}

func (r *Relay) persist(ctx context.Context, transcript Transcript, text string) {
	if r.store == nil || transcript.SessionID == "" {
		return
	}

	conversation := append(slices.Clone(transcript.Conversation), domain.Turn{
		Role:      domain.RoleAssistant,
		Content:   text,
		Timestamp: time.Now(),
	})

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		observability.FromContext(ctx).Warn("relay is shutting down, conversation not persisted",
			observability.String("session_id", transcript.SessionID))
		return
	}
	r.pending.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.pending.Done()

		persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.persistTimeout)
		defer cancel()

		err := r.store.Upsert(persistCtx, transcript.SessionID, transcript.ModelID, conversation)
		if err != nil {
			observability.FromContext(persistCtx).Error("failed to persist conversation",
				observability.Error(fmt.Errorf("%w: %v", domain.ErrPersistence, err)))
			return
		}

		observability.FromContext(persistCtx).Debug("conversation persisted",
			observability.Int("turns", len(conversation)))
	}()
}

func (r *Relay) publish(ctx context.Context, state State, transcript Transcript, length int) {
	if r.events == nil {
		return
	}

	r.events.Publish(ctx, "stream."+state.String(), map[string]interface{}{
		"model_id":        transcript.ModelID,
		"session_id":      transcript.SessionID,
		"response_length": length,
	})
}

func writeFrame(w Transport, frame any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(frame); err != nil {
		return fmt.Errorf("failed to marshal frame: %w", err)
	}
	return writeRaw(w, strings.TrimSuffix(buf.String(), "\n"))
}

func writeRaw(w Transport, payload string) error {
	if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return err
	}
	return w.Flush()
}
