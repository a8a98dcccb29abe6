package relay

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/davidbz/multimind/internal/domain"
)

// State is the lifecycle position of a stream session.
type State int32

const (
	StateIdle State = iota
	StateStreaming
	StateCompleted
	StateAborted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStreaming:
		return "streaming"
	case StateCompleted:
		return "completed"
	case StateAborted:
		return "aborted"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further frames may be written in this state.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateAborted || s == StateFailed
}

// Session owns one adapter stream, its cancellation hook and the text
// accumulated from it. It is used by a single relay goroutine; State may be
// read concurrently.
type Session struct {
	chunks     <-chan domain.DeltaChunk
	cancel     context.CancelFunc
	cancelOnce sync.Once
	state      atomic.Int32
	text       strings.Builder
}

// NewSession wraps an adapter stream. cancel must release the upstream
// connection feeding chunks.
func NewSession(chunks <-chan domain.DeltaChunk, cancel context.CancelFunc) *Session {
	if cancel == nil {
		cancel = func() {}
	}
	return &Session{
		chunks: chunks,
		cancel: cancel,
	}
}

// State returns the current state.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Text returns the concatenation of every delta received so far.
func (s *Session) Text() string {
	return s.text.String()
}

func (s *Session) transition(to State) {
	s.state.Store(int32(to))
}

// release invokes the cancellation hook at most once.
func (s *Session) release() {
	s.cancelOnce.Do(s.cancel)
}
