package sse

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize is the maximum size of a single SSE line (1 MB).
const maxLineSize = 1 * 1024 * 1024

// doneSentinel terminates OpenAI-style streams.
const doneSentinel = "[DONE]"

// Event is one server-sent event.
type Event struct {
	// Type is the value of the last "event:" field, empty when absent.
	Type string
	Data string
}

// Scanner reads server-sent events from an io.Reader.
type Scanner struct {
	scanner *bufio.Scanner
	done    bool
}

// NewScanner creates a Scanner over r.
func NewScanner(r io.Reader) *Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Scanner{scanner: scanner}
}

// Next returns the next event carrying data. Comment lines and id/retry
// fields are skipped; consecutive data lines are joined with newlines.
// It returns io.EOF at end of input or on the [DONE] sentinel.
func (s *Scanner) Next() (Event, error) {
	var (
		eventType string
		dataLines []string
	)

	for s.scanner.Scan() {
		line := strings.TrimRight(s.scanner.Text(), "\r")

		if line == "" {
			if len(dataLines) > 0 {
				return Event{Type: eventType, Data: strings.Join(dataLines, "\n")}, nil
			}
			eventType = ""
			continue
		}

		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")

		switch field {
		case "event":
			eventType = value
		case "data":
			if strings.TrimSpace(value) == doneSentinel {
				s.done = true
				return Event{}, io.EOF
			}
			dataLines = append(dataLines, value)
		}
	}

	if err := s.scanner.Err(); err != nil {
		return Event{}, fmt.Errorf("sse scanner error: %w", err)
	}

	if len(dataLines) > 0 {
		return Event{Type: eventType, Data: strings.Join(dataLines, "\n")}, nil
	}

	return Event{}, io.EOF
}

// Done reports whether the stream ended on the [DONE] sentinel rather than
// at end of input.
func (s *Scanner) Done() bool {
	return s.done
}
