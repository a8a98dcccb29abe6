package httpserver

import (
	"errors"
	"net/http"
)

// responseTransport adapts an http.ResponseWriter to relay.Transport.
type responseTransport struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

func newResponseTransport(w http.ResponseWriter) *responseTransport {
	return &responseTransport{
		w:  w,
		rc: http.NewResponseController(w),
	}
}

func (t *responseTransport) Write(p []byte) (int, error) {
	return t.w.Write(p)
}

// Flush is a no-op on writers that cannot flush.
func (t *responseTransport) Flush() error {
	if err := t.rc.Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return err
	}
	return nil
}
