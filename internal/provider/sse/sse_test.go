package sse_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/multimind/internal/domain"
	"github.com/davidbz/multimind/internal/provider/sse"
)

func TestScanner_Next(t *testing.T) {
	input := strings.Join([]string{
		": keep-alive",
		"id:1",
		"event:result",
		":HTTP_STATUS/200",
		`data:{"a":1}`,
		"",
		"",
		`data: {"b":2}`,
		`data: {"c":3}`,
		"",
		"event:error",
		`data:{"code":"x"}`,
		"",
		"data: [DONE]",
		"",
		`data: {"never":true}`,
		"",
	}, "\n")

	s := sse.NewScanner(strings.NewReader(input))

	ev, err := s.Next()
	require.NoError(t, err)
	require.Equal(t, sse.Event{Type: "result", Data: `{"a":1}`}, ev)

	ev, err = s.Next()
	require.NoError(t, err)
	require.Equal(t, sse.Event{Data: "{\"b\":2}\n{\"c\":3}"}, ev)

	ev, err = s.Next()
	require.NoError(t, err)
	require.Equal(t, "error", ev.Type)
	require.False(t, s.Done())

	_, err = s.Next()
	require.ErrorIs(t, err, io.EOF)
	require.True(t, s.Done())
}

func TestScanner_TrailingEventWithoutBlankLine(t *testing.T) {
	s := sse.NewScanner(strings.NewReader("data: tail\r\n"))

	ev, err := s.Next()
	require.NoError(t, err)
	require.Equal(t, "tail", ev.Data)

	_, err = s.Next()
	require.ErrorIs(t, err, io.EOF)
	require.False(t, s.Done(), "end of input is not the [DONE] sentinel")
}

func TestClient_Post(t *testing.T) {
	t.Run("should send JSON with headers and keep body open", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))
			assert.Equal(t, "secret", r.Header.Get("X-Key"))
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"hello":"world"}`, string(body))
			_, _ = w.Write([]byte("data: ok\n\n"))
		}))
		defer server.Close()

		client := sse.NewClient(time.Second)
		resp, err := client.Post(context.Background(), server.URL, map[string]string{"X-Key": "secret"},
			map[string]string{"hello": "world"})
		require.NoError(t, err)
		defer resp.Body.Close()

		ev, err := sse.NewScanner(resp.Body).Next()
		require.NoError(t, err)
		require.Equal(t, "ok", ev.Data)
	})

	statusTests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "unauthorized maps to auth error", status: http.StatusUnauthorized, want: domain.ErrProviderAuth},
		{name: "forbidden maps to auth error", status: http.StatusForbidden, want: domain.ErrProviderAuth},
		{name: "server error maps to unavailable", status: http.StatusBadGateway, want: domain.ErrProviderUnavailable},
		{name: "rate limit maps to unavailable", status: http.StatusTooManyRequests, want: domain.ErrProviderUnavailable},
	}

	for _, tt := range statusTests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer server.Close()

			_, err := sse.NewClient(0).Post(context.Background(), server.URL, nil, struct{}{})
			require.ErrorIs(t, err, tt.want)
			require.Contains(t, err.Error(), "nope")
		})
	}

	t.Run("should map dial failure to unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		_, err := sse.NewClient(0).Post(context.Background(), url, nil, struct{}{})
		require.ErrorIs(t, err, domain.ErrProviderUnavailable)
	})
}

func TestSend_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := make(chan domain.DeltaChunk)
	require.False(t, sse.Send(ctx, out, domain.DeltaChunk{Text: "x"}))
}
