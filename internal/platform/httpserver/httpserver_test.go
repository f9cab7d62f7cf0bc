package httpserver

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockdata/internal/platform/config"
)

func TestNew(t *testing.T) {
	srv := New(config.Server{Addr: ":9999", ReadTimeout: 7 * time.Second, WriteTimeout: 11 * time.Second}, http.NotFoundHandler())

	assert.Equal(t, ":9999", srv.Addr)
	assert.Equal(t, 7*time.Second, srv.ReadTimeout)
	assert.Equal(t, 11*time.Second, srv.WriteTimeout)
	assert.NotZero(t, srv.ReadHeaderTimeout)
}

func TestServe_StopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := New(config.Server{}, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, srv, ln, time.Second, slog.New(slog.DiscardHandler))
	}()

	resp, err := http.Get("http://" + ln.Addr().String())
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
