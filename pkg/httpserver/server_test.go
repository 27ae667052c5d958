package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/httpserver"
)

func startServer(t *testing.T, srv *httpserver.Server, handler http.Handler) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, handler) }()

	select {
	case <-srv.Ready():
	case err := <-done:
		cancel()
		require.FailNow(t, "server did not start", "%v", err)
	case <-time.After(2 * time.Second):
		cancel()
		require.FailNow(t, "server did not start in time")
	}
	return cancel, done
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		require.FailNow(t, "run did not finish")
		return nil
	}
}

func TestRunAndCancel(t *testing.T) {
	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		httpserver.WithoutSignalHandling(),
	)
	cancel, done := startServer(t, srv, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	resp, err := http.Get("http://" + srv.Addr())
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	cancel()
	require.NoError(t, waitDone(t, done))
	require.NoError(t, srv.Shutdown(context.Background()))
}

func TestManualShutdown(t *testing.T) {
	srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"), httpserver.WithoutSignalHandling())
	cancel, done := startServer(t, srv, nil)
	defer cancel()

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, waitDone(t, done))
	require.NoError(t, srv.Shutdown(context.Background()), "repeated shutdown")
}

func TestRunTwice(t *testing.T) {
	srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"), httpserver.WithoutSignalHandling())
	cancel, done := startServer(t, srv, nil)

	err := srv.Run(context.Background(), nil)
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

	cancel()
	require.NoError(t, waitDone(t, done))
}

func TestListenFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := httpserver.New(httpserver.WithAddr(ln.Addr().String()), httpserver.WithoutSignalHandling())
	err = srv.Run(context.Background(), nil)
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.Empty(t, srv.Addr())
}

func TestShutdownBeforeRun(t *testing.T) {
	assert.NoError(t, httpserver.New().Shutdown(context.Background()))
}

func TestNewFromConfig(t *testing.T) {
	srv := httpserver.NewFromConfig(httpserver.Config{Addr: "127.0.0.1:0"}, httpserver.WithoutSignalHandling())
	cancel, done := startServer(t, srv, nil)
	assert.NotEmpty(t, srv.Addr())
	cancel()
	require.NoError(t, waitDone(t, done))
}

func TestOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { httpserver.WithAddr("") })
	assert.Panics(t, func() { httpserver.WithReadTimeout(0) })
	assert.Panics(t, func() { httpserver.WithWriteTimeout(-time.Second) })
	assert.Panics(t, func() { httpserver.WithIdleTimeout(0) })
	assert.Panics(t, func() { httpserver.WithShutdownTimeout(0) })
}

func TestHealthCheckHandler(t *testing.T) {
	serve := func(h http.Handler) (int, map[string]any) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		return rec.Code, body
	}

	t.Run("no checks", func(t *testing.T) {
		code, body := serve(httpserver.HealthCheckHandler(nil, nil))
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, map[string]any{"status": "ok"}, body)
	})

	t.Run("passing checks", func(t *testing.T) {
		code, body := serve(httpserver.HealthCheckHandler(nil, map[string]httpserver.Check{
			"forms": func(context.Context) error { return nil },
		}))
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, map[string]any{"forms": "ok"}, body["checks"])
	})

	t.Run("failing check", func(t *testing.T) {
		code, body := serve(httpserver.HealthCheckHandler(nil, map[string]httpserver.Check{
			"forms":        func(context.Context) error { return nil },
			"translations": func(context.Context) error { return errors.New("no languages loaded") },
		}))
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "unavailable", body["status"])
		assert.Equal(t, map[string]any{"forms": "ok", "translations": "no languages loaded"}, body["checks"])
	})
}
