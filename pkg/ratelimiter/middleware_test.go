package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/clientip"
	"github.com/dmitrymomot/formkit/pkg/ratelimiter"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func request(h http.Handler, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware(t *testing.T) {
	b := newBucket(t, newClock(), ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Minute})
	h := ratelimiter.Middleware(b, ratelimiter.ByClientIP)(okHandler)

	rec := request(h, "/", "192.0.2.1:1000")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))

	rec = request(h, "/", "192.0.2.1:1001")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = request(h, "/", "192.0.2.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	rec = request(h, "/", "192.0.2.2:1000")
	assert.Equal(t, http.StatusNoContent, rec.Code, "other clients keep their own bucket")
}

func TestMiddlewareOptions(t *testing.T) {
	b := newBucket(t, newClock(), ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
	h := ratelimiter.Middleware(b, ratelimiter.ByClientIP,
		ratelimiter.WithLimitedHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})),
	)(okHandler)

	request(h, "/", "192.0.2.1:1")
	assert.Equal(t, http.StatusTeapot, request(h, "/", "192.0.2.1:1").Code)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Take(ctx context.Context, key string, n int, cfg ratelimiter.Config) (int, time.Time, error) {
	args := m.Called(ctx, key, n, cfg)
	return args.Int(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockStore) Reset(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func TestMiddlewareStoreError(t *testing.T) {
	cfg := ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second}
	store := &mockStore{}
	store.On("Take", mock.Anything, "192.0.2.1", 1, cfg).Return(0, time.Time{}, errors.New("store down")).Once()

	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)

	var got error
	h := ratelimiter.Middleware(b, ratelimiter.ByClientIP,
		ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			got = err
			w.WriteHeader(http.StatusServiceUnavailable)
		}),
	)(okHandler)

	assert.Equal(t, http.StatusServiceUnavailable, request(h, "/", "192.0.2.1:1").Code)
	assert.EqualError(t, got, "store down")
	store.AssertExpectations(t)
}

func TestMiddlewareEmptyKeySkips(t *testing.T) {
	b := newBucket(t, newClock(), ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
	h := ratelimiter.Middleware(b, func(*http.Request) string { return "" })(okHandler)

	for range 3 {
		rec := request(h, "/", "192.0.2.1:1")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestKeyFuncs(t *testing.T) {
	t.Run("client ip from context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(clientip.WithContext(req.Context(), "203.0.113.1"))
		assert.Equal(t, "203.0.113.1", ratelimiter.ByClientIP(req))
	})

	t.Run("url param and composite", func(t *testing.T) {
		var key string
		r := chi.NewRouter()
		r.Post("/forms/{name}", func(w http.ResponseWriter, r *http.Request) {
			key = ratelimiter.Composite(ratelimiter.ByClientIP, ratelimiter.ByURLParam("name"))(r)
		})
		request(r, "/forms/signup", "192.0.2.9:1")
		assert.Equal(t, "192.0.2.9:signup", key)
	})

	t.Run("long keys are hashed", func(t *testing.T) {
		long := strings.Repeat("x", 100)
		fn := ratelimiter.Composite(func(*http.Request) string { return long })
		key := fn(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEqual(t, long, key)
		assert.LessOrEqual(t, len(key), 13)
		assert.Equal(t, key, fn(httptest.NewRequest(http.MethodGet, "/", nil)))
	})

	t.Run("all empty", func(t *testing.T) {
		fn := ratelimiter.Composite(func(*http.Request) string { return "" })
		assert.Empty(t, fn(httptest.NewRequest(http.MethodGet, "/", nil)))
	})
}
