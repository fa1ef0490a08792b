package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/SergeyBogomolovv/prontix-store/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
}

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func testConfig() config.Config {
	return config.Config{
		Http: config.Http{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3333"}},
	}
}

func newTestApp() *application {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())
}

func TestApplication_Routes(t *testing.T) {
	a := newTestApp()
	a.SetHTTPHandlers(pingHandler{})

	testCases := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{path: "/ping", wantStatus: http.StatusOK, wantBody: "pong"},
		{path: "/metrics", wantStatus: http.StatusOK, wantBody: "store_http_in_flight_requests"},
		{path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
			assert.NotEmpty(t, rr.Header().Get("Content-Type"))
		})
	}
}

func TestApplication_StartStop(t *testing.T) {
	a := newTestApp()

	var started, closed atomic.Bool
	a.SetStarters(starterFunc(func(ctx context.Context) error {
		started.Store(true)
		return nil
	}))
	a.SetClosers(closerFunc(func() error {
		closed.Store(true)
		return nil
	}))

	require.NoError(t, a.Start(context.Background()))
	assert.True(t, started.Load())

	require.NoError(t, a.Stop())
	assert.True(t, closed.Load())
}

func TestApplication_StarterFailureAbortsStart(t *testing.T) {
	a := newTestApp()
	boom := errors.New("warm up failed")
	a.SetStarters(starterFunc(func(ctx context.Context) error { return boom }))

	err := a.Start(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestApplication_StopJoinsErrors(t *testing.T) {
	a := newTestApp()
	first, second := errors.New("first"), errors.New("second")
	a.SetClosers(closerFunc(func() error { return first }), closerFunc(func() error { return second }))

	err := a.Stop()
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
}
