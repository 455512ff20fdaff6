package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error { return f.err }

func TestHandleHealth(t *testing.T) {
	s := NewServer(Config{ServiceName: "test-daemon", Version: "1.2.3"})

	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "test-daemon", body.Service)
	assert.Equal(t, "1.2.3", body.Version)
}

func TestHandleReadyNotReadyByDefault(t *testing.T) {
	s := NewServer(Config{})
	assert.False(t, s.IsReady())

	rec := httptest.NewRecorder()
	s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body ReadyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not_ready", body.Status)
	assert.Equal(t, "not_ready", body.Checks["service"])
	// Defaults fill in the service name
	assert.Equal(t, "homestretch", body.Service)
}

func TestHandleReadyWithDatabase(t *testing.T) {
	pinger := &fakePinger{}
	s := NewServer(Config{DB: pinger})
	s.SetReady(true)

	rec := httptest.NewRecorder()
	s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	pinger.err = errors.New("connection refused")
	rec = httptest.NewRecorder()
	s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body ReadyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Checks["database"], "connection refused")
}

func TestHandleReadyRunsRegisteredChecks(t *testing.T) {
	s := NewServer(Config{})
	s.SetReady(true)
	s.RegisterCheck("scheduler", func(ctx context.Context) error { return nil })
	s.RegisterCheck("archive", func(ctx context.Context) error { return errors.New("down") })

	rec := httptest.NewRecorder()
	s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body ReadyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Checks["scheduler"])
	assert.Contains(t, body.Checks["archive"], "down")
}

func TestHandleLive(t *testing.T) {
	s := NewServer(Config{})

	rec := httptest.NewRecorder()
	s.handleLive(rec, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
