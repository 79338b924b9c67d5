package statsclient

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statsBody = `{
  "success": true,
  "status": "online",
  "serverStartTime": "2025-06-15T12:00:00.000Z",
  "lastUpdated": "2025-06-15T12:05:00.000Z",
  "uptime": 3725,
  "statistics": {
    "totalSessions": 2,
    "activeSessions": 1,
    "totalDetections": 7,
    "totalFaceDetections": 2,
    "totalInteractions": 3,
    "avgDetectionsPerSession": 4
  },
  "system": {"memory": "12 MB", "pid": 4242, "goVersion": "go1.24.0", "environment": "test"},
  "timestamp": "2025-06-15T13:02:05.000Z"
}`

const eventsBody = `{
  "success": true,
  "events": [
    {"id": 2, "type": "detection.recorded", "sessionId": "session_1_abc", "detail": {"faceCount": 2}, "timestamp": "2025-06-15T12:00:01.000Z"},
    {"id": 1, "type": "session.started", "sessionId": "session_1_abc", "timestamp": "2025-06-15T12:00:00.000Z"}
  ],
  "total": 9
}`

func stubServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(statsBody))
	})
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"status":"healthy","server":"Vision Test API","uptime":5,"memory":{"heapUsed":1048576}}`))
	})
	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		w.Write([]byte(eventsBody))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":"API route not found","path":"` + r.URL.Path + `"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Stats(t *testing.T) {
	srv := stubServer(t)
	client := New(srv.URL+"/", time.Second)

	stats, err := client.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.Get("statistics.totalDetections").Int())

	var out bytes.Buffer
	require.NoError(t, RenderStats(&out, stats))
	assert.Contains(t, out.String(), "Total detections")
	assert.Contains(t, out.String(), "1h02m05s")
	assert.Contains(t, out.String(), "12 MB")
}

func TestClient_Health(t *testing.T) {
	srv := stubServer(t)
	client := New(srv.URL, time.Second)

	health, err := client.Health(context.Background())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, RenderHealth(&out, health))
	assert.Contains(t, out.String(), "healthy")
	assert.Contains(t, out.String(), "1.0 MB")
}

func TestClient_Events(t *testing.T) {
	srv := stubServer(t)
	client := New(srv.URL, time.Second)

	events, err := client.Events(context.Background(), 2)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, RenderEvents(&out, events))
	assert.Contains(t, out.String(), "detection.recorded")
	assert.Contains(t, out.String(), "session_1_abc")
	assert.Contains(t, out.String(), "2 of 9 events")
}

func TestClient_RejectedResponse(t *testing.T) {
	srv := stubServer(t)
	client := New(srv.URL, time.Second)

	_, err := client.fetch(context.Background(), "/api/nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRejected))
	assert.Contains(t, err.Error(), "API route not found")
}

func TestClient_NonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Stats(context.Background())
	assert.ErrorContains(t, err, "not JSON")
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0s", formatSeconds(0))
	assert.Equal(t, "1m05s", formatSeconds(65))
	assert.Equal(t, "2h00m01s", formatSeconds(7201))
}
