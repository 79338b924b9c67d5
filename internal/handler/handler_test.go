package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"visionserver/internal/dto"
	"visionserver/internal/logger"
	"visionserver/internal/model"
	"visionserver/internal/service/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenJournal struct{}

func (brokenJournal) Recent(int) ([]model.Event, error) { return nil, errors.New("disk on fire") }
func (brokenJournal) Count() (int64, error)            { return 0, nil }

func TestAtoiDefault(t *testing.T) {
	assert.Equal(t, 50, atoiDefault("", 50))
	assert.Equal(t, 50, atoiDefault("abc", 50))
	assert.Equal(t, 50, atoiDefault("-3", 50))
	assert.Equal(t, 7, atoiDefault("7", 50))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.5:51234"
	assert.Equal(t, "10.0.0.5", clientIP(req))

	req.RemoteAddr = "pipe"
	assert.Equal(t, "pipe", clientIP(req))
}

func TestDecodeBody_Lenient(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{"", ""},
		{"not json", ""},
		{`{"sessionId":"abc"}`, "abc"},
		{`{"sessionId":42}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.body, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var body dto.SessionRequest
			decodeBody(httptest.NewRecorder(), req, &body, logger.NewNop())
			assert.Equal(t, tc.want, string(body.SessionID))
		})
	}
}

func TestWriteServiceError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{telemetry.ErrMissingField, http.StatusBadRequest},
		{fmt.Errorf("end x: %w", telemetry.ErrNotFound), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		writeServiceError(w, tc.err, logger.NewNop())
		assert.Equal(t, tc.code, w.Code, tc.err.Error())
		assert.Contains(t, w.Body.String(), `"success":false`)
	}
}

func TestGetEventsHandler_JournalFailure(t *testing.T) {
	h := GetEventsHandler(telemetry.NewService(), brokenJournal{}, logger.NewNop())

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/api/events", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk on fire")
}

func TestClearLogFileHandler_UnknownLevel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/logs/{level}/clear", ClearLogFileHandler(telemetry.NewService(), logger.NewNop()))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/logs/debug/clear", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
