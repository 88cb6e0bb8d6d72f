package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/damon-houk/expense-tracker/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	echo := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(GetRequestID(r.Context())))
	}))

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		echo.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/transactions", nil))

		requestID := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, requestID)
		assert.Equal(t, requestID, w.Body.String())
	})

	t.Run("Preserved", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		req.Header.Set(RequestIDHeader, "test-id-123")
		w := httptest.NewRecorder()

		echo.ServeHTTP(w, req)

		assert.Equal(t, "test-id-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "test-id-123", w.Body.String())
	})
}

func TestGetRequestIDMissing(t *testing.T) {
	assert.Equal(t, "unknown", GetRequestID(context.Background()))
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewJSONLogger(&buf, logger.InfoLevel)

	h := RequestID(Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("created"))
	})))

	req := httptest.NewRequest(http.MethodPost, "/transactions", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Request served", entry["message"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "/transactions", entry["path"])
	assert.Equal(t, float64(http.StatusCreated), entry["status"])
	assert.Equal(t, float64(len("created")), entry["content_length"])
}

func TestRecover(t *testing.T) {
	h := Recover(logger.NopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
