package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionfocus/focushours/internal/api/shared"
	"github.com/visionfocus/focushours/internal/platform/logger"
)

func TestTraceAndRequestLogger(t *testing.T) {
	log, buf := logger.GetTestLogger(t)

	var seen string
	h := NewTraceMiddleware(log)(RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	})))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get("X-Trace-Id"))
	assert.Equal(t, http.StatusTeapot, w.Code)

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, seen, e["trace_id"])
	}
	assert.Equal(t, "request completed", entries[1]["msg"])
	assert.EqualValues(t, http.StatusTeapot, entries[1]["status"])
}
