package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionfocus/focushours/internal/platform/logger"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	id := GetTraceID(ctx)
	assert.Len(t, id, 32)
	assert.NotEqual(t, id, GetTraceID(SetTraceID(context.Background())))
}

type focusBody struct {
	Hours float64 `json:"hours" validate:"gt=0"`
	Note  string  `json:"note" validate:"max=5"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"hours":2,"note":"ok"}`, false},
		{"unknown field", `{"hours":2,"minutes":3}`, true},
		{"malformed", `{"hours":`, true},
		{"trailing data", `{"hours":2}{"hours":3}`, true},
		{"wrong type", `{"hours":"two"}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var got focusBody
			err := DecodeJSON(httptest.NewRecorder(), r, &got)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2.0, got.Hours)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRequest(focusBody{Hours: 1}))
	assert.Error(t, ValidateRequest(focusBody{Hours: 0}))
	assert.Error(t, ValidateRequest(focusBody{Hours: 1, Note: "too long"}))
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	log, buf := logger.GetTestLogger(t)
	r := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	r = r.WithContext(logger.WithLogger(SetTraceID(r.Context()), log))
	w := httptest.NewRecorder()

	RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "An unexpected error occurred",
		errors.New("connect postgres://vfh:pw@db/focus: refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "An unexpected error occurred", resp.Error)
	assert.Equal(t, GetTraceID(r.Context()), resp.TraceID)

	logger.AssertLogContains(t, buf, "API error response")
	logger.AssertLogContains(t, buf, "[REDACTED_CREDENTIAL]")
	assert.NotContains(t, buf.String(), "vfh:pw")
}
