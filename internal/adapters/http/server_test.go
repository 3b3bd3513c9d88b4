package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/aretw0/typecheck/internal/adapters/http"
	"github.com/aretw0/typecheck/internal/metrics"
	"github.com/aretw0/typecheck/internal/service"
	"github.com/aretw0/typecheck/pkg/adapters/memory"
	"github.com/aretw0/typecheck/pkg/registry"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	svc := service.New(registry.Builtin(),
		service.WithCache(memory.NewCache()),
		service.WithMetrics(metrics.NewRecorder(reg)),
	)
	return httpAdapter.NewHandler(svc, reg, nil)
}

func do(t *testing.T, h http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestCheck(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		name        string
		target      string
		contentType string
		body        string
		wantStatus  int
		wantValid   bool
	}{
		{"valid json", "/check/choices", "application/json", `["literal1", 17, true, "literal1"]`, http.StatusOK, true},
		{"invalid json", "/check/choices", "application/json", `16`, http.StatusOK, false},
		{"valid yaml", "/check/labels", "application/yaml", "env: prod\nteam: core\n", http.StatusOK, true},
		{"format query", "/check/labels?format=yaml", "", "env: 1\n", http.StatusOK, false},
		{"sniffed", "/check/address", "", `{"line1": "a", "city": "b", "country": "c"}`, http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, tt.target, tt.contentType, tt.body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			var verdict service.Verdict
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verdict))
			assert.Equal(t, tt.wantValid, verdict.Valid)
		})
	}
}

func TestCheck_Cached(t *testing.T) {
	h := newHandler(t)

	do(t, h, http.MethodPost, "/check/labels", "application/json", `{"a": "b"}`)
	w := do(t, h, http.MethodPost, "/check/labels", "application/json", `{"a": "b"}`)

	var verdict service.Verdict
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verdict))
	assert.True(t, verdict.Valid)
	assert.True(t, verdict.Cached)
}

func TestCheck_Errors(t *testing.T) {
	h := newHandler(t)

	w := do(t, h, http.MethodPost, "/check/nope", "application/json", `{}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodPost, "/check/profile", "application/json", `{"version": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/check/profile?format=xml", "", `<a/>`)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	big := `"` + strings.Repeat("x", httpAdapter.MaxPayloadBytes) + `"`
	w = do(t, h, http.MethodPost, "/check/labels", "application/json", big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = do(t, h, http.MethodGet, "/check/labels", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestShapes(t *testing.T) {
	h := newHandler(t)

	w := do(t, h, http.MethodGet, "/shapes", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var shapes []httpAdapter.ShapeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shapes))
	require.Len(t, shapes, 5)
	assert.Equal(t, "address", shapes[0].Name)
	assert.Equal(t, "{city: string, country: string, line1: string, line2?: string, state?: string}", shapes[0].Type)

	w = do(t, h, http.MethodGet, "/shapes/labels", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var one httpAdapter.ShapeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &one))
	assert.Equal(t, "{[key: string]: string}", one.Type)

	w = do(t, h, http.MethodGet, "/shapes/missing", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsAndHealth(t *testing.T) {
	h := newHandler(t)
	do(t, h, http.MethodPost, "/check/labels", "application/json", `{"a": "b"}`)

	w := do(t, h, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `typecheck_checks_total{result="valid",shape="labels"} 1`)

	w = do(t, h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
