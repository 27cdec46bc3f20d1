package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"voice-api-smoke/internal/config"
	"voice-api-smoke/internal/stub/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T, fault string) (*EndpointHandlers, http.Handler) {
	t.Helper()
	logger := zerolog.Nop()
	cfg := &config.Config{API: config.API{Username: "admin", Password: "admin"}}
	h := NewEndpointHandlers(cfg, &logger, store.NewStore())
	require.NoError(t, h.SetFault(fault))
	return h, h.Router()
}

func do(t *testing.T, router http.Handler, method, path, body string, auth bool) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if auth {
		req.SetBasicAuth("admin", "admin")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestRootHandle_NoAuth(t *testing.T) {
	_, router := newTestHandlers(t, FaultNone)

	rec := do(t, router, http.MethodGet, "/", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, decode(t, rec), "datasets")
}

func TestSessionRoundTrip(t *testing.T) {
	_, router := newTestHandlers(t, FaultNone)

	created := do(t, router, http.MethodPost, "/api/v1/sessions", `{"genero":"male","dataset":"common_voice"}`, true)
	require.Equal(t, http.StatusCreated, created.Code)
	id, ok := decode(t, created)["id"].(string)
	require.True(t, ok)

	fetched := do(t, router, http.MethodGet, "/api/v1/sessions/"+id, "", true)
	require.Equal(t, http.StatusOK, fetched.Code)
	rec := decode(t, fetched)
	assert.Equal(t, id, rec["id"])
	assert.Equal(t, "male", rec["genero"])
	assert.Equal(t, "common_voice", rec["dataset"])
}

func TestSessionEndpoints_RequireAuth(t *testing.T) {
	_, router := newTestHandlers(t, FaultNone)

	assert.Equal(t, http.StatusUnauthorized,
		do(t, router, http.MethodPost, "/api/v1/sessions", `{"dataset":"common_voice"}`, false).Code)
	assert.Equal(t, http.StatusUnauthorized,
		do(t, router, http.MethodGet, "/api/v1/sessions/abc", "", false).Code)
	assert.Equal(t, http.StatusUnauthorized,
		do(t, router, http.MethodGet, "/api/v1/phrases/common_voice", "", false).Code)
}

func TestCreateSessionHandle_BadRequests(t *testing.T) {
	_, router := newTestHandlers(t, FaultNone)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(`{"dataset":"x"}`))
	req.SetBasicAuth("admin", "admin")
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	assert.Equal(t, http.StatusBadRequest,
		do(t, router, http.MethodPost, "/api/v1/sessions", `{not json`, true).Code)
	assert.Equal(t, http.StatusUnprocessableEntity,
		do(t, router, http.MethodPost, "/api/v1/sessions", `{"genero":"male"}`, true).Code)
}

func TestGetSessionHandle_NotFound(t *testing.T) {
	_, router := newTestHandlers(t, FaultNone)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/api/v1/sessions/unknown", "", true).Code)
}

func TestFaults(t *testing.T) {
	t.Run("mismatch", func(t *testing.T) {
		_, router := newTestHandlers(t, FaultMismatch)
		id := decode(t, do(t, router, http.MethodPost, "/api/v1/sessions", `{"dataset":"common_voice"}`, true))["id"].(string)
		fetched := decode(t, do(t, router, http.MethodGet, "/api/v1/sessions/"+id, "", true))
		assert.NotEqual(t, id, fetched["id"])
	})
	t.Run("missing-id", func(t *testing.T) {
		_, router := newTestHandlers(t, FaultMissingID)
		created := do(t, router, http.MethodPost, "/api/v1/sessions", `{"dataset":"common_voice"}`, true)
		assert.Equal(t, http.StatusCreated, created.Code)
		assert.NotContains(t, decode(t, created), "id")
	})
	t.Run("unavailable", func(t *testing.T) {
		_, router := newTestHandlers(t, FaultUnavailable)
		assert.Equal(t, http.StatusServiceUnavailable,
			do(t, router, http.MethodPost, "/api/v1/sessions", `{"dataset":"common_voice"}`, true).Code)
	})
}

func TestSetFault_Invalid(t *testing.T) {
	h, _ := newTestHandlers(t, FaultNone)
	assert.Error(t, h.SetFault("explode"))
}

func TestGetPhrasesHandle(t *testing.T) {
	_, router := newTestHandlers(t, FaultNone)

	rec := do(t, router, http.MethodGet, "/api/v1/phrases/common_voice", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var phrases []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &phrases))
	assert.NotEmpty(t, phrases)

	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/api/v1/phrases/nope", "", true).Code)
}

func TestSwaggerDoc_NoAuth(t *testing.T) {
	_, router := newTestHandlers(t, FaultNone)

	rec := do(t, router, http.MethodGet, "/swagger/doc.json", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	doc := decode(t, rec)
	paths, ok := doc["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/api/v1/sessions")
	assert.Contains(t, paths, "/api/v1/sessions/{sessionID}")
	assert.Contains(t, paths, "/api/v1/phrases/{dataset}")
}
