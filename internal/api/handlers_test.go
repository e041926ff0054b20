package api

import (
	"bytes"
	"encoding/json/v2"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/alexedwards/flow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pudottapommin/pastebin-lite/config"
	"github.com/pudottapommin/pastebin-lite/pkg/clock"
	"github.com/pudottapommin/pastebin-lite/pkg/service"
	"github.com/pudottapommin/pastebin-lite/pkg/storage"
)

func newTestMux(t *testing.T) *flow.Mux {
	t.Helper()
	cfg := &config.Config{Domain: "http://paste.test", TestMode: true}
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(storage.NewMemory(), clock.New(true), l)

	e := flow.New()
	NewHandlers(cfg, svc, l).AddHandlers(e)
	return e
}

func doJSON(t *testing.T, e *flow.Mux, method, target, body string, nowMillis int64) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if nowMillis > 0 {
		req.Header.Set(clock.OverrideHeader, strconv.FormatInt(nowMillis, 10))
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	payload := make(map[string]any)
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}
	return rec, payload
}

func TestCreatePaste(t *testing.T) {
	e := newTestMux(t)

	rec, payload := doJSON(t, e, http.MethodPost, "/api/pastes",
		`{"content":"hello","ttl_seconds":3600,"max_views":10}`, 0)
	require.Equal(t, http.StatusOK, rec.Code)

	id, _ := payload["id"].(string)
	assert.NotEmpty(t, id)
	assert.Equal(t, "http://paste.test/p/"+id, payload["url"])
}

func TestCreatePasteValidation(t *testing.T) {
	e := newTestMux(t)

	tests := []struct {
		name string
		body string
	}{
		{"empty content", `{"content":""}`},
		{"whitespace content", `{"content":"   "}`},
		{"zero ttl", `{"content":"x","ttl_seconds":0}`},
		{"zero max views", `{"content":"x","max_views":0}`},
		{"negative ttl", `{"content":"x","ttl_seconds":-5}`},
		{"malformed json", `{"content":`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, payload := doJSON(t, e, http.MethodPost, "/api/pastes", tc.body, 0)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, payload["error"])
		})
	}
}

func TestFetchPasteScenario(t *testing.T) {
	e := newTestMux(t)

	rec, payload := doJSON(t, e, http.MethodPost, "/api/pastes",
		`{"content":"hi","ttl_seconds":60,"max_views":2}`, 1000_000)
	require.Equal(t, http.StatusOK, rec.Code)
	id := payload["id"].(string)

	rec, payload = doJSON(t, e, http.MethodGet, "/api/pastes/"+id, "", 1010_000)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hi", payload["content"])
	assert.Equal(t, float64(1), payload["remaining_views"])
	assert.Equal(t, "1970-01-01T00:17:40.000Z", payload["expires_at"])

	rec, payload = doJSON(t, e, http.MethodGet, "/api/pastes/"+id, "", 1020_000)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), payload["remaining_views"])

	// Quota exhausted, still inside the TTL window.
	rec, payload = doJSON(t, e, http.MethodGet, "/api/pastes/"+id, "", 1030_000)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, payload["error"])
}

func TestFetchPasteExpiry(t *testing.T) {
	e := newTestMux(t)

	rec, payload := doJSON(t, e, http.MethodPost, "/api/pastes",
		`{"content":"bye","ttl_seconds":5}`, 1_000)
	require.Equal(t, http.StatusOK, rec.Code)
	id := payload["id"].(string)

	rec, _ = doJSON(t, e, http.MethodGet, "/api/pastes/"+id, "", 5_999)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The boundary instant itself is already expired.
	rec, payload = doJSON(t, e, http.MethodGet, "/api/pastes/"+id, "", 6_000)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, payload["error"])
}

func TestFetchPasteNotFound(t *testing.T) {
	e := newTestMux(t)
	rec, payload := doJSON(t, e, http.MethodGet, "/api/pastes/does-not-exist", "", 0)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, payload["error"])
}

func TestPeekDoesNotConsume(t *testing.T) {
	e := newTestMux(t)

	rec, payload := doJSON(t, e, http.MethodPost, "/api/pastes",
		`{"content":"peek me","max_views":1}`, 1000)
	require.Equal(t, http.StatusOK, rec.Code)
	id := payload["id"].(string)

	for i := 0; i < 3; i++ {
		rec, payload = doJSON(t, e, http.MethodGet, "/api/pastes/"+id+"/peek", "", 2000)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "peek me", payload["content"])
	}

	// The single consuming view is still available afterwards.
	rec, payload = doJSON(t, e, http.MethodGet, "/api/pastes/"+id, "", 2000)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), payload["remaining_views"])
}

func TestNoExpiryOrQuota(t *testing.T) {
	e := newTestMux(t)

	rec, payload := doJSON(t, e, http.MethodPost, "/api/pastes", `{"content":"forever"}`, 1000)
	require.Equal(t, http.StatusOK, rec.Code)
	id := payload["id"].(string)

	rec, payload = doJSON(t, e, http.MethodGet, "/api/pastes/"+id, "", 0)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, payload["remaining_views"])
	assert.Nil(t, payload["expires_at"])
}

func TestInvalidTimeOverride(t *testing.T) {
	e := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/api/pastes/some-id", nil)
	req.Header.Set(clock.OverrideHeader, "garbage")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	e := newTestMux(t)
	rec, payload := doJSON(t, e, http.MethodGet, "/api/healthz", "", 0)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["ok"])
}
