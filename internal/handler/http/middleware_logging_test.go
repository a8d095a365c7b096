package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logRequest runs next behind withLogging with a buffer-backed request
// logger and returns the decoded access log entry.
func logRequest(t *testing.T, req *http.Request, next http.Handler) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	l := zerolog.New(&buf)
	req = req.WithContext(l.WithContext(req.Context()))

	h := &Handler{logger: logger.Nop()}
	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry), "log: %s", buf.String())
	return rec, entry
}

func TestWithLogging_Fields(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		status    int
		body      string
		wantLevel string
	}{
		{"created", http.MethodPost, "/api/places", http.StatusCreated, `{"place":{}}`, "info"},
		{"query kept in uri", http.MethodGet, "/api/users?limit=10", http.StatusOK, "[]", "info"},
		{"client error", http.MethodPatch, "/api/places/x", http.StatusUnprocessableEntity, "{}", "info"},
		{"server error", http.MethodGet, "/api/users", http.StatusInternalServerError, "{}", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			rec, entry := logRequest(t, httptest.NewRequest(tt.method, tt.target, nil), next)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.target, entry["uri"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.EqualValues(t, len(tt.body), entry["size"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
	})

	rec, entry := logRequest(t, httptest.NewRequest(http.MethodGet, "/api/version", nil), next)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 1024, entry["size"])
}

func TestWithLogging_NothingWritten(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	_, entry := logRequest(t, httptest.NewRequest(http.MethodGet, "/api/version", nil), next)

	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 0, entry["size"])
}

func TestWithLogging_RoutePattern(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	h := &Handler{logger: logger.Nop()}

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
		})
	}, h.withLogging)
	router.Get("/api/places/{placeId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/places/"+testPlaceID, nil))

	assert.Contains(t, buf.String(), `"route":"/api/places/{placeId}"`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})
	h := &Handler{logger: logger.Nop()}

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}, "withLogging should not recover panics")
}
