package middleware

import (
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRecoverPanic(t *testing.T) {
	handler := RecoverPanic(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				panic("boom")
			},
		),
	)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cashcards", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRecoverPanic_AfterHeadersWritten(t *testing.T) {
	handler := RecoverPanic(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
				panic("boom")
			},
		),
	)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cashcards/1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestExcept(t *testing.T) {
	deny := func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		)
	}
	handler := Except(deny, "/health")(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
		),
	)

	tests := map[string]int{
		"/health":    http.StatusOK,
		"/cashcards": http.StatusUnauthorized,
		"/foo":       http.StatusUnauthorized,
		"/health/x":  http.StatusUnauthorized,
	}
	for path, code := range tests {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, code, w.Code, path)
	}
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	handler := LoggingMiddleware(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
		),
	)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cashcards/1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/cashcards", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
}

func TestTracingMiddleware(t *testing.T) {
	tracer := mocktracer.New()
	prev := opentracing.GlobalTracer()
	opentracing.SetGlobalTracer(tracer)
	t.Cleanup(func() { opentracing.SetGlobalTracer(prev) })

	handler := TracingMiddleware(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.NotNil(t, opentracing.SpanFromContext(r.Context()))
				w.WriteHeader(http.StatusNotFound)
			},
		),
	)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cashcards/1000", nil))

	spans := tracer.FinishedSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /cashcards/1000", spans[0].OperationName)
	assert.Equal(t, uint16(http.StatusNotFound), spans[0].Tag("http.status_code"))
}
