package middleware

import (
	"github.com/KeivinIsmaili/cashcard/internal/hdl"
	"github.com/KeivinIsmaili/cashcard/internal/hdl/http/utils"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"net/http"
	"slices"
	"time"
)

const RequestIDHeader = "X-Request-ID"

// RecoverPanic answers a panicking request with 500 unless the handler had
// already started the response.
func RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if err := recover(); err != nil {
					zap.L().Error("panic recovered", zap.Any("error", err), zap.String("path", r.URL.Path))
					if ww.Status() == 0 {
						utils.ErrResponse(ww, http.StatusInternalServerError, hdl.ErrInternal)
					}
				}
			}()
			next.ServeHTTP(ww, r)
		},
	)
}

// Except applies mw to every request whose path is not one of paths.
func Except(mw func(http.Handler) http.Handler, paths ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		wrapped := mw(next)
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				if slices.Contains(paths, r.URL.Path) {
					next.ServeHTTP(w, r)
					return
				}
				wrapped.ServeHTTP(w, r)
			},
		)
	}
}

func TracingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			tracer := opentracing.GlobalTracer()
			parent, _ := tracer.Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(r.Header))

			span := tracer.StartSpan(r.Method+" "+r.URL.Path, ext.RPCServerOption(parent))
			defer span.Finish()
			ext.HTTPMethod.Set(span, r.Method)
			ext.HTTPUrl.Set(span, r.URL.String())

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(opentracing.ContextWithSpan(r.Context(), span)))

			code := status(ww)
			ext.HTTPStatusCode.Set(span, uint16(code))
			if code >= http.StatusInternalServerError {
				ext.Error.Set(span, true)
			}
		},
	)
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			s := time.Now()
			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, reqID)

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			zap.L().Info(
				"request",
				zap.String("id", reqID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status(ww)),
				zap.Duration("duration", time.Since(s)),
			)
		},
	)
}

// status reports 200 for handlers that never called WriteHeader.
func status(ww chimw.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}
	return ww.Status()
}
