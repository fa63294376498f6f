package api

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/isdelr/portfolio-be/internal/api/handlers"
	"github.com/rs/zerolog/log"
)

// requestLogger logs one line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("latency_ms", time.Since(start)).
			Str("ip", r.RemoteAddr).
			Msg("HTTP Request")
	})
}

// recoverer turns a panic into a JSON 500. The panic value is logged, never returned.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error().
					Str("request_id", middleware.GetReqID(r.Context())).
					Interface("error", rec).
					Bytes("stack", debug.Stack()).
					Msg("Panic recovered")

				handlers.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// preflight answers every OPTIONS request with 200 once CORS headers are set.
func preflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	handlers.WriteMessage(w, http.StatusNotFound, "API route not found")
}
