package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/antennas/pkg/buildinfo"
	"github.com/matzehuels/antennas/pkg/observability"
)

// instrument logs each request and reports it to the HTTP hooks. Every
// response carries a Server header naming the build.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		w.Header().Set("Server", buildinfo.UserAgent())
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, route, status, elapsed)
		s.cfg.Logger.Debug("Request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"elapsed", elapsed.Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
