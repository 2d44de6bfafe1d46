// Package httptransport assembles the HTTP surface of the service. Route
// handlers live with their domains; this package only mounts them and the
// operational endpoints.
package httptransport

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	attendancehandler "veriface/internal/attendance/handler"
	conferencehandler "veriface/internal/conference/handler"
	"veriface/pkg/platform/httputil"
	"veriface/pkg/platform/middleware/requestmeta"
)

// HealthCheck reports the health of one dependency.
type HealthCheck func(ctx context.Context) error

// NewRouter wires all endpoints. Domain handlers register their own routes;
// health and metrics are mounted here.
func NewRouter(conferences *conferencehandler.Handler, attendance *attendancehandler.Handler, checks map[string]HealthCheck) http.Handler {
	r := chi.NewRouter()
	r.Use(requestmeta.Middleware)

	conferences.Register(r)
	attendance.Register(r)

	r.Get("/healthz", handleHealth(checks))
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func handleHealth(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				results[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = "ok"
		}
		httputil.WriteJSON(w, status, map[string]any{
			"status": http.StatusText(status),
			"checks": results,
		})
	}
}
