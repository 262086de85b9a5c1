package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// Check reports the health of one dependency.
type Check func(ctx context.Context) error

// HealthCheckHandler answers liveness probes when no checks are given and
// readiness probes otherwise: 200 {"status":"ready"} when every check
// passes, 503 {"status":"not_ready"} on the first failure.
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		status, code := "alive", http.StatusOK
		if len(checks) > 0 {
			status = "ready"
		}
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", slog.String("error", err.Error()))
				status, code = "not_ready", http.StatusServiceUnavailable
				break
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
	}
}
