package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/journal/pkg/httpx"
	"github.com/aussiebroadwan/journal/pkg/journalsdk"
)

// HealthHandler godoc
//
//	@Summary		Health
//	@Description	Reports that the process is up. Does not touch storage.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	journalsdk.HealthResponse	"status, message"
//	@Router			/health [get].
func HealthHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, journalsdk.HealthResponse{
			Status:  "ok",
			Message: "Journal backend is running",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// LivezHandler godoc
//
//	@Summary		Liveness
//	@Description	Liveness probe. Always 200 while the process serves requests.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	journalsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, journalsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness
//	@Description	Readiness probe. Checks that the account store can be reached.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	journalsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	journalsdk.HealthResponse	"store unreachable"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &journalsdk.HealthChecks{Store: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Store = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, journalsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
