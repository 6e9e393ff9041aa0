package api

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"office-experiment/dutyboard/internal/common"
	"office-experiment/dutyboard/internal/models/entities"
)

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(db *sqlx.DB, cache common.CacheInterface, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]entities.ServiceStatus)

		// Check postgres
		pgStatus := "ok"
		pgDetails := "Postgres Connected"
		if err := db.Ping(); err != nil {
			pgStatus = "down"
			pgDetails = err.Error()
		}
		services["postgres"] = entities.ServiceStatus{
			Status:  pgStatus,
			Details: pgDetails,
		}

		// Check cache; a down cache degrades reads but does not break them,
		// so it is reported without failing the overall status.
		cacheStatus := "ok"
		cacheDetails := "Cache Connected"
		if err := cache.Ping(); err != nil {
			cacheStatus = "degraded"
			cacheDetails = err.Error()
		}
		services["cache"] = entities.ServiceStatus{
			Status:  cacheStatus,
			Details: cacheDetails,
		}

		overallStatus := "ok"
		if services["postgres"].Status != "ok" {
			overallStatus = "down"
		}

		now := time.Now()
		uptime := now.Sub(upSince).Round(time.Second).String()

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			UpSince:  upSince,
			Uptime:   uptime,
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
