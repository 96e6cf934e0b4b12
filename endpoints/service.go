package endpoints

import (
	"net/http"

	"github.com/promptpilot/prompt-pilot-service/config"
	"github.com/promptpilot/prompt-pilot-service/utils"
)

// ServiceHandler provides a status report for the service: version, health,
// process metrics and sanitized configuration.
func ServiceHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := utils.ServiceReport{
			Version: utils.GetVersion(),
			Health:  utils.GetHealth(),
			Metrics: utils.GetMetrics().ToMap(),
			Config:  cfg.GetSanitized(),
		}

		status := http.StatusOK
		if report.Health.Status != "OK" {
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, report)
	}
}
