package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
)

// HealthcheckHandler não exige token e nunca falha: fonte ausente aparece como csv_exists=false
func HealthcheckHandler(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Health(r.Context()))
	})
}
