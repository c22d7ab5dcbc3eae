package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

type CacheRefreshResponse struct {
	Refreshed bool               `json:"refreshed"`
	Status    domain.CacheStatus `json:"status"`
}

// RefreshCache recarrega o snapshot sob demanda
func RefreshCache(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - RefreshCache")

		refreshed, err := service.RefreshCache(r.Context())
		if err != nil {
			logger.WithError(err).Warn("cache: recarga não realizada")

			switch {
			case errors.Is(err, reporting.ErrCacheDisabled), errors.Is(err, reporting.ErrCacheUnsupported):
				apiErrors.WriteError(w, apiErrors.ErrCacheDisabled, err.Error(), nil)
			case errors.Is(err, domain.ErrSourceNotFound):
				apiErrors.WriteError(w, apiErrors.ErrDataSource, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao recarregar cache", nil)
			}
			return
		}

		writeJSON(w, r, http.StatusOK, CacheRefreshResponse{
			Refreshed: refreshed,
			Status:    service.CacheStatus(),
		})
	})
}

func GetCacheStatus(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.CacheStatus())
	})
}
