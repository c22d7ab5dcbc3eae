package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
	"github.com/vfg2006/marketing-dashboard-api/pkg/middleware"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

const defaultSortBy = domain.FieldDate

// parseFilters lê start_date e end_date. Datas fora do formato são ignoradas.
func parseFilters(r *http.Request) *domain.MetricFilters {
	query := r.URL.Query()
	filters := &domain.MetricFilters{}

	if date, err := utils.ParseDate(query.Get("start_date")); err == nil {
		filters.StartDate = date
	} else {
		log.ForContext(r.Context()).WithField("start_date", query.Get("start_date")).Debug("reports: start_date ignorada")
	}

	if date, err := utils.ParseDate(query.Get("end_date")); err == nil {
		filters.EndDate = date
	} else {
		log.ForContext(r.Context()).WithField("end_date", query.Get("end_date")).Debug("reports: end_date ignorada")
	}

	return filters
}

func intParam(query url.Values, name string, fallback int) (int, error) {
	value := query.Get(name)
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

func boolParam(query url.Values, name string, fallback bool) (bool, error) {
	value := query.Get(name)
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseBool(value)
}

func parsePageQuery(r *http.Request, defaultPageSize int) (*domain.PageQuery, error) {
	query := r.URL.Query()

	page, err := intParam(query, "page", 1)
	if err != nil {
		return nil, err
	}

	pageSize, err := intParam(query, "page_size", defaultPageSize)
	if err != nil {
		return nil, err
	}

	sortDesc, err := boolParam(query, "sort_desc", false)
	if err != nil {
		return nil, err
	}

	sortBy := domain.MetricField(query.Get("sort_by"))
	if sortBy == "" {
		sortBy = defaultSortBy
	}

	return &domain.PageQuery{
		Filters:  parseFilters(r),
		SortBy:   sortBy,
		SortDesc: sortDesc,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func GetColumns(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, domain.ColumnsResponse{Columns: service.Columns(user.Role)})
	})
}

// GetData devolve a página formatada. Falha interna vira 500, ao contrário de /stats.
func GetData(service reporting.Reporter, defaultPageSize int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		query, err := parsePageQuery(r, defaultPageSize)
		if err != nil {
			logger.WithError(err).Warn("reports: parâmetros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page e page_size devem ser inteiros e sort_desc booleano", nil)
			return
		}

		if !reporting.IsSortable(query.SortBy) {
			logger.WithField("sort_by", query.SortBy).Debug("reports: sort_by desconhecido, mantendo ordem de carga")
		}

		page, err := service.GetPage(r.Context(), query, user.Role)
		if err != nil {
			logger.WithError(err).Error("reports: erro ao montar página")
			apiErr := apiErrors.FromError(err, apiErrors.ErrDataSource)
			apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
			return
		}

		writeJSON(w, r, http.StatusOK, page)
	})
}

// GetStats sempre responde 200; erros vêm no campo error do resumo
func GetStats(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.GetStats(r.Context(), parseFilters(r)))
	})
}
