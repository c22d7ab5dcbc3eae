package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-dashboard-api/internal/metrics"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/middleware"
)

func Healthcheck(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func Observability() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter, defaultPageSize int) []router.Route {
	return []router.Route{
		{
			Path:        "/columns",
			Method:      http.MethodGet,
			Handler:     GetColumns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/data",
			Method:      http.MethodGet,
			Handler:     GetData(service, defaultPageSize),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/stats",
			Method:      http.MethodGet,
			Handler:     GetStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Cache(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/cache/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshCache(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/cache/status",
			Method:      http.MethodGet,
			Handler:     GetCacheStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// Static só registra rotas quando há diretório configurado
func Static(dir string) []router.Route {
	if dir == "" {
		return nil
	}

	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RedirectToIndex(),
		},
		{
			Path:    staticPath,
			Method:  http.MethodGet,
			Handler: StaticFiles(dir),
		},
	}
}
