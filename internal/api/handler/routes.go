package handler

import (
	"net/http"

	"github.com/vfg2006/feed-report-bot/internal/api/handler/router"
	"github.com/vfg2006/feed-report-bot/pkg/middleware"
)

const reportPrefix = "/v1/report"

func Healthcheck(database Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(database),
		},
	}
}

func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

// Report expõe o agendador: leitura do status para qualquer role, disparo só para admin
func Report(reportScheduler ReportScheduler) []router.Route {
	return router.Group(reportPrefix, nil,
		router.Route{
			Path:        "/run",
			Method:      http.MethodPost,
			Handler:     RunReport(reportScheduler),
			Middlewares: []router.Middleware{middleware.AdminOnly()},
		},
		router.Route{
			Path:        "/status",
			Method:      http.MethodGet,
			Handler:     GetReportStatus(reportScheduler),
			Middlewares: []router.Middleware{middleware.AnyRole()},
		},
	)
}
