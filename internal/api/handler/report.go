package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/feed-report-bot/internal/domain"
	"github.com/vfg2006/feed-report-bot/internal/scheduler"
	"github.com/vfg2006/feed-report-bot/pkg/apiErrors"
	"github.com/vfg2006/feed-report-bot/pkg/middleware"
)

// ReportScheduler é a parte do agendador exposta pela API administrativa
type ReportScheduler interface {
	TriggerManualRun() error
	GetStatus() map[string]any
}

// RunReport dispara manualmente uma execução do relatório
func RunReport(reportScheduler ReportScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunReport")

		if reportScheduler == nil {
			apiErrors.WriteError(w, apiErrors.ErrReportUnavailable, "Agendador do relatório não disponível", nil)
			return
		}

		err := reportScheduler.TriggerManualRun()
		if errors.Is(err, scheduler.ErrRunInProgress) {
			apiErrors.WriteError(w, apiErrors.ErrReportRunInProgress, "Já existe uma execução do relatório em andamento", nil)
			return
		}
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		requestedBy := ""
		if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
			requestedBy = claims.UserName
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message":      "Execução do relatório iniciada",
			"requested_by": requestedBy,
		})
	}
}

// GetReportStatus retorna o status do agendador do relatório
func GetReportStatus(reportScheduler ReportScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetReportStatus")

		if reportScheduler == nil {
			apiErrors.WriteError(w, apiErrors.ErrReportUnavailable, "Agendador do relatório não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(reportScheduler.GetStatus())
	}
}
