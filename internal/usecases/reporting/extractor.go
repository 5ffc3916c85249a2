package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/feed-report-bot/infrastructure/repository"
	"github.com/vfg2006/feed-report-bot/internal/config"
	"github.com/vfg2006/feed-report-bot/internal/domain"
	"github.com/vfg2006/feed-report-bot/pkg/log"
	"github.com/vfg2006/feed-report-bot/pkg/utils"
)

type FeedExtractor struct {
	repo     repository.FeedMetricsRepository
	location *time.Location
}

func NewExtractor(cfg *config.Config, repo repository.FeedMetricsRepository) Extractor {
	location := cfg.Report.Location
	if location == nil {
		location = time.UTC
	}
	return &FeedExtractor{
		repo:     repo,
		location: location,
	}
}

// Extract consulta os dias D-7 até D-1 em relação a now, no fuso do relatório
func (e *FeedExtractor) Extract(ctx context.Context, now time.Time) (domain.MetricsWindow, error) {
	start, end := utils.TrailingDays(now, domain.WindowDays, e.location)

	window, err := e.repo.GetDailyMetrics(ctx, domain.ReportWindow{Start: start, End: end})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar métricas diárias")
	}

	if window.Len() == 0 {
		return nil, ErrEmptyWindow
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"start_date": start.Format(time.DateOnly),
		"end_date":   end.AddDate(0, 0, -1).Format(time.DateOnly),
		"days":       window.Len(),
	})

	// dias sem nenhum evento não aparecem no resultado
	if window.Len() < domain.WindowDays {
		found := make([]string, 0, window.Len())
		for _, day := range window.Days() {
			found = append(found, day.Format(time.DateOnly))
		}
		logger.WithField("found_days", found).Warn("Janela incompleta: há dias sem eventos")
	}

	logger.Info("Métricas do feed obtidas")

	return window, nil
}
