package reporting

import (
	"time"

	"github.com/vfg2006/feed-report-bot/internal/config"
	"github.com/vfg2006/feed-report-bot/internal/domain"
)

func weekWindow() domain.MetricsWindow {
	start := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)

	window := make(domain.MetricsWindow, 0, domain.WindowDays)
	for i := 0; i < domain.WindowDays; i++ {
		window = append(window, domain.NewMetricsRow(start.AddDate(0, 0, i), int64(94+i), int64(44+i), int64(194+i)))
	}
	// último dia: DAU 100, likes 50, views 200
	return window
}

func testConfig(retries int) *config.Config {
	return &config.Config{
		Report: config.Report{
			Retries:    retries,
			RetryDelay: 0,
			Location:   time.UTC,
		},
	}
}
