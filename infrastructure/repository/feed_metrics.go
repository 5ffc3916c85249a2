package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/feed-report-bot/infrastructure/database/postgres"
	"github.com/vfg2006/feed-report-bot/internal/domain"
)

//go:generate mockgen -source=feed_metrics.go -destination=mocks/feed_metrics.go -package=mocks

// FeedMetricsRepository agrega as ações do feed por dia
type FeedMetricsRepository interface {
	GetDailyMetrics(ctx context.Context, window domain.ReportWindow) (domain.MetricsWindow, error)
}

type feedMetricsRepository struct {
	conn     postgres.Queryer
	table    string
	location *time.Location
}

func NewFeedMetricsRepository(conn postgres.Queryer, table string, location *time.Location) FeedMetricsRepository {
	if location == nil {
		location = time.UTC
	}
	return &feedMetricsRepository{
		conn:     conn,
		table:    table,
		location: location,
	}
}

// GetDailyMetrics retorna uma linha por dia do intervalo [Start, End), em ordem crescente.
// Os dias são agrupados no fuso do relatório, não no fuso da sessão do Postgres.
func (r *feedMetricsRepository) GetDailyMetrics(ctx context.Context, window domain.ReportWindow) (domain.MetricsWindow, error) {
	query, args, err := squirrel.
		Select().
		Column(squirrel.Expr("DATE(fa.time AT TIME ZONE ?) AS day", r.location.String())).
		Columns(
			"COUNT(DISTINCT fa.user_id) AS dau",
			"COUNT(*) FILTER (WHERE fa.action = 'like') AS likes",
			"COUNT(*) FILTER (WHERE fa.action = 'view') AS views",
		).
		From(r.table + " fa").
		Where(squirrel.GtOrEq{"fa.time": window.Start}).
		Where(squirrel.Lt{"fa.time": window.End}).
		GroupBy("day").
		OrderBy("day ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make(domain.MetricsWindow, 0, domain.WindowDays)
	for rows.Next() {
		var (
			day               time.Time
			dau, likes, views int64
		)
		if err := rows.Scan(&day, &dau, &likes, &views); err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas diárias: %w", err)
		}

		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, r.location)
		metrics = append(metrics, domain.NewMetricsRow(day, dau, likes, views))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}
