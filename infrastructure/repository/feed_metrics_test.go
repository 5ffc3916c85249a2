package repository

import (
	"context"
	"errors"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/feed-report-bot/internal/domain"
)

const expectedDailyMetricsQuery = "SELECT DATE(fa.time AT TIME ZONE $1) AS day, COUNT(DISTINCT fa.user_id) AS dau, " +
	"COUNT(*) FILTER (WHERE fa.action = 'like') AS likes, COUNT(*) FILTER (WHERE fa.action = 'view') AS views " +
	"FROM feed_actions fa WHERE fa.time >= $2 AND fa.time < $3 GROUP BY day ORDER BY day ASC"

func newWindow() domain.ReportWindow {
	return domain.ReportWindow{
		Start: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
	}
}

func TestFeedMetricsRepository_GetDailyMetrics(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	window := newWindow()
	rows := sqlmock.NewRows([]string{"day", "dau", "likes", "views"})
	for i := 0; i < domain.WindowDays; i++ {
		rows.AddRow(window.Start.AddDate(0, 0, i), int64(100+10*i), int64(50), int64(200))
	}

	mock.ExpectQuery(regexp.QuoteMeta(expectedDailyMetricsQuery)).
		WithArgs("UTC", window.Start, window.End).
		WillReturnRows(rows)

	repo := NewFeedMetricsRepository(db, "feed_actions", time.UTC)

	metrics, err := repo.GetDailyMetrics(context.Background(), window)
	require.NoError(t, err)
	require.Len(t, metrics, domain.WindowDays)

	assert.Equal(t, window.Start, metrics[0].Day)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), metrics[6].Day)
	assert.Equal(t, int64(100), metrics[0].DAU)
	assert.Equal(t, int64(160), metrics[6].DAU)
	assert.InDelta(t, 0.25, metrics[6].CTR, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedMetricsRepository_ZeroViewsKeepsNonFiniteCTR(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	window := newWindow()
	mock.ExpectQuery(regexp.QuoteMeta("FROM feed_actions fa")).
		WillReturnRows(sqlmock.NewRows([]string{"day", "dau", "likes", "views"}).
			AddRow(window.Start, int64(10), int64(0), int64(0)))

	repo := NewFeedMetricsRepository(db, "feed_actions", time.UTC)

	metrics, err := repo.GetDailyMetrics(context.Background(), window)
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.True(t, math.IsNaN(metrics[0].CTR))
}

func TestFeedMetricsRepository_CustomTableAndLocation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	loc := time.FixedZone("Europe/Moscow", 3*60*60)
	window := domain.ReportWindow{
		Start: time.Date(2024, 1, 9, 0, 0, 0, 0, loc),
		End:   time.Date(2024, 1, 16, 0, 0, 0, 0, loc),
	}
	// o agrupamento por dia usa o mesmo fuso dos limites da janela
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DATE(fa.time AT TIME ZONE $1) AS day")).
		WithArgs("Europe/Moscow", window.Start, window.End).
		WillReturnRows(sqlmock.NewRows([]string{"day", "dau", "likes", "views"}).
			AddRow(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), int64(10), int64(1), int64(4)))

	repo := NewFeedMetricsRepository(db, "simulator.feed_actions", loc)

	metrics, err := repo.GetDailyMetrics(context.Background(), window)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, loc), metrics[0].Day)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedMetricsRepository_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	connErr := errors.New("connection refused")
	mock.ExpectQuery(regexp.QuoteMeta("FROM feed_actions fa")).WillReturnError(connErr)

	repo := NewFeedMetricsRepository(db, "feed_actions", time.UTC)

	_, err = repo.GetDailyMetrics(context.Background(), newWindow())
	require.Error(t, err)
	assert.ErrorIs(t, err, connErr)
	assert.Contains(t, err.Error(), "erro ao executar a query")
}

func TestFeedMetricsRepository_RowError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	window := newWindow()
	rowErr := errors.New("broken pipe")
	mock.ExpectQuery(regexp.QuoteMeta("FROM feed_actions fa")).
		WillReturnRows(sqlmock.NewRows([]string{"day", "dau", "likes", "views"}).
			AddRow(window.Start, int64(10), int64(1), int64(4)).
			AddRow(window.Start.AddDate(0, 0, 1), int64(10), int64(1), int64(4)).
			RowError(1, rowErr))

	repo := NewFeedMetricsRepository(db, "feed_actions", time.UTC)

	_, err = repo.GetDailyMetrics(context.Background(), window)
	require.Error(t, err)
	assert.ErrorIs(t, err, rowErr)
}
