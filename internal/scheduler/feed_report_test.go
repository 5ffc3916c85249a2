package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/feed-report-bot/internal/config"
	"github.com/vfg2006/feed-report-bot/internal/scheduler/mocks"
	"github.com/vfg2006/feed-report-bot/internal/usecases/reporting"
	"go.uber.org/mock/gomock"
)

func testConfig(enabled bool, cron string) *config.Config {
	return &config.Config{
		Report: config.Report{
			CronSchedule: cron,
			Enabled:      enabled,
			Location:     time.UTC,
		},
	}
}

func TestFeedReportService_RunNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		result    *reporting.RunResult
		err       error
		wantError string
	}{
		{
			name:   "Execução concluída",
			result: &reporting.RunResult{RunID: "run-ok", Attempts: 1},
		},
		{
			name:      "Execução com falha",
			result:    &reporting.RunResult{RunID: "run-fail", Attempts: 3},
			err:       &reporting.StepError{Step: reporting.StepSendReport, Err: errors.New("timeout")},
			wantError: "etapa send_report falhou: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := mocks.NewMockReportRunner(ctrl)
			runner.EXPECT().Run(gomock.Any()).Return(tt.result, tt.err)

			service := NewFeedReportService(runner, testConfig(true, "0 11 * * *"))

			result, err := service.RunNow(context.Background())
			assert.Equal(t, tt.result, result)
			assert.Equal(t, tt.err, err)

			status := service.GetStatus()
			assert.Equal(t, false, status["running"])
			assert.Equal(t, tt.result.RunID, status["last_run_id"])
			assert.Equal(t, tt.wantError, status["last_error"])
			assert.False(t, status["last_started_at"].(time.Time).IsZero())
			assert.False(t, status["last_completed_at"].(time.Time).IsZero())
		})
	}
}

func TestFeedReportService_SkipsOverlappingRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	runner := mocks.NewMockReportRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(context.Context) (*reporting.RunResult, error) {
			<-release
			return &reporting.RunResult{RunID: "first"}, nil
		}).
		Times(1)

	service := NewFeedReportService(runner, testConfig(true, "0 11 * * *"))

	done := make(chan error, 1)
	go func() {
		_, err := service.RunNow(context.Background())
		done <- err
	}()

	require.Eventually(t, func() bool {
		return service.GetStatus()["running"] == true
	}, time.Second, 5*time.Millisecond)

	_, err := service.RunNow(context.Background())
	assert.ErrorIs(t, err, ErrRunInProgress)
	assert.ErrorIs(t, service.TriggerManualRun(), ErrRunInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, "first", service.GetStatus()["last_run_id"])
}

func TestFeedReportService_TriggerManualRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockReportRunner(ctrl)
	runner.EXPECT().Run(gomock.Any()).Return(&reporting.RunResult{RunID: "manual"}, nil)

	service := NewFeedReportService(runner, testConfig(false, "0 11 * * *"))

	require.NoError(t, service.TriggerManualRun())

	require.Eventually(t, func() bool {
		status := service.GetStatus()
		return status["last_run_id"] == "manual" && status["running"] == false
	}, time.Second, 5*time.Millisecond)
}

func TestFeedReportService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Desabilitado não agenda", func(t *testing.T) {
		service := NewFeedReportService(mocks.NewMockReportRunner(ctrl), testConfig(false, "0 11 * * *"))

		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("Cron inválida", func(t *testing.T) {
		service := NewFeedReportService(mocks.NewMockReportRunner(ctrl), testConfig(true, "todo dia"))

		err := service.Start(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "erro ao agendar relatório do feed")
	})

	t.Run("Agenda e para com o contexto", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		service := NewFeedReportService(mocks.NewMockReportRunner(ctrl), testConfig(true, "0 11 * * *"))

		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)
		assert.True(t, service.scheduler.IsRunning())

		cancel()
		require.Eventually(t, func() bool {
			return !service.scheduler.IsRunning()
		}, time.Second, 5*time.Millisecond)
	})
}

func TestFeedReportService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	cfg := testConfig(true, "0 11 * * *")
	cfg.Report.Location = moscow
	service := NewFeedReportService(mocks.NewMockReportRunner(ctrl), cfg)

	status := service.GetStatus()
	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "0 11 * * *", status["cron"])
	assert.Equal(t, "Europe/Moscow", status["timezone"])
	assert.Equal(t, false, status["running"])
	assert.Equal(t, "", status["last_run_id"])
}
