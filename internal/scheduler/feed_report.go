// Package scheduler contém o agendamento do relatório diário do feed
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/feed-report-bot/internal/config"
	"github.com/vfg2006/feed-report-bot/internal/usecases/reporting"
)

//go:generate mockgen -source=feed_report.go -destination=mocks/feed_report.go -package=mocks

// ErrRunInProgress indica que já existe uma execução do relatório neste processo
var ErrRunInProgress = errors.New("execução do relatório já em andamento")

// ReportRunner executa o pipeline completo do relatório
type ReportRunner interface {
	Run(ctx context.Context) (*reporting.RunResult, error)
}

type FeedReportConfig struct {
	CronSchedule string
	Enabled      bool
	Location     *time.Location
}

// FeedReportService agenda e dispara as execuções do relatório do feed
type FeedReportService struct {
	scheduler *gocron.Scheduler
	config    FeedReportConfig
	runner    ReportRunner

	// contexto usado pelas execuções manuais, definido em Start
	baseCtx context.Context

	runMutex        sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
	lastRunID       string
}

func NewFeedReportService(runner ReportRunner, cfg *config.Config) *FeedReportService {
	reportConfig := FeedReportConfig{
		CronSchedule: cfg.Report.CronSchedule, // Default: 11h todos os dias
		Enabled:      cfg.Report.Enabled,
		Location:     cfg.Report.Location,
	}
	if reportConfig.Location == nil {
		reportConfig.Location = time.UTC
	}

	scheduler := gocron.NewScheduler(reportConfig.Location)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"timezone":      reportConfig.Location.String(),
		"enabled":       reportConfig.Enabled,
	}).Info("Configuração do agendador do relatório do feed carregada")

	return &FeedReportService{
		scheduler: scheduler,
		config:    reportConfig,
		runner:    runner,
		baseCtx:   context.Background(),
	}
}

func (s *FeedReportService) Start(ctx context.Context) error {
	s.runMutex.Lock()
	s.baseCtx = ctx
	s.runMutex.Unlock()

	if !s.config.Enabled {
		logrus.Info("Cron do relatório do feed desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do relatório do feed")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunNow(ctx); err != nil && !errors.Is(err, ErrRunInProgress) {
			logrus.WithError(err).Error("Erro na execução agendada do relatório do feed")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório do feed: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do relatório do feed")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa o relatório de forma síncrona, pulando se já houver uma execução em andamento
func (s *FeedReportService) RunNow(ctx context.Context) (*reporting.RunResult, error) {
	if !s.acquire() {
		logrus.Warn("Execução do relatório do feed já em andamento, ignorando disparo")
		return nil, ErrRunInProgress
	}

	return s.execute(ctx)
}

// TriggerManualRun inicia uma execução em segundo plano
func (s *FeedReportService) TriggerManualRun() error {
	if !s.acquire() {
		logrus.Info("Execução do relatório do feed já em andamento, ignorando solicitação manual")
		return ErrRunInProgress
	}

	s.runMutex.Lock()
	ctx := s.baseCtx
	s.runMutex.Unlock()

	logrus.Info("Iniciando execução manual do relatório do feed")
	go func() {
		if _, err := s.execute(ctx); err != nil {
			logrus.WithError(err).Error("Erro na execução manual do relatório do feed")
		}
	}()

	return nil
}

func (s *FeedReportService) acquire() bool {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if s.running {
		return false
	}
	s.running = true
	s.lastStartedAt = time.Now()
	return true
}

// execute deve ser chamado somente depois de acquire
func (s *FeedReportService) execute(ctx context.Context) (*reporting.RunResult, error) {
	result, err := s.runner.Run(ctx)

	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	s.running = false
	s.lastCompletedAt = time.Now()
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	if result != nil {
		s.lastRunID = result.RunID
	}

	return result, err
}

// GetStatus retorna o status atual do agendador
func (s *FeedReportService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"timezone":          s.config.Location.String(),
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_error":        s.lastError,
		"last_run_id":       s.lastRunID,
	}
}
