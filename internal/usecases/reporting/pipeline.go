package reporting

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/vfg2006/feed-report-bot/internal/config"
	"github.com/vfg2006/feed-report-bot/internal/domain"
	"github.com/vfg2006/feed-report-bot/pkg/log"
	"github.com/vfg2006/feed-report-bot/pkg/utils"
)

// RunResult resume uma execução concluída ou abandonada
type RunResult struct {
	RunID       string    `json:"run_id"`
	Day         time.Time `json:"day"`
	Attempts    int       `json:"attempts"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// Pipeline executa extração, renderização e envio, repetindo a execução inteira em caso de falha
type Pipeline struct {
	extractor  Extractor
	renderer   Renderer
	publisher  Publisher
	recorder   Recorder
	retries    int
	retryDelay time.Duration
	now        func() time.Time
}

func NewPipeline(
	cfg *config.Config,
	extractor Extractor,
	renderer Renderer,
	publisher Publisher,
	recorder Recorder,
) *Pipeline {
	return &Pipeline{
		extractor:  extractor,
		renderer:   renderer,
		publisher:  publisher,
		recorder:   recorder,
		retries:    cfg.Report.Retries,
		retryDelay: cfg.Report.RetryDelay,
		now:        time.Now,
	}
}

// Run executa o relatório com até Retries tentativas adicionais.
// O erro retornado é um *StepError da última tentativa ou o erro do contexto.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID da execução")
	}

	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx)

	result := &RunResult{
		RunID:     runID,
		StartedAt: p.now(),
	}

	logger.Info("Iniciando execução do relatório do feed")

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(p.retryDelay), uint64(p.retries)),
		ctx,
	)

	operation := func() error {
		result.Attempts++
		p.recorder.ObserveAttempt()

		day, err := p.attempt(ctx, log.ForContext(ctx).WithField("attempt", result.Attempts))
		if err != nil {
			return err
		}
		result.Day = day
		return nil
	}

	notify := func(err error, next time.Duration) {
		logger.WithError(err).WithField("attempt", result.Attempts).
			Warnf("Tentativa do relatório falhou, repetindo em %s", next)
	}

	err = backoff.RetryNotify(operation, policy, notify)
	result.CompletedAt = p.now()
	p.recorder.ObserveRun(err, result.CompletedAt)

	if err != nil {
		logger.WithError(err).WithField("attempt", result.Attempts).Error("Execução do relatório falhou")
		return result, err
	}

	logger.WithFields(log.Fields{
		"attempt":     result.Attempts,
		"duration_ms": result.CompletedAt.Sub(result.StartedAt).Milliseconds(),
	}).Info("Execução do relatório concluída")

	return result, nil
}

// attempt executa as três etapas em sequência; a primeira falha interrompe a tentativa
func (p *Pipeline) attempt(ctx context.Context, logger log.Logger) (time.Time, error) {
	var (
		window  domain.MetricsWindow
		payload *domain.ReportPayload
	)

	err := p.step(logger, StepExtractData, func() (err error) {
		window, err = p.extractor.Extract(ctx, p.now())
		return err
	})
	if err != nil {
		return time.Time{}, err
	}

	err = p.step(logger, StepTransformAndPlot, func() (err error) {
		payload, err = p.renderer.Render(ctx, window)
		return err
	})
	if err != nil {
		return time.Time{}, err
	}

	err = p.step(logger, StepSendReport, func() error {
		return p.publisher.Publish(ctx, payload)
	})
	if err != nil {
		return time.Time{}, err
	}

	return payload.Day, nil
}

func (p *Pipeline) step(logger log.Logger, name string, fn func() error) error {
	logger = logger.WithStep(name)
	logger.Debug("Iniciando etapa")

	start := time.Now()
	err := fn()
	duration := time.Since(start)
	p.recorder.ObserveStep(name, duration, err)

	if err != nil {
		logger.WithError(err).Error("Etapa do relatório falhou")
		return &StepError{Step: name, Err: err}
	}

	logger.WithField("duration_ms", duration.Milliseconds()).Debug("Etapa concluída")
	return nil
}
