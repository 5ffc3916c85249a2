package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/feed-report-bot/infrastructure/database/postgres"
	"github.com/vfg2006/feed-report-bot/infrastructure/integrator/telegram"
	"github.com/vfg2006/feed-report-bot/infrastructure/integrator/telegram/telegramclient"
	"github.com/vfg2006/feed-report-bot/infrastructure/repository"
	"github.com/vfg2006/feed-report-bot/internal/config"
	"github.com/vfg2006/feed-report-bot/internal/metrics"
	"github.com/vfg2006/feed-report-bot/internal/usecases/reporting"
	"github.com/vfg2006/feed-report-bot/pkg/log"
)

// app agrupa as dependências montadas a partir da configuração
type app struct {
	cfg      *config.Config
	conn     *postgres.Connection
	metrics  *metrics.Metrics
	pipeline *reporting.Pipeline
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	return cfg, nil
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}
	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	telegramClient, err := telegramclient.NewClient(cfg)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("erro ao autenticar o bot do Telegram: %w", err)
	}

	feedMetricsRepo := repository.NewFeedMetricsRepository(conn, cfg.Report.EventsTable, cfg.Report.Location)
	reportMetrics := metrics.New()

	pipeline := reporting.NewPipeline(
		cfg,
		reporting.NewExtractor(cfg, feedMetricsRepo),
		reporting.NewRenderer(),
		reporting.NewPublisher(telegram.New(cfg, telegramClient)),
		reportMetrics,
	)

	return &app{
		cfg:      cfg,
		conn:     conn,
		metrics:  reportMetrics,
		pipeline: pipeline,
	}, nil
}

func (a *app) Close() {
	if err := a.conn.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
	}
}
