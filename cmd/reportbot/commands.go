package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/feed-report-bot/infrastructure/database/postgres"
	"github.com/vfg2006/feed-report-bot/infrastructure/migration"
	"github.com/vfg2006/feed-report-bot/internal/api"
	"github.com/vfg2006/feed-report-bot/internal/domain"
	"github.com/vfg2006/feed-report-bot/internal/scheduler"
	"github.com/vfg2006/feed-report-bot/internal/usecases/authenticating"
	"github.com/vfg2006/feed-report-bot/pkg/middleware"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "reportbot",
		Short:         "Relatório diário das métricas do feed no Telegram",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serve := newServeCmd()
	root.AddCommand(serve, newRunCmd(), newTokenCmd(), newSeedCmd())

	// sem subcomando, sobe o agendador com a API
	root.RunE = serve.RunE

	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Agenda o relatório e expõe a API administrativa",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			reportScheduler := scheduler.NewFeedReportService(a.pipeline, cfg)
			if err := reportScheduler.Start(ctx); err != nil {
				return err
			}

			if cfg.Auth.Secret == "" {
				logrus.Warn("AUTH_SECRET não configurado, rotas administrativas vão recusar todos os tokens")
			}

			server, err := api.New(cfg, authenticating.NewService(cfg), reportScheduler, a.metrics.Handler(), a.conn)
			if err != nil {
				return err
			}

			return server.Run(ctx)
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Executa o relatório uma vez e sai",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.pipeline.Run(ctx)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"run_id":   result.RunID,
				"day":      result.Day.Format(time.DateOnly),
				"attempts": result.Attempts,
			}).Info("Relatório enviado")

			return nil
		},
	}
}

func newTokenCmd() *cobra.Command {
	var (
		user string
		role string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Gera um token para a API administrativa",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			token, err := authenticating.NewService(cfg).GenerateToken(user, role, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&user, "user", "ops", "nome gravado no token")
	cmd.Flags().StringVar(&role, "role", middleware.RoleAdmin, "role do token (admin ou viewer)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "validade do token")

	return cmd
}

// newSeedCmd popula a tabela de eventos com dados sintéticos para desenvolvimento
func newSeedCmd() *cobra.Command {
	var (
		days  int
		users int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Cria a tabela de eventos e insere dados sintéticos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			conn, err := postgres.NewConnection(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
			}
			defer conn.Close()

			if err := migration.EnsureSchema(ctx, conn, cfg.Report.EventsTable); err != nil {
				return err
			}

			_, err = migration.Seed(ctx, conn, migration.SeedOptions{
				Table:    cfg.Report.EventsTable,
				Days:     days,
				Users:    users,
				Now:      time.Now(),
				Location: cfg.Report.Location,
			})
			return err
		},
	}

	cmd.Flags().IntVar(&days, "days", domain.WindowDays, "quantidade de dias anteriores a hoje")
	cmd.Flags().IntVar(&users, "users", 200, "usuários sintéticos por dia")

	return cmd
}
