// Package migration prepara a tabela de eventos do feed para ambientes locais
package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/feed-report-bot/infrastructure/database/postgres"
	"github.com/vfg2006/feed-report-bot/pkg/utils"
)

const (
	userIDLength = 8

	// limite de parâmetros do Postgres por statement é 65535
	maxUsersPerDay = 2000
)

var ErrInvalidSeedOptions = errors.New("opções de carga inválidas")

// SeedOptions controla a geração de eventos sintéticos
type SeedOptions struct {
	Table    string
	Days     int
	Users    int
	Now      time.Time
	Location *time.Location
	Rand     *rand.Rand
}

// EnsureSchema cria a tabela de eventos e o índice por horário, caso não existam
func EnsureSchema(ctx context.Context, db postgres.Execer, table string) error {
	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			user_id TEXT NOT NULL,
			action  TEXT NOT NULL,
			time    TIMESTAMPTZ NOT NULL
		)`, table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_time_idx ON %s (time)`, table, table),
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao criar schema de %s: %w", table, err)
		}
	}

	return nil
}

// Seed insere visualizações e curtidas nos Days dias anteriores a Now, um statement por dia
func Seed(ctx context.Context, db postgres.Transactor, opts SeedOptions) (int, error) {
	if opts.Table == "" || opts.Days <= 0 || opts.Users <= 0 || opts.Users > maxUsersPerDay {
		return 0, fmt.Errorf("%w: tabela=%q dias=%d usuários=%d", ErrInvalidSeedOptions, opts.Table, opts.Days, opts.Users)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(opts.Now.UnixNano()), 0))
	}

	users := make([]string, opts.Users)
	for i := range users {
		id, err := utils.GenerateIDFrom(utils.LowerAlphanumeric, userIDLength)
		if err != nil {
			return 0, fmt.Errorf("erro ao gerar usuário: %w", err)
		}
		users[i] = id
	}

	start, _ := utils.TrailingDays(opts.Now, opts.Days, opts.Location)
	startTime := time.Now()
	total := 0

	err := db.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for d := 0; d < opts.Days; d++ {
			day := start.AddDate(0, 0, d)

			query, args, rows, err := dayInsert(opts, users, day)
			if err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao inserir eventos de %s: %w", day.Format(time.DateOnly), err)
			}
			total += rows
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"table":    opts.Table,
		"days":     opts.Days,
		"users":    opts.Users,
		"events":   total,
		"duration": time.Since(startTime).String(),
	}).Info("Carga de eventos do feed concluída")

	return total, nil
}

// dayInsert monta o insert de um dia: cada usuário vê de 1 a 5 posts e curte no máximo o que viu
func dayInsert(opts SeedOptions, users []string, day time.Time) (string, []interface{}, int, error) {
	insert := squirrel.Insert(opts.Table).
		Columns("user_id", "action", "time").
		PlaceholderFormat(squirrel.Dollar)

	rows := 0
	for _, user := range users {
		views := 1 + opts.Rand.IntN(5)
		likes := opts.Rand.IntN(views + 1)
		for i := 0; i < views+likes; i++ {
			action := "view"
			if i >= views {
				action = "like"
			}
			at := day.Add(time.Duration(opts.Rand.Int64N(int64(24 * time.Hour))))
			insert = insert.Values(user, action, at)
			rows++
		}
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, 0, fmt.Errorf("erro ao construir insert: %w", err)
	}
	return query, args, rows, nil
}
