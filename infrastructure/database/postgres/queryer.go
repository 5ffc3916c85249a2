package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de *sql.DB usado pelo repositório de métricas, somente leitura
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// Execer executa DDL fora de transação
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Transactor agrupa escritas que devem ser aplicadas juntas
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

var _ Conn = (*Connection)(nil)
