package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &Connection{DB: db}, mock
}

func TestRunInTransaction_Commit(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO feed_actions").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.Exec("INSERT INTO feed_actions VALUES ('u', 'view', now())")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_RollbackOnError(t *testing.T) {
	conn, mock := newMockConnection(t)
	errBoom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := conn.RunInTransaction(context.Background(), func(*sql.Tx) error {
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_RollbackOnPanic(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "falha", func() {
		_ = conn.RunInTransaction(context.Background(), func(*sql.Tx) error {
			panic("falha")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_BeginError(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	err := conn.RunInTransaction(context.Background(), func(*sql.Tx) error {
		t.Fatal("fn não deveria ser chamada")
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao iniciar transação")
}
