package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/infras/postgres"
)

func newConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return postgres.NewFromDB(sqlx.NewDb(db, "postgres")), mock
}

func TestWithTxCommit(t *testing.T) {
	conn, mock := newConnection(t)

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtext\(\$1\)\)`).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := conn.WithTx(context.Background(), &sql.TxOptions{Isolation: sql.LevelSerializable}, func(tx *sqlx.Tx) error {
		return postgres.LockTx(context.Background(), tx, "user-1")
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxRollback(t *testing.T) {
	conn, mock := newConnection(t)
	errBoom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := conn.WithTx(context.Background(), nil, func(_ *sqlx.Tx) error {
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxRetriesSerializationFailure(t *testing.T) {
	conn, mock := newConnection(t)
	calls := 0

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := conn.WithTx(context.Background(), nil, func(_ *sqlx.Tx) error {
		calls++
		if calls == 1 {
			return &pq.Error{Code: "40001"}
		}

		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxGivesUp(t *testing.T) {
	conn, mock := newConnection(t)
	conn.MaxTxAttempts = 2

	for range 2 {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	err := conn.WithTx(context.Background(), nil, func(_ *sqlx.Tx) error {
		return &pq.Error{Code: "40001"}
	})

	var pqErr *pq.Error
	assert.ErrorAs(t, err, &pqErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescriptor(t *testing.T) {
	assert.Equal(t,
		"postgres://tourism:p%40ss@db:5432/tourism?sslmode=disable&timezone=Asia%2FJakarta",
		postgres.Descriptor("tourism", "p@ss", "db", "5432", "tourism", "disable", "Asia/Jakarta"),
	)

	assert.Equal(t,
		"postgres://tourism:secret@db:5432/tourism?sslmode=require",
		postgres.Descriptor("tourism", "secret", "db", "5432", "tourism", "require", ""),
	)
}
