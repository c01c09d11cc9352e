package postgres

//nolint:revive
import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/shared/constant"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection holds the read replica and the primary pools.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB

	// MaxTxAttempts bounds WithTx retries on serialization failures.
	MaxTxAttempts int
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:          CreatePostgresReadConn(*config),
		Write:         CreatePostgresWriteConn(*config),
		MaxTxAttempts: 3,
	}
}

// NewFromDB wraps a single pool for both reads and writes.
func NewFromDB(db *sqlx.DB) *Connection {
	return &Connection{Read: db, Write: db, MaxTxAttempts: 3}
}

// WithTx runs fn inside a transaction on the write pool. The transaction is committed when
// fn returns nil and rolled back otherwise. Serialization failures and deadlocks restart
// fn in a fresh transaction, so fn must not keep state across attempts.
func (c *Connection) WithTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *sqlx.Tx) error) error {
	attempts := max(c.MaxTxAttempts, 1)

	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		err = c.runTx(ctx, opts, fn)
		if err == nil || !retryable(err) {
			return err
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("Transaction conflict, retrying")
	}

	return err
}

func (c *Connection) runTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *sqlx.Tx) error) error {
	tx, err := c.Write.BeginTxx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("Failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// LockTx takes a transaction scoped advisory lock on key. It is released on commit or rollback.
func LockTx(ctx context.Context, tx *sqlx.Tx, key string) error {
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		return fmt.Errorf("failed to acquire advisory lock: %w", err)
	}

	return nil
}

func retryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	return pqErr.Code == constant.PqErrorCodeSerializationFailure || pqErr.Code == constant.PqErrorCodeDeadlockDetected
}

func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	write := config.DB.Postgres.Write

	return CreatePostgresConnection(
		"write",
		write.Username,
		write.Password,
		write.Host,
		write.Port,
		getDBName(config, write.Name),
		write.SSLMode,
		write.Timezone,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	read := config.DB.Postgres.Read

	return CreatePostgresConnection(
		"read",
		read.Username,
		read.Password,
		read.Host,
		read.Port,
		getDBName(config, read.Name),
		read.SSLMode,
		read.Timezone,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// Descriptor builds a lib/pq connection URL. An empty timezone keeps the server default.
func Descriptor(username, password, host, port, dbName, sslMode, timezone string) string {
	query := url.Values{}
	query.Set("sslmode", sslMode)

	if timezone != "" {
		query.Set("timezone", timezone)
	}

	descriptor := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(username, password),
		Host:     net.JoinHostPort(host, port),
		Path:     dbName,
		RawQuery: query.Encode(),
	}

	return descriptor.String()
}

// CreatePostgresConnection dials postgres, retrying maxRetry times with waitTime seconds between attempts.
func CreatePostgresConnection(name, username, password, host, port, dbName, sslMode, timezone string, maxRetry, waitTime int) *sqlx.DB {
	descriptor := Descriptor(username, password, host, port, dbName, sslMode, timezone)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.Info().
				Str("name", name).
				Str("host", host).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Error().Str("name", name).Msg("Giving up connecting to database")

	return nil
}
