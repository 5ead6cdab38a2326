package eventlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/admingate/internal/common"
	"github.com/dmitrijs2005/admingate/internal/eventlog/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresLog is a Log backend over a single admin_events table, for
// deployments that keep the event history in the existing PostgreSQL
// instance instead of a local queue file.
//
// The idx column is computed as max(idx)+1 inside the insert. There is one
// logical writer, but the append path still defends index assignment: a
// unique-violation from a competing writer is retried.
type PostgresLog struct {
	db *sql.DB
}

// appendRetries bounds the defensive retry loop on idx collisions.
const appendRetries = 5

// uniqueViolation is the PostgreSQL error code for duplicate keys.
const uniqueViolation = "23505"

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// NewPostgresLog wraps an open database handle. The caller owns the handle.
func NewPostgresLog(db *sql.DB) *PostgresLog {
	return &PostgresLog{db: db}
}

// RunMigrations sets up goose with the embedded migrations and applies them.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

func (l *PostgresLog) Append(ctx context.Context, data []byte) (uint64, error) {
	var lastErr error
	for attempt := 0; attempt < appendRetries; attempt++ {
		var idx uint64
		err := l.db.QueryRowContext(ctx,
			`INSERT INTO admin_events (idx, payload)
			 SELECT COALESCE(MAX(idx), 0)+1, $1 FROM admin_events
			 RETURNING idx`, data).Scan(&idx)
		if err == nil {
			return idx, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			lastErr = err
			continue
		}
		return 0, fmt.Errorf("eventlog: append: %w", err)
	}
	return 0, fmt.Errorf("eventlog: append: index contention: %w", lastErr)
}

func (l *PostgresLog) tail(ctx context.Context) (uint64, error) {
	var max sql.NullInt64
	if err := l.db.QueryRowContext(ctx, `SELECT MAX(idx) FROM admin_events`).Scan(&max); err != nil {
		return 0, fmt.Errorf("eventlog: tail: %w", err)
	}
	if !max.Valid {
		return Origin, nil
	}
	return uint64(max.Int64) + 1, nil
}

func (l *PostgresLog) OpenReader(ctx context.Context) (Reader, error) {
	tail, err := l.tail(ctx)
	if err != nil {
		return nil, err
	}
	return &postgresReader{log: l, next: tail}, nil
}

func (l *PostgresLog) OpenReaderAt(ctx context.Context, index uint64) (Reader, error) {
	tail, err := l.tail(ctx)
	if err != nil {
		return nil, err
	}
	if index < Origin || index > tail {
		return nil, fmt.Errorf("eventlog: index %d outside [%d, %d]: %w", index, Origin, tail, common.ErrOutOfRange)
	}
	return &postgresReader{log: l, next: index}, nil
}

// Close is a no-op; the database handle belongs to the caller.
func (l *PostgresLog) Close() error { return nil }

type postgresReader struct {
	log  *PostgresLog
	next uint64
}

func (r *postgresReader) Next(ctx context.Context) (*Record, error) {
	var payload []byte
	err := r.log.db.QueryRowContext(ctx,
		`SELECT payload FROM admin_events WHERE idx = $1`, r.next).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("eventlog: read idx %d: %w", r.next, err)
	}
	rec := &Record{Index: r.next, Data: payload}
	r.next++
	return rec, nil
}

func (r *postgresReader) Close() error { return nil }
