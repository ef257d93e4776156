package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres SQLSTATE codes the repositories translate into domain errors.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	exclusionViolation  = "23P01"
)

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewInternalServerError("failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewInternalServerError("failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction. Rolling back a committed transaction is a no-op.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewInternalServerError("failed to rollback transaction", err)
	}
	return nil
}

// WithTx runs fn inside a transaction and commits when it returns nil.
func (r *BaseRepository) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func pgErrorCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// bumpLedgerVersion increments the org's ledger version inside tx. The row lock it
// takes is held until commit, so versions advance in commit order.
func bumpLedgerVersion(ctx context.Context, tx pgx.Tx, orgID string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO ledger_versions (org_id, version) VALUES ($1, 1)
		ON CONFLICT (org_id) DO UPDATE SET version = ledger_versions.version + 1;`, orgID)
	if err != nil {
		return fmt.Errorf("failed to bump ledger version of org %s: %w", orgID, err)
	}
	return nil
}

// lockPeriodCalendar takes the org's transaction-scoped period calendar lock. Postings
// hold it shared while they look for a covering period; creating a period holds it
// exclusively, so a period never appears under an uncommitted posting it should cover.
func lockPeriodCalendar(ctx context.Context, tx pgx.Tx, orgID string, exclusive bool) error {
	query := `SELECT pg_advisory_xact_lock_shared(hashtext('ledger.periods:' || $1));`
	if exclusive {
		query = `SELECT pg_advisory_xact_lock(hashtext('ledger.periods:' || $1));`
	}
	if _, err := tx.Exec(ctx, query, orgID); err != nil {
		return fmt.Errorf("failed to lock period calendar of org %s: %w", orgID, err)
	}
	return nil
}
