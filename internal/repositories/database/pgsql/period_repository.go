package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPeriodRepository struct {
	BaseRepository
}

// newPgxPeriodRepository creates a new repository for fiscal periods.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepository {
	return &PgxPeriodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PeriodRepository = (*PgxPeriodRepository)(nil)

const periodColumns = `period_id, org_id, name, start_date, end_date, status, closed_by, closed_at,
	locked_by, locked_at, closing_entry_id, created_at, created_by`

func scanPeriod(row pgx.Row) (models.FiscalPeriod, error) {
	var m models.FiscalPeriod
	err := row.Scan(
		&m.PeriodID,
		&m.OrgID,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.ClosedBy,
		&m.ClosedAt,
		&m.LockedBy,
		&m.LockedAt,
		&m.ClosingEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

// lockCoveringPeriod share-locks the period containing date. Posters hold FOR SHARE and
// close/lock hold FOR UPDATE, so a status change never interleaves with an insert. The
// shared calendar lock is taken first: when no period covers the date there is no row to
// lock, and the calendar lock keeps a period from being created underneath the insert.
func lockCoveringPeriod(ctx context.Context, tx pgx.Tx, orgID string, date time.Time) (*domain.FiscalPeriod, error) {
	if err := lockPeriodCalendar(ctx, tx, orgID, false); err != nil {
		return nil, err
	}
	query := `SELECT ` + periodColumns + ` FROM fiscal_periods
		WHERE org_id = $1 AND start_date <= $2 AND end_date >= $2
		FOR SHARE;`
	m, err := scanPeriod(tx.QueryRow(ctx, query, orgID, domain.DateOnly(date)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock covering period: %w", err)
	}
	d := mapping.ToDomainFiscalPeriod(m)
	return &d, nil
}

// SavePeriod persists a new period under the exclusive calendar lock, after every
// in-flight posting that found no covering period has committed. The exclusion
// constraint rejects overlaps.
func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.FiscalPeriod) error {
	m := mapping.ToModelFiscalPeriod(period)
	query := `INSERT INTO fiscal_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		if err := lockPeriodCalendar(ctx, tx, period.OrgID, true); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, query,
			m.PeriodID,
			m.OrgID,
			m.Name,
			m.StartDate,
			m.EndDate,
			m.Status,
			m.ClosedBy,
			m.ClosedAt,
			m.LockedBy,
			m.LockedAt,
			m.ClosingEntryID,
			m.CreatedAt,
			m.CreatedBy,
		)
		return err
	})
	if err != nil {
		if code, _ := pgErrorCode(err); code == exclusionViolation {
			return &apperrors.PeriodOverlapError{Name: period.Name, Existing: r.overlappingName(ctx, period)}
		}
		return fmt.Errorf("failed to save fiscal period %s: %w", period.Name, err)
	}
	return nil
}

// overlappingName names the period that blocked an insert, for the error message only.
func (r *PgxPeriodRepository) overlappingName(ctx context.Context, period domain.FiscalPeriod) string {
	var name string
	query := `SELECT name FROM fiscal_periods WHERE org_id = $1 AND start_date <= $3 AND end_date >= $2 ORDER BY start_date LIMIT 1;`
	if err := r.Pool.QueryRow(ctx, query, period.OrgID, domain.DateOnly(period.StartDate), domain.DateOnly(period.EndDate)).Scan(&name); err != nil {
		return "unknown"
	}
	return name
}

func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, orgID, periodID string) (*domain.FiscalPeriod, error) {
	return findPeriod(ctx, r.Pool, orgID, periodID, false)
}

func findPeriod(ctx context.Context, q dbtx, orgID, periodID string, forUpdate bool) (*domain.FiscalPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM fiscal_periods WHERE org_id = $1 AND period_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	m, err := scanPeriod(q.QueryRow(ctx, query, orgID, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("fiscal period %s not found", periodID))
		}
		return nil, fmt.Errorf("failed to find fiscal period %s: %w", periodID, err)
	}
	d := mapping.ToDomainFiscalPeriod(m)
	return &d, nil
}

// FindCoveringPeriod returns the period containing date, or nil when there is none.
func (r *PgxPeriodRepository) FindCoveringPeriod(ctx context.Context, orgID string, date time.Time) (*domain.FiscalPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM fiscal_periods WHERE org_id = $1 AND start_date <= $2 AND end_date >= $2;`
	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, orgID, domain.DateOnly(date)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find covering period: %w", err)
	}
	d := mapping.ToDomainFiscalPeriod(m)
	return &d, nil
}

// ListPeriods returns the org's periods ordered by start date.
func (r *PgxPeriodRepository) ListPeriods(ctx context.Context, orgID string) ([]domain.FiscalPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM fiscal_periods WHERE org_id = $1 ORDER BY start_date;`
	rows, err := r.Pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fiscal periods for org %s: %w", orgID, err)
	}
	defer rows.Close()

	periods := []domain.FiscalPeriod{}
	for rows.Next() {
		m, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fiscal period row: %w", err)
		}
		periods = append(periods, mapping.ToDomainFiscalPeriod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fiscal period rows: %w", err)
	}
	return periods, nil
}

// ClosePeriod zeroes the period's income-statement balances into retained earnings and
// marks it CLOSED in one transaction. The FOR UPDATE lock waits for in-flight postings
// holding FOR SHARE, so the balances it sums are final.
func (r *PgxPeriodRepository) ClosePeriod(ctx context.Context, orgID, periodID, actor string, at time.Time, build portsrepo.ClosingEntryBuilder) (*domain.FiscalPeriod, error) {
	var closed *domain.FiscalPeriod
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		p, err := findPeriod(ctx, tx, orgID, periodID, true)
		if err != nil {
			return err
		}
		if !p.Status.CanTransitionTo(domain.PeriodClosed) {
			return &apperrors.IllegalTransitionError{PeriodName: p.Name, From: string(p.Status), To: string(domain.PeriodClosed)}
		}

		start, end := p.StartDate, p.EndDate
		balances, err := queryBalances(ctx, tx, domain.BalanceQuery{
			OrgID:          orgID,
			From:           &start,
			To:             &end,
			Types:          []domain.AccountType{domain.Revenue, domain.COGS, domain.Expense},
			ExcludeSources: []domain.Source{domain.SourcePeriodClose},
			GroupByBranch:  true,
		})
		if err != nil {
			return err
		}

		closing, err := build(*p, balances)
		if err != nil {
			return err
		}
		if closing != nil {
			_, created, err := insertEntryTx(ctx, tx, *closing, nil)
			if err != nil {
				return err
			}
			if !created {
				return apperrors.NewConflictError(fmt.Sprintf("closing entry for period %q already exists", p.Name))
			}
			p.ClosingEntryID = closing.EntryID
		}

		_, err = tx.Exec(ctx, `
			UPDATE fiscal_periods
			SET status = $3, closed_by = $4, closed_at = $5, closing_entry_id = $6
			WHERE org_id = $1 AND period_id = $2;`,
			orgID, periodID, string(domain.PeriodClosed), actor, at, nullableID(p.ClosingEntryID))
		if err != nil {
			return fmt.Errorf("failed to close fiscal period %s: %w", p.Name, err)
		}

		p.Status = domain.PeriodClosed
		p.ClosedBy = actor
		p.ClosedAt = &at
		closed = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}

// LockPeriod moves a CLOSED period to LOCKED.
func (r *PgxPeriodRepository) LockPeriod(ctx context.Context, orgID, periodID, actor string, at time.Time) (*domain.FiscalPeriod, error) {
	var locked *domain.FiscalPeriod
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		p, err := findPeriod(ctx, tx, orgID, periodID, true)
		if err != nil {
			return err
		}
		if !p.Status.CanTransitionTo(domain.PeriodLocked) {
			return &apperrors.IllegalTransitionError{PeriodName: p.Name, From: string(p.Status), To: string(domain.PeriodLocked)}
		}

		_, err = tx.Exec(ctx,
			`UPDATE fiscal_periods SET status = $3, locked_by = $4, locked_at = $5 WHERE org_id = $1 AND period_id = $2;`,
			orgID, periodID, string(domain.PeriodLocked), actor, at)
		if err != nil {
			return fmt.Errorf("failed to lock fiscal period %s: %w", p.Name, err)
		}

		p.Status = domain.PeriodLocked
		p.LockedBy = actor
		p.LockedAt = &at
		locked = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return locked, nil
}

func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
