package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, org_id, code, name, account_type, parent_account_id, description, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.OrgID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.ParentAccountID,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxAccountRepository) findOne(ctx context.Context, query string, args []any, notFound string) (*domain.Account, error) {
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(notFound)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// FindAccountByID retrieves a specific account of an org by its unique identifier.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, orgID, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE org_id = $1 AND account_id = $2;`
	return r.findOne(ctx, query, []any{orgID, accountID}, fmt.Sprintf("account %s not found", accountID))
}

// FindAccountByCode retrieves an account by its org-unique code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, orgID, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE org_id = $1 AND code = $2;`
	return r.findOne(ctx, query, []any{orgID, code}, fmt.Sprintf("account with code %s not found", code))
}

// FindAccountsByIDs retrieves multiple accounts of an org in one round trip.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, orgID string, accountIDs []string) (map[string]domain.Account, error) {
	out := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return out, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE org_id = $1 AND account_id = ANY($2);`
	rows, err := r.Pool.Query(ctx, query, orgID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		out[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return out, nil
}

// ListAccounts retrieves the org's accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, orgID string, filter domain.AccountFilter) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE org_id = $1`
	args := []any{orgID}
	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		query += ` AND account_type = $` + strconv.Itoa(len(args))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		query += ` AND is_active = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for org %s: %w", orgID, err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

// AccountHasLines reports whether any journal line references the account.
func (r *PgxAccountRepository) AccountHasLines(ctx context.Context, orgID, accountID string) (bool, error) {
	return accountHasLines(ctx, r.Pool, orgID, accountID)
}

func accountHasLines(ctx context.Context, db dbtx, orgID, accountID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM journal_lines l
			JOIN journal_entries e ON e.entry_id = l.entry_id
			WHERE e.org_id = $1 AND l.account_id = $2
		);
	`
	var exists bool
	if err := db.QueryRow(ctx, query, orgID, accountID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check lines of account %s: %w", accountID, err)
	}
	return exists, nil
}

// SaveAccount persists a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query,
			m.AccountID,
			m.OrgID,
			m.Code,
			m.Name,
			m.AccountType,
			m.ParentAccountID,
			m.Description,
			m.IsActive,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return err
		}
		return bumpLedgerVersion(ctx, tx, account.OrgID)
	})
	if err != nil {
		switch code, _ := pgErrorCode(err); code {
		case uniqueViolation:
			return &apperrors.DuplicateCodeError{OrgID: account.OrgID, Code: account.Code}
		case foreignKeyViolation:
			return &apperrors.UnknownAccountError{OrgID: account.OrgID, AccountID: account.ParentAccountID}
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// UpdateAccount updates an existing account's mutable fields. The code is immutable.
// The row is locked FOR UPDATE, which waits for in-flight postings holding the foreign
// key share lock on it, so a type change is refused once any committed line references
// the account and no line can commit against the old type afterwards.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		var (
			code        string
			currentType string
		)
		err := tx.QueryRow(ctx,
			`SELECT code, account_type FROM accounts WHERE org_id = $1 AND account_id = $2 FOR UPDATE;`,
			account.OrgID, account.AccountID).Scan(&code, &currentType)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", account.AccountID))
			}
			return fmt.Errorf("failed to lock account %s: %w", account.AccountID, err)
		}
		if currentType != string(m.AccountType) {
			used, err := accountHasLines(ctx, tx, account.OrgID, account.AccountID)
			if err != nil {
				return err
			}
			if used {
				return apperrors.NewStateError(fmt.Sprintf("account %s has postings; its type can no longer change", code))
			}
		}

		_, err = tx.Exec(ctx, `
			UPDATE accounts
			SET name = $3, account_type = $4, parent_account_id = $5, description = $6, is_active = $7,
			    last_updated_at = $8, last_updated_by = $9
			WHERE org_id = $1 AND account_id = $2;`,
			m.OrgID,
			m.AccountID,
			m.Name,
			m.AccountType,
			m.ParentAccountID,
			m.Description,
			m.IsActive,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			if code, _ := pgErrorCode(err); code == foreignKeyViolation {
				return &apperrors.UnknownAccountError{OrgID: account.OrgID, AccountID: account.ParentAccountID}
			}
			return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
		}
		return bumpLedgerVersion(ctx, tx, account.OrgID)
	})
	return err
}

// DeleteAccount removes an account. Journal lines and child accounts reference accounts
// ON DELETE RESTRICT, so a referenced account is refused by the database.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, orgID, accountID string) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM accounts WHERE org_id = $1 AND account_id = $2;`, orgID, accountID)
		if err != nil {
			if code, constraint := pgErrorCode(err); code == foreignKeyViolation {
				return apperrors.NewStateError(fmt.Sprintf("account %s is still referenced (%s)", accountID, constraint))
			}
			return fmt.Errorf("failed to delete account %s: %w", accountID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", accountID))
		}
		return bumpLedgerVersion(ctx, tx, orgID)
	})
}
