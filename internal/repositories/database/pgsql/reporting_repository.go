package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface. Each method is a
// single statement, so it reads one snapshot.
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// AccountBalances sums debits and credits of POSTED lines per account, and per branch
// when requested.
func (r *reportingRepository) AccountBalances(ctx context.Context, q domain.BalanceQuery) ([]domain.AccountBalance, error) {
	return queryBalances(ctx, r.Pool, q)
}

func queryBalances(ctx context.Context, db dbtx, q domain.BalanceQuery) ([]domain.AccountBalance, error) {
	args := []any{q.OrgID, dateArg(q.From), dateArg(q.To)}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	branchExpr := `''`
	groupBy := `a.account_id, a.code, a.name, a.account_type`
	if q.GroupByBranch {
		branchExpr = `COALESCE(l.branch_id, '')`
		groupBy += `, l.branch_id`
	}

	query := `
		SELECT a.account_id, a.code, a.name, a.account_type, ` + branchExpr + ` AS branch,
		       COALESCE(SUM(l.debit), 0) AS total_debit,
		       COALESCE(SUM(l.credit), 0) AS total_credit
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE e.org_id = $1
		  AND e.status = 'POSTED'
		  AND ($2::date IS NULL OR e.entry_date >= $2::date)
		  AND ($3::date IS NULL OR e.entry_date <= $3::date)`
	if len(q.Types) > 0 {
		types := make([]string, len(q.Types))
		for i, t := range q.Types {
			types[i] = string(t)
		}
		query += ` AND a.account_type = ANY(` + arg(types) + `)`
	}
	if len(q.ExcludeSources) > 0 {
		sources := make([]string, len(q.ExcludeSources))
		for i, s := range q.ExcludeSources {
			sources[i] = string(s)
		}
		query += ` AND NOT (e.source = ANY(` + arg(sources) + `))`
	}
	if q.Branch != nil {
		if *q.Branch == domain.UnassignedBranch {
			query += ` AND l.branch_id IS NULL`
		} else {
			query += ` AND l.branch_id = ` + arg(*q.Branch)
		}
	}
	query += ` GROUP BY ` + groupBy + ` ORDER BY a.code, branch;`

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying account balances: %w", err)
	}
	defer rows.Close()

	result := []domain.AccountBalance{}
	for rows.Next() {
		var (
			b           domain.AccountBalance
			accountType string
		)
		if err := rows.Scan(&b.AccountID, &b.Code, &b.Name, &accountType, &b.BranchID, &b.Debit, &b.Credit); err != nil {
			return nil, fmt.Errorf("error scanning account balance row: %w", err)
		}
		b.AccountType = domain.AccountType(accountType)
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account balance rows: %w", err)
	}
	return result, nil
}

// OpenItems groups the POSTED lines of one account by document reference up to asOf.
func (r *reportingRepository) OpenItems(ctx context.Context, orgID, accountID string, asOf time.Time) ([]domain.OpenItem, error) {
	query := `
		SELECT l.document_ref,
		       MIN(e.entry_date) AS origin_date,
		       COALESCE(SUM(l.debit), 0),
		       COALESCE(SUM(l.credit), 0)
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.org_id = $1
		  AND l.account_id = $2
		  AND e.status = 'POSTED'
		  AND e.entry_date <= $3
		  AND l.document_ref IS NOT NULL
		GROUP BY l.document_ref
		ORDER BY origin_date, l.document_ref;
	`
	rows, err := r.Pool.Query(ctx, query, orgID, accountID, domain.DateOnly(asOf))
	if err != nil {
		return nil, fmt.Errorf("error querying open items: %w", err)
	}
	defer rows.Close()

	items := []domain.OpenItem{}
	for rows.Next() {
		var it domain.OpenItem
		if err := rows.Scan(&it.DocumentRef, &it.OriginDate, &it.Debit, &it.Credit); err != nil {
			return nil, fmt.Errorf("error scanning open item row: %w", err)
		}
		it.OriginDate = domain.DateOnly(it.OriginDate)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating open item rows: %w", err)
	}
	return items, nil
}

// ListBranches returns the distinct branch tags of income-statement lines in the window.
func (r *reportingRepository) ListBranches(ctx context.Context, orgID string, from, to time.Time) ([]string, error) {
	query := `
		SELECT DISTINCT COALESCE(l.branch_id, $4)
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE e.org_id = $1
		  AND e.status = 'POSTED'
		  AND e.source <> 'PERIOD_CLOSE'
		  AND e.entry_date BETWEEN $2 AND $3
		  AND a.account_type IN ('REVENUE', 'COGS', 'EXPENSE');
	`
	rows, err := r.Pool.Query(ctx, query, orgID, domain.DateOnly(from), domain.DateOnly(to), domain.UnassignedBranch)
	if err != nil {
		return nil, fmt.Errorf("error querying branches: %w", err)
	}
	defer rows.Close()

	branches := []string{}
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			return nil, fmt.Errorf("error scanning branch row: %w", err)
		}
		branches = append(branches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating branch rows: %w", err)
	}
	// Byte order, independent of the database collation.
	sort.Strings(branches)
	return branches, nil
}

// LedgerVersion returns the org's committed ledger version, 0 before the first write.
func (r *reportingRepository) LedgerVersion(ctx context.Context, orgID string) (int64, error) {
	var version int64
	err := r.Pool.QueryRow(ctx, `SELECT version FROM ledger_versions WHERE org_id = $1;`, orgID).Scan(&version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read ledger version of org %s: %w", orgID, err)
	}
	return version, nil
}
