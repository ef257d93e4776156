package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/SscSPs/ledger_core/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and their lines.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const entryColumns = `entry_id, org_id, entry_date, memo, source, source_id, posted_by, status,
	approved_by, approved_at, reverses_entry_id, created_at`

const lineColumns = `line_id, entry_id, line_no, account_id, branch_id, document_ref, debit, credit, memo`

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.OrgID,
		&m.EntryDate,
		&m.Memo,
		&m.Source,
		&m.SourceID,
		&m.PostedBy,
		&m.Status,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.ReversesEntryID,
		&m.CreatedAt,
	)
	return m, err
}

// loadLines fetches the lines of the given entries keyed by entry ID, in line order.
func loadLines(ctx context.Context, q dbtx, entryIDs []string) (map[string][]models.JournalLine, error) {
	out := make(map[string][]models.JournalLine, len(entryIDs))
	if len(entryIDs) == 0 {
		return out, nil
	}

	query := `SELECT ` + lineColumns + ` FROM journal_lines WHERE entry_id = ANY($1) ORDER BY entry_id, line_no;`
	rows, err := q.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l models.JournalLine
		if err := rows.Scan(
			&l.LineID,
			&l.EntryID,
			&l.LineNo,
			&l.AccountID,
			&l.BranchID,
			&l.DocumentRef,
			&l.Debit,
			&l.Credit,
			&l.Memo,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal line: %w", err)
		}
		out[l.EntryID] = append(out[l.EntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal lines: %w", err)
	}
	return out, nil
}

func findEntry(ctx context.Context, q dbtx, query string, args ...any) (*domain.JournalEntry, error) {
	m, err := scanEntry(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	lines, err := loadLines(ctx, q, []string{m.EntryID})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainJournalEntry(m, lines[m.EntryID])
	return &d, nil
}

func findEntryBySource(ctx context.Context, q dbtx, orgID string, source domain.Source, sourceID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE org_id = $1 AND source = $2 AND source_id = $3;`
	return findEntry(ctx, q, query, orgID, string(source), sourceID)
}

// FindEntryByID retrieves an entry with its lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, orgID, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE org_id = $1 AND entry_id = $2;`
	entry, err := findEntry(ctx, r.Pool, query, orgID, entryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("journal entry %s not found", entryID))
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}
	return entry, nil
}

// FindEntryBySource retrieves the entry recorded for an idempotency key.
func (r *PgxJournalRepository) FindEntryBySource(ctx context.Context, orgID string, source domain.Source, sourceID string) (*domain.JournalEntry, error) {
	entry, err := findEntryBySource(ctx, r.Pool, orgID, source, sourceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("no %s entry for source id %s", source, sourceID))
		}
		return nil, fmt.Errorf("failed to find %s entry %s: %w", source, sourceID, err)
	}
	return entry, nil
}

// ListEntries retrieves a page of entries using keyset pagination on
// (entry_date, created_at, entry_id), newest first.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, orgID string, filter domain.EntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE org_id = $1`
	args := []any{orgID}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.From != nil {
		query += ` AND entry_date >= ` + arg(domain.DateOnly(*filter.From))
	}
	if filter.To != nil {
		query += ` AND entry_date <= ` + arg(domain.DateOnly(*filter.To))
	}
	if filter.Source != nil {
		query += ` AND source = ` + arg(string(*filter.Source))
	}
	if filter.Status != nil {
		query += ` AND status = ` + arg(string(*filter.Status))
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		// Tuple comparison is concise and efficient in Postgres
		query += ` AND (entry_date, created_at, entry_id) < (` +
			arg(domain.DateOnly(cursor.EntryDate)) + `, ` + arg(cursor.CreatedAt) + `, ` + arg(cursor.EntryID) + `)`
	}
	query += ` ORDER BY entry_date DESC, created_at DESC, entry_id DESC LIMIT ` + arg(fetchLimit) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query journal entries for org %s: %w", orgID, err)
	}
	headers := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			rows.Close()
			return nil, nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		headers = append(headers, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}

	var nextTokenVal *string
	if len(headers) > limit {
		headers = headers[:limit]
		last := headers[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt, last.EntryID)
		nextTokenVal = &token
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.EntryID
	}
	lines, err := loadLines(ctx, r.Pool, ids)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]domain.JournalEntry, len(headers))
	for i, h := range headers {
		entries[i] = mapping.ToDomainJournalEntry(h, lines[h.EntryID])
	}
	return entries, nextTokenVal, nil
}

// ListLinesByAccount retrieves the POSTED lines of one account in chronological order.
func (r *PgxJournalRepository) ListLinesByAccount(ctx context.Context, orgID, accountID string, from, to *time.Time) ([]domain.LedgerLine, error) {
	query := `
		SELECT e.entry_id, e.entry_date, e.source, e.memo, e.created_at, l.branch_id,
		       COALESCE(l.debit, 0), COALESCE(l.credit, 0)
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.org_id = $1 AND l.account_id = $2 AND e.status = 'POSTED'
		  AND ($3::date IS NULL OR e.entry_date >= $3::date)
		  AND ($4::date IS NULL OR e.entry_date <= $4::date)
		ORDER BY e.entry_date, e.created_at, e.entry_id, l.line_no;
	`
	rows, err := r.Pool.Query(ctx, query, orgID, accountID, dateArg(from), dateArg(to))
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger of account %s: %w", accountID, err)
	}
	defer rows.Close()

	out := make([]domain.LedgerLine, 0)
	for rows.Next() {
		var (
			l      domain.LedgerLine
			source string
			branch *string
		)
		if err := rows.Scan(&l.EntryID, &l.EntryDate, &source, &l.Memo, &l.CreatedAt, &branch, &l.Debit, &l.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan ledger line: %w", err)
		}
		l.Source = domain.Source(source)
		l.EntryDate = domain.DateOnly(l.EntryDate)
		if branch != nil {
			l.BranchID = *branch
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger lines: %w", err)
	}
	return out, nil
}

// InsertEntry persists an entry and its lines in one transaction, share-locking the
// covering period so that a concurrent close either waits for this insert or is seen by it.
func (r *PgxJournalRepository) InsertEntry(ctx context.Context, entry domain.JournalEntry, guard portsrepo.PeriodGuardFunc) (*domain.JournalEntry, bool, error) {
	var (
		stored  *domain.JournalEntry
		created bool
	)
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		stored, created, err = insertEntryTx(ctx, tx, entry, guard)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return stored, created, nil
}

func insertEntryTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, guard portsrepo.PeriodGuardFunc) (*domain.JournalEntry, bool, error) {
	dedup := entry.Source.Deduplicated()
	if dedup {
		existing, err := findEntryBySource(ctx, tx, entry.OrgID, entry.Source, entry.SourceID)
		if err == nil {
			return existing, false, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, false, fmt.Errorf("failed to check idempotency key: %w", err)
		}
	}

	if guard != nil {
		covering, err := lockCoveringPeriod(ctx, tx, entry.OrgID, entry.EntryDate)
		if err != nil {
			return nil, false, err
		}
		if err := guard(covering); err != nil {
			return nil, false, err
		}
	}

	m := mapping.ToModelJournalEntry(entry)
	query := `INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	if dedup {
		query += ` ON CONFLICT (org_id, source, source_id) WHERE source <> 'MANUAL' DO NOTHING`
	}
	tag, err := tx.Exec(ctx, query,
		m.EntryID,
		m.OrgID,
		m.EntryDate,
		m.Memo,
		m.Source,
		m.SourceID,
		m.PostedBy,
		m.Status,
		m.ApprovedBy,
		m.ApprovedAt,
		m.ReversesEntryID,
		m.CreatedAt,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert journal entry %s: %w", m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		// A concurrent writer committed the same idempotency key first.
		existing, err := findEntryBySource(ctx, tx, entry.OrgID, entry.Source, entry.SourceID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to load entry for idempotency key: %w", err)
		}
		return existing, false, nil
	}

	if err := insertLines(ctx, tx, entry.Lines); err != nil {
		return nil, false, fmt.Errorf("failed to insert lines of journal entry %s: %w", m.EntryID, err)
	}
	if err := bumpLedgerVersion(ctx, tx, entry.OrgID); err != nil {
		return nil, false, err
	}

	stored := entry
	stored.EntryDate = domain.DateOnly(entry.EntryDate)
	stored.Lines = append([]domain.JournalLine(nil), entry.Lines...)
	return &stored, true, nil
}

func insertLines(ctx context.Context, tx pgx.Tx, lines []domain.JournalLine) error {
	batch := &pgx.Batch{}
	query := `INSERT INTO journal_lines (` + lineColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	for _, line := range lines {
		l := mapping.ToModelJournalLine(line)
		batch.Queue(query, l.LineID, l.EntryID, l.LineNo, l.AccountID, l.BranchID, l.DocumentRef, l.Debit, l.Credit, l.Memo)
	}
	// Closing the batch results surfaces the first failed insert.
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if code, _ := pgErrorCode(err); code == foreignKeyViolation {
			return apperrors.NewNotFoundError("journal line references an unknown account")
		}
		return err
	}
	return nil
}

// SetEntryStatus moves a PENDING_APPROVAL entry to POSTED or REJECTED.
func (r *PgxJournalRepository) SetEntryStatus(ctx context.Context, orgID, entryID string, status domain.JournalStatus, actor string, at time.Time, guard portsrepo.PeriodGuardFunc) (*domain.JournalEntry, error) {
	var updated *domain.JournalEntry
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE org_id = $1 AND entry_id = $2 FOR UPDATE;`
		m, err := scanEntry(tx.QueryRow(ctx, query, orgID, entryID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError(fmt.Sprintf("journal entry %s not found", entryID))
			}
			return fmt.Errorf("failed to lock journal entry %s: %w", entryID, err)
		}
		if domain.JournalStatus(m.Status) != domain.PendingApproval {
			return apperrors.NewStateError(fmt.Sprintf("journal entry %s is %s, not %s", entryID, m.Status, domain.PendingApproval))
		}

		if status == domain.Posted && guard != nil {
			covering, err := lockCoveringPeriod(ctx, tx, orgID, m.EntryDate)
			if err != nil {
				return err
			}
			if err := guard(covering); err != nil {
				return err
			}
		}

		_, err = tx.Exec(ctx,
			`UPDATE journal_entries SET status = $3, approved_by = $4, approved_at = $5 WHERE org_id = $1 AND entry_id = $2;`,
			orgID, entryID, string(status), actor, at)
		if err != nil {
			return fmt.Errorf("failed to update status of journal entry %s: %w", entryID, err)
		}
		if err := bumpLedgerVersion(ctx, tx, orgID); err != nil {
			return err
		}

		m.Status = models.JournalStatus(status)
		m.ApprovedBy = &actor
		m.ApprovedAt = &at
		lines, err := loadLines(ctx, tx, []string{entryID})
		if err != nil {
			return err
		}
		d := mapping.ToDomainJournalEntry(m, lines[entryID])
		updated = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// dateArg turns an optional date into a query argument; nil becomes SQL NULL.
func dateArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return domain.DateOnly(*t)
}
