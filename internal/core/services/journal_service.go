package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/SscSPs/ledger_core/internal/platform/metrics"
)

// journalService validates and persists journal entries.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
	periodGuard portssvc.PeriodGuardSvc
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader, periodGuard portssvc.PeriodGuardSvc, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		periodGuard: periodGuard,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// validateLines enforces the per-line rules: one nonzero side, no negatives, cents precision.
func validateLines(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return apperrors.NewValidationFailedError("journal entry must have at least two lines")
	}
	for i, l := range lines {
		lineNo := i + 1
		switch {
		case l.AccountID == "":
			return &apperrors.MalformedLineError{LineNo: lineNo, Reason: "account is required"}
		case l.Debit.IsNegative() || l.Credit.IsNegative():
			return &apperrors.MalformedLineError{LineNo: lineNo, Reason: "amounts cannot be negative"}
		case l.Debit.IsZero() == l.Credit.IsZero():
			return &apperrors.MalformedLineError{LineNo: lineNo, Reason: "exactly one of debit or credit must be nonzero"}
		case !l.Debit.Equal(l.Debit.Round(2)) || !l.Credit.Equal(l.Credit.Round(2)):
			return &apperrors.MalformedLineError{LineNo: lineNo, Reason: "amounts allow at most 2 decimal places"}
		}
	}
	return nil
}

func validateSource(source domain.Source, sourceID string) error {
	if !source.IsValid() {
		return apperrors.NewValidationFailedError(fmt.Sprintf("unknown journal source %q", source))
	}
	if source == domain.SourceManual && sourceID != "" {
		return apperrors.NewValidationFailedError("manual journals do not carry a source id")
	}
	if source.Deduplicated() && sourceID == "" {
		return apperrors.NewValidationFailedError(fmt.Sprintf("source id is required for %s entries", source))
	}
	return nil
}

func (s *journalService) validateAccounts(ctx context.Context, orgID string, entry domain.JournalEntry) error {
	ids := entry.AccountIDs()
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, orgID, ids)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	for _, id := range ids {
		acc, ok := accounts[id]
		if !ok {
			return &apperrors.UnknownAccountError{OrgID: orgID, AccountID: id}
		}
		if !acc.IsActive {
			return apperrors.NewValidationFailedError(fmt.Sprintf("account %s (%s) is inactive", acc.Code, acc.Name))
		}
	}
	return nil
}

// AppendEntry validates a candidate entry and persists it atomically with the
// period check and the idempotency check.
func (s *journalService) AppendEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(
		slog.String("org_id", entry.OrgID),
		slog.String("source", string(entry.Source)),
		slog.String("source_id", entry.SourceID))

	stored, created, err := s.appendEntry(ctx, entry)
	if err != nil {
		metrics.PostingRejections.WithLabelValues(string(entry.Source), metrics.Category(err)).Inc()
		s.LogFailure(ctx, err, "Journal entry rejected",
			slog.String("org_id", entry.OrgID),
			slog.String("source", string(entry.Source)),
			slog.String("source_id", entry.SourceID))
		return nil, false, err
	}

	if !created {
		metrics.DuplicatePostings.WithLabelValues(string(entry.Source)).Inc()
		logger.Info("Duplicate posting answered with existing entry", slog.String("entry_id", stored.EntryID))
		return stored, false, nil
	}

	metrics.EntriesPosted.WithLabelValues(string(entry.Source)).Inc()
	logger.Info("Journal entry recorded",
		slog.String("entry_id", stored.EntryID),
		slog.String("status", string(stored.Status)),
		slog.Int("line_count", len(stored.Lines)))
	return stored, true, nil
}

func (s *journalService) appendEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, bool, error) {
	if entry.OrgID == "" {
		return nil, false, apperrors.NewValidationFailedError("org id is required")
	}
	if err := validateSource(entry.Source, entry.SourceID); err != nil {
		return nil, false, err
	}

	// A replayed event is answered from the store before anything else is checked.
	if entry.Source.Deduplicated() {
		existing, err := s.journalRepo.FindEntryBySource(ctx, entry.OrgID, entry.Source, entry.SourceID)
		if err == nil {
			return existing, false, nil
		}
		if !isNotFound(err) {
			return nil, false, fmt.Errorf("failed to check idempotency key: %w", err)
		}
	}

	if err := validateLines(entry.Lines); err != nil {
		return nil, false, err
	}
	if err := s.validateAccounts(ctx, entry.OrgID, entry); err != nil {
		return nil, false, err
	}
	debits, credits := entry.Totals()
	if !debits.Equal(credits) {
		return nil, false, &apperrors.ImbalancedEntryError{Debits: debits, Credits: credits}
	}

	now := s.Now()
	entry.EntryID = uuid.NewString()
	entry.EntryDate = domain.DateOnly(entry.EntryDate)
	entry.CreatedAt = now
	if entry.Status == "" {
		entry.Status = domain.Posted
	}
	for i := range entry.Lines {
		entry.Lines[i].LineID = uuid.NewString()
		entry.Lines[i].EntryID = entry.EntryID
		entry.Lines[i].LineNo = i + 1
	}

	stored, created, err := s.journalRepo.InsertEntry(ctx, entry, s.periodGuard.Guard(entry.OrgID, entry.EntryDate))
	if err != nil {
		return nil, false, err
	}
	return stored, created, nil
}

func (s *journalService) GetEntry(ctx context.Context, orgID, entryID string) (*domain.JournalEntry, error) {
	return s.journalRepo.FindEntryByID(ctx, orgID, entryID)
}

func (s *journalService) FindBySource(ctx context.Context, orgID string, source domain.Source, sourceID string) (*domain.JournalEntry, error) {
	return s.journalRepo.FindEntryBySource(ctx, orgID, source, sourceID)
}

func (s *journalService) ListEntries(ctx context.Context, orgID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	filter, err := params.Filter()
	if err != nil {
		return nil, err
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, orgID, filter, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list journal entries from repository", "error", err)
		return nil, fmt.Errorf("failed to retrieve journal entries: %w", err)
	}

	resp := &dto.ListJournalsResponse{
		Entries:   make([]dto.JournalEntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i := range entries {
		resp.Entries[i] = dto.ToJournalEntryResponse(&entries[i])
	}

	logger.Info("Journal entries listed successfully", "count", len(entries))
	return resp, nil
}

func (s *journalService) ListLinesByAccount(ctx context.Context, orgID, accountID string, from, to *time.Time) ([]domain.LedgerLine, error) {
	return s.journalRepo.ListLinesByAccount(ctx, orgID, accountID, from, to)
}

func (s *journalService) ReverseEntry(ctx context.Context, orgID, entryID string, date *time.Time, actor string) (*domain.JournalEntry, bool, error) {
	original, err := s.journalRepo.FindEntryByID(ctx, orgID, entryID)
	if err != nil {
		return nil, false, err
	}
	if original.Status != domain.Posted {
		return nil, false, apperrors.NewStateError(fmt.Sprintf("journal entry %s is %s and cannot be reversed", entryID, original.Status))
	}
	if original.Source == domain.SourcePeriodClose {
		return nil, false, apperrors.NewStateError("closing entries cannot be reversed")
	}

	reversalDate := original.EntryDate
	if date != nil {
		reversalDate = *date
	}

	return s.AppendEntry(ctx, domain.JournalEntry{
		OrgID:           orgID,
		EntryDate:       reversalDate,
		Memo:            "Reversal of: " + original.Memo,
		Source:          domain.SourceReversal,
		SourceID:        original.EntryID,
		PostedBy:        actor,
		ReversesEntryID: original.EntryID,
		Lines:           original.Reversal(),
	})
}

func (s *journalService) ApproveEntry(ctx context.Context, orgID, entryID, approver string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, orgID, entryID)
	if err != nil {
		return nil, err
	}

	approved, err := s.journalRepo.SetEntryStatus(ctx, orgID, entryID, domain.Posted, approver, s.Now(),
		s.periodGuard.Guard(orgID, entry.EntryDate))
	if err != nil {
		metrics.PostingRejections.WithLabelValues(string(entry.Source), metrics.Category(err)).Inc()
		s.LogFailure(ctx, err, "Journal entry approval rejected", slog.String("entry_id", entryID))
		return nil, err
	}

	metrics.EntriesPosted.WithLabelValues(string(approved.Source)).Inc()
	s.LogInfo(ctx, "Journal entry approved",
		slog.String("entry_id", entryID),
		slog.String("approved_by", approver))
	return approved, nil
}

func (s *journalService) RejectEntry(ctx context.Context, orgID, entryID, approver string) (*domain.JournalEntry, error) {
	rejected, err := s.journalRepo.SetEntryStatus(ctx, orgID, entryID, domain.Rejected, approver, s.Now(), nil)
	if err != nil {
		s.LogFailure(ctx, err, "Journal entry rejection failed", slog.String("entry_id", entryID))
		return nil, err
	}
	s.LogInfo(ctx, "Journal entry rejected",
		slog.String("entry_id", entryID),
		slog.String("rejected_by", approver))
	return rejected, nil
}

// lineAmount returns a one-sided line amount as a debit or credit pair.
func lineAmount(amount decimal.Decimal, debit bool) (decimal.Decimal, decimal.Decimal) {
	if debit {
		return amount, decimal.Zero
	}
	return decimal.Zero, amount
}
