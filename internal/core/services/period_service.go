package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/platform/metrics"
)

// periodService guards postings by date and runs the period lifecycle.
type periodService struct {
	BaseService
	periodRepo      portsrepo.PeriodRepository
	accounts        portssvc.AccountResolver
	requireCoverage bool
}

// PeriodServiceOption is a functional option for configuring the period service
type PeriodServiceOption func(*periodService)

// WithRequirePeriodCoverage rejects postings dated outside every period.
func WithRequirePeriodCoverage(required bool) PeriodServiceOption {
	return func(s *periodService) {
		s.requireCoverage = required
	}
}

// NewPeriodService creates a new period service with the provided options
func NewPeriodService(repo portsrepo.PeriodRepository, accounts portssvc.AccountResolver, options ...PeriodServiceOption) portssvc.PeriodSvcFacade {
	svc := &periodService{
		periodRepo: repo,
		accounts:   accounts,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

func (s *periodService) Guard(orgID string, date time.Time) portsrepo.PeriodGuardFunc {
	return func(covering *domain.FiscalPeriod) error {
		if covering == nil {
			if s.requireCoverage {
				return apperrors.NewStateError(fmt.Sprintf("no fiscal period covers date %s", date.Format(dto.DateLayout)))
			}
			return nil
		}
		if !covering.Status.AcceptsPostings() {
			return &apperrors.PeriodLockedError{
				PeriodID:   covering.PeriodID,
				PeriodName: covering.Name,
				Status:     string(covering.Status),
			}
		}
		return nil
	}
}

func (s *periodService) CheckPostingDate(ctx context.Context, orgID string, date time.Time) error {
	covering, err := s.periodRepo.FindCoveringPeriod(ctx, orgID, date)
	if err != nil {
		return fmt.Errorf("failed to find covering period: %w", err)
	}
	return s.Guard(orgID, date)(covering)
}

func (s *periodService) CreatePeriod(ctx context.Context, orgID string, req dto.CreatePeriodRequest, actor string) (*domain.FiscalPeriod, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationFailedError("period name is required")
	}
	start, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := dto.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, apperrors.NewValidationFailedError("period end date is before its start date")
	}

	period := domain.FiscalPeriod{
		PeriodID:  uuid.NewString(),
		OrgID:     orgID,
		Name:      name,
		StartDate: start,
		EndDate:   end,
		Status:    domain.PeriodOpen,
		CreatedAt: s.Now(),
		CreatedBy: actor,
	}
	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		s.LogFailure(ctx, err, "Failed to create fiscal period",
			slog.String("org_id", orgID),
			slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Fiscal period created",
		slog.String("org_id", orgID),
		slog.String("period_id", period.PeriodID),
		slog.String("name", name))
	return &period, nil
}

func (s *periodService) ClosePeriod(ctx context.Context, orgID, periodID, actor string) (*domain.FiscalPeriod, error) {
	// Resolved up front: the builder runs inside the storage transaction.
	retained, err := s.accounts.ResolveAccount(ctx, orgID, domain.RoleRetainedEarnings)
	var missing *apperrors.MissingAccountError
	if err != nil && !errors.As(err, &missing) {
		return nil, err
	}

	now := s.Now()
	build := func(period domain.FiscalPeriod, balances []domain.AccountBalance) (*domain.JournalEntry, error) {
		lines := closingLines(balances, retained)
		if len(lines) == 0 {
			return nil, nil
		}
		if retained == nil {
			return nil, missing
		}
		entry := &domain.JournalEntry{
			EntryID:   uuid.NewString(),
			OrgID:     orgID,
			EntryDate: domain.DateOnly(period.EndDate),
			Memo:      fmt.Sprintf("Closing entry for period %s", period.Name),
			Source:    domain.SourcePeriodClose,
			SourceID:  period.PeriodID,
			PostedBy:  actor,
			Status:    domain.Posted,
			CreatedAt: now,
			Lines:     lines,
		}
		for i := range entry.Lines {
			entry.Lines[i].LineID = uuid.NewString()
			entry.Lines[i].EntryID = entry.EntryID
			entry.Lines[i].LineNo = i + 1
		}
		if d, c := entry.Totals(); !d.Equal(c) {
			return nil, &apperrors.ConsistencyError{Check: "closing_entry_balance", Left: d, Right: c}
		}
		return entry, nil
	}

	period, err := s.periodRepo.ClosePeriod(ctx, orgID, periodID, actor, now, build)
	if err != nil {
		if errors.Is(err, apperrors.ErrConsistency) {
			s.ReportConsistencyFault(ctx, err, slog.String("period_id", periodID))
		} else {
			s.LogFailure(ctx, err, "Failed to close fiscal period", slog.String("period_id", periodID))
		}
		return nil, err
	}

	metrics.PeriodTransitions.WithLabelValues(string(domain.PeriodClosed)).Inc()
	if period.ClosingEntryID != "" {
		metrics.EntriesPosted.WithLabelValues(string(domain.SourcePeriodClose)).Inc()
	}
	s.LogInfo(ctx, "Fiscal period closed",
		slog.String("org_id", orgID),
		slog.String("period_id", periodID),
		slog.String("closing_entry_id", period.ClosingEntryID))
	return period, nil
}

// closingLines zeroes every income-statement balance and offsets the result
// against retained earnings, one line per branch.
func closingLines(balances []domain.AccountBalance, retained *domain.Account) []domain.JournalLine {
	lines := make([]domain.JournalLine, 0, len(balances))
	offsets := make(map[string]decimal.Decimal)
	branches := make([]string, 0)

	for _, b := range balances {
		raw := b.Debit.Sub(b.Credit)
		if raw.IsZero() {
			continue
		}
		// Zeroing a debit balance needs a credit and vice versa.
		line := domain.JournalLine{
			AccountID: b.AccountID,
			BranchID:  b.BranchID,
			Memo:      "Period close",
		}
		line.Debit, line.Credit = lineAmount(raw.Abs(), raw.IsNegative())
		lines = append(lines, line)

		if _, ok := offsets[b.BranchID]; !ok {
			branches = append(branches, b.BranchID)
			offsets[b.BranchID] = decimal.Zero
		}
		offsets[b.BranchID] = offsets[b.BranchID].Add(line.Debit).Sub(line.Credit)
	}
	if len(lines) == 0 || retained == nil {
		return lines
	}

	for _, branch := range branches {
		net := offsets[branch]
		if net.IsZero() {
			continue
		}
		// Positive net means more was debited out of revenue than expenses: a profit credited to equity.
		line := domain.JournalLine{
			AccountID: retained.AccountID,
			BranchID:  branch,
			Memo:      "Period result to retained earnings",
		}
		line.Debit, line.Credit = lineAmount(net.Abs(), net.IsNegative())
		lines = append(lines, line)
	}
	return lines
}

func (s *periodService) LockPeriod(ctx context.Context, orgID, periodID, actor string) (*domain.FiscalPeriod, error) {
	period, err := s.periodRepo.LockPeriod(ctx, orgID, periodID, actor, s.Now())
	if err != nil {
		s.LogFailure(ctx, err, "Failed to lock fiscal period", slog.String("period_id", periodID))
		return nil, err
	}
	metrics.PeriodTransitions.WithLabelValues(string(domain.PeriodLocked)).Inc()
	s.LogInfo(ctx, "Fiscal period locked",
		slog.String("org_id", orgID),
		slog.String("period_id", periodID))
	return period, nil
}

func (s *periodService) GetPeriod(ctx context.Context, orgID, periodID string) (*domain.FiscalPeriod, error) {
	return s.periodRepo.FindPeriodByID(ctx, orgID, periodID)
}

func (s *periodService) ListPeriods(ctx context.Context, orgID string) ([]domain.FiscalPeriod, error) {
	periods, err := s.periodRepo.ListPeriods(ctx, orgID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fiscal periods", slog.String("org_id", orgID))
		return nil, fmt.Errorf("failed to list fiscal periods: %w", err)
	}
	return periods, nil
}
