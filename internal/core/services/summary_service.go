package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
)

// rollupConcurrency bounds the branch queries in flight for one rollup.
const rollupConcurrency = 8

type summaryService struct {
	BaseService
	reporting     portssvc.ReportingService
	reportingRepo portsrepo.ReportingRepository
}

// NewSummaryService creates the financial-summary façade over the reporting service.
func NewSummaryService(reporting portssvc.ReportingService, reportingRepo portsrepo.ReportingRepository) portssvc.SummaryService {
	return &summaryService{reporting: reporting, reportingRepo: reportingRepo}
}

var _ portssvc.SummaryService = (*summaryService)(nil)

func (s *summaryService) GetFinancialSummary(ctx context.Context, orgID string, branch *string, from, to time.Time) (*domain.FinancialSummary, error) {
	pl, err := s.reporting.ProfitAndLoss(ctx, orgID, from, to, branch)
	if err != nil {
		return nil, err
	}
	summary := &domain.FinancialSummary{
		OrgID:       orgID,
		Branch:      pl.Branch,
		From:        pl.From,
		To:          pl.To,
		Revenue:     pl.TotalRevenue,
		COGS:        pl.TotalCOGS,
		GrossMargin: pl.GrossProfit,
		Expenses:    pl.TotalExpenses,
		NetProfit:   pl.NetProfit,
	}
	return summary, nil
}

// GetBranchRollup fails as a whole when any branch query fails. A mismatch between
// the branches and the org total is retried once, since a post landing between the
// two reads can cause it; a second mismatch is a consistency fault.
func (s *summaryService) GetBranchRollup(ctx context.Context, orgID string, from, to time.Time) (*domain.BranchRollup, error) {
	rollup, err := s.rollup(ctx, orgID, from, to)
	var ce *apperrors.ConsistencyError
	if errors.As(err, &ce) {
		s.LogWarn(ctx, err, "Branch rollup mismatch, retrying", slog.String("org_id", orgID))
		rollup, err = s.rollup(ctx, orgID, from, to)
		if errors.As(err, &ce) {
			s.ReportConsistencyFault(ctx, err, slog.String("org_id", orgID))
		}
	}
	return rollup, err
}

func (s *summaryService) rollup(ctx context.Context, orgID string, from, to time.Time) (*domain.BranchRollup, error) {
	branches, err := s.reportingRepo.ListBranches(ctx, orgID, domain.DateOnly(from), domain.DateOnly(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	result := &domain.BranchRollup{Branches: make([]domain.FinancialSummary, len(branches))}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rollupConcurrency)
	for i, branch := range branches {
		i, branch := i, branch
		g.Go(func() error {
			summary, err := s.GetFinancialSummary(gctx, orgID, &branch, from, to)
			if err != nil {
				return fmt.Errorf("branch %s: %w", branch, err)
			}
			result.Branches[i] = *summary
			return nil
		})
	}
	g.Go(func() error {
		total, err := s.GetFinancialSummary(gctx, orgID, nil, from, to)
		if err != nil {
			return fmt.Errorf("org total: %w", err)
		}
		result.Total = *total
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogFailure(ctx, err, "Branch rollup failed", slog.String("org_id", orgID))
		return nil, err
	}

	if err := checkRollup(result); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Branch rollup computed",
		slog.String("org_id", orgID),
		slog.Int("branch_count", len(branches)))
	return result, nil
}

// rollupFields are the summary amounts the branches must add up to, by check name.
var rollupFields = []struct {
	name string
	get  func(domain.FinancialSummary) decimal.Decimal
}{
	{"revenue", func(f domain.FinancialSummary) decimal.Decimal { return f.Revenue }},
	{"cogs", func(f domain.FinancialSummary) decimal.Decimal { return f.COGS }},
	{"gross_margin", func(f domain.FinancialSummary) decimal.Decimal { return f.GrossMargin }},
	{"expenses", func(f domain.FinancialSummary) decimal.Decimal { return f.Expenses }},
	{"net_profit", func(f domain.FinancialSummary) decimal.Decimal { return f.NetProfit }},
}

// checkRollup reports the first summary amount whose branch sum differs from the org total.
func checkRollup(r *domain.BranchRollup) error {
	for _, field := range rollupFields {
		sum := decimal.Zero
		for _, b := range r.Branches {
			sum = sum.Add(field.get(b))
		}
		if total := field.get(r.Total); !sum.Equal(total) {
			return &apperrors.ConsistencyError{Check: "branch_rollup." + field.name, Left: sum, Right: total}
		}
	}
	return nil
}
