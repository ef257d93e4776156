package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/platform/metrics"
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountReader
	journalRepo   portsrepo.JournalReader
	accounts      portssvc.AccountResolver
	cache         portsrepo.StatementCache
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingStatementCache serves statements from the cache while the org's ledger version is unchanged.
func WithReportingStatementCache(cache portsrepo.StatementCache) ReportingServiceOption {
	return func(s *reportingService) {
		s.cache = cache
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader, accounts portssvc.AccountResolver, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: repo,
		accountRepo:   accountRepo,
		journalRepo:   journalRepo,
		accounts:      accounts,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// cached serves key from the statement cache or computes and stores it. The
// ledger version is read from the store before computing, so a write racing the
// computation moves the version on and the stored value is never served for it.
func cached[T any](ctx context.Context, s *reportingService, orgID, key string, compute func() (*T, error)) (*T, error) {
	if s.cache == nil {
		return compute()
	}

	version, err := s.reportingRepo.LedgerVersion(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger version: %w", err)
	}

	var hit T
	found, err := s.cache.Get(ctx, orgID, version, key, &hit)
	switch {
	case err != nil:
		metrics.StatementCacheLookups.WithLabelValues("error").Inc()
		s.LogError(ctx, err, "Statement cache read failed, computing", slog.String("key", key))
	case found:
		metrics.StatementCacheLookups.WithLabelValues("hit").Inc()
		return &hit, nil
	default:
		metrics.StatementCacheLookups.WithLabelValues("miss").Inc()
	}

	value, err := compute()
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, orgID, version, key, value); err != nil {
		s.LogError(ctx, err, "Statement cache write failed", slog.String("key", key))
	}
	return value, nil
}

func dateKey(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(dto.DateLayout)
}

func branchKey(b *string) string {
	if b == nil {
		return "*"
	}
	return *b
}

// fault logs and counts a consistency violation before handing it back.
func (s *reportingService) fault(ctx context.Context, err *apperrors.ConsistencyError, orgID string) error {
	s.ReportConsistencyFault(ctx, err, slog.String("org_id", orgID))
	return err
}

// TrialBalance generates a trial balance report through asOf
func (s *reportingService) TrialBalance(ctx context.Context, orgID string, asOf *time.Time, branch *string) (*domain.TrialBalanceReport, error) {
	key := fmt.Sprintf("tb:%s:%s", dateKey(asOf), branchKey(branch))
	return cached(ctx, s, orgID, key, func() (*domain.TrialBalanceReport, error) {
		balances, err := s.reportingRepo.AccountBalances(ctx, domain.BalanceQuery{OrgID: orgID, To: asOf, Branch: branch})
		if err != nil {
			s.LogError(ctx, err, "Failed to retrieve trial balance data",
				slog.String("org_id", orgID),
				slog.String("asOf", dateKey(asOf)))
			return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
		}

		report := &domain.TrialBalanceReport{
			AsOf:        asOf,
			Rows:        make([]domain.TrialBalanceRow, 0, len(balances)),
			TotalDebit:  decimal.Zero,
			TotalCredit: decimal.Zero,
		}
		if branch != nil {
			report.Branch = *branch
		}
		for _, b := range balances {
			row := domain.TrialBalanceRow{
				AccountID:   b.AccountID,
				Code:        b.Code,
				AccountName: b.Name,
				AccountType: b.AccountType,
				TotalDebit:  b.Debit,
				TotalCredit: b.Credit,
				Balance:     b.Net(),
				Debit:       decimal.Zero,
				Credit:      decimal.Zero,
			}
			if raw := b.Debit.Sub(b.Credit); raw.IsPositive() {
				row.Debit = raw
			} else {
				row.Credit = raw.Neg()
			}
			report.TotalDebit = report.TotalDebit.Add(row.Debit)
			report.TotalCredit = report.TotalCredit.Add(row.Credit)
			report.Rows = append(report.Rows, row)
		}

		// A branch slice may legitimately not balance when a manual entry spans branches.
		if branch == nil && !report.TotalDebit.Equal(report.TotalCredit) {
			return nil, s.fault(ctx, &apperrors.ConsistencyError{Check: "trial_balance", Left: report.TotalDebit, Right: report.TotalCredit}, orgID)
		}

		s.LogInfo(ctx, "Trial balance report generated successfully",
			slog.String("org_id", orgID),
			slog.String("asOf", dateKey(asOf)),
			slog.Int("row_count", len(report.Rows)))
		return report, nil
	})
}

// ProfitAndLoss generates a profit and loss report for a date range
func (s *reportingService) ProfitAndLoss(ctx context.Context, orgID string, from, to time.Time, branch *string) (*domain.PAndLReport, error) {
	from, to = domain.DateOnly(from), domain.DateOnly(to)
	if to.Before(from) {
		return nil, apperrors.NewValidationFailedError("report range ends before it starts")
	}

	key := fmt.Sprintf("pl:%s:%s:%s", dateKey(&from), dateKey(&to), branchKey(branch))
	return cached(ctx, s, orgID, key, func() (*domain.PAndLReport, error) {
		balances, err := s.reportingRepo.AccountBalances(ctx, domain.BalanceQuery{
			OrgID:          orgID,
			From:           &from,
			To:             &to,
			Branch:         branch,
			Types:          []domain.AccountType{domain.Revenue, domain.COGS, domain.Expense},
			ExcludeSources: []domain.Source{domain.SourcePeriodClose},
		})
		if err != nil {
			s.LogError(ctx, err, "Failed to retrieve profit and loss data",
				slog.String("org_id", orgID),
				slog.String("from", dateKey(&from)),
				slog.String("to", dateKey(&to)))
			return nil, fmt.Errorf("failed to retrieve profit and loss data: %w", err)
		}

		report := &domain.PAndLReport{
			From:          from,
			To:            to,
			Revenue:       []domain.AccountAmount{},
			COGS:          []domain.AccountAmount{},
			Expenses:      []domain.AccountAmount{},
			TotalRevenue:  decimal.Zero,
			TotalCOGS:     decimal.Zero,
			TotalExpenses: decimal.Zero,
		}
		if branch != nil {
			report.Branch = *branch
		}
		for _, b := range balances {
			amount := domain.AccountAmount{AccountID: b.AccountID, Code: b.Code, Name: b.Name, NetAmount: b.Net()}
			switch b.AccountType {
			case domain.Revenue:
				report.Revenue = append(report.Revenue, amount)
				report.TotalRevenue = report.TotalRevenue.Add(amount.NetAmount)
			case domain.COGS:
				report.COGS = append(report.COGS, amount)
				report.TotalCOGS = report.TotalCOGS.Add(amount.NetAmount)
			case domain.Expense:
				report.Expenses = append(report.Expenses, amount)
				report.TotalExpenses = report.TotalExpenses.Add(amount.NetAmount)
			}
		}
		report.GrossProfit = report.TotalRevenue.Sub(report.TotalCOGS)
		report.NetProfit = report.GrossProfit.Sub(report.TotalExpenses)

		s.LogInfo(ctx, "Profit and loss report generated successfully",
			slog.String("org_id", orgID),
			slog.String("from", dateKey(&from)),
			slog.String("to", dateKey(&to)),
			slog.Int("revenue_accounts", len(report.Revenue)),
			slog.Int("expense_accounts", len(report.Expenses)))
		return report, nil
	})
}

// BalanceSheet generates a balance sheet report as of a specific date
func (s *reportingService) BalanceSheet(ctx context.Context, orgID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	asOf = domain.DateOnly(asOf)
	key := "bs:" + dateKey(&asOf)
	return cached(ctx, s, orgID, key, func() (*domain.BalanceSheetReport, error) {
		// One query for every type keeps assets and current earnings in the same snapshot.
		balances, err := s.reportingRepo.AccountBalances(ctx, domain.BalanceQuery{OrgID: orgID, To: &asOf})
		if err != nil {
			s.LogError(ctx, err, "Failed to retrieve balance sheet data",
				slog.String("org_id", orgID),
				slog.String("asOf", dateKey(&asOf)))
			return nil, fmt.Errorf("failed to retrieve balance sheet data: %w", err)
		}

		report := &domain.BalanceSheetReport{
			AsOf:             asOf,
			Assets:           []domain.AccountAmount{},
			Liabilities:      []domain.AccountAmount{},
			Equity:           []domain.AccountAmount{},
			CurrentEarnings:  decimal.Zero,
			TotalAssets:      decimal.Zero,
			TotalLiabilities: decimal.Zero,
			TotalEquity:      decimal.Zero,
		}
		for _, b := range balances {
			amount := domain.AccountAmount{AccountID: b.AccountID, Code: b.Code, Name: b.Name, NetAmount: b.Net()}
			switch b.AccountType {
			case domain.Asset:
				report.Assets = append(report.Assets, amount)
				report.TotalAssets = report.TotalAssets.Add(amount.NetAmount)
			case domain.Liability:
				report.Liabilities = append(report.Liabilities, amount)
				report.TotalLiabilities = report.TotalLiabilities.Add(amount.NetAmount)
			case domain.Equity:
				report.Equity = append(report.Equity, amount)
				report.TotalEquity = report.TotalEquity.Add(amount.NetAmount)
			case domain.Revenue:
				report.CurrentEarnings = report.CurrentEarnings.Add(amount.NetAmount)
			case domain.COGS, domain.Expense:
				report.CurrentEarnings = report.CurrentEarnings.Sub(amount.NetAmount)
			}
		}
		report.TotalEquity = report.TotalEquity.Add(report.CurrentEarnings)

		if rhs := report.TotalLiabilities.Add(report.TotalEquity); !report.TotalAssets.Equal(rhs) {
			return nil, s.fault(ctx, &apperrors.ConsistencyError{Check: "balance_sheet", Left: report.TotalAssets, Right: rhs}, orgID)
		}

		s.LogInfo(ctx, "Balance sheet report generated successfully",
			slog.String("org_id", orgID),
			slog.String("asOf", dateKey(&asOf)),
			slog.Int("asset_accounts", len(report.Assets)),
			slog.Int("liability_accounts", len(report.Liabilities)),
			slog.Int("equity_accounts", len(report.Equity)))
		return report, nil
	})
}

func (s *reportingService) APAging(ctx context.Context, orgID string, asOf time.Time) (*domain.AgingReport, error) {
	return s.aging(ctx, orgID, "AP", domain.RoleServiceProviderPayable, asOf)
}

func (s *reportingService) ARAging(ctx context.Context, orgID string, asOf time.Time) (*domain.AgingReport, error) {
	return s.aging(ctx, orgID, "AR", domain.RoleAccountsReceivable, asOf)
}

func (s *reportingService) aging(ctx context.Context, orgID, kind string, role domain.AccountRole, asOf time.Time) (*domain.AgingReport, error) {
	asOf = domain.DateOnly(asOf)
	account, err := s.accounts.ResolveAccount(ctx, orgID, role)
	if err != nil {
		var missing *apperrors.MissingAccountError
		if !errors.As(err, &missing) {
			return nil, err
		}
		// A deactivated control account still carries history.
		if account, err = s.accountRepo.FindAccountByCode(ctx, orgID, missing.Code); err != nil {
			return nil, missing
		}
	}

	key := fmt.Sprintf("aging:%s:%s", kind, dateKey(&asOf))
	return cached(ctx, s, orgID, key, func() (*domain.AgingReport, error) {
		items, err := s.reportingRepo.OpenItems(ctx, orgID, account.AccountID, asOf)
		if err != nil {
			s.LogError(ctx, err, "Failed to retrieve open items",
				slog.String("org_id", orgID),
				slog.String("kind", kind))
			return nil, fmt.Errorf("failed to retrieve open items: %w", err)
		}

		report := &domain.AgingReport{
			Kind:    kind,
			AsOf:    asOf,
			Items:   []domain.AgingItem{},
			Buckets: make(map[domain.AgingBucket]decimal.Decimal, len(domain.AgingBuckets)),
			Total:   decimal.Zero,
		}
		for _, b := range domain.AgingBuckets {
			report.Buckets[b] = decimal.Zero
		}

		for _, it := range items {
			outstanding := accounting.NormalAmount(account.AccountType, it.Debit, it.Credit)
			if !outstanding.IsPositive() {
				continue
			}
			age := int(asOf.Sub(domain.DateOnly(it.OriginDate)).Hours() / 24)
			bucket := domain.BucketForAge(age)
			report.Items = append(report.Items, domain.AgingItem{
				DocumentRef: it.DocumentRef,
				OriginDate:  it.OriginDate,
				AgeDays:     age,
				Bucket:      bucket,
				Outstanding: outstanding,
			})
			report.Buckets[bucket] = report.Buckets[bucket].Add(outstanding)
			report.Total = report.Total.Add(outstanding)
		}

		s.LogInfo(ctx, "Aging report generated successfully",
			slog.String("org_id", orgID),
			slog.String("kind", kind),
			slog.Int("open_documents", len(report.Items)))
		return report, nil
	})
}

// AccountLedger lists the POSTED lines of an account with a running balance.
func (s *reportingService) AccountLedger(ctx context.Context, orgID, accountID string, from, to *time.Time) ([]domain.LedgerLine, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, orgID, accountID)
	if err != nil {
		return nil, err
	}

	running := decimal.Zero
	if from != nil {
		// Opening balance: everything before the window.
		dayBefore := domain.DateOnly(*from).AddDate(0, 0, -1)
		opening, err := s.journalRepo.ListLinesByAccount(ctx, orgID, accountID, nil, &dayBefore)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve opening balance: %w", err)
		}
		for _, l := range opening {
			running = running.Add(accounting.NormalAmount(account.AccountType, l.Debit, l.Credit))
		}
	}

	lines, err := s.journalRepo.ListLinesByAccount(ctx, orgID, accountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve account ledger", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to retrieve account ledger: %w", err)
	}
	for i, balance := range accounting.RunningBalances(account.AccountType, running, lines) {
		lines[i].RunningBalance = balance
	}
	return lines, nil
}
