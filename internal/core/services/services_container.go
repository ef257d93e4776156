package services

import (
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// cache may be nil, in which case statements are always computed.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, cache portsrepo.StatementCache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Accounts first: every posting and the period close resolve roles through it.
	container.Account = NewAccountService(repos.AccountRepo, WithPostingAccounts(cfg.PostingAccounts))

	reportingOpts := []ReportingServiceOption{}
	if cache != nil {
		reportingOpts = append(reportingOpts, WithReportingStatementCache(cache))
	}

	container.Period = NewPeriodService(repos.PeriodRepo, container.Account, WithRequirePeriodCoverage(cfg.RequirePeriodCoverage))
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo, container.Period)
	container.Posting = NewPostingService(container.Journal, container.Account,
		WithManualApprovalRequired(cfg.ManualApprovalRequired))
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.AccountRepo, repos.JournalRepo, container.Account, reportingOpts...)
	container.Summary = NewSummaryService(container.Reporting, repos.ReportingRepo)

	return container
}
