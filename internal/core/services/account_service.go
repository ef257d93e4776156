package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	postingAccounts domain.PostingAccounts
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithPostingAccounts overrides the role to code map used by ResolveAccount and SeedDefaultChart.
func WithPostingAccounts(accounts domain.PostingAccounts) AccountServiceOption {
	return func(s *accountService) {
		s.postingAccounts = accounts
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo:     repo,
		postingAccounts: domain.DefaultPostingAccounts(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, orgID string, req dto.CreateAccountRequest, actor string) (*domain.Account, error) {
	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Name)
	if code == "" || name == "" {
		return nil, apperrors.NewValidationFailedError("account code and name are required")
	}
	if !req.AccountType.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unknown account type %q", req.AccountType))
	}

	parentID := ""
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parentID = *req.ParentAccountID
		if _, err := s.accountRepo.FindAccountByID(ctx, orgID, parentID); err != nil {
			s.LogFailure(ctx, err, "Failed to find parent account",
				slog.String("parent_id", parentID),
				slog.String("org_id", orgID))
			return nil, fmt.Errorf("invalid parent account: %w", err)
		}
	}

	now := s.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		OrgID:           orgID,
		Code:            code,
		Name:            name,
		AccountType:     req.AccountType,
		ParentAccountID: parentID,
		Description:     req.Description,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogFailure(ctx, err, "Failed to save account",
			slog.String("code", code),
			slog.String("org_id", orgID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("code", code),
		slog.String("org_id", orgID))
	return &account, nil
}

func (s *accountService) GetAccount(ctx context.Context, orgID, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, orgID, accountID)
}

func (s *accountService) GetAccountByCode(ctx context.Context, orgID, code string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByCode(ctx, orgID, code)
}

func (s *accountService) ListAccounts(ctx context.Context, orgID string, filter domain.AccountFilter) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, orgID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("org_id", orgID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) AccountTree(ctx context.Context, orgID string) ([]*domain.AccountNode, error) {
	accounts, err := s.ListAccounts(ctx, orgID, domain.AccountFilter{})
	if err != nil {
		return nil, err
	}
	return domain.BuildAccountTree(accounts), nil
}

func (s *accountService) UpdateAccount(ctx context.Context, orgID, accountID string, req dto.UpdateAccountRequest, actor string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, orgID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationFailedError("account name cannot be blank")
		}
		account.Name = name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}

	if req.AccountType != nil && *req.AccountType != account.AccountType {
		if !req.AccountType.IsValid() {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unknown account type %q", *req.AccountType))
		}
		used, err := s.accountRepo.AccountHasLines(ctx, orgID, accountID)
		if err != nil {
			return nil, fmt.Errorf("failed to check account usage: %w", err)
		}
		if used {
			return nil, apperrors.NewStateError(fmt.Sprintf("account %s has postings; its type can no longer change", account.Code))
		}
		account.AccountType = *req.AccountType
	}

	if req.ParentAccountID != nil && *req.ParentAccountID != account.ParentAccountID {
		if err := s.checkReparent(ctx, orgID, accountID, *req.ParentAccountID); err != nil {
			s.LogFailure(ctx, err, "Rejected account reparent",
				slog.String("account_id", accountID),
				slog.String("parent_id", *req.ParentAccountID))
			return nil, err
		}
		account.ParentAccountID = *req.ParentAccountID
	}

	account.LastUpdatedAt = s.Now()
	account.LastUpdatedBy = actor
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully",
		slog.String("account_id", accountID),
		slog.String("org_id", orgID))
	return account, nil
}

// checkReparent walks the ancestors of the proposed parent. Finding the account
// itself means the move would create a cycle.
func (s *accountService) checkReparent(ctx context.Context, orgID, accountID, parentID string) error {
	if parentID == "" {
		return nil
	}
	seen := make(map[string]struct{})
	for cur := parentID; cur != ""; {
		if cur == accountID {
			return &apperrors.CyclicHierarchyError{AccountID: accountID, ParentID: parentID}
		}
		if _, ok := seen[cur]; ok {
			// The existing chain already loops; refuse to attach to it.
			return &apperrors.CyclicHierarchyError{AccountID: accountID, ParentID: parentID}
		}
		seen[cur] = struct{}{}
		parent, err := s.accountRepo.FindAccountByID(ctx, orgID, cur)
		if err != nil {
			return fmt.Errorf("invalid parent account: %w", err)
		}
		cur = parent.ParentAccountID
	}
	return nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, orgID, accountID, actor string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, orgID, accountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return account, nil
	}

	account.IsActive = false
	account.LastUpdatedAt = s.Now()
	account.LastUpdatedBy = actor
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account deactivated",
		slog.String("account_id", accountID),
		slog.String("org_id", orgID))
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, orgID, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, orgID, accountID); err != nil {
		s.LogFailure(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID), slog.String("org_id", orgID))
	return nil
}

func (s *accountService) SeedDefaultChart(ctx context.Context, orgID, actor string) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(domain.DefaultChart))
	created := 0
	for _, entry := range domain.DefaultChart {
		code := s.postingAccounts.Code(entry.Role)
		existing, err := s.accountRepo.FindAccountByCode(ctx, orgID, code)
		if err == nil {
			out = append(out, *existing)
			continue
		}
		if !isNotFound(err) {
			return nil, fmt.Errorf("failed to look up account %s: %w", code, err)
		}

		account, err := s.CreateAccount(ctx, orgID, dto.CreateAccountRequest{
			Code:        code,
			Name:        entry.Name,
			AccountType: entry.Type,
		}, actor)
		var dup *apperrors.DuplicateCodeError
		if errors.As(err, &dup) {
			// Seeded concurrently.
			if account, err = s.accountRepo.FindAccountByCode(ctx, orgID, code); err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		} else {
			created++
		}
		out = append(out, *account)
	}

	s.LogInfo(ctx, "Default chart seeded",
		slog.String("org_id", orgID),
		slog.Int("created", created))
	return out, nil
}

func (s *accountService) ResolveAccount(ctx context.Context, orgID string, role domain.AccountRole) (*domain.Account, error) {
	code := s.postingAccounts.Code(role)
	account, err := s.accountRepo.FindAccountByCode(ctx, orgID, code)
	if err != nil {
		if isNotFound(err) {
			return nil, &apperrors.MissingAccountError{OrgID: orgID, Role: string(role), Code: code}
		}
		return nil, fmt.Errorf("failed to resolve %s account: %w", role, err)
	}
	if !account.IsActive {
		return nil, &apperrors.MissingAccountError{OrgID: orgID, Role: string(role), Code: code}
	}
	return account, nil
}
