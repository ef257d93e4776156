package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTypedErrorsUnwrapToCategory(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category error
		status   int
	}{
		{"imbalanced", &apperrors.ImbalancedEntryError{Debits: decimal.NewFromInt(500), Credits: decimal.NewFromInt(400)}, apperrors.ErrValidation, http.StatusBadRequest},
		{"malformed line", &apperrors.MalformedLineError{LineNo: 1, Reason: "both sides set"}, apperrors.ErrValidation, http.StatusBadRequest},
		{"missing account", &apperrors.MissingAccountError{OrgID: "o", Role: "cash", Code: "1000"}, apperrors.ErrValidation, http.StatusBadRequest},
		{"unknown account", &apperrors.UnknownAccountError{OrgID: "o", AccountID: "a"}, apperrors.ErrNotFound, http.StatusNotFound},
		{"duplicate code", &apperrors.DuplicateCodeError{OrgID: "o", Code: "1000"}, apperrors.ErrConflict, http.StatusConflict},
		{"cycle", &apperrors.CyclicHierarchyError{AccountID: "a", ParentID: "b"}, apperrors.ErrConflict, http.StatusConflict},
		{"locked", &apperrors.PeriodLockedError{PeriodName: "2025-01", Status: "LOCKED"}, apperrors.ErrState, http.StatusConflict},
		{"transition", &apperrors.IllegalTransitionError{PeriodName: "2025-01", From: "OPEN", To: "LOCKED"}, apperrors.ErrState, http.StatusConflict},
		{"consistency", &apperrors.ConsistencyError{Check: "trial balance"}, apperrors.ErrConsistency, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("service: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.category)
			assert.Equal(t, tt.status, apperrors.StatusCode(wrapped))
		})
	}
}

func TestPeriodLockedErrorNamesPeriod(t *testing.T) {
	err := &apperrors.PeriodLockedError{PeriodName: "January 2025", Status: "LOCKED"}
	assert.Contains(t, err.Error(), "January 2025")
}

func TestIllegalTransitionAlreadyClosed(t *testing.T) {
	err := &apperrors.IllegalTransitionError{PeriodName: "Q1", From: "CLOSED", To: "CLOSED"}
	assert.Contains(t, err.Error(), "already closed")

	err = &apperrors.IllegalTransitionError{PeriodName: "Q1", From: "LOCKED", To: "CLOSED"}
	assert.Contains(t, err.Error(), "already closed")
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := apperrors.NewAppError(http.StatusBadGateway, "upstream", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusBadGateway, apperrors.StatusCode(err))
	assert.ErrorIs(t, apperrors.NewNotFoundError("entry x"), apperrors.ErrNotFound)
}
