package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/ledger_core/internal/apperrors"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "client error echoes message",
			err:      &apperrors.DuplicateCodeError{OrgID: "o1", Code: "1000"},
			wantCode: http.StatusConflict,
			wantBody: "account code 1000 already exists in org o1",
		},
		{
			name:     "locked period",
			err:      &apperrors.PeriodLockedError{PeriodName: "Jan", Status: "CLOSED"},
			wantCode: http.StatusConflict,
			wantBody: `fiscal period \"Jan\" is CLOSED`,
		},
		{
			name:     "server error hides cause",
			err:      errors.New("connection reset by peer"),
			wantCode: http.StatusInternalServerError,
			wantBody: "Failed to do it",
		},
		{
			name:     "consistency fault is surfaced",
			err:      &apperrors.ConsistencyError{Check: "trial_balance", Left: decimal.NewFromInt(10), Right: decimal.NewFromInt(9)},
			wantCode: http.StatusInternalServerError,
			wantBody: "trial_balance",
		},
		{
			name:     "self approval",
			err:      apperrors.NewForbiddenError("nope"),
			wantCode: http.StatusForbidden,
			wantBody: "nope",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext()
			respondError(c, tt.err, "Failed to do it")
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestIdentityWithoutAuth(t *testing.T) {
	c, w := testContext()
	_, ok := identity(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthReportsStorageFailure(t *testing.T) {
	c, w := testContext()
	getHealth(func(context.Context) error { return errors.New("db down") })(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "db down")
}
