package metrics

import (
	"errors"
	"testing"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	assert.Equal(t, "validation", Category(&apperrors.ImbalancedEntryError{Debits: decimal.NewFromInt(1), Credits: decimal.Zero}))
	assert.Equal(t, "not_found", Category(&apperrors.UnknownAccountError{}))
	assert.Equal(t, "conflict", Category(&apperrors.DuplicateCodeError{}))
	assert.Equal(t, "state", Category(&apperrors.PeriodLockedError{}))
	assert.Equal(t, "consistency", Category(&apperrors.ConsistencyError{}))
	assert.Equal(t, "internal", Category(errors.New("boom")))
}

func TestConsistencyFaultsCounter(t *testing.T) {
	before := testutil.ToFloat64(ConsistencyFaults.WithLabelValues("unit-test"))
	ConsistencyFaults.WithLabelValues("unit-test").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(ConsistencyFaults.WithLabelValues("unit-test")))
}
