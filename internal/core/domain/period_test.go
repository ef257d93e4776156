package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPeriodStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to domain.PeriodStatus
		want     bool
	}{
		{domain.PeriodOpen, domain.PeriodClosed, true},
		{domain.PeriodClosed, domain.PeriodLocked, true},
		{domain.PeriodOpen, domain.PeriodLocked, false},
		{domain.PeriodClosed, domain.PeriodOpen, false},
		{domain.PeriodLocked, domain.PeriodClosed, false},
		{domain.PeriodLocked, domain.PeriodLocked, false},
		{domain.PeriodClosed, domain.PeriodClosed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestFiscalPeriod_CoversInclusiveBounds(t *testing.T) {
	p := domain.FiscalPeriod{
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, p.Covers(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Covers(time.Date(2025, 1, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, p.Covers(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Covers(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFiscalPeriod_Overlaps(t *testing.T) {
	jan := domain.FiscalPeriod{
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	}
	feb := domain.FiscalPeriod{
		StartDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
	}
	lateJan := domain.FiscalPeriod{
		StartDate: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC),
	}

	assert.False(t, jan.Overlaps(feb))
	assert.True(t, jan.Overlaps(lateJan))
	assert.True(t, lateJan.Overlaps(feb))
}
