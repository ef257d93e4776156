package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*StatementCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStatementCache(client, ttl), mr
}

func TestStatementCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	var miss domain.TrialBalanceReport
	found, err := c.Get(ctx, "org-1", 3, "tb:-:*", &miss)
	require.NoError(t, err)
	assert.False(t, found)

	report := domain.TrialBalanceReport{
		Rows:        []domain.TrialBalanceRow{{Code: "1000", Debit: decimal.RequireFromString("12.34"), Credit: decimal.Zero}},
		TotalDebit:  decimal.RequireFromString("12.34"),
		TotalCredit: decimal.RequireFromString("12.34"),
	}
	require.NoError(t, c.Set(ctx, "org-1", 3, "tb:-:*", report))

	var hit domain.TrialBalanceReport
	found, err = c.Get(ctx, "org-1", 3, "tb:-:*", &hit)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, hit.Rows, 1)
	assert.True(t, hit.TotalDebit.Equal(report.TotalDebit))
	assert.Equal(t, "1000", hit.Rows[0].Code)
}

func TestStatementCache_KeyedByOrgAndVersion(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "org-1", 1, "bs:2025-01-31", map[string]string{"v": "old"}))

	var dst map[string]string
	found, err := c.Get(ctx, "org-1", 2, "bs:2025-01-31", &dst)
	require.NoError(t, err)
	assert.False(t, found, "a newer version never sees older statements")

	found, err = c.Get(ctx, "org-2", 1, "bs:2025-01-31", &dst)
	require.NoError(t, err)
	assert.False(t, found, "statements are per org")
}

func TestStatementCache_EntriesExpire(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "org-1", 0, "pl", map[string]int{"n": 1}))
	mr.FastForward(2 * time.Minute)

	var dst map[string]int
	found, err := c.Get(ctx, "org-1", 0, "pl", &dst)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStatementCache_ServerDown(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	mr.Close()

	var dst map[string]int
	_, err := c.Get(context.Background(), "org-1", 0, "pl", &dst)
	assert.Error(t, err)
	assert.Error(t, c.Set(context.Background(), "org-1", 0, "pl", map[string]int{"n": 1}))
}
