package config

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, 10*time.Minute, cfg.StatementCacheTTL)
	assert.False(t, cfg.RequirePeriodCoverage)
	assert.False(t, cfg.ManualApprovalRequired)
	assert.Equal(t, "3100", cfg.PostingAccounts[domain.RoleRetainedEarnings])
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("LEDGER_MANUAL_APPROVAL_REQUIRED", "true")
	t.Setenv("LEDGER_ACCOUNT_CASH", "1001")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("STATEMENT_CACHE_TTL", "not-a-duration")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.True(t, cfg.ManualApprovalRequired)
	assert.Equal(t, "1001", cfg.PostingAccounts.Code(domain.RoleCash))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 10*time.Minute, cfg.StatementCacheTTL)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	_, err := load(viper.New())
	assert.Error(t, err)
}
