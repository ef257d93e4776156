package repositories

import "context"

// StatementCache stores computed statements keyed by the org's ledger version.
// A write moves the version on inside the storage transaction, so a statement
// cached under an older version is never addressed again.
type StatementCache interface {
	Get(ctx context.Context, orgID string, version int64, key string, dst any) (bool, error)
	Set(ctx context.Context, orgID string, version int64, key string, value any) error
}
