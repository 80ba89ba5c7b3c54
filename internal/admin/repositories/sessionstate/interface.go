package sessionstate

import (
	"context"

	"github.com/popcue/admin-console/internal/dbx"
)

const (
	KeyToken    = "popcue_admin_token"
	KeyUser     = "popcue_admin_user"
	KeyTenantID = "popcue_admin_tenant_id"
)

// SessionKeys lists every key owned by a session; logout removes all of them.
var SessionKeys = []string{KeyToken, KeyUser, KeyTenantID}

type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	// List returns every stored key with its value.
	List(ctx context.Context) (map[string]string, error)

	// WithDB returns a repository running on db, typically a transaction.
	WithDB(db dbx.DBTX) Repository
}
