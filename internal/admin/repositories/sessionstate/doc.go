// Package sessionstate is the local key/value store behind the admin
// session: bearer token, serialized user profile and selected tenant id.
//
// Repository is the contract; SQLiteRepository implements it on the
// session_state table created by the embedded migrations. Keys are plain
// strings (see KeyToken, KeyUser, KeyTenantID) and values are text.
//
// Get reports a missing key as ("", false, nil) rather than an error.
// Delete and Clear are idempotent. Bind a repository to a transaction with
// WithDB to group several writes:
//
//	err := dbx.WithTx(ctx, db, func(ctx context.Context, tx dbx.DBTX) error {
//	    return repo.WithDB(tx).Delete(ctx, sessionstate.KeyToken, sessionstate.KeyUser)
//	})
package sessionstate
