package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpen_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "state.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	require.True(t, tableExists(t, db, "session_state"))
	require.True(t, tableExists(t, db, "goose_db_version"))
}

func TestOpen_InMemory(t *testing.T) {
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO session_state(key, value) VALUES ('k', 'v')`)
	require.NoError(t, err)

	var v string
	require.NoError(t, db.QueryRow(`SELECT value FROM session_state WHERE key = 'k'`).Scan(&v))
	require.Equal(t, "v", v)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "state.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, db.Close())

	// reopening an existing store applies nothing new
	db, err = Open(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()
	require.True(t, tableExists(t, db, "session_state"))
}

func TestOpen_BadPath(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "missing", "dir", "state.db")
	_, err := Open(context.Background(), dsn)
	require.Error(t, err)
}
