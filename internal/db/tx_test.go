package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := Open(Memory)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(`CREATE TABLE assets (url TEXT PRIMARY KEY, body BLOB)`)
	require.NoError(t, err)
	return conn
}

func countAssets(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM assets`).Scan(&n))
	return n
}

func TestWithTx_CommitsEveryWrite(t *testing.T) {
	conn := openMemory(t)

	err := WithTx(context.Background(), conn, func(tx *sql.Tx) error {
		for _, u := range []string{"/", "/index.html", "/js/app.js"} {
			if _, err := tx.Exec(`INSERT INTO assets (url, body) VALUES (?, ?)`, u, []byte(u)); err != nil {
				return err
			}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, countAssets(t, conn))
}

func TestWithTx_FailureRollsBackEarlierWrites(t *testing.T) {
	conn := openMemory(t)
	errFetch := errors.New("fetch /css/style.css: 404 Not Found")

	err := WithTx(context.Background(), conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO assets (url) VALUES ('/')`); err != nil {
			return err
		}
		return errFetch
	})

	require.ErrorIs(t, err, errFetch)
	assert.Zero(t, countAssets(t, conn))
}

func TestWithTx_ConstraintErrorRollsBack(t *testing.T) {
	conn := openMemory(t)

	err := WithTx(context.Background(), conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO assets (url) VALUES ('/')`); err != nil {
			return err
		}
		_, err := tx.Exec(`INSERT INTO assets (url) VALUES ('/')`)
		return err
	})

	require.Error(t, err)
	assert.Zero(t, countAssets(t, conn))
}

func TestWithTx_CanceledContext(t *testing.T) {
	conn := openMemory(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := WithTx(ctx, conn, func(_ *sql.Tx) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
}

func TestOpen_CreatesDirectoryAndAppliesPragmas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "nested", "assets.db")

	conn, err := Open(path)
	require.NoError(t, err)
	defer conn.Close()

	assert.FileExists(t, path)

	var fk int
	require.NoError(t, conn.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}
