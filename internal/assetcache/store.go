package assetcache

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

func initSchema(conn *sqlx.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS assets (
			cache_name TEXT NOT NULL,
			url TEXT NOT NULL,
			status INTEGER NOT NULL,
			headers TEXT NOT NULL,
			body BLOB NOT NULL,
			stored_at INTEGER NOT NULL,
			PRIMARY KEY (cache_name, url)
		);
	`)
	return err
}

// Entry is one stored response.
type Entry struct {
	URL      string
	Status   int
	Header   http.Header
	Body     []byte
	StoredAt time.Time
}

type entryRow struct {
	URL      string `db:"url"`
	Status   int    `db:"status"`
	Headers  string `db:"headers"`
	Body     []byte `db:"body"`
	StoredAt int64  `db:"stored_at"`
}

func (r entryRow) entry() (*Entry, error) {
	h, err := decodeHeader(r.Headers)
	if err != nil {
		return nil, fmt.Errorf("decode headers of %s: %w", r.URL, err)
	}
	return &Entry{
		URL:      r.URL,
		Status:   r.Status,
		Header:   h,
		Body:     r.Body,
		StoredAt: time.Unix(r.StoredAt, 0),
	}, nil
}

// response builds a fresh response for req from the entry.
func (e *Entry) response(req *http.Request) *http.Response {
	return &http.Response{
		Status:        strconv.Itoa(e.Status) + " " + http.StatusText(e.Status),
		StatusCode:    e.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        e.Header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(e.Body)),
		ContentLength: int64(len(e.Body)),
		Request:       req,
	}
}

// Lookup returns the entry stored for the origin-relative key, or nil.
func (c *Cache) Lookup(ctx context.Context, key string) (*Entry, error) {
	var row entryRow
	err := c.db.GetContext(ctx, &row, `
		SELECT url, status, headers, body, stored_at
		FROM assets WHERE cache_name = ? AND url = ?
	`, c.name, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.entry()
}

// Put stores an entry under the current cache name.
func (c *Cache) Put(ctx context.Context, e *Entry) error {
	return putEntry(ctx, c.db, c.name, e)
}

// execer is satisfied by both *sqlx.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func putEntry(ctx context.Context, ex execer, name string, e *Entry) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO assets (cache_name, url, status, headers, body, stored_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(cache_name, url) DO UPDATE SET
			status = excluded.status,
			headers = excluded.headers,
			body = excluded.body,
			stored_at = excluded.stored_at
	`, name, e.URL, e.Status, encodeHeader(e.Header), e.Body, e.StoredAt.Unix())
	return err
}

// Stats describes the entries stored under the current cache name.
type Stats struct {
	Entries int   `db:"entries"`
	Bytes   int64 `db:"bytes"`
}

// Stats counts the stored entries and their body sizes.
func (c *Cache) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	err := c.db.GetContext(ctx, &s, `
		SELECT COUNT(*) AS entries, COALESCE(SUM(LENGTH(body)), 0) AS bytes
		FROM assets WHERE cache_name = ?
	`, c.name)
	return s, err
}

// Missing returns the manifest paths not stored under the current cache
// name, in manifest order.
func (c *Cache) Missing(ctx context.Context) ([]string, error) {
	query, args, err := sqlx.In(
		`SELECT url FROM assets WHERE cache_name = ? AND url IN (?)`,
		c.name, Manifest)
	if err != nil {
		return nil, err
	}

	var present []string
	if err := c.db.SelectContext(ctx, &present, c.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	have := make(map[string]bool, len(present))
	for _, u := range present {
		have[u] = true
	}
	var missing []string
	for _, p := range Manifest {
		if !have[p] {
			missing = append(missing, p)
		}
	}
	return missing, nil
}

// Headers are stored in their HTTP wire form.
func encodeHeader(h http.Header) string {
	var b strings.Builder
	_ = h.Write(&b)
	return b.String()
}

func decodeHeader(s string) (http.Header, error) {
	if s == "" {
		return http.Header{}, nil
	}
	r := textproto.NewReader(bufio.NewReader(strings.NewReader(s + "\r\n")))
	mh, err := r.ReadMIMEHeader()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return http.Header(mh), nil
}
