// Package assetcache keeps an offline copy of the web player's static
// assets in SQLite and serves requests from it.
package assetcache

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/pcsradio/internal/db"
	"github.com/llehouerou/pcsradio/internal/logging"
)

// CacheName is the version of the asset set. Entries stored under any
// other name are removed by Activate.
const CacheName = "pcs-radio-v2"

// Manifest lists the origin-relative paths installed ahead of time.
var Manifest = []string{
	"/",
	"/index.html",
	"/css/style.css",
	"/js/app.js",
	"/manifest.json",
	"/icons/icon-192.png",
	"/icons/icon-512.png",
}

// ErrInvalidOrigin is returned when the origin is not an absolute http(s) URL.
var ErrInvalidOrigin = errors.New("origin must be an absolute http(s) URL")

// Cache is an http.RoundTripper that answers same-origin GETs from SQLite.
type Cache struct {
	db     *sqlx.DB
	origin *url.URL
	base   http.RoundTripper
	name   string
	now    func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithTransport sets the transport used to reach the network.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Cache) { c.base = rt }
}

// WithCacheName overrides CacheName.
func WithCacheName(name string) Option {
	return func(c *Cache) { c.name = name }
}

// WithClock overrides the time source used for stored_at.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// Open opens the cache database at path.
func Open(path, origin string, opts ...Option) (*Cache, error) {
	conn, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	c, err := New(conn, origin, opts...)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

// New creates a cache over conn for origin, creating the schema if needed.
func New(conn *sql.DB, origin string, opts ...Option) (*Cache, error) {
	u, err := url.Parse(origin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOrigin, origin)
	}
	u.Path, u.RawQuery, u.Fragment = "", "", ""
	u.Scheme = strings.ToLower(u.Scheme)

	c := &Cache{
		db:     sqlx.NewDb(conn, "sqlite"),
		origin: u,
		base:   http.DefaultTransport,
		name:   CacheName,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := initSchema(c.db); err != nil {
		return nil, fmt.Errorf("init asset schema: %w", err)
	}
	return c, nil
}

// Origin returns the origin the cache fronts.
func (c *Cache) Origin() *url.URL {
	u := *c.origin
	return &u
}

// Name returns the cache version in use.
func (c *Cache) Name() string {
	return c.name
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) sameOrigin(u *url.URL) bool {
	scheme := strings.ToLower(u.Scheme)
	return scheme == c.origin.Scheme &&
		strings.EqualFold(u.Hostname(), c.origin.Hostname()) &&
		effectivePort(scheme, u.Port()) == effectivePort(c.origin.Scheme, c.origin.Port())
}

func effectivePort(scheme, port string) string {
	switch {
	case port != "":
		return port
	case scheme == "https":
		return "443"
	default:
		return "80"
	}
}

func isManifest(key string) bool {
	return slices.Contains(Manifest, key)
}

func (c *Cache) log() *logrus.Entry {
	return logging.WithFields(logrus.Fields{"cache": c.name, "origin": c.origin.String()})
}
