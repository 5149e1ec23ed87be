package assetcache

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"

	"github.com/llehouerou/pcsradio/internal/db"
)

// InstallReport summarises a successful install.
type InstallReport struct {
	Assets int
	Bytes  int64
}

// Install fetches every manifest asset from the origin and stores them in
// one transaction. Any failed fetch aborts the install and leaves the
// cache unchanged.
func (c *Cache) Install(ctx context.Context) (InstallReport, error) {
	client := &http.Client{Transport: c.base}
	entries := make([]*Entry, 0, len(Manifest))

	for _, path := range Manifest {
		e, err := c.fetch(ctx, client, path)
		if err != nil {
			return InstallReport{}, err
		}
		entries = append(entries, e)
	}

	var report InstallReport
	err := db.WithTx(ctx, c.db.DB, func(tx *sql.Tx) error {
		for _, e := range entries {
			if err := putEntry(ctx, tx, c.name, e); err != nil {
				return fmt.Errorf("store %s: %w", e.URL, err)
			}
			report.Assets++
			report.Bytes += int64(len(e.Body))
		}
		return nil
	})
	if err != nil {
		return InstallReport{}, err
	}

	c.log().WithField("assets", report.Assets).Info("assets installed")
	return report, nil
}

func (c *Cache) fetch(ctx context.Context, client *http.Client, path string) (*Entry, error) {
	target := c.origin.String() + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &Entry{
		URL:      path,
		Status:   resp.StatusCode,
		Header:   resp.Header.Clone(),
		Body:     body,
		StoredAt: c.now(),
	}, nil
}

// Activate removes every entry stored under another cache version and
// returns how many were removed.
func (c *Cache) Activate(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx, `DELETE FROM assets WHERE cache_name <> ?`, c.name)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		c.log().WithField("removed", n).Info("stale assets removed")
	}
	return n, nil
}
