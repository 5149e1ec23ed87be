package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/pcsradio/internal/assetcache"
	"github.com/llehouerou/pcsradio/internal/config"
	"github.com/llehouerou/pcsradio/internal/errmsg"
	"github.com/llehouerou/pcsradio/internal/logging"
)

const shutdownGrace = 5 * time.Second

var errNoOrigin = errors.New("no [assets] origin configured")

func init() {
	assetsCmd.AddCommand(assetsInstallCmd, assetsServeCmd, assetsStatusCmd)
	rootCmd.AddCommand(assetsCmd)
}

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Manage the offline copy of the web front end",
}

var assetsInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Download the front end assets and drop older cache versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withCache(func(cache *assetcache.Cache) error {
			ctx := cmd.Context()
			report, err := cache.Install(ctx)
			if err != nil {
				return errors.New(errmsg.FormatWith(errmsg.OpAssetsInstall, cache.Name(), err))
			}
			removed, err := cache.Activate(ctx)
			if err != nil {
				return errors.New(errmsg.FormatWith(errmsg.OpAssetsInstall, cache.Name(), err))
			}
			cmd.Printf("Installed %d assets (%s) from %s into %s\n",
				report.Assets, humanize.IBytes(uint64(report.Bytes)), cache.Origin(), cache.Name())
			if removed > 0 {
				cmd.Printf("Removed %d stale entries\n", removed)
			}
			return nil
		})
	},
}

var assetsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what the offline cache holds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withCache(func(cache *assetcache.Cache) error {
			ctx := cmd.Context()
			stats, err := cache.Stats(ctx)
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpAssetsOpen, err))
			}
			missing, err := cache.Missing(ctx)
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpAssetsOpen, err))
			}

			cmd.Printf("%s: %d entries, %s\n", cache.Name(), stats.Entries, humanize.IBytes(uint64(stats.Bytes)))
			if len(missing) == 0 {
				cmd.Println("All front end assets are available offline.")
				return nil
			}
			cmd.Printf("Missing %d of %d assets:\n", len(missing), len(assetcache.Manifest))
			for _, p := range missing {
				cmd.Println("  " + p)
			}
			return nil
		})
	},
}

var assetsServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the front end locally, from the cache when the origin is unreachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		listen := cfg.GetAssetsConfig().Listen

		return withCacheConfig(cfg, func(cache *assetcache.Cache) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr:              listen,
				Handler:           cache.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}
			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()

			cmd.Printf("Serving %s on http://%s\n", cache.Origin(), listen)
			logging.WithField("listen", listen).Info("asset server started")

			select {
			case err := <-errCh:
				return errors.New(errmsg.Format(errmsg.OpAssetsServe, err))
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return errors.New(errmsg.Format(errmsg.OpAssetsServe, err))
			}
			return nil
		})
	},
}

func withCache(fn func(*assetcache.Cache) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return withCacheConfig(cfg, fn)
}

// withCacheConfig opens the asset cache with logging enabled and closes
// both when fn returns.
func withCacheConfig(cfg *config.Config, fn func(*assetcache.Cache) error) error {
	if !cfg.HasAssetsOrigin() {
		return errNoOrigin
	}
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ac := cfg.GetAssetsConfig()
	cache, err := assetcache.Open(ac.DBPath, ac.Origin)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpAssetsOpen, err))
	}
	defer cache.Close()

	return fn(cache)
}
