// Package cmd implements the pcsradio command line.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/llehouerou/pcsradio/internal/config"
	"github.com/llehouerou/pcsradio/internal/errmsg"
	"github.com/llehouerou/pcsradio/internal/logging"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "pcsradio",
	Short:         "A terminal radio for continuous livestream stations",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		stationKey, err := cmd.Flags().GetString("station")
		if err != nil {
			return err
		}
		return runRadio(stationKey)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Read this config file after the default locations")
	rootCmd.Flags().StringP("station", "s", "", "Station to tune in at startup (see 'pcsradio stations')")
	rootCmd.SetOut(os.Stdout)
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	var extra []string
	if configPath != "" {
		extra = append(extra, configPath)
	}
	cfg, err := config.Load(extra...)
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	return cfg, nil
}

// setupLogging opens the configured log file. The returned function
// closes it and never fails the caller.
func setupLogging(cfg *config.Config) (func(), error) {
	lc := cfg.GetLogConfig()
	closeLog, err := logging.Setup(logging.Options{Level: lc.Level, File: lc.File, JSON: lc.JSON})
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpLogSetup, err))
	}
	return func() { _ = closeLog() }, nil
}
