package cmd

import (
	"github.com/spf13/cobra"

	"github.com/llehouerou/pcsradio/internal/station"
)

func init() {
	rootCmd.AddCommand(stationsCmd)
}

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List the stations and their preset keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		startup := startupStation(cfg, "")
		for _, s := range station.All() {
			cmd.Println(formatStation(s, s.Key == startup))
		}
		return nil
	},
}
