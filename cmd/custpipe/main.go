package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"custpipe/pkg/config"
	"custpipe/pkg/pipeline"
)

var successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// eris.ToString with the trace flag keeps the diagnostic chain of a
		// structural failure visible.
		fmt.Fprintln(os.Stderr, eris.ToString(err, true))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		dataDir    string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "custpipe",
		Short: "Merge customer, touchpoint, schedule and employee CSV exports into grouped JSON",
		Long: "custpipe reads the four CSV exports from the data directory, cleans and\n" +
			"joins them on customer and employee identity, and writes one nested JSON\n" +
			"document per customer to customers_grouped.json.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return eris.Wrap(err, "build logger")
			}
			defer logger.Sync() //nolint:errcheck

			cfg := config.Default()
			if configPath != "" {
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}

			summary, err := pipeline.Run(cfg, logger)
			if err != nil {
				logger.Error("pipeline failed", zap.Error(err))
				return err
			}

			fmt.Println(successStyle.Render("✔ JSON exported to " + summary.OutputPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file overriding input/output locations")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "directory holding the four input CSVs and the output file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable development-level logging")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
