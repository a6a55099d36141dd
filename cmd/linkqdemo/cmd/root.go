// Package cmd implements the linkqdemo command line.
package cmd

import (
	"os"

	"deedles.dev/linkq/internal/config"
	"deedles.dev/linkq/internal/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewRootCmd returns the linkqdemo root command.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		values     []int
		logLevel   string
	)

	root := &cobra.Command{
		Use:   "linkqdemo",
		Short: "Walk through the operations of a linkq queue",
		Long: `linkqdemo fills a queue, exercises every queue operation on it,
and prints what happens, including the drain notifications.

Settings are read from an optional config file, then from these
environment variables, then from flags:

` + config.Usage(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("values") {
				cfg.Values = values
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if len(cfg.Values) == 0 {
				return errors.New("no values to enqueue")
			}

			log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer log.Sync()

			return runDemo(cmd.OutOrStdout(), log, cfg.Values)
		},
	}

	root.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	root.Flags().IntSliceVarP(&values, "values", "v", nil, "values to enqueue at the start of the demo")
	root.Flags().StringVar(&logLevel, "log-level", "", "zap log level")

	return root
}

// Execute runs the root command and exits with a non-zero status on
// failure.
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
