package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vbonduro/ecoleta/internal/config"
	"github.com/vbonduro/ecoleta/internal/logging"
)

// app carries what every sub-command needs once flags are parsed.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
	cleanup func()
}

func newRootCmd() *cobra.Command {
	a := &app{cleanup: func() {}}

	root := &cobra.Command{
		Use:           "ecoleta",
		Short:         "Recyclable-material collection point registry",
		Long:          `ecoleta serves the JSON API used by the web form and the mobile app to register and find collection points.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.cleanup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (YAML); environment variables take precedence")

	root.AddCommand(newServeCmd(a), newMigrateCmd(a))
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.cleanup = cleanup
	return nil
}
