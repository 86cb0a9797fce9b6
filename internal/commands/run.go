package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/tally/internal/config"
	"github.com/cleared-dev/tally/internal/ledger"
	"github.com/cleared-dev/tally/internal/logging"
	"github.com/cleared-dev/tally/internal/menu"
)

type runOptions struct {
	exportDir string
}

func addRunFlags(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().StringVar(&opts.exportDir, "export-dir", "", "write per-account statement CSVs here when the session ends")
}

func newRunCommand(global *globalOptions) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive banking menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, *global, opts)
		},
	}
	addRunFlags(cmd, &opts)

	return cmd
}

func runMenu(cmd *cobra.Command, global globalOptions, opts runOptions) error {
	cfg, err := config.LoadOrDefault(global.configPath)
	if err != nil {
		return err
	}
	if global.logLevel != "" {
		cfg.Log.Level = global.logLevel
	}
	if opts.exportDir != "" {
		cfg.Export.Dir = opts.exportDir
	}

	log, err := logging.New(cfg.Log.Level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log = log.With(zap.String("session", uuid.NewString()))

	dir := ledger.NewDirectory()
	sess := menu.NewSession(dir, cfg.Bank.Name, cfg.Bank.Currency, log)

	log.Debug("session started", zap.String("config", global.configPath))
	if err := sess.Run(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("menu: %w", err)
	}
	log.Debug("session ended", zap.Int("customers", dir.Len()))

	if cfg.Export.Dir == "" {
		return nil
	}
	paths, err := ledger.ExportStatements(cfg.Export.Dir, dir)
	if err != nil {
		return fmt.Errorf("exporting statements: %w", err)
	}
	log.Info("exported statements", zap.String("dir", cfg.Export.Dir), zap.Strings("files", paths))
	return nil
}
