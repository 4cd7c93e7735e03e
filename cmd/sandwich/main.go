package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/sandwich/internal/catalog"
	"github.com/jask/sandwich/internal/config"
	"github.com/jask/sandwich/internal/logging"
	"github.com/jask/sandwich/internal/tui"
)

type flags struct {
	configPath string
	logFile    string
	noMouse    bool
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "sandwich",
		Short:         "Build a sandwich by dragging ingredients onto a stack",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}
	root.PersistentFlags().StringVar(&f.configPath, "config", "", "config file (default $SANDWICH_CONFIG or ~/.config/sandwich/config.toml)")
	root.Flags().StringVar(&f.logFile, "log-file", "", "write diagnostic logs to this file")
	root.Flags().BoolVar(&f.noMouse, "no-mouse", false, "disable mouse input")
	root.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log at debug level")
	root.AddCommand(newCatalogCmd(f))
	return root
}

func newCatalogCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the configured ingredients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cat, err := load(f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range cat.Templates() {
				fmt.Fprintf(out, "%-12s %s\n", t.ID, t.Label())
			}
			return nil
		},
	}
}

func load(f *flags) (config.Config, *catalog.Catalog, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("config: %w", err)
	}
	cat, err := catalog.New(cfg.Templates())
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("catalog: %w", err)
	}
	return cfg, cat, nil
}

func run(f *flags) error {
	cfg, cat, err := load(f)
	if err != nil {
		return err
	}
	if f.logFile != "" {
		cfg.Log.Path = f.logFile
	}
	if f.noMouse {
		cfg.UI.Mouse = false
	}

	logger, err := logging.New(cfg.Log.Path, cfg.Log.Level, f.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("config", cfg.Source),
		zap.Int("ingredients", cat.Len()),
		zap.Bool("mouse", cfg.UI.Mouse),
	)

	model := tui.New(cat, tui.Options{
		Title:         cfg.UI.Title,
		DragThreshold: cfg.UI.DragThreshold,
		Flash:         cfg.UI.Flash,
		Logger:        logger,
	})

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
