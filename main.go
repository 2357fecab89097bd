package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/kmacinski/termfolio/internal/app"
	"github.com/kmacinski/termfolio/internal/browser"
	"github.com/kmacinski/termfolio/internal/config"
	"github.com/kmacinski/termfolio/internal/logging"
	"github.com/kmacinski/termfolio/internal/prefs"
	"github.com/kmacinski/termfolio/internal/profile"
	"github.com/kmacinski/termfolio/internal/theme"
)

var (
	version = "dev"
	commit  = "none"
)

// flags holds command line overrides of the loaded config
type flags struct {
	config  string
	profile string
	theme   string
	logFile string
	noBoot  bool
	debug   bool
}

func main() {
	var f flags

	root := &cobra.Command{
		Use:   "termfolio",
		Short: "A portfolio desktop in your terminal",
		Long: `termfolio boots a small desktop in the terminal: draggable windows
with the portfolio content, a dock, a theme switcher and a terminal
that understands a handful of commands.`,
		Example: `  # Boot the desktop
  termfolio

  # Skip the boot animation and start with a theme
  termfolio --no-boot --theme matrix

  # Show a different portfolio
  termfolio --profile ./me.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f)
		},
	}

	root.Flags().StringVarP(&f.config, "config", "c", "", "Config file (default: <config dir>/termfolio/config.yaml)")
	root.Flags().StringVarP(&f.profile, "profile", "p", "", "Portfolio profile YAML (default: built in)")
	root.Flags().StringVarP(&f.theme, "theme", "t", "", "Select and save a theme")
	root.Flags().StringVar(&f.logFile, "log-file", "", "Log file (default: <cache dir>/termfolio/termfolio.log)")
	root.Flags().BoolVar(&f.noBoot, "no-boot", false, "Skip the boot animation")
	root.Flags().BoolVarP(&f.debug, "debug", "d", false, "Enable debug logging")

	root.AddCommand(themesCmd())

	if err := fang.Execute(context.Background(), root,
		fang.WithVersion(version),
		fang.WithCommit(commit),
	); err != nil {
		os.Exit(1)
	}
}

func themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range theme.All() {
				marker := " "
				if t.Name == theme.Default {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-16s %s\n", marker, t.Name, t.Label)
			}
			return nil
		},
	}
}

func run(ctx context.Context, f flags) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if f.profile != "" {
		cfg.Profile.Path = f.profile
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
	cfg.Boot.Skip = cfg.Boot.Skip || f.noBoot
	cfg.Log.Debug = cfg.Log.Debug || f.debug

	logger, err := logging.Setup(cfg.Log.File, cfg.Log.Debug)
	if err != nil {
		return err
	}
	defer logger.Close()

	prefsPath := cfg.Prefs.Path
	if prefsPath == "" {
		if prefsPath, err = prefs.DefaultPath(); err != nil {
			return err
		}
	}
	store, err := prefs.Open(prefsPath)
	if err != nil {
		return err
	}

	themes := theme.NewSwitcher(store)
	if f.theme != "" {
		if err := themes.Select(f.theme); err != nil {
			return fmt.Errorf("%w (available: %v)", err, theme.Names())
		}
	}

	p, err := profile.Load(cfg.Profile.Path)
	if err != nil {
		return err
	}

	logger.Info("starting", "version", version, "theme", themes.Current().Name, "prefs", prefsPath)

	a := app.New(app.Options{
		Config:    cfg,
		Profile:   p,
		Theme:     themes,
		Links:     browser.New(browser.WithLogger(logger.Logger)),
		PrefsPath: store.Path(),
		Reload:    store.Reload,
		Logger:    logger.Logger,
	})

	program := tea.NewProgram(
		a,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	a.SetProgram(program)
	defer a.Cleanup()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
