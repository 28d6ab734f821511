// Package main is the folio entry point: a terminal portfolio with
// animated navigation chrome and client-side style page transitions.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"folio/cmd/folio/ui"
	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/logging"
)

var (
	cfgPath    string
	themeFlag  string
	fpsFlag    int
	contentDir string
	tzFlag     string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "folio - an animated portfolio for the terminal",
	Long: `folio renders a small personal site inside the terminal: home, about
and work pages with scramble and shine text effects, cross-faded page
transitions, and browser-style back/forward history.

Run without arguments to open it.`,
	RunE: runFolio,
}

func runFolio(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = logging.New(logPath(cfg), verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	app, err := ui.NewApp(cfg, logger, content.NewProvider(cfg.ContentDir), "/")
	if err != nil {
		return fmt.Errorf("starting folio: %w", err)
	}

	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

// applyFlagOverrides lets explicit flags win over file and env config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("theme") {
		cfg.Theme = themeFlag
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fpsFlag
	}
	if cmd.Flags().Changed("content") {
		cfg.ContentDir = contentDir
	}
	if cmd.Flags().Changed("timezone") {
		cfg.Timezone = tzFlag
	}
}

// logPath defaults the log file next to the user config so the TUI never
// writes to the terminal.
func logPath(cfg *config.Config) string {
	if cfg.LogFile != "" {
		return cfg.LogFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".folio", "folio.log")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath(), "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "color theme: light or dark (default: auto-detect)")
	rootCmd.Flags().IntVar(&fpsFlag, "fps", 0, "animation frame rate")
	rootCmd.Flags().StringVar(&contentDir, "content", "", "directory of markdown pages overriding the built-ins")
	rootCmd.Flags().StringVar(&tzFlag, "timezone", "", "IANA timezone for the nav clock")
	rootCmd.AddCommand(versionCmd)
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".folio", "folio.yaml")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
