// metrodesk is the terminal dashboard for the Metro Rail Document
// Intelligence portal. Run without arguments to start the interactive
// interface.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"metrodesk/cmd/metrodesk/dashboard"
	"metrodesk/cmd/metrodesk/ui"
	"metrodesk/internal/config"
	"metrodesk/internal/logging"
	"metrodesk/internal/portal"
)

var version = "0.1.0"

var (
	verbose    bool
	configPath string
	themeName  string
)

var rootCmd = &cobra.Command{
	Use:   "metrodesk",
	Short: "Metro Rail Document Intelligence portal",
	Long: `metrodesk is the engineering portal for Metro Rail document
intelligence: a chat assistant, live fleet status, document uploads and
full-text search, all in one terminal dashboard.

The backend is simulated for now; every call answers from canned data
after a short delay so the interface can be exercised end to end.

Run without arguments to start the dashboard.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the metrodesk version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("metrodesk %s\n", version)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			path, err = config.File()
			if err != nil {
				return err
			}
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "Color theme: light, dark or auto")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func runDashboard() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if themeName != "" {
		cfg.Theme = themeName
	}

	logDir, err := config.Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}
	logger := logging.New(cfg.Logging, logDir, verbose)
	defer func() { _ = logger.Sync() }()

	logger.Info("starting metrodesk",
		zap.String("version", version),
		zap.String("theme", cfg.Theme),
		zap.Duration("simulated_latency", cfg.SimulatedLatency))

	model := dashboard.New(dashboard.Config{
		Client:    portal.NewSimulated(portal.WithLatency(cfg.SimulatedLatency)),
		Styles:    ui.NewStyles(ui.ThemeByName(cfg.Theme)),
		Logger:    logger,
		UploadDir: cfg.UploadDir,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("dashboard exited with error", zap.Error(err))
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
