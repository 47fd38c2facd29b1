package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/gopappus/internal/app"
	"github.com/philipparndt/gopappus/internal/config"
	"github.com/philipparndt/gopappus/internal/logging"
	"github.com/philipparndt/gopappus/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	watch      bool
	fullscreen bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "pappus-view",
	Short: "Interactive Pappus hexagon theorem viewer",
	Long: `pappus-view lets you place three points on each of two projective disks and
shows the Pappus construction: the auxiliary lines, their crossings and the
Pappus line. Once six points are placed, moving the pointer over disk A maps
points of the first line onto the second.

Keys: F fullscreen, Esc leave fullscreen, S supporting lines, R reset, Q quit.`,
	Version:      version.GetFullVersion(),
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(cmd.ErrOrStderr(), verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("fullscreen") {
			cfg.Window.Fullscreen = fullscreen
		}
		return app.Run(app.Options{
			Config:     cfg,
			ConfigPath: configPath,
			Watch:      watch,
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pappus-view %s (commit %s, built %s)\n",
			version.GetVersion(), version.GitCommit, version.BuildDate)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the configuration file when it changes")
	rootCmd.Flags().BoolVarP(&fullscreen, "fullscreen", "f", false, "Start in fullscreen mode")

	rootCmd.AddCommand(versionCmd)
}

func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	slog.Debug("configuration loaded", "path", configPath)
	return cfg, nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
