package main

import (
	"log/slog"

	"github.com/philipparndt/gopappus/internal/config"
	"github.com/philipparndt/gopappus/internal/logging"
	"github.com/philipparndt/gopappus/version"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	jsonOutput bool
	verbose    bool
}

func (o *globalOptions) loadConfig() (config.Config, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	slog.Debug("configuration loaded", "path", o.configPath)
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "pappus",
		Short: "Solve and render Pappus hexagon constructions from the command line",
		Long: `pappus computes the Pappus construction for three points on each of two
projective disks without opening a window.

Points are given in coordinates relative to the center of their disk as a flat
list of x,y pairs. The third point of each disk is snapped onto the line
through the first two, exactly as in the interactive viewer.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(cmd.ErrOrStderr(), opts.verbose)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Print JSON instead of text")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newSolveCmd(opts),
		newQueryCmd(opts),
		newFrameCmd(opts),
		newRenderCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}
