package main

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gopappus/pkg/analysis"
	"github.com/philipparndt/gopappus/pkg/pappus"
	"github.com/spf13/cobra"
)

func newQueryCmd(opts *globalOptions) *cobra.Command {
	var (
		points pointFlags
		at     []float64
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Map a point of disk A's line onto disk B's line",
		Long: `Map a seventh point through the construction. The point given with --at is
snapped onto the line x1x2 of disk A; its image lies on the line y2y3 of
disk B. Querying x2 yields y2 and querying x3 yields y3.`,
		Example: "  pappus query --a -100,20,60,-40,150,30 --b -80,-60,30,90,120,0 --at 10,10",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(at) != 2 {
				return fmt.Errorf("%w: --at needs exactly one x,y pair", errBadPoints)
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			session, err := requireComplete(cfg, points)
			if err != nil {
				return err
			}

			center := session.Layout().Center(pappus.DiskA)
			if _, err := session.Query(center.X+at[0], center.Y+at[1]); err != nil {
				return fmt.Errorf("failed to query (%g, %g): %w", at[0], at[1], err)
			}

			report, err := analysis.Analyze(session.Snapshot(), analysis.DefaultTolerance)
			if err != nil {
				return err
			}
			if report.Query == nil {
				return errors.New("query produced no image")
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report.Query)
			}

			p := newPrinter(cmd.OutOrStdout())
			p.heading("Pappus Query")
			p.field("Input", "(%g, %g)", at[0], at[1])
			p.vector("Snapped", report.Query.Point)
			p.vector("Crossing", report.Query.Crossing)
			p.vector("Image", report.Query.Image)
			return nil
		},
	}

	addPointFlags(cmd, &points)
	cmd.Flags().Float64SliceVar(&at, "at", nil, "Query point on disk A as x,y")
	cmd.MarkFlagRequired("at")
	return cmd
}
