package main

import (
	"github.com/philipparndt/gopappus/pkg/analysis"
	"github.com/spf13/cobra"
)

func newSolveCmd(opts *globalOptions) *cobra.Command {
	var (
		points    pointFlags
		tolerance float64
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the construction for six points",
		Long: `Solve the Pappus construction for three points on each disk and check it:
the third crossing (x2y3)(x3y2) is computed independently and tested against
the Pappus line through I1 and I2.`,
		Example: "  pappus solve --a -100,20,60,-40,150,30 --b -80,-60,30,90,120,0",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			session, err := requireComplete(cfg, points)
			if err != nil {
				return err
			}

			report, err := analysis.Analyze(session.Snapshot(), tolerance)
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report)
			}

			p := newPrinter(cmd.OutOrStdout())
			p.heading("Pappus Construction")
			printPoints(p, report)

			p.section("Construction")
			p.vector("I1", report.I1)
			p.vector("I2", report.I2)
			p.vector("I3", report.I3)
			p.vector("Pappus line", report.PappusLine)
			p.field("Residual", "%s", analysis.FormatResidual(report.Residual))

			p.section("Result")
			p.verdict(report.Collinear,
				"  I3 lies on the Pappus line",
				"  I3 is off the Pappus line beyond the tolerance")
			return nil
		},
	}

	addPointFlags(cmd, &points)
	cmd.Flags().Float64Var(&tolerance, "tolerance", analysis.DefaultTolerance, "Largest residual accepted as collinear")
	return cmd
}
