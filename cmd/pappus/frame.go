package main

import (
	"fmt"

	"github.com/philipparndt/gopappus/pkg/geometry"
	"github.com/philipparndt/gopappus/pkg/projective"
	"github.com/spf13/cobra"
)

type frameResult struct {
	P1     geometry.Vector3 `json:"p1"`
	P2     geometry.Vector3 `json:"p2"`
	Line   geometry.Vector3 `json:"line"`
	Ideal  bool             `json:"ideal"`
	Frame  projective.Frame `json:"frame"`
	Matrix geometry.Matrix3 `json:"matrix"`
}

func newFrameCmd(opts *globalOptions) *cobra.Command {
	var p1, p2 []float64

	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Print the rotation frame of the line through two points",
		Long: `Lift two disk-local points to the sphere and print the rotation frame that
carries the canonical semicircle onto the visible half of their geodesic.`,
		Example: "  pappus frame --p1 -100,20 --p2 60,-40",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(p1) != 2 || len(p2) != 2 {
				return fmt.Errorf("%w: --p1 and --p2 need exactly one x,y pair each", errBadPoints)
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			model, err := cfg.ProjectiveModel()
			if err != nil {
				return err
			}

			a, b := model.Lift(p1[0], p1[1]), model.Lift(p2[0], p2[1])
			if model.SameProjectivePoint(a, b) {
				return fmt.Errorf("%w: the two points coincide", errBadPoints)
			}
			frame := projective.CalculateFrame(a, b)
			res := frameResult{
				P1:     a,
				P2:     b,
				Line:   projective.Join(a, b),
				Ideal:  model.IsIdealLine(a, b),
				Frame:  frame,
				Matrix: frame.Matrix(),
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), res)
			}

			p := newPrinter(cmd.OutOrStdout())
			p.heading("Rotation Frame")
			p.vector("P1", res.P1)
			p.vector("P2", res.P2)
			p.vector("Line", res.Line)
			p.field("Ideal", "%t", res.Ideal)

			p.section("Frame")
			p.field("ZCos", "%.6f", frame.ZCos)
			p.field("Clockwise", "%t", frame.Clockwise)
			p.field("XSin", "%.6f", frame.XSin)
			for i, row := range res.Matrix {
				p.field(fmt.Sprintf("Row %d", i+1), "%10.6f %10.6f %10.6f", row[0], row[1], row[2])
			}
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&p1, "p1", nil, "First point as x,y")
	cmd.Flags().Float64SliceVar(&p2, "p2", nil, "Second point as x,y")
	cmd.MarkFlagsRequiredTogether("p1", "p2")
	return cmd
}
