package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/gopappus/pkg/pappus"
	"github.com/philipparndt/gopappus/pkg/scene"
	"github.com/philipparndt/gopappus/pkg/viewer"
	"github.com/spf13/cobra"
)

type renderResult struct {
	Path       string `json:"path"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Phase      string `json:"phase"`
	Primitives int    `json:"primitives"`
	Vertices   int    `json:"vertices"`
}

func newRenderCmd(opts *globalOptions) *cobra.Command {
	var (
		points     pointFlags
		at         []float64
		output     string
		width      int
		height     int
		supporting bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the construction to a PNG image",
		Long: `Render the disks, the lines and the markers for any number of points to a
PNG image. With six points the Pappus line is drawn; --at adds a query point
and --supporting adds the lines l1 to l4.`,
		Example: "  pappus render --a -100,20,60,-40,150,30 --b -80,-60,30,90,120,0 --at 10,10 -o pappus.png",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			session, err := buildSession(cfg, points)
			if err != nil {
				return err
			}

			if len(at) > 0 {
				if len(at) != 2 {
					return fmt.Errorf("%w: --at needs exactly one x,y pair", errBadPoints)
				}
				center := session.Layout().Center(pappus.DiskA)
				if _, err := session.Query(center.X+at[0], center.Y+at[1]); err != nil {
					return fmt.Errorf("failed to query (%g, %g): %w", at[0], at[1], err)
				}
			}

			if !cmd.Flags().Changed("width") {
				width = cfg.Window.Width
			}
			if !cmd.Flags().Changed("height") {
				height = cfg.Window.Height
			}
			vp := cfg.Viewport().Resize(float64(width), float64(height))

			style := cfg.SceneStyle()
			style.ShowSupportingLines = supporting
			snap := session.Snapshot()
			frame := scene.Build(snap, style)

			rasterOpts := viewer.DefaultRasterOptions()
			rasterOpts.Background = style.Background
			rasterOpts.PointSize = max(1, int(cfg.Style.PointSize/3))

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err := viewer.WritePNG(f, frame, vp, rasterOpts); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			slog.Debug("image written", "path", output, "vertices", frame.VertexCount())

			res := renderResult{
				Path:       output,
				Width:      width,
				Height:     height,
				Phase:      snap.Phase.String(),
				Primitives: len(frame.Primitives),
				Vertices:   frame.VertexCount(),
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), res)
			}

			p := newPrinter(cmd.OutOrStdout())
			p.heading("Render")
			p.field("File", "%s", res.Path)
			p.field("Size", "%d x %d", res.Width, res.Height)
			p.field("Phase", "%s", res.Phase)
			p.field("Primitives", "%d (%d vertices)", res.Primitives, res.Vertices)
			return nil
		},
	}

	addPointFlags(cmd, &points)
	cmd.Flags().Float64SliceVar(&at, "at", nil, "Query point on disk A as x,y (needs six points)")
	cmd.Flags().StringVarP(&output, "output", "o", "pappus.png", "Output PNG file")
	cmd.Flags().IntVar(&width, "width", 0, "Image width in pixels (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "Image height in pixels (default from config)")
	cmd.Flags().BoolVar(&supporting, "supporting", false, "Draw the supporting lines l1 to l4")
	return cmd
}
