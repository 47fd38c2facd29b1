package controller

import (
	"fmt"

	"github.com/philipparndt/gopappus/pkg/analysis"
	"github.com/philipparndt/gopappus/pkg/pappus"
)

// HelpText lists the key bindings.
const HelpText = "F fullscreen  Esc leave fullscreen  S supporting lines  R reset  Q quit"

// StatusLines describes a snapshot for an on-screen status panel.
func StatusLines(snap pappus.Snapshot) []string {
	lines := []string{fmt.Sprintf("Phase: %s (%d/%d)", snap.Phase, snap.Committed, pappus.PointCount)}

	switch snap.Phase {
	case pappus.CollectingA, pappus.CollectingB:
		name := pappus.PointName(snap.Committed)
		disk := pappus.DiskForSlot(snap.Committed)
		hint := fmt.Sprintf("Click to place %s on disk %s", name, disk)
		if snap.Committed == pappus.GroupSize-1 || snap.Committed == pappus.PointCount-1 {
			hint += " (snaps to the line)"
		}
		lines = append(lines, hint)
		return lines
	}

	report, err := analysis.Analyze(snap, analysis.DefaultTolerance)
	if err != nil {
		return append(lines, fmt.Sprintf("Construction unavailable: %v", err))
	}
	if !report.Complete {
		return lines
	}

	lines = append(lines,
		"I1 "+analysis.FormatVector(report.I1),
		"I2 "+analysis.FormatVector(report.I2),
		"I3 "+analysis.FormatVector(report.I3),
		fmt.Sprintf("Residual %s collinear=%t", analysis.FormatResidual(report.Residual), report.Collinear),
	)
	if report.Query != nil {
		lines = append(lines, "Image "+analysis.FormatVector(report.Query.Image))
	} else {
		lines = append(lines, "Move the pointer over disk A to query a point")
	}
	return lines
}
