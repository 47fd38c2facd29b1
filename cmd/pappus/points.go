package main

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gopappus/internal/config"
	"github.com/philipparndt/gopappus/pkg/pappus"
	"github.com/spf13/cobra"
)

var (
	errBadPoints = errors.New("invalid point list")
	errRejected  = errors.New("point rejected")
)

// pointFlags holds the disk-local coordinates given on the command line.
type pointFlags struct {
	a []float64
	b []float64
}

func addPointFlags(cmd *cobra.Command, p *pointFlags) {
	cmd.Flags().Float64SliceVar(&p.a, "a", nil, "Points on disk A as x1,y1,x2,y2,x3,y3")
	cmd.Flags().Float64SliceVar(&p.b, "b", nil, "Points on disk B as x1,y1,x2,y2,x3,y3")
}

// points returns the marked points in slot order.
func (p pointFlags) points() ([]pappus.MarkedPoint, error) {
	for _, group := range []struct {
		name   string
		coords []float64
	}{{"a", p.a}, {"b", p.b}} {
		if len(group.coords)%2 != 0 {
			return nil, fmt.Errorf("%w: --%s needs x,y pairs, got %d values", errBadPoints, group.name, len(group.coords))
		}
		if len(group.coords) > 2*pappus.GroupSize {
			return nil, fmt.Errorf("%w: --%s takes at most %d points", errBadPoints, group.name, pappus.GroupSize)
		}
	}
	if len(p.b) > 0 && len(p.a) < 2*pappus.GroupSize {
		return nil, fmt.Errorf("%w: disk B points need all three disk A points", errBadPoints)
	}

	points := make([]pappus.MarkedPoint, 0, pappus.PointCount)
	for i := 0; i+1 < len(p.a); i += 2 {
		points = append(points, pappus.MarkedPoint{X: p.a[i], Y: p.a[i+1], Disk: pappus.DiskA})
	}
	for i := 0; i+1 < len(p.b); i += 2 {
		points = append(points, pappus.MarkedPoint{X: p.b[i], Y: p.b[i+1], Disk: pappus.DiskB})
	}
	return points, nil
}

// buildSession replays the points through a session the way clicks would.
func buildSession(cfg config.Config, flags pointFlags) (*pappus.Session, error) {
	points, err := flags.points()
	if err != nil {
		return nil, err
	}

	model, err := cfg.ProjectiveModel()
	if err != nil {
		return nil, err
	}
	layout := cfg.DiskLayout()
	session, err := pappus.NewSession(model, layout)
	if err != nil {
		return nil, err
	}

	for i, p := range points {
		center := layout.Center(p.Disk)
		if !session.Submit(center.X+p.X, center.Y+p.Y) {
			return nil, fmt.Errorf("%w: %s at (%g, %g) duplicates an earlier point on disk %s",
				errRejected, pappus.PointName(i), p.X, p.Y, p.Disk)
		}
	}
	return session, nil
}

// requireComplete builds a session and checks that all six points are set.
func requireComplete(cfg config.Config, flags pointFlags) (*pappus.Session, error) {
	session, err := buildSession(cfg, flags)
	if err != nil {
		return nil, err
	}
	if session.Count() < pappus.PointCount {
		return nil, fmt.Errorf("%w: got %d, pass three points with --a and three with --b",
			pappus.ErrIncomplete, session.Count())
	}
	return session, nil
}
