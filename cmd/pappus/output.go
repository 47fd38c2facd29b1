package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/philipparndt/gopappus/pkg/analysis"
	"github.com/philipparndt/gopappus/pkg/geometry"
)

// printer writes human readable output. Colors are dropped automatically
// when the writer is not a terminal.
type printer struct {
	w   io.Writer
	out *termenv.Output
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, out: termenv.NewOutput(w)}
}

func (p *printer) heading(title string) {
	fmt.Fprintln(p.w, p.out.String(title).Bold().Foreground(p.out.Color("12")))
	fmt.Fprintln(p.w, strings.Repeat("=", len(title)))
}

func (p *printer) section(title string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.out.String(title+":").Bold())
}

func (p *printer) field(name string, format string, args ...any) {
	fmt.Fprintf(p.w, "  %-12s %s\n", name+":", fmt.Sprintf(format, args...))
}

func (p *printer) vector(name string, v geometry.Vector3) {
	p.field(name, "%s", analysis.FormatVector(v))
}

func (p *printer) verdict(ok bool, good, bad string) {
	if ok {
		fmt.Fprintln(p.w, p.out.String(good).Foreground(p.out.Color("10")))
		return
	}
	fmt.Fprintln(p.w, p.out.String(bad).Foreground(p.out.Color("9")))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPoints(p *printer, report *analysis.Report) {
	p.section("Points")
	for _, pt := range report.Points {
		boundary := ""
		if pt.Boundary {
			boundary = " (boundary)"
		}
		p.field(pt.Name, "%s on disk %s, lifted %s%s",
			analysis.FormatVector(pt.Planar), pt.Disk, analysis.FormatVector(pt.Lifted), boundary)
	}
}
