package viz

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/soypat/mobius"
	"github.com/soypat/mobius/internal/d3"
)

// BoundaryPlot writes the XY projection of the traced boundary
// polyline. A correct trace draws as one continuous curve; a broken
// trace shows as disjoint arcs.
func BoundaryPlot(s *mobius.Strip, path string) error {
	pts := s.Boundary()
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Möbius boundary (R=%g, w=%g, n=%d)", s.R(), s.W(), s.N())
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	// square up the axes so the loop is not distorted.
	min := d3.Set(pts).Min()
	max := d3.Set(pts).Max()
	p.X.Min, p.X.Max = min.X, max.X
	p.Y.Min, p.Y.Max = min.Y, max.Y
	p.Add(plotter.NewGrid())
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// ConvergencePlot evaluates surface area and edge length over a ladder
// of refinements and plots both against n.
func ConvergencePlot(R, w float64, ns []int, trace mobius.EdgeTrace, path string) error {
	areas := make(plotter.XYs, 0, len(ns))
	edges := make(plotter.XYs, 0, len(ns))
	for _, n := range ns {
		s, err := mobius.New(R, w, n, mobius.WithEdgeTrace(trace))
		if err != nil {
			return err
		}
		area, err := s.SurfaceArea()
		if err != nil {
			return err
		}
		edge, err := s.EdgeLength()
		if err != nil {
			return err
		}
		areas = append(areas, plotter.XY{X: float64(n), Y: area})
		edges = append(edges, plotter.XY{X: float64(n), Y: edge})
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Refinement convergence (R=%g, w=%g)", R, w)
	p.X.Label.Text = "n"
	p.Y.Label.Text = "value"
	p.Add(plotter.NewGrid())
	areaLine, err := plotter.NewLine(areas)
	if err != nil {
		return err
	}
	edgeLine, err := plotter.NewLine(edges)
	if err != nil {
		return err
	}
	edgeLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(areaLine, edgeLine)
	p.Legend.Add("surface area", areaLine)
	p.Legend.Add("edge length", edgeLine)
	p.Legend.Top = true
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
