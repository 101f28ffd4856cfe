// Command mobius discretizes the Möbius strip parametrization on an
// n×n grid and derives its surface area and boundary edge length
// numerically. Subcommands export the mesh as STL and render figures.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soypat/mobius"
)

var rootCmd = &cobra.Command{
	Use:   "mobius",
	Short: "Möbius strip mesh generator and measurement tool",
	Long: `mobius discretizes the Möbius strip parametrization on an n×n grid
and computes its surface area (Simpson quadrature of the Jacobian
magnitude) and boundary edge length (polyline summation along the
traced edge). Subcommands export the mesh as binary STL and render
figures of the surface and its boundary.`,
}

var (
	radius    float64
	width     float64
	res       int
	traceMode string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Float64VarP(&radius, "radius", "R", 1.0, "centerline radius of the strip")
	pf.Float64VarP(&width, "width", "w", 0.5, "width of the strip")
	pf.IntVarP(&res, "resolution", "n", 200, "samples per parameter axis")
	pf.StringVar(&traceMode, "edge-trace", "full", `boundary trace mode: "full" (single topological edge, two circuits) or "loop" (one-pass approximation)`)
}

func parseTrace(s string) (mobius.EdgeTrace, error) {
	switch s {
	case "full":
		return mobius.TraceFullEdge, nil
	case "loop":
		return mobius.TraceSingleLoop, nil
	}
	return 0, fmt.Errorf("unknown edge trace mode %q", s)
}

// mustStrip builds the model from the persistent flags or exits.
func mustStrip() *mobius.Strip {
	trace, err := parseTrace(traceMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	s, err := mobius.New(radius, width, res, mobius.WithEdgeTrace(trace))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return s
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
