package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soypat/mobius"
	"github.com/soypat/mobius/viz"
)

var (
	plotOutput string
	plotKind   string
	plotSteps  string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Draw diagnostic figures of the strip",
	Long: `Draw a 2D figure: "boundary" plots the XY projection of the traced
boundary polyline, "convergence" plots surface area and edge length
against a ladder of mesh resolutions.`,
	Args: cobra.NoArgs,
	Run:  runPlot,
}

func init() {
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "mobius-plot.png", "output figure path (.png, .svg, .pdf)")
	plotCmd.Flags().StringVar(&plotKind, "kind", "boundary", `figure kind: "boundary" or "convergence"`)
	plotCmd.Flags().StringVar(&plotSteps, "steps", "25,50,100,200", "comma separated resolutions for the convergence figure")
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) {
	var err error
	switch plotKind {
	case "boundary":
		err = viz.BoundaryPlot(mustStrip(), plotOutput)
	case "convergence":
		var ns []int
		ns, err = parseSteps(plotSteps)
		if err == nil {
			var trace mobius.EdgeTrace
			trace, err = parseTrace(traceMode)
			if err == nil {
				err = viz.ConvergencePlot(radius, width, ns, trace, plotOutput)
			}
		}
	default:
		err = fmt.Errorf("unknown plot kind %q", plotKind)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", plotOutput)
}

func parseSteps(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	ns := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("bad resolution step %q", f)
		}
		ns = append(ns, n)
	}
	if len(ns) == 0 {
		return nil, fmt.Errorf("no resolution steps given")
	}
	return ns, nil
}
