package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print surface area, edge length and mesh statistics",
	Long: `Compute and print the strip's surface area and boundary edge length
at 4 decimal places, along with bounding box and mesh statistics.`,
	Args: cobra.NoArgs,
	Run:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	s := mustStrip()
	area, err := s.SurfaceArea()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	edge, err := s.EdgeLength()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	bb := s.Bounds()
	size := r3.Sub(bb.Max, bb.Min)

	fmt.Printf("Möbius strip (R=%g, w=%g, n=%d)\n\n", s.R(), s.W(), s.N())
	fmt.Printf("Surface Area: %.4f\n", area)
	fmt.Printf("Edge Length: %.4f\n\n", edge)
	fmt.Printf("Mesh: %d x %d points, %d triangles\n", s.N(), s.N(), 2*(s.N()-1)*(s.N()-1))
	fmt.Printf("Bounding box min: (%.4f, %.4f, %.4f)\n", bb.Min.X, bb.Min.Y, bb.Min.Z)
	fmt.Printf("Bounding box max: (%.4f, %.4f, %.4f)\n", bb.Max.X, bb.Max.Y, bb.Max.Z)
	fmt.Printf("Dimensions: %.4f x %.4f x %.4f\n", size.X, size.Y, size.Z)
}
