package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soypat/mobius/render"
	"github.com/soypat/mobius/viz"
)

var (
	imgOutput string
	imgWidth  int
	imgHeight int
)

var imgCmd = &cobra.Command{
	Use:   "img",
	Short: "Render the strip surface to a PNG image",
	Long: `Triangulate the strip mesh, write it to a temporary STL and render
it offline with a phong shader.`,
	Args: cobra.NoArgs,
	Run:  runImg,
}

func init() {
	imgCmd.Flags().StringVarP(&imgOutput, "output", "o", "mobius.png", "output PNG path")
	imgCmd.Flags().IntVar(&imgWidth, "img-width", 1280, "image width in pixels")
	imgCmd.Flags().IntVar(&imgHeight, "img-height", 960, "image height in pixels")
	rootCmd.AddCommand(imgCmd)
}

func runImg(cmd *cobra.Command, args []string) {
	s := mustStrip()
	tmp, err := os.CreateTemp("", "mobius-*.stl")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tmp.Close()
	defer os.Remove(tmp.Name())
	if err := render.CreateSTL(tmp.Name(), render.NewGridRenderer(s)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := viz.STLToPNG(tmp.Name(), imgOutput, imgWidth, imgHeight, viz.DefaultView()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", imgOutput)
}
