package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soypat/mobius/render"
)

var stlOutput string

var stlCmd = &cobra.Command{
	Use:   "stl",
	Short: "Write the triangulated strip mesh as binary STL",
	Args:  cobra.NoArgs,
	Run:   runSTL,
}

func init() {
	stlCmd.Flags().StringVarP(&stlOutput, "output", "o", "mobius.stl", "output STL path")
	rootCmd.AddCommand(stlCmd)
}

func runSTL(cmd *cobra.Command, args []string) {
	s := mustStrip()
	if err := render.CreateSTL(stlOutput, render.NewGridRenderer(s)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d triangles)\n", stlOutput, 2*(s.N()-1)*(s.N()-1))
}
