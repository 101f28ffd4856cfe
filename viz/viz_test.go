package viz_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/mobius"
	"github.com/soypat/mobius/render"
	"github.com/soypat/mobius/viz"
)

func TestSTLToPNG(t *testing.T) {
	s, err := mobius.New(1, 0.5, 33)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	stlPath := filepath.Join(dir, "strip.stl")
	pngPath := filepath.Join(dir, "strip.png")
	if err := render.CreateSTL(stlPath, render.NewGridRenderer(s)); err != nil {
		t.Fatal(err)
	}
	if err := viz.STLToPNG(stlPath, pngPath, 160, 120, viz.DefaultView()); err != nil {
		t.Fatal(err)
	}
	assertNonEmptyFile(t, pngPath)
}

func TestBoundaryPlot(t *testing.T) {
	for _, trace := range []mobius.EdgeTrace{mobius.TraceFullEdge, mobius.TraceSingleLoop} {
		s, err := mobius.New(1, 0.5, 64, mobius.WithEdgeTrace(trace))
		if err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(t.TempDir(), "boundary-"+trace.String()+".png")
		if err := viz.BoundaryPlot(s, path); err != nil {
			t.Fatal(err)
		}
		assertNonEmptyFile(t, path)
	}
}

func TestConvergencePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "convergence.png")
	err := viz.ConvergencePlot(1, 0.5, []int{16, 32, 64}, mobius.TraceFullEdge, path)
	if err != nil {
		t.Fatal(err)
	}
	assertNonEmptyFile(t, path)
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatalf("%s is empty", path)
	}
}
