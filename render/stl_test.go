package render_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/mobius"
	"github.com/soypat/mobius/render"
)

func TestGridRendererTriangleCount(t *testing.T) {
	const n = 17
	s, err := mobius.New(1, 0.5, n)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(render.NewGridRenderer(s))
	if err != nil {
		t.Fatal(err)
	}
	if want := 2 * (n - 1) * (n - 1); len(model) != want {
		t.Errorf("got %d triangles, want %d", len(model), want)
	}
}

func TestGridRendererSmallBuffer(t *testing.T) {
	const n = 9
	s, err := mobius.New(1, 0.5, n)
	if err != nil {
		t.Fatal(err)
	}
	r := render.NewGridRenderer(s)
	buf := make([]r3.Triangle, 2)
	var model []r3.Triangle
	for {
		nt, err := r.ReadTriangles(buf)
		model = append(model, buf[:nt]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	if want := 2 * (n - 1) * (n - 1); len(model) != want {
		t.Errorf("chunked read got %d triangles, want %d", len(model), want)
	}
}

func TestSTLCreateWriteRead(t *testing.T) {
	const n = 17
	s, err := mobius.New(1, 0.5, n)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "strip.stl")
	if err := render.CreateSTL(path, render.NewGridRenderer(s)); err != nil {
		t.Fatal(err)
	}
	bfile, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(render.NewGridRenderer(s))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := render.WriteSTL(&b, model); err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(bfile) {
		t.Fatal("WriteSTL and CreateSTL output length mismatch")
	}
	if !bytes.Equal(b.Bytes(), bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
}
