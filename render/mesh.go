package render

import (
	"io"

	"github.com/soypat/mobius"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// grid streams the strip mesh as triangles, two per quad cell,
// traversing cells in row-major order.
type grid struct {
	x, y, z    *mat.Dense
	rows, cols int
	cell       int // next unread cell
}

// NewGridRenderer returns a Renderer over the strip's point mesh.
// An n×n mesh yields 2*(n-1)² triangles.
func NewGridRenderer(s *mobius.Strip) Renderer {
	x, y, z := s.Mesh()
	rows, cols := x.Dims()
	return &grid{x: x, y: y, z: z, rows: rows, cols: cols}
}

func (g *grid) vertex(i, j int) r3.Vec {
	return r3.Vec{X: g.x.At(i, j), Y: g.y.At(i, j), Z: g.z.At(i, j)}
}

// ReadTriangles writes mesh triangles into dst and returns the number
// written. io.EOF signals the mesh is exhausted.
func (g *grid) ReadTriangles(dst []r3.Triangle) (n int, err error) {
	if len(dst) < 2 {
		panic("triangle buffer must hold at least one quad cell (2 triangles)")
	}
	cells := (g.rows - 1) * (g.cols - 1)
	if g.cell == cells {
		return 0, io.EOF
	}
	for g.cell < cells && n+2 <= len(dst) {
		i := g.cell / (g.cols - 1)
		j := g.cell % (g.cols - 1)
		p00 := g.vertex(i, j)
		p01 := g.vertex(i, j+1)
		p10 := g.vertex(i+1, j)
		p11 := g.vertex(i+1, j+1)
		dst[n] = r3.Triangle{p00, p01, p11}
		dst[n+1] = r3.Triangle{p00, p11, p10}
		n += 2
		g.cell++
	}
	return n, nil
}

// RenderAll reads the full contents of a Renderer and returns the
// slice read. It does not return error on io.EOF.
func RenderAll(r Renderer) ([]r3.Triangle, error) {
	var err error
	var nt int
	result := make([]r3.Triangle, 0, 1<<12)
	buf := make([]r3.Triangle, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		if err != nil {
			break
		}
		result = append(result, buf[:nt]...)
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}
