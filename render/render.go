// Package render triangulates the strip's point mesh and writes it out
// as binary STL.
package render

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer streams a triangle mesh in chunks. ReadTriangles returns
// io.EOF once the model is exhausted.
type Renderer interface {
	ReadTriangles(t []r3.Triangle) (int, error)
}
