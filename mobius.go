// Package mobius models a discretized Möbius strip and derives scalar
// geometric quantities from its point mesh: total surface area by 2D
// quadrature of the Jacobian magnitude and boundary edge length by
// polyline summation along a traced boundary curve.
package mobius

import (
	"math"

	"github.com/soypat/mobius/internal/d3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

const tau = 2 * math.Pi

// Strip is a Möbius strip sampled on an n×n parameter grid. Parameters
// are immutable after construction and the point mesh is built eagerly,
// so derived quantities never fail due to missing state.
type Strip struct {
	radius float64 // R, centerline radius
	width  float64 // w, strip width
	n      int     // samples per parameter axis

	trace EdgeTrace

	// Parameter samples. u covers [0, 2π] and v covers [-w/2, w/2],
	// both endpoint inclusive. u=2π identifies with u=0 under the
	// half twist so the closed interval covers the full period.
	u, v []float64
	// Grid spacings carried explicitly for the finite differencing.
	du, dv float64

	// Point mesh. Row i corresponds to v[i], column j to u[j].
	x, y, z *mat.Dense
}

// Option configures a Strip during construction.
type Option func(*Strip)

// WithEdgeTrace sets how the strip boundary is traced by Boundary and
// EdgeLength. The default is TraceFullEdge.
func WithEdgeTrace(t EdgeTrace) Option {
	return func(s *Strip) { s.trace = t }
}

// New returns a Strip with centerline radius R, width w and n samples
// per parameter axis. It returns an *InvalidParameterError if R <= 0,
// w <= 0 or n < 2 (a mesh needs two samples per axis to form a quad).
func New(R, w float64, n int, opts ...Option) (*Strip, error) {
	switch {
	case math.IsNaN(R) || math.IsInf(R, 0) || R <= 0:
		return nil, &InvalidParameterError{Param: "R", Value: R, Reason: "radius must be a positive finite number"}
	case math.IsNaN(w) || math.IsInf(w, 0) || w <= 0:
		return nil, &InvalidParameterError{Param: "w", Value: w, Reason: "width must be a positive finite number"}
	case n < 2:
		return nil, &InvalidParameterError{Param: "n", Value: float64(n), Reason: "resolution must be 2 or larger"}
	}
	s := &Strip{
		radius: R,
		width:  w,
		n:      n,
		u:      linspace(0, tau, n),
		v:      linspace(-w/2, w/2, n),
		du:     tau / float64(n-1),
		dv:     w / float64(n-1),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.buildMesh()
	return s, nil
}

// At evaluates the strip parametrization at a parameter pair.
// The half-angle u/2 term is what twists the strip: a full 2π sweep of
// u rotates the width direction by only π, making the surface
// single sided.
func (s *Strip) At(u, v float64) r3.Vec {
	sin, cos := math.Sincos(u)
	sinHalf, cosHalf := math.Sincos(u / 2)
	rad := s.radius + v*cosHalf
	return r3.Vec{X: rad * cos, Y: rad * sin, Z: v * sinHalf}
}

func (s *Strip) buildMesh() {
	s.x = mat.NewDense(s.n, s.n, nil)
	s.y = mat.NewDense(s.n, s.n, nil)
	s.z = mat.NewDense(s.n, s.n, nil)
	for i, v := range s.v {
		for j, u := range s.u {
			p := s.At(u, v)
			s.x.Set(i, j, p.X)
			s.y.Set(i, j, p.Y)
			s.z.Set(i, j, p.Z)
		}
	}
}

// Mesh returns copies of the point mesh grids. Row i corresponds to
// the i-th v sample and column j to the j-th u sample, so
// (X(i,j), Y(i,j), Z(i,j)) is the image of (u[j], v[i]).
func (s *Strip) Mesh() (x, y, z *mat.Dense) {
	return mat.DenseCopyOf(s.x), mat.DenseCopyOf(s.y), mat.DenseCopyOf(s.z)
}

// UV returns copies of the parameter sample vectors.
func (s *Strip) UV() (u, v []float64) {
	u = make([]float64, len(s.u))
	v = make([]float64, len(s.v))
	copy(u, s.u)
	copy(v, s.v)
	return u, v
}

// R returns the centerline radius.
func (s *Strip) R() float64 { return s.radius }

// W returns the strip width.
func (s *Strip) W() float64 { return s.width }

// N returns the number of samples per parameter axis.
func (s *Strip) N() int { return s.n }

// Bounds returns the axis aligned bounding box of the point mesh.
func (s *Strip) Bounds() r3.Box {
	min := d3.Elem(math.Inf(1))
	max := d3.Elem(math.Inf(-1))
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			p := r3.Vec{X: s.x.At(i, j), Y: s.y.At(i, j), Z: s.z.At(i, j)}
			min = d3.MinElem(min, p)
			max = d3.MaxElem(max, p)
		}
	}
	return r3.Box{Min: min, Max: max}
}

// linspace samples [start, end] inclusively at n evenly spaced points.
func linspace(start, end float64, n int) []float64 {
	h := (end - start) / float64(n-1)
	x := make([]float64, n)
	for i := range x {
		x[i] = start + float64(i)*h
	}
	x[n-1] = end // exact endpoint, no accumulated rounding
	return x
}
