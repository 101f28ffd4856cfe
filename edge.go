package mobius

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// EdgeTrace selects how the strip boundary is traced. The Möbius strip
// has a single topological edge: holding |v| = w/2 and sweeping u, the
// half twist carries the trace from the v=+w/2 side onto the v=-w/2
// side after one circuit, so the edge only closes after two.
type EdgeTrace int

const (
	// TraceFullEdge follows the single edge through both circuits,
	// u in [0, 4π] at v = +w/2. The resulting polyline is continuous
	// and closed by construction.
	TraceFullEdge EdgeTrace = iota
	// TraceSingleLoop scans one u period at v = +w/2, the simplified
	// one-pass approximation used by some references. The polyline is
	// open: it ends on the opposite side of the strip, a gap of w away
	// from its start.
	TraceSingleLoop
)

func (t EdgeTrace) String() string {
	switch t {
	case TraceFullEdge:
		return "full"
	case TraceSingleLoop:
		return "loop"
	}
	return "unknown"
}

// Boundary returns the ordered boundary polyline for the configured
// trace mode, sampled at the grid spacing along u.
func (s *Strip) Boundary() []r3.Vec {
	half := s.width / 2
	if s.trace == TraceSingleLoop {
		pts := make([]r3.Vec, s.n)
		for j, u := range s.u {
			pts[j] = s.At(u, half)
		}
		return pts
	}
	// Two circuits. The final sample lands on u=4π which maps back
	// onto the starting point, closing the loop.
	m := 2*(s.n-1) + 1
	pts := make([]r3.Vec, m)
	for k := 0; k < m; k++ {
		pts[k] = s.At(float64(k)*s.du, half)
	}
	return pts
}

// EdgeLength sums the Euclidean distances between consecutive points
// of the traced boundary polyline. No wrap-around segment is added:
// the full-edge trace already ends on its starting point and the
// single-loop trace is an open curve. The estimate converges as n
// grows.
func (s *Strip) EdgeLength() (float64, error) {
	pts := s.Boundary()
	var length float64
	for i := 1; i < len(pts); i++ {
		length += r3.Norm(r3.Sub(pts[i], pts[i-1]))
	}
	if math.IsNaN(length) || math.IsInf(length, 0) {
		return 0, &NumericalInstabilityError{Op: "edge length"}
	}
	return length, nil
}
