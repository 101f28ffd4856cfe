package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/soypat/mobius"
	"github.com/soypat/mobius/internal/d3"
)

func TestSTLWriteReadback(t *testing.T) {
	// float32 storage bounds the roundtrip precision.
	const tol = 1e-5
	s, err := mobius.New(1, 0.5, 33)
	if err != nil {
		t.Fatal(err)
	}
	input, err := RenderAll(NewGridRenderer(s))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := WriteSTL(&b, input); err != nil {
		t.Fatal(err)
	}
	output, err := readBinarySTL(&b)
	if err != nil && !errors.Is(err, errCalculatedNormalMismatch) {
		t.Fatal(err)
	}
	if len(output) != len(input) {
		t.Fatal("length of triangles written/read not equal")
	}
	mismatches := 0
	for iface, expect := range input {
		got := output[iface]
		for i := range expect {
			if !d3.EqualWithin(got[i], expect[i], tol) {
				mismatches++
				t.Errorf("%dth triangle equality out of tolerance. got vertex %0.5g, want %0.5g", iface, got[i], expect[i])
			}
		}
		if mismatches > 10 {
			t.Fatal("too many mismatches")
		}
	}
}

func TestReadBinarySTLEmpty(t *testing.T) {
	var b bytes.Buffer
	if _, err := readBinarySTL(&b); err == nil {
		t.Error("expected error reading empty STL stream")
	}
	var hdr [84]byte
	b.Write(hdr[:]) // zero triangle count
	if _, err := readBinarySTL(&b); err == nil {
		t.Error("expected error for zero triangle count")
	}
}
