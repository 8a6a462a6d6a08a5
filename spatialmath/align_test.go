package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestRotationBetweenVectors(t *testing.T) {
	cases := []struct {
		name string
		from r3.Vector
		to   r3.Vector
	}{
		{"same axis", r3.Vector{Z: 1}, r3.Vector{Z: 1}},
		{"z to x", r3.Vector{Z: 1}, r3.Vector{X: 1}},
		{"z to negative x", r3.Vector{Z: 1}, r3.Vector{X: -1}},
		{"z to y", r3.Vector{Z: 1}, r3.Vector{Y: 1}},
		{"oblique", r3.Vector{Z: 1}, r3.Vector{X: 1, Y: 2, Z: 3}},
		{"oblique to oblique", r3.Vector{X: -1, Y: 0.5, Z: 2}, r3.Vector{X: 3, Y: -1, Z: 0.2}},
		{"unnormalized inputs", r3.Vector{Z: 10}, r3.Vector{X: 0.01}},
		{"nearly parallel", r3.Vector{Z: 1}, r3.Vector{X: 1e-13, Z: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o, err := RotationBetweenVectors(c.from, c.to)
			test.That(t, err, test.ShouldBeNil)
			rotated := o.RotationMatrix().Mul(c.from.Normalize())
			test.That(t, rotated.Dot(c.to.Normalize()), test.ShouldBeGreaterThanOrEqualTo, 1-1e-6)
		})
	}
}

func TestRotationBetweenVectorsIdentity(t *testing.T) {
	o, err := RotationBetweenVectors(r3.Vector{Z: 1}, r3.Vector{Z: 1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, OrientationAlmostEqual(o, NewZeroOrientation()), test.ShouldBeTrue)
}

func TestRotationBetweenVectorsAntiParallel(t *testing.T) {
	cases := []struct {
		name string
		from r3.Vector
	}{
		{"z axis", r3.Vector{Z: 1}},
		{"x axis", r3.Vector{X: 1}},
		{"negative y axis", r3.Vector{Y: -1}},
		{"oblique", r3.Vector{X: 1, Y: 1, Z: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			to := c.from.Mul(-1)
			o, err := RotationBetweenVectors(c.from, to)
			test.That(t, err, test.ShouldBeNil)

			rm := o.RotationMatrix()
			rotated := rm.Mul(c.from.Normalize())
			test.That(t, rotated.Dot(to.Normalize()), test.ShouldBeGreaterThanOrEqualTo, 1-1e-6)
			// still a proper rotation
			test.That(t, rm.Det(), test.ShouldAlmostEqual, 1, 1e-6)

			// tie-break is deterministic
			o2, err := RotationBetweenVectors(c.from, to)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, OrientationAlmostEqual(o, o2), test.ShouldBeTrue)
		})
	}
}

func TestRotationBetweenVectorsZeroInput(t *testing.T) {
	_, err := RotationBetweenVectors(r3.Vector{}, r3.Vector{Z: 1})
	test.That(t, err, test.ShouldNotBeNil)
	_, err = RotationBetweenVectors(r3.Vector{Z: 1}, r3.Vector{})
	test.That(t, err, test.ShouldNotBeNil)
	_, err = RotationBetweenVectors(r3.Vector{}, r3.Vector{})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestRotationBetweenVectorsNoNaN(t *testing.T) {
	o, err := RotationBetweenVectors(r3.Vector{Z: 1}, r3.Vector{X: -1})
	test.That(t, err, test.ShouldBeNil)
	rm := o.RotationMatrix()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			test.That(t, math.IsNaN(rm.At(r, c)), test.ShouldBeFalse)
		}
	}
}
