package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// Thresholds for treating two unit vectors as parallel or anti-parallel.
const (
	parallelEpsilon = 1e-10
	axisPickEpsilon = 1e-8
)

var errZeroLengthVector = errors.New("vector has zero length, cannot compute an alignment rotation")

// RotationBetweenVectors returns the minimal rotation that maps the direction
// of from onto the direction of to. Neither input needs to be normalized, but
// both must be non-zero.
//
// When from and to are anti-parallel every 180 degree rotation about an axis
// perpendicular to from is a valid answer. The tie-break is deterministic:
// rotate about the cross product of from with the world X axis, falling back
// to the world Y axis when from lies along X.
func RotationBetweenVectors(from, to r3.Vector) (Orientation, error) {
	fromNorm := from.Norm()
	toNorm := to.Norm()
	if fromNorm == 0 || toNorm == 0 {
		return nil, errZeroLengthVector
	}
	f := from.Mul(1. / fromNorm)
	t := to.Mul(1. / toNorm)

	d := f.Dot(t)
	switch {
	case d > 1.-parallelEpsilon:
		return NewZeroOrientation(), nil
	case d < -1.+parallelEpsilon:
		axis := f.Cross(r3.Vector{X: 1})
		if axis.Norm() < axisPickEpsilon {
			axis = f.Cross(r3.Vector{Y: 1})
		}
		axis = axis.Normalize()
		// 180 degrees about the chosen perpendicular axis
		q := quaternion{Real: 0, Imag: axis.X, Jmag: axis.Y, Kmag: axis.Z}
		return &q, nil
	default:
		axis := f.Cross(t)
		s := math.Sqrt((1. + d) * 2.)
		q := quaternion(Normalize(quat.Number{
			Real: s / 2.,
			Imag: axis.X / s,
			Jmag: axis.Y / s,
			Kmag: axis.Z / s,
		}))
		return &q, nil
	}
}
