// Package allocentric converts between the two conventions for expressing the
// orientation of an observed object in monocular 3D detection: egocentric
// rotation, measured in the camera frame, and allocentric rotation, measured
// relative to the ray from the camera to the object center. Objects sharing
// an allocentric rotation look identical from the camera no matter where they
// sit in the image; objects sharing an egocentric rotation do not.
package allocentric

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"

	"github.com/alloviz/alloviz/spatialmath"
)

// DefaultPrincipalAxis is the local object axis aligned with the viewing ray,
// the usual "forward" convention for camera-facing objects.
var DefaultPrincipalAxis = r3.Vector{X: 0, Y: 0, Z: 1}

// ObjectPlacement locates an object relative to the camera: the direction
// from the camera origin to the object center, and the distance along it.
type ObjectPlacement struct {
	Direction r3.Vector
	Distance  float64
}

// EgocentricRotation computes the camera-frame rotation an object must have
// so that its rotation about the viewing ray toward target is allo. The
// allocentric rotation is applied first in the object's local frame, then the
// principal axis is aligned onto the viewing ray.
func EgocentricRotation(target, principal r3.Vector, allo spatialmath.Orientation) (spatialmath.Orientation, error) {
	if allo == nil {
		return nil, errors.New("allocentric rotation cannot be nil")
	}
	align, err := spatialmath.RotationBetweenVectors(principal, target)
	if err != nil {
		return nil, errors.Wrap(err, "cannot align principal axis with target direction")
	}
	q := spatialmath.Normalize(quat.Mul(align.Quaternion(), allo.Quaternion()))
	return spatialmath.NewQuaternion(q.Real, q.Imag, q.Jmag, q.Kmag), nil
}

// AllocentricRotation recovers the viewing-ray-relative rotation from an
// egocentric one, inverting EgocentricRotation.
func AllocentricRotation(target, principal r3.Vector, ego spatialmath.Orientation) (spatialmath.Orientation, error) {
	if ego == nil {
		return nil, errors.New("egocentric rotation cannot be nil")
	}
	align, err := spatialmath.RotationBetweenVectors(principal, target)
	if err != nil {
		return nil, errors.Wrap(err, "cannot align principal axis with target direction")
	}
	q := spatialmath.Normalize(quat.Mul(quat.Conj(align.Quaternion()), ego.Quaternion()))
	return spatialmath.NewQuaternion(q.Real, q.Imag, q.Jmag, q.Kmag), nil
}

// PlacePose produces the single camera-frame pose placing an object at the
// given placement with the prescribed allocentric rotation. The translation is
// the placement direction normalized and scaled to the placement distance.
func PlacePose(placement ObjectPlacement, principal r3.Vector, allo spatialmath.Orientation) (spatialmath.Pose, error) {
	if placement.Distance < 0 {
		return nil, errors.Errorf("placement distance cannot be negative, got %f", placement.Distance)
	}
	norm := placement.Direction.Norm()
	if norm == 0 {
		return nil, errors.New("placement direction has zero length")
	}
	ego, err := EgocentricRotation(placement.Direction, principal, allo)
	if err != nil {
		return nil, err
	}
	pt := placement.Direction.Mul(placement.Distance / norm)
	return spatialmath.NewPose(pt, ego), nil
}
