package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Pose represents a 6dof pose, position and orientation, of an object or a
// frame of reference relative to some other frame.
type Pose interface {
	Point() r3.Vector
	Orientation() Orientation
}

type basicPose struct {
	point       r3.Vector
	orientation Orientation
}

// NewZeroPose returns a pose at (0,0,0) with same orientation as whatever frame it is placed in.
func NewZeroPose() Pose {
	return &basicPose{orientation: NewZeroOrientation()}
}

// NewPose takes in a position and orientation and returns a Pose.
func NewPose(p r3.Vector, o Orientation) Pose {
	if o == nil {
		return NewPoseFromPoint(p)
	}
	return &basicPose{point: p, orientation: o}
}

// NewPoseFromPoint takes in a cartesian (x,y,z) and stores it as a vector.
// It will have the same orientation as the frame it is in reference to.
func NewPoseFromPoint(point r3.Vector) Pose {
	return &basicPose{point: point, orientation: NewZeroOrientation()}
}

// NewPoseFromOrientation takes in an orientation and returns a Pose at the origin.
func NewPoseFromOrientation(o Orientation) Pose {
	if o == nil {
		return NewZeroPose()
	}
	return &basicPose{orientation: o}
}

func (p *basicPose) Point() r3.Vector {
	return p.point
}

func (p *basicPose) Orientation() Orientation {
	return p.orientation
}

// Compose treats Poses as functions A(x) and B(x), and produces a new function C(x) = A(B(x)).
// It converts the poses to quaternions and takes the product, then rotates p2's
// translation into p1's frame and adds the translations.
func Compose(p1, p2 Pose) Pose {
	q1 := p1.Orientation().Quaternion()
	pt := p1.Point().Add(QuatRotateVector(q1, p2.Point()))
	o := quaternion(Normalize(quat.Mul(q1, p2.Orientation().Quaternion())))
	return &basicPose{point: pt, orientation: &o}
}

// PoseInverse will return the inverse of a pose. So if a pose told you how to get from A to B,
// the inverse of that pose would tell you how to get from B to A.
func PoseInverse(p Pose) Pose {
	inv := quat.Conj(p.Orientation().Quaternion())
	pt := QuatRotateVector(inv, p.Point().Mul(-1))
	o := quaternion(inv)
	return &basicPose{point: pt, orientation: &o}
}

// PoseBetween returns the difference between two poses, that is, the pose that when composed with one gets you the other.
func PoseBetween(a, b Pose) Pose {
	return Compose(PoseInverse(a), b)
}

// PoseAlmostEqual checks if two poses are approximately the same.
func PoseAlmostEqual(a, b Pose) bool {
	return PoseAlmostCoincident(a, b) && OrientationAlmostEqual(a.Orientation(), b.Orientation())
}

// PoseAlmostCoincident checks if two poses approximately are at the same 3D coordinate location.
func PoseAlmostCoincident(a, b Pose) bool {
	return R3VectorAlmostEqual(a.Point(), b.Point(), 1e-8)
}

// R3VectorAlmostEqual compares two r3 vectors and returns if the all elementwise differences are less than epsilon.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return a.Sub(b).Norm() < epsilon
}

// TransformMatrix returns the pose as a 4x4 homogeneous transform. The upper
// left 3x3 holds the rotation and the last column the translation.
func TransformMatrix(p Pose) mgl64.Mat4 {
	m := mgl64.Ident4()
	rm := p.Orientation().RotationMatrix()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.Set(r, c, rm.At(r, c))
		}
	}
	pt := p.Point()
	m.Set(0, 3, pt.X)
	m.Set(1, 3, pt.Y)
	m.Set(2, 3, pt.Z)
	return m
}
