package spatialmath

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/num/quat"
)

// RandomOrientation samples a uniformly distributed rotation using the
// provided source, via Shoemake's subgroup algorithm. The same seeded source
// always yields the same sequence of orientations.
func RandomOrientation(r *rand.Rand) Orientation {
	u1 := r.Float64()
	u2 := r.Float64()
	u3 := r.Float64()

	q := quaternion(quat.Number{
		Real: math.Sqrt(1-u1) * math.Sin(2*math.Pi*u2),
		Imag: math.Sqrt(1-u1) * math.Cos(2*math.Pi*u2),
		Jmag: math.Sqrt(u1) * math.Sin(2*math.Pi*u3),
		Kmag: math.Sqrt(u1) * math.Cos(2*math.Pi*u3),
	})
	return &q
}
