package solid

import "github.com/go-gl/mathgl/mgl64"

// RotationX returns the matrix rotating by theta radians around the X axis.
//
//	| 1    0       0    |
//	| 0  cos θ  -sin θ  |
//	| 0  sin θ   cos θ  |
func RotationX(theta float64) mgl64.Mat3 {
	return mgl64.Rotate3DX(theta)
}

// RotationY returns the matrix rotating by theta radians around the Y axis.
//
//	|  cos θ  0  sin θ |
//	|    0    1    0   |
//	| -sin θ  0  cos θ |
func RotationY(theta float64) mgl64.Mat3 {
	return mgl64.Rotate3DY(theta)
}

// RotationZ returns the matrix rotating by theta radians around the Z axis.
//
//	| cos θ  -sin θ  0 |
//	| sin θ   cos θ  0 |
//	|   0       0    1 |
func RotationZ(theta float64) mgl64.Mat3 {
	return mgl64.Rotate3DZ(theta)
}

// Rotate turns every point of s by thetaX around X, then thetaY around Y,
// then thetaZ around Z. The points are modified in place, so calling Rotate
// once per frame with small angles accumulates a continuous spin.
func Rotate(s Solid, thetaX, thetaY, thetaZ float64) {
	transform(s, RotationX(thetaX), RotationY(thetaY), RotationZ(thetaZ))
}

// Unrotate undoes Rotate(s, thetaX, thetaY, thetaZ) up to rounding error.
func Unrotate(s Solid, thetaX, thetaY, thetaZ float64) {
	transform(s,
		RotationZ(thetaZ).Transpose(),
		RotationY(thetaY).Transpose(),
		RotationX(thetaX).Transpose(),
	)
}

// transform applies ms in order to every point of s.
func transform(s Solid, ms ...mgl64.Mat3) {
	for i := range s.Faces {
		pts := s.Faces[i].Points
		for j := range pts {
			for _, m := range ms {
				pts[j].ApplyMatrix(m)
			}
		}
	}
}
