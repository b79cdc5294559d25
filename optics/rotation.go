// SPDX-License-Identifier: MIT

package optics

import "math"

// Rotation is a real 3×3 rotation matrix acting on (x, y, z).
type Rotation [3][3]float64

// RotationZ returns the rotation by deg degrees about the z axis
// (the stack normal), counter-clockwise seen from +z.
func RotationZ(deg float64) Rotation {
	s, c := math.Sincos(deg * math.Pi / 180)

	return Rotation{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
}

// RotationX returns the rotation by deg degrees about the x axis.
func RotationX(deg float64) Rotation {
	s, c := math.Sincos(deg * math.Pi / 180)

	return Rotation{{1, 0, 0}, {0, c, -s}, {0, s, c}}
}

// Euler returns Rz(phi)·Rx(theta)·Rz(psi), the z-x-z Euler convention with
// angles in degrees.
func Euler(phi, theta, psi float64) Rotation {
	return RotationZ(phi).Mul(RotationX(theta)).Mul(RotationZ(psi))
}

// Mul returns r·b.
func (r Rotation) Mul(b Rotation) Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[i][j] += r[i][k] * b[k][j]
			}
		}
	}

	return out
}

// Rotate returns R·t·Rᵀ, the tensor of the medium rotated by R.
func (t Tensor) Rotate(r Rotation) Tensor {
	var tmp, out Tensor
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				tmp[i][j] += complex(r[i][k], 0) * t[k][j]
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[i][j] += tmp[i][k] * complex(r[j][k], 0)
			}
		}
	}

	return out
}
