package model

import "math"

// Quaternion represents a rigid-body orientation as (W, X, Y, Z) with W
// the scalar part. Construction does not enforce unit norm; Normalize is
// an explicit operation.
type Quaternion struct {
	W, X, Y, Z float64
}

// IdentityQuaternion returns the no-rotation orientation.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromEuler builds an orientation from pitch, yaw, and roll in
// radians, composed in yaw-pitch-roll (ZYX) order.
func QuaternionFromEuler(pitch, yaw, roll float64) Quaternion {
	sy, cy := math.Sincos(yaw * 0.5)
	sp, cp := math.Sincos(pitch * 0.5)
	sr, cr := math.Sincos(roll * 0.5)

	return Quaternion{
		W: cy*cp*cr + sy*sp*sr,
		X: cy*cp*sr - sy*sp*cr,
		Y: sy*cp*sr + cy*sp*cr,
		Z: sy*cp*cr - cy*sp*sr,
	}
}

// ToEuler extracts (pitch, yaw, roll) in radians. The pitch argument to
// asin is clamped to [-1, 1] so that accumulated floating-point error
// near the poles cannot push it outside the asin domain.
func (q Quaternion) ToEuler() (pitch, yaw, roll float64) {
	sinPitch := 2 * (q.W*q.Y - q.Z*q.X)
	if sinPitch > 1 {
		sinPitch = 1
	} else if sinPitch < -1 {
		sinPitch = -1
	}
	pitch = math.Asin(sinPitch)
	yaw = math.Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z))
	roll = math.Atan2(2*(q.W*q.X+q.Y*q.Z), 1-2*(q.X*q.X+q.Y*q.Y))
	return pitch, yaw, roll
}

// Norm returns the quaternion's Euclidean norm.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize returns the unit quaternion. A zero-norm quaternion
// normalizes to the identity, mirroring the Vec3 zero-vector policy.
func (q Quaternion) Normalize() Quaternion {
	n := q.Norm()
	if n == 0 {
		return IdentityQuaternion()
	}
	return Quaternion{W: q.W / n, X: q.X / n, Y: q.Y / n, Z: q.Z / n}
}

// Mul returns the Hamilton product q ⊗ other.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
	}
}
