package model

import (
	"math"
	"testing"
)

func TestQuaternionIdentity(t *testing.T) {
	q := IdentityQuaternion()
	pitch, yaw, roll := q.ToEuler()
	if pitch != 0 || yaw != 0 || roll != 0 {
		t.Fatalf("identity ToEuler = (%v, %v, %v), want zeros", pitch, yaw, roll)
	}
	if got := q.Norm(); got != 1 {
		t.Fatalf("identity Norm = %v, want 1", got)
	}
}

func TestQuaternionEulerRoundTrip(t *testing.T) {
	cases := []struct{ pitch, yaw, roll float64 }{
		{0, 0, 0},
		{0.3, 0, 0},
		{0, 1.2, 0},
		{0, 0, -0.7},
		{0.4, -0.9, 1.1},
		{-1.2, 2.8, -2.9},
		{1.5, 0.1, 0.1}, // near the gimbal limit but inside it
	}
	for _, tc := range cases {
		q := QuaternionFromEuler(tc.pitch, tc.yaw, tc.roll)
		pitch, yaw, roll := q.ToEuler()
		if math.Abs(pitch-tc.pitch) > 1e-6 ||
			math.Abs(yaw-tc.yaw) > 1e-6 ||
			math.Abs(roll-tc.roll) > 1e-6 {
			t.Fatalf("round trip (%v, %v, %v) = (%v, %v, %v)",
				tc.pitch, tc.yaw, tc.roll, pitch, yaw, roll)
		}
	}
}

func TestQuaternionFromEulerIsUnit(t *testing.T) {
	q := QuaternionFromEuler(0.4, -1.1, 2.0)
	if got := q.Norm(); math.Abs(got-1) > 1e-12 {
		t.Fatalf("FromEuler norm = %v, want 1", got)
	}
}

func TestQuaternionNormalize(t *testing.T) {
	q := Quaternion{W: 2, X: 0, Y: 0, Z: 0}.Normalize()
	if q != (Quaternion{W: 1}) {
		t.Fatalf("Normalize(2,0,0,0) = %+v, want identity", q)
	}

	q = Quaternion{W: 1, X: 1, Y: 1, Z: 1}.Normalize()
	if got := q.Norm(); math.Abs(got-1) > 1e-12 {
		t.Fatalf("normalized norm = %v, want 1", got)
	}
}

func TestQuaternionNormalizeZeroIsIdentity(t *testing.T) {
	if got := (Quaternion{}).Normalize(); got != IdentityQuaternion() {
		t.Fatalf("zero quaternion should normalize to identity, got %+v", got)
	}
}

// A quaternion scaled slightly above unit norm can push the asin
// argument past 1; extraction must clamp instead of returning NaN.
func TestQuaternionToEulerClampsAtPole(t *testing.T) {
	q := QuaternionFromEuler(math.Pi/2, 0, 0)
	scaled := Quaternion{W: q.W * 1.0000001, X: q.X * 1.0000001, Y: q.Y * 1.0000001, Z: q.Z * 1.0000001}
	pitch, _, _ := scaled.ToEuler()
	if math.IsNaN(pitch) {
		t.Fatalf("pitch is NaN at pole; asin argument was not clamped")
	}
	if math.Abs(pitch-math.Pi/2) > 1e-3 {
		t.Fatalf("pitch at pole = %v, want ~π/2", pitch)
	}
}

func TestQuaternionMulIdentity(t *testing.T) {
	q := QuaternionFromEuler(0.2, 0.3, 0.4)
	if got := q.Mul(IdentityQuaternion()); got != q {
		t.Fatalf("q ⊗ identity = %+v, want %+v", got, q)
	}
	if got := IdentityQuaternion().Mul(q); got != q {
		t.Fatalf("identity ⊗ q = %+v, want %+v", got, q)
	}
}
