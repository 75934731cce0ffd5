package core

import "github.com/signalsfoundry/spaceflight-simulator/model"

// Integrator advances spacecraft kinematic state by one timestep using
// semi-implicit (symplectic) Euler: velocity is updated from the
// acceleration first, then position from the already-updated velocity.
// The scheme is part of the public contract: trajectories are
// reproducible for a given acceleration history and dt sequence, and
// energy drift stays bounded on near-orbital motion.
type Integrator struct{}

// Step advances position, velocity, and orientation of sc over dt
// seconds, given the total acceleration for the step. The acceleration
// is also recorded on the craft for telemetry readers.
func (Integrator) Step(sc *model.Spacecraft, accel model.Vec3, dt float64) {
	sc.Acceleration = accel
	sc.Velocity = sc.Velocity.Add(accel.Scale(dt))
	sc.Position = sc.Position.Add(sc.Velocity.Scale(dt))
	sc.Orientation = integrateOrientation(sc.Orientation, sc.AngularVelocity, dt)
}

// integrateOrientation advances q by the body angular velocity ω over dt
// via the quaternion kinematic equation q̇ = ½·ω⊗q, renormalizing to
// keep the unit-norm invariant from drifting.
func integrateOrientation(q model.Quaternion, omega model.Vec3, dt float64) model.Quaternion {
	if omega == (model.Vec3{}) {
		return q
	}
	rate := model.Quaternion{X: omega.X, Y: omega.Y, Z: omega.Z}.Mul(q)
	return model.Quaternion{
		W: q.W + 0.5*rate.W*dt,
		X: q.X + 0.5*rate.X*dt,
		Y: q.Y + 0.5*rate.Y*dt,
		Z: q.Z + 0.5*rate.Z*dt,
	}.Normalize()
}
