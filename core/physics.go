package core

import "github.com/signalsfoundry/spaceflight-simulator/model"

// PhysicsEngine computes gravitational forces and accelerations. It is
// stateless apart from the gravitational constant, so one instance can
// serve any number of spacecraft.
type PhysicsEngine struct {
	G float64
}

// NewPhysicsEngine returns an engine using the standard gravitational
// constant.
func NewPhysicsEngine() *PhysicsEngine {
	return &PhysicsEngine{G: model.GravitationalConstant}
}

// Gravity returns the gravitational force in newtons exerted on the
// spacecraft by the body, pointing from the spacecraft toward the body.
// When the two share a position the force is the zero vector; there is
// no singularity fault at zero separation.
func (e *PhysicsEngine) Gravity(sc *model.Spacecraft, body *model.CelestialBody) model.Vec3 {
	r := sc.Position.Sub(body.Position)
	dist := r.Norm()
	if dist == 0 {
		return model.Vec3{}
	}

	magnitude := e.G * body.Mass * sc.CurrentMass() / (dist * dist)
	return r.Normalize().Neg().Scale(magnitude)
}

// Acceleration converts a force in newtons into an acceleration in m/s²
// for the given mass. A zero mass yields the zero vector.
func (e *PhysicsEngine) Acceleration(force model.Vec3, mass float64) model.Vec3 {
	if mass == 0 {
		return model.Vec3{}
	}
	return force.Scale(1 / mass)
}

// ThrustForce returns the propulsive force in newtons for the craft's
// current thrust state: commanded fraction of max thrust along the
// normalized thrust vector, doubled under boost to match the doubled
// propellant flow. Zero when the tank is dry.
func (e *PhysicsEngine) ThrustForce(sc *model.Spacecraft) model.Vec3 {
	if sc.ThrustLevel <= 0 || sc.CurrentFuel <= 0 {
		return model.Vec3{}
	}
	magnitude := sc.ThrustLevel * sc.MaxThrust
	if sc.BoostActive {
		magnitude *= 2
	}
	return sc.ThrustVector.Normalize().Scale(magnitude)
}
