package core

import (
	"math"
	"testing"

	"github.com/signalsfoundry/spaceflight-simulator/model"
)

func testEarth() *model.CelestialBody {
	return &model.CelestialBody{
		ID: "earth", Type: model.BodyPlanet,
		Mass: 5.972e24, Radius: 6.371e6,
	}
}

func TestGravityPointsTowardBody(t *testing.T) {
	eng := NewPhysicsEngine()
	sc := model.NewSpacecraft("s", "S", model.ShipScout, 4000, 1000, 500, 10000, 300, 7800)
	earth := testEarth()
	sc.Position = model.Vec3{X: 7e6, Y: 1e6, Z: -2e6}

	force := eng.Gravity(sc, earth)
	toBody := earth.Position.Sub(sc.Position)
	if force.Dot(toBody) <= 0 {
		t.Fatalf("gravity does not point toward the body: F=%+v", force)
	}
}

func TestGravityMagnitude(t *testing.T) {
	eng := NewPhysicsEngine()
	sc := model.NewSpacecraft("s", "S", model.ShipScout, 4000, 1000, 500, 10000, 300, 7800)
	earth := testEarth()
	sc.Position = model.Vec3{X: earth.Radius} // on the surface

	force := eng.Gravity(sc, earth)
	want := model.GravitationalConstant * earth.Mass * sc.CurrentMass() / (earth.Radius * earth.Radius)
	if got := force.Norm(); math.Abs(got-want)/want > 1e-12 {
		t.Fatalf("gravity magnitude = %v, want %v", got, want)
	}
	// ~9.8 m/s² × mass on the surface.
	if accel := eng.Acceleration(force, sc.CurrentMass()).Norm(); accel <= 9.7 || accel >= 9.9 {
		t.Fatalf("surface acceleration = %v, want ≈9.8", accel)
	}
}

func TestGravityZeroSeparation(t *testing.T) {
	eng := NewPhysicsEngine()
	sc := model.NewSpacecraft("s", "S", model.ShipScout, 4000, 1000, 500, 10000, 300, 7800)
	earth := testEarth()
	sc.Position = earth.Position

	if got := eng.Gravity(sc, earth); got != (model.Vec3{}) {
		t.Fatalf("gravity at zero separation = %+v, want zero vector", got)
	}
}

func TestAccelerationZeroMass(t *testing.T) {
	eng := NewPhysicsEngine()
	if got := eng.Acceleration(model.Vec3{X: 100}, 0); got != (model.Vec3{}) {
		t.Fatalf("acceleration at zero mass = %+v, want zero vector", got)
	}
}

func TestAcceleration(t *testing.T) {
	eng := NewPhysicsEngine()
	got := eng.Acceleration(model.Vec3{X: 100, Y: -50}, 10)
	if got != (model.Vec3{X: 10, Y: -5}) {
		t.Fatalf("acceleration = %+v, want (10, -5, 0)", got)
	}
}

func TestThrustForce(t *testing.T) {
	eng := NewPhysicsEngine()
	sc := model.NewSpacecraft("s", "S", model.ShipScout, 4000, 1000, 500, 10000, 300, 7800)

	if got := eng.ThrustForce(sc); got != (model.Vec3{}) {
		t.Fatalf("idle thrust = %+v, want zero", got)
	}

	sc.SetThrottle(50)
	force := eng.ThrustForce(sc)
	if math.Abs(force.Norm()-5000) > 1e-9 {
		t.Fatalf("thrust at 50%% = %v N, want 5000", force.Norm())
	}

	sc.BoostActive = true
	if got := eng.ThrustForce(sc).Norm(); math.Abs(got-10000) > 1e-9 {
		t.Fatalf("boosted thrust = %v N, want 10000", got)
	}

	sc.CurrentFuel = 0
	if got := eng.ThrustForce(sc); got != (model.Vec3{}) {
		t.Fatalf("dry-tank thrust = %+v, want zero", got)
	}
}
