package core

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/spaceflight-simulator/fleet"
	"github.com/signalsfoundry/spaceflight-simulator/model"
)

// SimulationEngine orchestrates one fixed-timestep tick over the whole
// scene: celestial bodies are propagated first, then every spacecraft
// burns propellant, decays life support, and is accelerated by gravity
// from its nearest body plus its own thrust, then integrated.
//
// The engine owns no spacecraft state exclusively; it mutates entries of
// the fleet store in place and publishes an update event per craft per
// tick. It is driven by a single caller (the time controller loop); the
// per-tick call ordering is fixed here, not left to consumers.
type SimulationEngine struct {
	System  *SolarSystem
	Fleet   *fleet.Store
	Physics *PhysicsEngine

	integrator Integrator
	epoch      time.Time
	motion     map[string]MotionModel
	tracer     trace.Tracer

	tickListeners []func(simTime time.Time, dt float64)
}

// NewSimulationEngine wires an engine over the given registry and fleet.
// Body motion phase is counted from epoch.
func NewSimulationEngine(system *SolarSystem, fl *fleet.Store, epoch time.Time) *SimulationEngine {
	return &SimulationEngine{
		System:  system,
		Fleet:   fl,
		Physics: NewPhysicsEngine(),
		epoch:   epoch,
		motion:  make(map[string]MotionModel),
		tracer:  otel.Tracer("spaceflight-simulator/core"),
	}
}

// RegisterTickListener adds a callback invoked at the end of every tick,
// after all state has been advanced.
func (se *SimulationEngine) RegisterTickListener(fn func(time.Time, float64)) {
	se.tickListeners = append(se.tickListeners, fn)
}

// Step advances the whole simulation by dt seconds ending at simTime.
// dt must be non-negative; the simulation only runs forward.
func (se *SimulationEngine) Step(ctx context.Context, simTime time.Time, dt float64) error {
	if dt < 0 {
		return fmt.Errorf("Step: %w: %v", model.ErrNegativeTimeStep, dt)
	}

	ctx, span := se.tracer.Start(ctx, "engine.Step",
		trace.WithAttributes(attribute.Float64("sim.dt_seconds", dt)))
	defer span.End()

	// Bodies move first so spacecraft see this tick's geometry.
	for _, body := range se.System.AllBodies() {
		se.motionFor(body).UpdatePosition(simTime, body)
	}

	for _, sc := range se.Fleet.List() {
		if err := se.stepSpacecraft(ctx, sc, dt); err != nil {
			return fmt.Errorf("Step: spacecraft %q: %w", sc.ID, err)
		}
		if err := se.Fleet.NotifyUpdated(sc.ID); err != nil {
			return fmt.Errorf("Step: %w", err)
		}
	}

	for _, fn := range se.tickListeners {
		fn(simTime, dt)
	}
	return nil
}

// stepSpacecraft applies the per-tick order for one craft: propellant
// consumption, life-support decay, gravity from the nearest body, thrust,
// and semi-implicit Euler integration.
func (se *SimulationEngine) stepSpacecraft(ctx context.Context, sc *model.Spacecraft, dt float64) error {
	if _, err := sc.ConsumeFuel(dt); err != nil {
		return err
	}
	if err := sc.UpdateLifeSupport(dt); err != nil {
		return err
	}

	accel := se.AccelerationOn(sc)
	se.integrator.Step(sc, accel, dt)
	return nil
}

// AccelerationOn returns the craft's total acceleration right now:
// gravity from the nearest celestial body plus thrust, divided by the
// current (fuel-dependent) mass. Exposed for consumers that integrate
// externally or display predicted acceleration.
func (se *SimulationEngine) AccelerationOn(sc *model.Spacecraft) model.Vec3 {
	force := se.Physics.ThrustForce(sc)
	if body := se.System.NearestBody(sc.Position); body != nil {
		force = force.Add(se.Physics.Gravity(sc, body))
	}
	return se.Physics.Acceleration(force, sc.CurrentMass())
}

// motionFor returns the body's motion model, building one on first use
// so bodies registered mid-run are picked up.
func (se *SimulationEngine) motionFor(b *model.CelestialBody) MotionModel {
	mm, ok := se.motion[b.ID]
	if !ok {
		mm = NewMotionModel(b, se.System, se.epoch)
		se.motion[b.ID] = mm
	}
	return mm
}
