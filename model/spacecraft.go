package model

import (
	"errors"
	"fmt"
)

// ErrNegativeTimeStep is returned by time-driven mutators when the
// caller supplies dt < 0. The simulation only runs forward.
var ErrNegativeTimeStep = errors.New("negative time step")

// ShipType classifies a spacecraft hull.
type ShipType string

const (
	ShipScout     ShipType = "scout"
	ShipFreighter ShipType = "freighter"
	ShipFighter   ShipType = "fighter"
)

// LifeSupportStatus is the derived categorical health of the cabin
// environment. It is recomputed on every life-support update, never
// cached stale.
type LifeSupportStatus string

const (
	LifeSupportNominal  LifeSupportStatus = "nominal"
	LifeSupportWarning  LifeSupportStatus = "warning"
	LifeSupportCritical LifeSupportStatus = "critical"
)

const (
	// FuelDensity converts liquid-propellant volume to mass, kg/L.
	FuelDensity = 0.75
	// standardGravity is g₀ in the Isp mass-flow relation, m/s².
	standardGravity = 9.81
	// oxygenDecayRate is cabin oxygen loss in percentage points per second.
	oxygenDecayRate = 0.1
)

// Spacecraft holds the full mutable state of one vessel. Propulsion
// constants (DryMass through CruiseSpeed) are fixed at construction;
// everything else is mutated tick by tick.
//
// Units: masses kg, fuel volume L, thrust N, Isp s, distances m,
// velocities m/s, pressure kPa, cabin temperature °C, angles radians.
type Spacecraft struct {
	ID   string
	Name string
	Type ShipType

	DryMass         float64
	MaxFuelCapacity float64
	MaxThrust       float64
	SpecificImpulse float64
	CruiseSpeed     float64

	CurrentFuel float64

	Position        Vec3
	Velocity        Vec3
	Acceleration    Vec3
	Orientation     Quaternion
	AngularVelocity Vec3

	ThrustLevel  float64 // 0..1, derived from Throttle
	ThrustVector Vec3
	Throttle     float64 // 0..100, UI-facing
	BoostActive  bool

	ShieldsActive bool
	HullIntegrity float64 // 0..1

	OxygenLevel       float64 // 0..100
	CabinPressure     float64
	CabinTemp         float64
	LifeSupportStatus LifeSupportStatus
}

// NewSpacecraft constructs a vessel at the origin with full hull, sea
// level cabin conditions, and a forward-pointing thrust vector.
func NewSpacecraft(id, name string, shipType ShipType, dryMass, maxFuel, currentFuel, maxThrust, isp, cruiseSpeed float64) *Spacecraft {
	sc := &Spacecraft{
		ID:                id,
		Name:              name,
		Type:              shipType,
		DryMass:           dryMass,
		MaxFuelCapacity:   maxFuel,
		MaxThrust:         maxThrust,
		SpecificImpulse:   isp,
		CruiseSpeed:       cruiseSpeed,
		Orientation:       IdentityQuaternion(),
		ThrustVector:      Vec3{X: 1},
		HullIntegrity:     1,
		OxygenLevel:       100,
		CabinPressure:     101.3,
		CabinTemp:         20,
		LifeSupportStatus: LifeSupportNominal,
	}
	sc.CurrentFuel = clamp(currentFuel, 0, maxFuel)
	return sc
}

// CurrentMass returns total mass in kg: dry mass plus the mass of the
// remaining propellant at FuelDensity.
func (s *Spacecraft) CurrentMass() float64 {
	return s.DryMass + s.CurrentFuel*FuelDensity
}

// FuelPercent returns remaining fuel as a percentage of capacity. A
// zero-capacity tank reports 0 rather than dividing by zero.
func (s *Spacecraft) FuelPercent() float64 {
	if s.MaxFuelCapacity == 0 {
		return 0
	}
	return s.CurrentFuel / s.MaxFuelCapacity * 100
}

// ConsumeFuel burns propellant for dt seconds at the current thrust
// level and returns the volume actually consumed in litres. Consumption
// follows the Isp mass-flow relation thrustLevel·maxThrust/(Isp·g₀),
// doubles under boost, and is clamped so the tank never goes negative.
func (s *Spacecraft) ConsumeFuel(dt float64) (float64, error) {
	if dt < 0 {
		return 0, fmt.Errorf("ConsumeFuel: %w: %v", ErrNegativeTimeStep, dt)
	}
	if s.ThrustLevel <= 0 {
		return 0, nil
	}

	fuelPerSecond := s.ThrustLevel * s.MaxThrust / (s.SpecificImpulse * standardGravity)
	consumed := fuelPerSecond * dt
	if s.BoostActive {
		consumed *= 2
	}
	if consumed > s.CurrentFuel {
		consumed = s.CurrentFuel
	}
	s.CurrentFuel -= consumed
	return consumed, nil
}

// SetThrottle sets the UI-facing throttle percentage, clamped to
// [0, 100], and derives the normalized thrust level from it.
func (s *Spacecraft) SetThrottle(pct float64) {
	s.Throttle = clamp(pct, 0, 100)
	s.ThrustLevel = s.Throttle / 100
}

// UpdateLifeSupport decays cabin oxygen for dt seconds and recomputes
// the derived status. Oxygen is floored at 0.
func (s *Spacecraft) UpdateLifeSupport(dt float64) error {
	if dt < 0 {
		return fmt.Errorf("UpdateLifeSupport: %w: %v", ErrNegativeTimeStep, dt)
	}

	s.OxygenLevel -= oxygenDecayRate * dt
	if s.OxygenLevel < 0 {
		s.OxygenLevel = 0
	}

	switch {
	case s.OxygenLevel > 50:
		s.LifeSupportStatus = LifeSupportNominal
	case s.OxygenLevel > 20:
		s.LifeSupportStatus = LifeSupportWarning
	default:
		s.LifeSupportStatus = LifeSupportCritical
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
