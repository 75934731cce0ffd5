package core

import (
	"math"
	"time"

	"github.com/signalsfoundry/spaceflight-simulator/model"
)

// MotionModel updates a celestial body's position for a given simulation
// time. Body motion is driven from outside the physics engine: the tick
// loop propagates bodies first, then spacecraft react to them.
type MotionModel interface {
	UpdatePosition(simTime time.Time, b *model.CelestialBody)
}

// StaticMotionModel leaves the body's position unchanged. Used for the
// star and for bodies without orbital elements.
type StaticMotionModel struct{}

// UpdatePosition for static motion does nothing.
func (m *StaticMotionModel) UpdatePosition(simTime time.Time, b *model.CelestialBody) {
	// no-op
}

// KeplerianMotionModel propagates a body along an unperturbed two-body
// orbit around its parent, from the body's stored orbital elements.
// Mean anomaly is measured from the model's epoch, so a body starts each
// run at periapsis; multi-body perturbations are out of scope.
type KeplerianMotionModel struct {
	system *SolarSystem
	epoch  time.Time
}

// NewKeplerianMotionModel constructs a propagator that resolves parent
// positions through the given registry and counts orbital phase from
// epoch.
func NewKeplerianMotionModel(system *SolarSystem, epoch time.Time) *KeplerianMotionModel {
	return &KeplerianMotionModel{system: system, epoch: epoch}
}

// UpdatePosition places the body on its orbit at simTime and sets the
// instantaneous velocity tangent from the vis-viva relation. Bodies with
// a non-positive period or semi-major axis are left untouched.
func (m *KeplerianMotionModel) UpdatePosition(simTime time.Time, b *model.CelestialBody) {
	if b.OrbitalPeriod <= 0 || b.SemiMajorAxis <= 0 {
		return
	}

	var parent *model.CelestialBody
	var parentPos model.Vec3
	if b.ParentID != "" {
		parent = m.system.GetBody(b.ParentID)
		if parent == nil {
			return
		}
		parentPos = parent.Position
	}

	t := simTime.Sub(m.epoch).Seconds()
	meanAnomaly := 2 * math.Pi * math.Mod(t/b.OrbitalPeriod, 1)
	ecc := solveKepler(meanAnomaly, b.Eccentricity)

	// Perifocal position, rotated about the node line by the
	// inclination, plus the parent offset.
	r := b.SemiMajorAxis * (1 - b.Eccentricity*math.Cos(ecc))
	trueAnomaly := 2 * math.Atan2(
		math.Sqrt(1+b.Eccentricity)*math.Sin(ecc/2),
		math.Sqrt(1-b.Eccentricity)*math.Cos(ecc/2),
	)
	sinNu, cosNu := math.Sincos(trueAnomaly)
	sinInc, cosInc := math.Sincos(b.Inclination)

	b.Position = parentPos.Add(model.Vec3{
		X: r * cosNu,
		Y: r * sinNu * cosInc,
		Z: r * sinNu * sinInc,
	})

	// Velocity is tangent to the orbit; magnitude from vis-viva when
	// the parent mass is known, else the stored mean orbital velocity.
	speed := b.OrbitalVelocity
	if parent != nil && parent.Mass > 0 {
		speed = math.Sqrt(model.GravitationalConstant * parent.Mass * (2/r - 1/b.SemiMajorAxis))
	}
	b.Velocity = model.Vec3{
		X: -sinNu,
		Y: cosNu * cosInc,
		Z: cosNu * sinInc,
	}.Normalize().Scale(speed)
}

// solveKepler finds the eccentric anomaly E with E − e·sinE = M by
// Newton iteration. Converges in a handful of steps for e < 1.
func solveKepler(meanAnomaly, eccentricity float64) float64 {
	ecc := meanAnomaly
	for i := 0; i < 10; i++ {
		delta := (ecc - eccentricity*math.Sin(ecc) - meanAnomaly) /
			(1 - eccentricity*math.Cos(ecc))
		ecc -= delta
		if math.Abs(delta) < 1e-12 {
			break
		}
	}
	return ecc
}

// NewMotionModel chooses an appropriate MotionModel for the body:
// Keplerian when it has a parent and usable orbital elements, otherwise
// static.
func NewMotionModel(b *model.CelestialBody, system *SolarSystem, epoch time.Time) MotionModel {
	if b.ParentID != "" && b.OrbitalPeriod > 0 && b.SemiMajorAxis > 0 {
		return NewKeplerianMotionModel(system, epoch)
	}
	return &StaticMotionModel{}
}
