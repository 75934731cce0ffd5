package model

// GravitationalConstant is the Newtonian constant of gravitation in
// m³·kg⁻¹·s⁻².
const GravitationalConstant = 6.67430e-11

// BodyType classifies a celestial body.
type BodyType string

const (
	BodyStar     BodyType = "star"
	BodyPlanet   BodyType = "planet"
	BodyMoon     BodyType = "moon"
	BodyAsteroid BodyType = "asteroid"
)

// CelestialBody represents a star, planet, moon, or asteroid. Physical
// and orbital attributes are fixed at registration; Position and
// Velocity are mutated between ticks by a motion model.
//
// Units: mass kg, radius and distances m, pressure kPa, temperature K,
// angles radians, periods seconds.
type CelestialBody struct {
	ID   string
	Name string
	Type BodyType

	Mass               float64
	Radius             float64
	AtmospherePressure float64
	AtmosphereDepth    float64
	Temperature        float64
	HasAtmosphere      bool
	HasWater           bool

	// Orbital attributes. ParentID is empty for the star. These drive
	// the Keplerian motion model; they are not touched by the physics
	// engine itself.
	ParentID        string
	SemiMajorAxis   float64
	Eccentricity    float64
	Inclination     float64
	OrbitalPeriod   float64
	RotationPeriod  float64
	OrbitalVelocity float64

	Position Vec3
	Velocity Vec3
}

// SurfaceGravity returns the gravitational acceleration at the body's
// nominal radius in m/s². A zero-radius body yields exactly 0 rather
// than a division fault.
func (b *CelestialBody) SurfaceGravity() float64 {
	if b.Radius == 0 {
		return 0
	}
	return GravitationalConstant * b.Mass / (b.Radius * b.Radius)
}

// InAtmosphere reports whether a point lies within the body's
// atmospheric shell. Always false for bodies without an atmosphere.
func (b *CelestialBody) InAtmosphere(point Vec3) bool {
	if !b.HasAtmosphere {
		return false
	}
	return point.DistanceTo(b.Position) <= b.Radius+b.AtmosphereDepth
}

// DistanceToSurface returns the distance from a point to the body's
// nominal surface. Negative when the point is below the surface; that is
// a valid answer, not an error.
func (b *CelestialBody) DistanceToSurface(point Vec3) float64 {
	return point.DistanceTo(b.Position) - b.Radius
}
