package model

import "testing"

func earthLike() *CelestialBody {
	return &CelestialBody{
		ID: "earth", Name: "Earth", Type: BodyPlanet,
		Mass: 5.972e24, Radius: 6.371e6,
		AtmospherePressure: 101.3, AtmosphereDepth: 100000,
		Temperature: 288, HasAtmosphere: true, HasWater: true,
	}
}

func TestSurfaceGravityEarth(t *testing.T) {
	g := earthLike().SurfaceGravity()
	if g <= 9.7 || g >= 9.9 {
		t.Fatalf("Earth surface gravity = %v, want in (9.7, 9.9)", g)
	}
}

func TestSurfaceGravityZeroRadius(t *testing.T) {
	b := &CelestialBody{ID: "point", Mass: 1e20}
	if got := b.SurfaceGravity(); got != 0 {
		t.Fatalf("zero-radius surface gravity = %v, want exactly 0", got)
	}
}

func TestInAtmosphere(t *testing.T) {
	earth := earthLike()

	// At the surface.
	if !earth.InAtmosphere(Vec3{X: earth.Radius}) {
		t.Fatalf("surface point should be in atmosphere")
	}
	// Just inside the atmospheric shell.
	if !earth.InAtmosphere(Vec3{X: earth.Radius + earth.AtmosphereDepth}) {
		t.Fatalf("point at atmosphere ceiling should count as inside")
	}
	// Above the shell.
	if earth.InAtmosphere(Vec3{X: earth.Radius + earth.AtmosphereDepth + 1}) {
		t.Fatalf("point above atmosphere should be outside")
	}
}

func TestInAtmosphereAirlessBody(t *testing.T) {
	moon := &CelestialBody{ID: "moon", Type: BodyMoon, Radius: 1.7374e6}
	if moon.InAtmosphere(Vec3{}) {
		t.Fatalf("airless body should never report in-atmosphere")
	}
}

func TestDistanceToSurface(t *testing.T) {
	earth := earthLike()

	if got := earth.DistanceToSurface(Vec3{X: earth.Radius + 400000}); got != 400000 {
		t.Fatalf("DistanceToSurface = %v, want 400000", got)
	}
	// Below the nominal surface is a negative distance, not an error.
	if got := earth.DistanceToSurface(Vec3{X: earth.Radius - 1000}); got != -1000 {
		t.Fatalf("DistanceToSurface below surface = %v, want -1000", got)
	}
}

func TestDistanceToSurfaceOffsetBody(t *testing.T) {
	b := &CelestialBody{ID: "b", Radius: 100, Position: Vec3{X: 1000}}
	if got := b.DistanceToSurface(Vec3{X: 1300}); got != 200 {
		t.Fatalf("DistanceToSurface with offset centre = %v, want 200", got)
	}
}
