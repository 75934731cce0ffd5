// core/scenario_loader.go
package core

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signalsfoundry/spaceflight-simulator/fleet"
	"github.com/signalsfoundry/spaceflight-simulator/model"
)

// Scenario is a small summary of what was loaded from JSON. It’s mainly
// useful for logging from main().
type Scenario struct {
	BodyIDs       []string
	SpacecraftIDs []string
}

// internal JSON shapes – kept unexported so we’re free to evolve them.
type scenarioJSON struct {
	Bodies     []bodyJSON       `json:"bodies"`
	Spacecraft []spacecraftJSON `json:"spacecraft"`
}

type bodyJSON struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Type               string  `json:"type"` // "star" | "planet" | "moon" | "asteroid"
	Mass               float64 `json:"mass_kg"`
	Radius             float64 `json:"radius_m"`
	AtmospherePressure float64 `json:"atmosphere_pressure_kpa"`
	AtmosphereDepth    float64 `json:"atmosphere_depth_m"`
	Temperature        float64 `json:"temperature_k"`
	HasAtmosphere      bool    `json:"has_atmosphere"`
	HasWater           bool    `json:"has_water"`

	ParentID        string  `json:"parent_id"`
	SemiMajorAxis   float64 `json:"semi_major_axis_m"`
	Eccentricity    float64 `json:"eccentricity"`
	Inclination     float64 `json:"inclination_rad"`
	OrbitalPeriod   float64 `json:"orbital_period_s"`
	RotationPeriod  float64 `json:"rotation_period_s"`
	OrbitalVelocity float64 `json:"orbital_velocity_ms"`

	Position *positionJSON `json:"position"` // optional; defaults to origin
}

type spacecraftJSON struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"` // "scout" | "freighter" | "fighter"
	DryMass         float64 `json:"dry_mass_kg"`
	MaxFuelCapacity float64 `json:"max_fuel_capacity_l"`
	CurrentFuel     float64 `json:"current_fuel_l"`
	MaxThrust       float64 `json:"max_thrust_n"`
	SpecificImpulse float64 `json:"specific_impulse_s"`
	CruiseSpeed     float64 `json:"cruise_speed_ms"`

	Position *positionJSON `json:"position"`
	Throttle float64       `json:"throttle_pct"`
}

type positionJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// LoadScenario reads a JSON scenario from r, registers the bodies in the
// solar system and the spacecraft in the fleet, and returns a summary of
// what was loaded.
//
// It fails on JSON / structural errors and on registry rejections
// (duplicate or parentless IDs); value-range policing beyond that is
// left to the same invariants the direct Add calls rely on.
func LoadScenario(system *SolarSystem, fl *fleet.Store, r io.Reader) (*Scenario, error) {
	if system == nil || fl == nil {
		return nil, fmt.Errorf("LoadScenario: nil system or fleet")
	}

	var payload scenarioJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("LoadScenario: decode failed: %w", err)
	}

	result := &Scenario{
		BodyIDs:       make([]string, 0, len(payload.Bodies)),
		SpacecraftIDs: make([]string, 0, len(payload.Spacecraft)),
	}

	for _, jb := range payload.Bodies {
		if jb.ID == "" {
			return nil, fmt.Errorf("LoadScenario: body with empty id")
		}
		body := &model.CelestialBody{
			ID:                 jb.ID,
			Name:               jb.Name,
			Type:               bodyTypeFromString(jb.Type),
			Mass:               jb.Mass,
			Radius:             jb.Radius,
			AtmospherePressure: jb.AtmospherePressure,
			AtmosphereDepth:    jb.AtmosphereDepth,
			Temperature:        jb.Temperature,
			HasAtmosphere:      jb.HasAtmosphere,
			HasWater:           jb.HasWater,
			ParentID:           jb.ParentID,
			SemiMajorAxis:      jb.SemiMajorAxis,
			Eccentricity:       jb.Eccentricity,
			Inclination:        jb.Inclination,
			OrbitalPeriod:      jb.OrbitalPeriod,
			RotationPeriod:     jb.RotationPeriod,
			OrbitalVelocity:    jb.OrbitalVelocity,
		}
		if jb.Position != nil {
			body.Position = model.Vec3{X: jb.Position.X, Y: jb.Position.Y, Z: jb.Position.Z}
		}
		if err := system.AddBody(body); err != nil {
			return nil, fmt.Errorf("LoadScenario: %w", err)
		}
		result.BodyIDs = append(result.BodyIDs, jb.ID)
	}

	for _, js := range payload.Spacecraft {
		if js.ID == "" {
			return nil, fmt.Errorf("LoadScenario: spacecraft with empty id")
		}
		sc := model.NewSpacecraft(
			js.ID, js.Name, shipTypeFromString(js.Type),
			js.DryMass, js.MaxFuelCapacity, js.CurrentFuel,
			js.MaxThrust, js.SpecificImpulse, js.CruiseSpeed,
		)
		if js.Position != nil {
			sc.Position = model.Vec3{X: js.Position.X, Y: js.Position.Y, Z: js.Position.Z}
		}
		sc.SetThrottle(js.Throttle)
		if err := fl.Add(sc); err != nil {
			return nil, fmt.Errorf("LoadScenario: %w", err)
		}
		result.SpacecraftIDs = append(result.SpacecraftIDs, js.ID)
	}

	return result, nil
}

// bodyTypeFromString maps the JSON "type" string to our Body* constants.
// Unknown / empty values default to asteroid, the least consequential
// classification.
func bodyTypeFromString(s string) model.BodyType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "star":
		return model.BodyStar
	case "planet":
		return model.BodyPlanet
	case "moon":
		return model.BodyMoon
	default:
		return model.BodyAsteroid
	}
}

// shipTypeFromString maps the JSON "type" string to our Ship* constants,
// defaulting to scout.
func shipTypeFromString(s string) model.ShipType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "freighter":
		return model.ShipFreighter
	case "fighter":
		return model.ShipFighter
	default:
		return model.ShipScout
	}
}
