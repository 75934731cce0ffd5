package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/signalsfoundry/spaceflight-simulator/fleet"
	"github.com/signalsfoundry/spaceflight-simulator/model"
)

const smallScenario = `{
  "bodies": [
    {
      "id": "earth", "name": "Earth", "type": "planet",
      "mass_kg": 5.972e24, "radius_m": 6.371e6,
      "atmosphere_pressure_kpa": 101.3, "atmosphere_depth_m": 100000,
      "has_atmosphere": true, "has_water": true,
      "parent_id": "sun",
      "semi_major_axis_m": 1.496e11, "eccentricity": 0.0167,
      "orbital_period_s": 3.156e7,
      "position": {"x": 1.496e11, "y": 0, "z": 0}
    },
    {
      "id": "moon", "name": "Moon", "type": "moon",
      "mass_kg": 7.342e22, "radius_m": 1.7374e6,
      "parent_id": "earth",
      "semi_major_axis_m": 3.844e8, "orbital_period_s": 2.36e6
    }
  ],
  "spacecraft": [
    {
      "id": "explorer-1", "name": "Explorer I", "type": "scout",
      "dry_mass_kg": 4000, "max_fuel_capacity_l": 1000, "current_fuel_l": 500,
      "max_thrust_n": 10000, "specific_impulse_s": 300, "cruise_speed_ms": 7800,
      "position": {"x": 1.4960671e11, "y": 0, "z": 0},
      "throttle_pct": 25
    }
  ]
}`

func TestLoadScenario(t *testing.T) {
	system := NewSolSystem()
	fl := fleet.NewStore()

	sc, err := LoadScenario(system, fl, strings.NewReader(smallScenario))
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}

	if len(sc.BodyIDs) != 2 || len(sc.SpacecraftIDs) != 1 {
		t.Fatalf("summary = %d bodies / %d craft, want 2/1", len(sc.BodyIDs), len(sc.SpacecraftIDs))
	}

	earth := system.GetBody("earth")
	if earth == nil || earth.Type != model.BodyPlanet || earth.Mass != 5.972e24 {
		t.Fatalf("earth not registered correctly: %#v", earth)
	}
	if earth.Position.X != 1.496e11 {
		t.Fatalf("earth position = %+v", earth.Position)
	}
	if moon := system.GetBody("moon"); moon == nil || moon.ParentID != "earth" {
		t.Fatalf("moon not registered under earth: %#v", moon)
	}

	craft := fl.Get("explorer-1")
	if craft == nil {
		t.Fatalf("spacecraft not registered")
	}
	if craft.Type != model.ShipScout || craft.Throttle != 25 || craft.ThrustLevel != 0.25 {
		t.Fatalf("spacecraft state = type %q throttle %v thrust %v", craft.Type, craft.Throttle, craft.ThrustLevel)
	}
}

func TestLoadScenarioDuplicateBody(t *testing.T) {
	system := NewSolSystem()
	fl := fleet.NewStore()
	if _, err := LoadScenario(system, fl, strings.NewReader(smallScenario)); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if _, err := LoadScenario(system, fl, strings.NewReader(smallScenario)); !errors.Is(err, ErrBodyExists) {
		t.Fatalf("second load err = %v, want ErrBodyExists", err)
	}
}

func TestLoadScenarioRejectsBadJSON(t *testing.T) {
	if _, err := LoadScenario(NewSolSystem(), fleet.NewStore(), strings.NewReader("{nope")); err == nil {
		t.Fatalf("malformed JSON accepted")
	}
}

func TestLoadScenarioRejectsEmptyID(t *testing.T) {
	payload := `{"bodies": [{"name": "anon", "type": "planet", "parent_id": "sun"}]}`
	if _, err := LoadScenario(NewSolSystem(), fleet.NewStore(), strings.NewReader(payload)); err == nil {
		t.Fatalf("body with empty id accepted")
	}
}

func TestTypeMappersDefault(t *testing.T) {
	if got := bodyTypeFromString("Comet"); got != model.BodyAsteroid {
		t.Fatalf("unknown body type mapped to %q, want asteroid", got)
	}
	if got := bodyTypeFromString(" Planet "); got != model.BodyPlanet {
		t.Fatalf("padded body type mapped to %q, want planet", got)
	}
	if got := shipTypeFromString("tanker"); got != model.ShipScout {
		t.Fatalf("unknown ship type mapped to %q, want scout", got)
	}
	if got := shipTypeFromString("FREIGHTER"); got != model.ShipFreighter {
		t.Fatalf("upper-case ship type mapped to %q, want freighter", got)
	}
}
