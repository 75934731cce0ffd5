package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/signalsfoundry/spaceflight-simulator/core"
	"github.com/signalsfoundry/spaceflight-simulator/fleet"
	"github.com/signalsfoundry/spaceflight-simulator/internal/logging"
	"github.com/signalsfoundry/spaceflight-simulator/internal/observability"
	"github.com/signalsfoundry/spaceflight-simulator/model"
	"github.com/signalsfoundry/spaceflight-simulator/timectrl"
)

func main() {
	duration := flag.Duration("duration", 60*time.Second, "total simulation duration")
	tick := flag.Duration("tick", 16*time.Millisecond, "tick interval (60 Hz default)")
	accelerated := flag.Bool("accelerated", true, "run in accelerated mode (vs real-time)")
	scenarioPath := flag.String("scenario", "", "JSON scenario file; empty seeds the built-in Sol system")
	metricsAddr := flag.String("metrics-addr", ":9090", "address for the Prometheus /metrics endpoint; empty disables")
	throttle := flag.Float64("throttle", 50, "initial throttle percentage for all spacecraft")

	flag.Parse()

	ctx := context.Background()
	log := logging.NewFromEnv()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "tracing init failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdownTracing, log)

	// ==== Scene setup ====

	system := core.NewSolSystem()
	ships := fleet.NewStore()

	if *scenarioPath != "" {
		f, err := os.Open(*scenarioPath)
		if err != nil {
			log.Error(ctx, "failed to open scenario", logging.String("path", *scenarioPath), logging.String("error", err.Error()))
			os.Exit(1)
		}
		scenario, err := core.LoadScenario(system, ships, f)
		f.Close()
		if err != nil {
			log.Error(ctx, "failed to load scenario", logging.String("error", err.Error()))
			os.Exit(1)
		}
		log.Info(ctx, "scenario loaded",
			logging.Int("bodies", len(scenario.BodyIDs)),
			logging.Int("spacecraft", len(scenario.SpacecraftIDs)),
		)
	} else {
		if err := seedSolSystem(system, ships); err != nil {
			log.Error(ctx, "failed to seed default scene", logging.String("error", err.Error()))
			os.Exit(1)
		}
		log.Info(ctx, "seeded built-in Sol system scene")
	}

	for _, sc := range ships.List() {
		sc.SetThrottle(*throttle)
	}

	// ==== Observability ====

	var collector *observability.SimCollector
	if *metricsAddr != "" {
		collector, err = observability.NewSimCollector(nil)
		if err != nil {
			log.Error(ctx, "metrics init failed", logging.String("error", err.Error()))
			os.Exit(1)
		}
		collector.SetScenarioCounts(system.Len(), ships.Len())

		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil && err != http.ErrServerClosed {
				log.Warn(ctx, "metrics server stopped", logging.String("error", err.Error()))
			}
		}()
		log.Info(ctx, "metrics endpoint up", logging.String("addr", *metricsAddr))
	}

	// ==== Engine + time controller ====

	start := time.Now().UTC()
	engine := core.NewSimulationEngine(system, ships, start)

	engine.RegisterTickListener(func(simTime time.Time, dt float64) {
		if collector == nil {
			return
		}
		collector.TicksTotal.Inc()
		for _, sc := range ships.List() {
			collector.RecordSpacecraft(sc.ID, sc.CurrentFuel, sc.OxygenLevel)
		}
	})

	mode := timectrl.RealTime
	if *accelerated {
		mode = timectrl.Accelerated
	}
	tc := timectrl.NewTimeController(start, *tick, mode)

	var tickCount int
	logEvery := int(time.Second / *tick)
	if logEvery < 1 {
		logEvery = 1
	}

	tc.AddListener(func(simTime time.Time, dt float64) {
		tickStart := time.Now()
		if err := engine.Step(ctx, simTime, dt); err != nil {
			log.Error(ctx, "tick failed", logging.String("error", err.Error()))
			return
		}
		if collector != nil {
			collector.TickDuration.Observe(time.Since(tickStart).Seconds())
		}

		tickCount++
		if tickCount%logEvery != 0 {
			return
		}
		// One status line per simulated second.
		for _, sc := range ships.List() {
			log.Info(ctx, "spacecraft state",
				logging.String("sim_time", simTime.Format(time.RFC3339)),
				logging.String("id", sc.ID),
				logging.String("position", fmt.Sprintf("(%.0f, %.0f, %.0f)", sc.Position.X, sc.Position.Y, sc.Position.Z)),
				logging.Float64("speed_ms", sc.Velocity.Norm()),
				logging.Float64("fuel_pct", sc.FuelPercent()),
				logging.Float64("oxygen_pct", sc.OxygenLevel),
				logging.String("life_support", string(sc.LifeSupportStatus)),
			)
		}
	})

	log.Info(ctx, "starting simulation",
		logging.String("duration", duration.String()),
		logging.String("tick", tick.String()),
		logging.Int("mode", int(mode)),
	)
	done := tc.Start(*duration)
	<-done
	log.Info(ctx, "simulation complete", logging.Int("ticks", tickCount))
}

// seedSolSystem registers a minimal Sol scene: Earth, the Moon, Mars,
// and one scout spacecraft parked 400 km above Earth's initial position.
func seedSolSystem(system *core.SolarSystem, ships *fleet.Store) error {
	earth := &model.CelestialBody{
		ID: "earth", Name: "Earth", Type: model.BodyPlanet,
		Mass: 5.972e24, Radius: 6.371e6,
		AtmospherePressure: 101.3, AtmosphereDepth: 100000,
		Temperature: 288, HasAtmosphere: true, HasWater: true,
		ParentID: "sun", SemiMajorAxis: 1.496e11, Eccentricity: 0.0167,
		OrbitalPeriod: 3.156e7, RotationPeriod: 86164, OrbitalVelocity: 29780,
	}
	moon := &model.CelestialBody{
		ID: "moon", Name: "Moon", Type: model.BodyMoon,
		Mass: 7.342e22, Radius: 1.7374e6, Temperature: 250,
		ParentID: "earth", SemiMajorAxis: 3.844e8, Eccentricity: 0.0549,
		Inclination: 0.0898, OrbitalPeriod: 2.361e6, OrbitalVelocity: 1022,
	}
	mars := &model.CelestialBody{
		ID: "mars", Name: "Mars", Type: model.BodyPlanet,
		Mass: 6.417e23, Radius: 3.3895e6,
		AtmospherePressure: 0.6, AtmosphereDepth: 80000,
		Temperature: 210, HasAtmosphere: true,
		ParentID: "sun", SemiMajorAxis: 2.279e11, Eccentricity: 0.0934,
		Inclination: 0.0323, OrbitalPeriod: 5.935e7, OrbitalVelocity: 24070,
	}
	for _, b := range []*model.CelestialBody{earth, moon, mars} {
		if err := system.AddBody(b); err != nil {
			return err
		}
	}

	explorer := model.NewSpacecraft(
		"explorer-1", "Explorer", model.ShipScout,
		4000, 1000, 500, 10000, 300, 7800,
	)
	// 400 km above Earth's periapsis position (bodies start at periapsis).
	explorer.Position = model.Vec3{X: earth.SemiMajorAxis*(1-earth.Eccentricity) + earth.Radius + 400000}
	return ships.Add(explorer)
}
