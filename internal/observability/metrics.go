package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SimCollector bundles Prometheus metrics for the simulation loop and
// provides a ready-to-serve /metrics handler.
type SimCollector struct {
	gatherer prometheus.Gatherer

	TicksTotal   prometheus.Counter
	TickDuration prometheus.Histogram

	FuelLiters    *prometheus.GaugeVec
	OxygenPercent *prometheus.GaugeVec

	ScenarioBodies     prometheus.Gauge
	ScenarioSpacecraft prometheus.Gauge
}

// NewSimCollector registers simulation Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry when
// nil.
func NewSimCollector(reg prometheus.Registerer) (*SimCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	ticks, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sim_ticks_total",
		Help: "Total number of completed simulation ticks.",
	}), "sim_ticks_total")
	if err != nil {
		return nil, err
	}

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sim_tick_duration_seconds",
		Help:    "Wall-clock time spent advancing one simulation tick.",
		Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
	})
	duration, err = registerHistogram(reg, duration, "sim_tick_duration_seconds")
	if err != nil {
		return nil, err
	}

	fuel := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "spacecraft_fuel_liters",
		Help: "Remaining propellant per spacecraft, in litres.",
	}, []string{"spacecraft"})
	fuel, err = registerGaugeVec(reg, fuel, "spacecraft_fuel_liters")
	if err != nil {
		return nil, err
	}

	oxygen := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "spacecraft_oxygen_percent",
		Help: "Cabin oxygen level per spacecraft, 0-100.",
	}, []string{"spacecraft"})
	oxygen, err = registerGaugeVec(reg, oxygen, "spacecraft_oxygen_percent")
	if err != nil {
		return nil, err
	}

	bodies, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scenario_bodies",
		Help: "Current number of celestial bodies in the registry.",
	}), "scenario_bodies")
	if err != nil {
		return nil, err
	}
	spacecraft, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scenario_spacecraft",
		Help: "Current number of spacecraft in the fleet.",
	}), "scenario_spacecraft")
	if err != nil {
		return nil, err
	}

	return &SimCollector{
		gatherer:           gatherer,
		TicksTotal:         ticks,
		TickDuration:       duration,
		FuelLiters:         fuel,
		OxygenPercent:      oxygen,
		ScenarioBodies:     bodies,
		ScenarioSpacecraft: spacecraft,
	}, nil
}

// Handler exposes a ready-to-use /metrics handler.
func (c *SimCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetScenarioCounts drives the registry-size gauges.
func (c *SimCollector) SetScenarioCounts(bodies, spacecraft int) {
	if c == nil {
		return
	}
	if c.ScenarioBodies != nil {
		c.ScenarioBodies.Set(float64(bodies))
	}
	if c.ScenarioSpacecraft != nil {
		c.ScenarioSpacecraft.Set(float64(spacecraft))
	}
}

// RecordSpacecraft updates the per-craft gauges after a tick.
func (c *SimCollector) RecordSpacecraft(id string, fuelLiters, oxygenPercent float64) {
	if c == nil {
		return
	}
	if c.FuelLiters != nil {
		c.FuelLiters.WithLabelValues(id).Set(fuelLiters)
	}
	if c.OxygenPercent != nil {
		c.OxygenPercent.WithLabelValues(id).Set(oxygenPercent)
	}
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
