package timectrl

import (
	"sync"
	"time"
)

// Mode describes how the TimeController advances simulation time.
type Mode int

const (
	// RealTime advances according to wall-clock time, one tick per Tick
	// interval.
	RealTime Mode = iota
	// Accelerated advances as quickly as the loop can run while still
	// stepping simulation time by exactly Tick.
	Accelerated
)

// TimeController drives a fixed-timestep simulation loop and notifies
// registered listeners once per tick with the simulation time and the
// timestep in seconds. The timestep is fixed: in accelerated mode the
// loop spins faster, but listeners always see the same dt, which keeps
// trajectories reproducible across modes.
type TimeController struct {
	mu        sync.RWMutex
	StartTime time.Time
	Tick      time.Duration
	Mode      Mode

	currentTime time.Time

	listeners []func(simTime time.Time, dt float64)
}

// NewTimeController constructs a controller.
func NewTimeController(start time.Time, tick time.Duration, mode Mode) *TimeController {
	return &TimeController{
		StartTime:   start,
		Tick:        tick,
		Mode:        mode,
		currentTime: start,
	}
}

// Now returns the current simulation time.
func (tc *TimeController) Now() time.Time {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.currentTime
}

// AddListener registers a callback invoked on every tick.
func (tc *TimeController) AddListener(fn func(time.Time, float64)) {
	tc.listeners = append(tc.listeners, fn)
}

// Start runs the controller for the specified simulation duration in a
// separate goroutine and returns a channel that is closed when the
// controller finishes. A non-positive duration runs a single tick.
func (tc *TimeController) Start(duration time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)

		tc.mu.Lock()
		simTime := tc.StartTime
		tc.currentTime = simTime
		tc.mu.Unlock()

		dt := tc.Tick.Seconds()
		elapsed := time.Duration(0)

		var ticker *time.Ticker
		if tc.Mode == RealTime {
			ticker = time.NewTicker(tc.Tick)
			defer ticker.Stop()
		}

		for {
			if ticker != nil {
				<-ticker.C
			}
			simTime = simTime.Add(tc.Tick)
			elapsed += tc.Tick

			tc.mu.Lock()
			tc.currentTime = simTime
			tc.mu.Unlock()

			for _, fn := range tc.listeners {
				fn(simTime, dt)
			}

			if elapsed >= duration {
				return
			}
		}
	}()
	return done
}
