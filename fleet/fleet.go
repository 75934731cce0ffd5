package fleet

import (
	"fmt"
	"sync"

	"github.com/signalsfoundry/spaceflight-simulator/model"
)

// EventType indicates what kind of change happened in the store.
type EventType int

const (
	EventSpacecraftUpdated EventType = iota
)

// Event is emitted to subscribers when a spacecraft's state changes.
// The spacecraft is a copy so consumers can read it without racing the
// simulation loop.
type Event struct {
	Type       EventType
	Spacecraft model.Spacecraft
}

// Store is an in-memory, thread-safe registry of spacecraft. The
// simulation engine mutates spacecraft through pointers it obtained at
// registration; telemetry and persistence consumers read snapshots or
// subscribe to change events.
type Store struct {
	mu sync.RWMutex

	spacecraft map[string]*model.Spacecraft

	subs []func(Event)
}

// NewStore constructs an empty fleet store.
func NewStore() *Store {
	return &Store{
		spacecraft: make(map[string]*model.Spacecraft),
	}
}

// Add registers a new spacecraft. It returns an error if the ID already
// exists.
func (st *Store) Add(sc *model.Spacecraft) error {
	if sc == nil || sc.ID == "" {
		return fmt.Errorf("nil or empty-ID spacecraft")
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if _, exists := st.spacecraft[sc.ID]; exists {
		return fmt.Errorf("spacecraft with ID %q already exists", sc.ID)
	}
	// store the pointer so the engine can update state in place
	st.spacecraft[sc.ID] = sc
	return nil
}

// Get returns the spacecraft with the given ID, or nil if not found.
func (st *Store) Get(id string) *model.Spacecraft {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.spacecraft[id]
}

// List returns a snapshot slice of all spacecraft.
func (st *Store) List() []*model.Spacecraft {
	st.mu.RLock()
	defer st.mu.RUnlock()

	res := make([]*model.Spacecraft, 0, len(st.spacecraft))
	for _, sc := range st.spacecraft {
		res = append(res, sc)
	}
	return res
}

// Len returns the number of registered spacecraft.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.spacecraft)
}

// NotifyUpdated publishes the current state of a spacecraft to all
// subscribers. The engine calls this once per craft per tick.
func (st *Store) NotifyUpdated(id string) error {
	st.mu.RLock()
	sc, ok := st.spacecraft[id]
	if !ok {
		st.mu.RUnlock()
		return fmt.Errorf("spacecraft with ID %q not found", id)
	}
	event := Event{
		Type:       EventSpacecraftUpdated,
		Spacecraft: *sc, // copy for safety
	}
	subs := append([]func(Event){}, st.subs...)
	st.mu.RUnlock()

	// Notify subscribers outside the lock to avoid deadlocks.
	for _, sub := range subs {
		sub(event)
	}
	return nil
}

// Subscribe registers a callback for store events. It returns an
// unsubscribe function.
func (st *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.subs = append(st.subs, fn)
	idx := len(st.subs) - 1

	return func() {
		st.mu.Lock()
		defer st.mu.Unlock()
		if idx < 0 || idx >= len(st.subs) {
			return
		}
		st.subs = append(st.subs[:idx], st.subs[idx+1:]...)
		idx = -1
	}
}
