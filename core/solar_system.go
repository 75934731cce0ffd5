package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/signalsfoundry/spaceflight-simulator/model"
)

var (
	ErrBodyExists   = errors.New("body already exists")
	ErrBodyNotFound = errors.New("body not found")
	ErrBodyBadInput = errors.New("invalid body")
)

// SolarSystem is the registry of celestial bodies, keyed by ID. It is
// concurrency-safe via an internal RWMutex so the simulation loop can
// mutate positions while telemetry consumers read snapshots, as long as
// all access goes through these methods.
//
// The star is registered at construction and is always present.
type SolarSystem struct {
	mu sync.RWMutex

	bodies map[string]*model.CelestialBody
	star   *model.CelestialBody
}

// NewSolarSystem creates a registry seeded with the given star.
func NewSolarSystem(star *model.CelestialBody) (*SolarSystem, error) {
	if star == nil || star.ID == "" {
		return nil, fmt.Errorf("NewSolarSystem: %w: nil or empty-ID star", ErrBodyBadInput)
	}
	if star.Type != model.BodyStar {
		return nil, fmt.Errorf("NewSolarSystem: %w: %q is not a star", ErrBodyBadInput, star.ID)
	}
	s := &SolarSystem{
		bodies: make(map[string]*model.CelestialBody),
		star:   star,
	}
	s.bodies[star.ID] = star
	return s, nil
}

// NewSolSystem creates a registry seeded with the Sun.
func NewSolSystem() *SolarSystem {
	s, err := NewSolarSystem(&model.CelestialBody{
		ID:          "sun",
		Name:        "Sun",
		Type:        model.BodyStar,
		Mass:        1.9891e30,
		Radius:      6.9634e8,
		Temperature: 5778,
	})
	if err != nil {
		// Unreachable: the seed star is well-formed.
		panic(err)
	}
	return s
}

// Star returns the distinguished star reference.
func (s *SolarSystem) Star() *model.CelestialBody {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.star
}

// AddBody registers a new body. The ID must be unique.
func (s *SolarSystem) AddBody(b *model.CelestialBody) error {
	if b == nil || b.ID == "" {
		return fmt.Errorf("AddBody: %w", ErrBodyBadInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bodies[b.ID]; exists {
		return fmt.Errorf("AddBody: %w: %q", ErrBodyExists, b.ID)
	}
	if b.ParentID != "" {
		if _, ok := s.bodies[b.ParentID]; !ok {
			return fmt.Errorf("AddBody: %w: parent %q of %q", ErrBodyNotFound, b.ParentID, b.ID)
		}
	}
	// store the pointer so motion models can update positions in place
	s.bodies[b.ID] = b
	return nil
}

// GetBody returns a body by ID, or nil if not found.
func (s *SolarSystem) GetBody(id string) *model.CelestialBody {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bodies[id]
}

// AllBodies returns a snapshot slice of all registered bodies.
func (s *SolarSystem) AllBodies() []*model.CelestialBody {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.CelestialBody, 0, len(s.bodies))
	for _, b := range s.bodies {
		out = append(out, b)
	}
	return out
}

// Len returns the number of registered bodies.
func (s *SolarSystem) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bodies)
}

// NearestBody returns the body closest to the given point. Distance ties
// break toward the lowest body ID so the answer does not depend on map
// iteration order. Returns nil only for an empty registry, which cannot
// happen after construction.
func (s *SolarSystem) NearestBody(point model.Vec3) *model.CelestialBody {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var nearest *model.CelestialBody
	minDistance := 0.0
	for _, b := range s.bodies {
		d := point.DistanceTo(b.Position)
		switch {
		case nearest == nil, d < minDistance:
			nearest = b
			minDistance = d
		case d == minDistance && b.ID < nearest.ID:
			nearest = b
		}
	}
	return nearest
}
