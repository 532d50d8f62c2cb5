package groundplane

import "sync/atomic"

// Store holds the one shared plane. The picker replaces it whole; the vehicle
// reads it every tick. Replacement goes through an atomic pointer swap so a
// reader never observes a half-written plane, even if simulation and input
// handling are ever split across goroutines.
type Store struct {
	plane atomic.Pointer[Plane]
}

// NewStore returns a store holding the default horizontal plane.
func NewStore() *Store {
	s := &Store{}
	p := Default()
	s.plane.Store(&p)
	return s
}

// Get returns the current plane by value.
func (s *Store) Get() Plane {
	return *s.plane.Load()
}

// Set replaces the plane.
func (s *Store) Set(p Plane) {
	s.plane.Store(&p)
}
