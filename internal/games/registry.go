package games

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/arcade/internal/models"
)

// Registry maps game kinds to their engines
type Registry struct {
	mu       sync.RWMutex
	engines  map[models.GameKind]Engine
	instants map[models.GameKind]Instant
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		engines:  make(map[models.GameKind]Engine),
		instants: make(map[models.GameKind]Instant),
	}
}

// Register adds a session engine
func (r *Registry) Register(e Engine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.engines[e.Kind()]; ok {
		return fmt.Errorf("%w: %s", ErrEngineRegistered, e.Kind())
	}
	r.engines[e.Kind()] = e
	return nil
}

// RegisterInstant adds a single-shot game
func (r *Registry) RegisterInstant(g Instant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.instants[g.Kind()]; ok {
		return fmt.Errorf("%w: %s", ErrEngineRegistered, g.Kind())
	}
	r.instants[g.Kind()] = g
	return nil
}

// Engine returns the engine for a kind
func (r *Registry) Engine(kind models.GameKind) (Engine, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.engines[kind]
	return e, ok
}

// Instant returns the single-shot game for a kind
func (r *Registry) Instant(kind models.GameKind) (Instant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.instants[kind]
	return g, ok
}
