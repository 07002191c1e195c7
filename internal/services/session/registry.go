package session

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/arcade/internal/common/clock"
	"github.com/KirkDiggler/arcade/internal/common/uuid"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/rs/zerolog/log"
)

// entry is one live session. mu serializes actions and expiry on it,
// done marks it claimed so nothing acts on it twice.
type entry struct {
	mu      sync.Mutex
	session *models.Session
	timer   clock.Timer
	done    bool

	// deadline is when the armed timer fires, zero when none is armed
	deadline time.Time

	// gen invalidates timers that fired while a re-arm held mu
	gen uint64
}

type ownerKey struct {
	owner string
	kind  models.GameKind
}

// registry implements the Registry interface in memory
type registry struct {
	clock clock.Clock
	keys  uuid.KeyGenerator

	mu       sync.RWMutex
	entries  map[string]*entry
	byOwner  map[ownerKey]map[string]struct{}
	handlers map[models.GameKind]ExpiryHandler
}

// New creates an empty registry
func New(cfg *Config) (*registry, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.KeyGenerator == nil {
		return nil, ErrNilKeyGenerator
	}

	return &registry{
		clock:    cfg.Clock,
		keys:     cfg.KeyGenerator,
		entries:  make(map[string]*entry),
		byOwner:  make(map[ownerKey]map[string]struct{}),
		handlers: make(map[models.GameKind]ExpiryHandler),
	}, nil
}

func snapshot(sess *models.Session) *models.Session {
	cp := *sess
	return &cp
}

// Create stores a new session under a fresh key and arms its expiry timer
func (r *registry) Create(ctx context.Context, input *CreateInput) (*models.Session, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.OwnerID == "" {
		return nil, ErrInvalidOwner
	}

	if input.Kind == "" {
		return nil, ErrInvalidKind
	}

	now := r.clock.Now()
	sess := &models.Session{
		Key:       r.keys.NewKey(),
		Kind:      input.Kind,
		OwnerID:   input.OwnerID,
		ChannelID: input.ChannelID,
		Wager:     input.Wager,
		TTL:       input.TTL,
		CreatedAt: now,
		UpdatedAt: now,
		Payload:   input.Payload,
	}
	e := &entry{session: sess}

	r.mu.Lock()
	if _, exists := r.entries[sess.Key]; exists {
		r.mu.Unlock()
		return nil, ErrKeyCollision
	}
	r.entries[sess.Key] = e
	idx := ownerKey{owner: sess.OwnerID, kind: sess.Kind}
	if r.byOwner[idx] == nil {
		r.byOwner[idx] = make(map[string]struct{})
	}
	r.byOwner[idx][sess.Key] = struct{}{}
	r.mu.Unlock()

	e.mu.Lock()
	r.arm(e)
	e.mu.Unlock()

	log.Debug().
		Str("key", sess.Key).
		Str("kind", string(sess.Kind)).
		Str("owner", sess.OwnerID).
		Dur("ttl", sess.TTL).
		Msg("Session created")

	return snapshot(sess), nil
}

// arm replaces the entry's timer. Caller holds e.mu.
func (r *registry) arm(e *entry) {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.deadline = time.Time{}

	if e.session.TTL <= 0 {
		return
	}

	e.deadline = r.clock.Now().Add(e.session.TTL)
	e.gen++
	gen := e.gen
	e.timer = r.clock.AfterFunc(e.session.TTL, func() {
		r.expire(e, gen)
	})
}

func (r *registry) lookup(key string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	return e, ok
}

// unlink drops the entry from the indexes. Caller holds e.mu and has set e.done.
func (r *registry) unlink(e *entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.entries[e.session.Key]; ok && cur == e {
		delete(r.entries, e.session.Key)
	}

	idx := ownerKey{owner: e.session.OwnerID, kind: e.session.Kind}
	if keys := r.byOwner[idx]; keys != nil {
		delete(keys, e.session.Key)
		if len(keys) == 0 {
			delete(r.byOwner, idx)
		}
	}
}

// claim marks the entry done and removes it. Caller holds e.mu.
func (r *registry) claim(e *entry) {
	e.done = true
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	r.unlink(e)
}

// expire removes the entry and runs its kind's handler.
// gen 0 skips the stale-timer check, for sweeps.
func (r *registry) expire(e *entry, gen uint64) bool {
	e.mu.Lock()
	if e.done || (gen != 0 && gen != e.gen) {
		e.mu.Unlock()
		return false
	}
	r.claim(e)
	sess := snapshot(e.session)
	e.mu.Unlock()

	log.Info().
		Str("key", sess.Key).
		Str("kind", string(sess.Kind)).
		Str("owner", sess.OwnerID).
		Msg("Session expired")

	r.mu.RLock()
	handler := r.handlers[sess.Kind]
	r.mu.RUnlock()

	if handler != nil {
		handler(context.Background(), sess)
	}
	return true
}

// Get returns a snapshot of a live session
func (r *registry) Get(ctx context.Context, input *GetInput) (*models.Session, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	e, ok := r.lookup(input.Key)
	if !ok {
		return nil, ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done {
		return nil, ErrSessionNotFound
	}

	return snapshot(e.session), nil
}

// FindByOwner returns the newest live session of a kind owned by a user
func (r *registry) FindByOwner(ctx context.Context, input *FindByOwnerInput) (*models.Session, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	r.mu.RLock()
	var candidates []*entry
	for key := range r.byOwner[ownerKey{owner: input.OwnerID, kind: input.Kind}] {
		candidates = append(candidates, r.entries[key])
	}
	r.mu.RUnlock()

	var newest *models.Session
	for _, e := range candidates {
		if e == nil {
			continue
		}
		e.mu.Lock()
		if !e.done && (newest == nil || e.session.CreatedAt.After(newest.CreatedAt)) {
			newest = snapshot(e.session)
		}
		e.mu.Unlock()
	}

	if newest == nil {
		return nil, ErrSessionNotFound
	}

	return newest, nil
}

// Remove claims and deletes a session without calling its expiry handler
func (r *registry) Remove(ctx context.Context, input *RemoveInput) (*models.Session, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	e, ok := r.lookup(input.Key)
	if !ok {
		return nil, ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done {
		return nil, ErrSessionNotFound
	}

	r.claim(e)
	return snapshot(e.session), nil
}

// ScheduleExpiry replaces a session's timer with a new timeout
func (r *registry) ScheduleExpiry(ctx context.Context, input *ScheduleExpiryInput) error {
	if input == nil {
		return ErrInvalidInput
	}

	e, ok := r.lookup(input.Key)
	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done {
		return ErrSessionNotFound
	}

	e.session.TTL = input.TTL
	e.session.UpdatedAt = r.clock.Now()
	r.arm(e)
	return nil
}

// Act runs one owner action against a session
func (r *registry) Act(ctx context.Context, input *ActInput) (*ActOutput, error) {
	if input == nil || input.Apply == nil {
		return nil, ErrInvalidInput
	}

	e, ok := r.lookup(input.Key)
	if !ok {
		return nil, ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.done {
		return nil, ErrSessionNotFound
	}

	if e.session.OwnerID != input.ActorID {
		return nil, ErrNotOwner
	}

	transition, err := input.Apply(snapshot(e.session))
	if err != nil {
		return nil, err
	}

	e.session.Payload = transition.Payload
	e.session.UpdatedAt = r.clock.Now()

	if transition.Terminal {
		r.claim(e)
	} else {
		r.arm(e)
	}

	return &ActOutput{
		Session:  snapshot(e.session),
		Terminal: transition.Terminal,
	}, nil
}

// SetMessage records where the session is displayed
func (r *registry) SetMessage(ctx context.Context, input *SetMessageInput) error {
	if input == nil {
		return ErrInvalidInput
	}

	e, ok := r.lookup(input.Key)
	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done {
		return ErrSessionNotFound
	}

	if input.ChannelID != "" {
		e.session.ChannelID = input.ChannelID
	}
	e.session.MessageID = input.MessageID
	return nil
}

// OnExpire registers the handler for expired sessions of a kind
func (r *registry) OnExpire(kind models.GameKind, handler ExpiryHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[kind] = handler
}

// Sweep expires every session idle past its timeout
func (r *registry) Sweep(ctx context.Context) (*SweepOutput, error) {
	now := r.clock.Now()

	r.mu.RLock()
	var stale []*entry
	for _, e := range r.entries {
		stale = append(stale, e)
	}
	r.mu.RUnlock()

	expired := 0
	for _, e := range stale {
		e.mu.Lock()
		due := !e.done && !e.deadline.IsZero() && !now.Before(e.deadline)
		e.mu.Unlock()

		if due && r.expire(e, 0) {
			expired++
		}
	}

	return &SweepOutput{
		Expired: expired,
	}, nil
}

// Count returns the number of live sessions
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
