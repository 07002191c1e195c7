// Package lock provides per-user locking for balance operations.
package lock

import (
	"sort"
	"sync"
)

// userMutex counts holders and waiters so idle entries can be dropped
type userMutex struct {
	mu   sync.Mutex
	refs int
}

// UserLock serializes read-modify-write cycles on a single user's record
type UserLock struct {
	mu    sync.Mutex
	locks map[string]*userMutex
}

// NewUserLock creates a new UserLock instance.
func NewUserLock() *UserLock {
	return &UserLock{
		locks: make(map[string]*userMutex),
	}
}

// acquire returns the user's mutex with a reference taken on it
func (ul *UserLock) acquire(userID string) *userMutex {
	ul.mu.Lock()
	defer ul.mu.Unlock()

	m, ok := ul.locks[userID]
	if !ok {
		m = &userMutex{}
		ul.locks[userID] = m
	}
	m.refs++
	return m
}

// release drops a reference and forgets the mutex once nobody holds or waits on it
func (ul *UserLock) release(userID string, m *userMutex) {
	ul.mu.Lock()
	defer ul.mu.Unlock()

	m.refs--
	if m.refs <= 0 {
		delete(ul.locks, userID)
	}
}

// Lock acquires the lock for a user.
func (ul *UserLock) Lock(userID string) {
	ul.acquire(userID).mu.Lock()
}

// Unlock releases the lock for a user.
func (ul *UserLock) Unlock(userID string) {
	ul.mu.Lock()
	m, ok := ul.locks[userID]
	ul.mu.Unlock()
	if !ok {
		return
	}

	m.mu.Unlock()
	ul.release(userID, m)
}

// TryLock attempts to acquire the lock without blocking.
func (ul *UserLock) TryLock(userID string) bool {
	m := ul.acquire(userID)
	if m.mu.TryLock() {
		return true
	}
	ul.release(userID, m)
	return false
}

// WithLock executes fn while holding the user's lock.
func (ul *UserLock) WithLock(userID string, fn func() error) error {
	ul.Lock(userID)
	defer ul.Unlock(userID)
	return fn()
}

// WithLocks executes fn while holding the locks of every listed user.
// Locks are taken in sorted order so two callers locking the same pair cannot deadlock.
func (ul *UserLock) WithLocks(userIDs []string, fn func() error) error {
	ids := make([]string, 0, len(userIDs))
	seen := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	for _, id := range ids {
		ul.Lock(id)
	}
	defer func() {
		for i := len(ids) - 1; i >= 0; i-- {
			ul.Unlock(ids[i])
		}
	}()

	return fn()
}

// Len returns how many users currently hold or wait on a lock
func (ul *UserLock) Len() int {
	ul.mu.Lock()
	defer ul.mu.Unlock()
	return len(ul.locks)
}
