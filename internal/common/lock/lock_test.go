package lock

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// For any set of concurrent balance updates on one user, the final value
// matches applying them sequentially.
func TestConcurrentBalanceSafetyProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		initial := rapid.Int64Range(1000, 100000).Draw(t, "initial")
		amounts := rapid.SliceOfN(rapid.Int64Range(-500, 500), 2, 20).Draw(t, "amounts")
		userID := rapid.StringMatching(`[0-9]{5,18}`).Draw(t, "userID")

		expected := initial
		for _, a := range amounts {
			expected += a
		}

		ul := NewUserLock()
		balance := initial

		var wg sync.WaitGroup
		wg.Add(len(amounts))
		for _, a := range amounts {
			go func(amount int64) {
				defer wg.Done()
				_ = ul.WithLock(userID, func() error {
					current := balance
					balance = current + amount
					return nil
				})
			}(a)
		}
		wg.Wait()

		if balance != expected {
			t.Fatalf("balance %d, expected %d", balance, expected)
		}
	})
}

func TestTryLock(t *testing.T) {
	ul := NewUserLock()

	assert.True(t, ul.TryLock("alice"))
	assert.False(t, ul.TryLock("alice"))
	assert.True(t, ul.TryLock("bob"))

	ul.Unlock("alice")
	assert.True(t, ul.TryLock("alice"))
}

func TestWithLocksOppositeOrder(t *testing.T) {
	ul := NewUserLock()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = ul.WithLocks([]string{"alice", "bob"}, func() error {
				counter++
				return nil
			})
		}()
		go func() {
			defer wg.Done()
			_ = ul.WithLocks([]string{"bob", "alice", "bob"}, func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
	assert.True(t, ul.TryLock("alice"))
	assert.True(t, ul.TryLock("bob"))
}

func TestIdleLocksAreForgotten(t *testing.T) {
	ul := NewUserLock()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = ul.WithLock(fmt.Sprintf("user%d", i%10), func() error { return nil })
		}(i)
	}
	wg.Wait()
	assert.Zero(t, ul.Len())

	assert.True(t, ul.TryLock("alice"))
	assert.False(t, ul.TryLock("alice"))
	assert.Equal(t, 1, ul.Len())

	ul.Unlock("alice")
	assert.Zero(t, ul.Len())

	_ = ul.WithLocks([]string{"alice", "bob"}, func() error {
		assert.Equal(t, 2, ul.Len())
		return nil
	})
	assert.Zero(t, ul.Len())
}
