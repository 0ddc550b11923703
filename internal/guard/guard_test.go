package guard

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdempotencyGuardDeduplicates(t *testing.T) {
	g := NewIdempotencyGuard()

	assert.True(t, g.Check("tx-1"))
	assert.False(t, g.Check("tx-1"))
	assert.True(t, g.Check("tx-2"))
}

func TestIdempotencyGuardEmptyKeyAlwaysAllowed(t *testing.T) {
	g := NewIdempotencyGuard()

	assert.True(t, g.Check(""))
	assert.True(t, g.Check(""))
}

func TestIdempotencyGuardRemoveAllowsRetry(t *testing.T) {
	g := NewIdempotencyGuard()

	assert.True(t, g.Check("tx-1"))
	g.Remove("tx-1")
	assert.True(t, g.Check("tx-1"))
}

func TestAccountLockSerializesPerAccount(t *testing.T) {
	l := NewAccountLock()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Lock("0.0.1001")
			counter++
			l.Unlock("0.0.1001")
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
}

func TestAccountLockIndependentAccounts(t *testing.T) {
	l := NewAccountLock()

	l.Lock("0.0.1001")
	done := make(chan struct{})
	go func() {
		l.Lock("0.0.2002")
		l.Unlock("0.0.2002")
		close(done)
	}()
	<-done
	l.Unlock("0.0.1001")
}
