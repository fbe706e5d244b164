package app

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/nexon/internal/core/domain"
)

const lockStripes = 64

// envLocks serializes mutations per environment name. Names hashing to the same
// stripe share a mutex.
type envLocks struct {
	stripes [lockStripes]sync.Mutex
}

func newEnvLocks() *envLocks {
	return &envLocks{}
}

// Lock acquires the stripe for name and returns its release function.
func (l *envLocks) Lock(name string) func() {
	m := &l.stripes[xxhash.Sum64String(name)%lockStripes]
	m.Lock()
	return m.Unlock
}

// lockEnvironment takes the stripe of a valid environment name. Invalid names take no stripe.
func (a *App) lockEnvironment(name string) (func(), error) {
	if err := domain.ValidateEnvironmentName(name); err != nil {
		return nil, err
	}
	return a.locks.Lock(name), nil
}
