package common

import (
	"sync"

	"github.com/google/uuid"
)

// KeyedMutex serializes work per aggregate ID. The pipeline uses one instance
// keyed by proposal ID so state-machine advances, uploads, and deletes for the
// same proposal never interleave.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[uuid.UUID]*entry)}
}

// Lock acquires the mutex for key, creating it on first use.
func (k *KeyedMutex) Lock(key uuid.UUID) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for key and drops it once no goroutine waits on it.
func (k *KeyedMutex) Unlock(key uuid.UUID) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if ok {
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
	}
	k.mu.Unlock()

	if ok {
		e.mu.Unlock()
	}
}
