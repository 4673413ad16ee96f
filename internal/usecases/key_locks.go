package usecases

import (
	"sync"

	"github.com/google/uuid"
)

// keyLocks hands out one mutex per access key so credit mutations on the
// same key are serialized in-process. Different keys never contend.
type keyLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (l *keyLocks) forKey(id uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	if m, ok := l.locks[id]; ok {
		return m
	}
	m := &sync.Mutex{}
	l.locks[id] = m
	return m
}
