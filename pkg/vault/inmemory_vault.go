package vault

import (
	"errors"
	"sync"
)

var (
	ErrKeyNotFound = errors.New("vault: key not found")
)

// InMemoryVault stores serialized key material by SKI. Both Import and Get
// copy the material, callers cannot mutate stored bytes through the slices
// they hold.
type InMemoryVault struct {
	lock     sync.RWMutex
	material map[string][]byte
}

func NewInMemoryVault() *InMemoryVault {
	return &InMemoryVault{
		material: make(map[string][]byte),
	}
}

func (v *InMemoryVault) Import(keyID string, key []byte) error {
	v.lock.Lock()
	defer v.lock.Unlock()

	stored := make([]byte, len(key))
	copy(stored, key)
	v.material[keyID] = stored
	return nil
}

func (v *InMemoryVault) Get(keyID string) ([]byte, error) {
	v.lock.RLock()
	defer v.lock.RUnlock()

	key, ok := v.material[keyID]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(key))
	copy(out, key)
	return out, nil
}

func (v *InMemoryVault) Delete(keyID string) error {
	v.lock.Lock()
	defer v.lock.Unlock()

	delete(v.material, keyID)
	return nil
}
