package progress

import "sync"

// KV is the key/value backend the store persists to.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// MapKV is an in-memory KV, used in tests and when no database is
// available.
type MapKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMapKV creates an empty in-memory backend.
func NewMapKV() *MapKV {
	return &MapKV{values: make(map[string]string)}
}

// Get returns the value for key.
func (m *MapKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MapKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
