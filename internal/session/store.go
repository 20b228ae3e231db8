package session

import "sync"

// Store: oturum kayıtlarının tutulduğu yer. Volatile ve durable
// adaptörler aynı arayüzün arkasındadır; Manager ikisini birden kullanır.
type Store interface {
	Get(key string) (Session, bool)
	Put(key string, s Session) error
	Delete(key string) error
}

// VolatileStore: process ömrü boyunca yaşayan kopya.
type VolatileStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewVolatileStore() *VolatileStore {
	return &VolatileStore{sessions: make(map[string]Session)}
}

func (v *VolatileStore) Get(key string) (Session, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	s, ok := v.sessions[key]
	return s, ok
}

func (v *VolatileStore) Put(key string, s Session) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sessions[key] = s
	return nil
}

func (v *VolatileStore) Delete(key string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.sessions, key)
	return nil
}
