package session

import "sync"

// Manager: oturumun iki kopyasını birlikte yöneten tek giriş noktası.
// Oturum sadece başarılı login'de yazılır, logout'ta iki kopya birden
// silinir; Resolve hiçbir şeyi değiştirmez.
type Manager struct {
	mu      sync.Mutex
	live    Store
	durable Store
}

func NewManager(live, durable Store) *Manager {
	return &Manager{live: live, durable: durable}
}

// Establish başarılı bir kimlik doğrulamanın sonucunu iki kopyaya da yazar.
func (m *Manager) Establish(key string, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.live.Put(key, s); err != nil {
		return err
	}
	return m.durable.Put(key, s)
}

// Resolve iki kopyayı OR ile birleştirip geçerli yetki durumunu döndürür.
// Kopyalardan birinin boş olması diğerindeki yetkiyi düşürmez.
func (m *Manager) Resolve(key string) Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	live, _ := m.live.Get(key)
	durable, _ := m.durable.Get(key)
	return Reconcile(live, durable)
}

// Clear logout'ta iki kopyayı da aynı kilit altında temizler; araya
// giren bir Resolve yarım silinmiş durum göremez.
func (m *Manager) Clear(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.live.Delete(key); err != nil {
		return err
	}
	return m.durable.Delete(key)
}
