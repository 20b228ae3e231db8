package session

import (
	"encoding/json"
	"os"
	"sync"
)

// DurableStore: restart'a dayanıklı kopya. Tüm kayıtlar tek bir JSON
// dosyasında tutulur ve dosya her seferinde bütün olarak okunup yazılır
// (alan alan değil). Bozuk veya eksik dosya "iddia yok" demektir,
// hata değil.
type DurableStore struct {
	mu   sync.Mutex
	path string
}

func NewDurableStore(path string) *DurableStore {
	return &DurableStore{path: path}
}

func (d *DurableStore) Get(key string) (Session, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	all := d.readAll()
	s, ok := all[key]
	return s, ok
}

func (d *DurableStore) Put(key string, s Session) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	all := d.readAll()
	all[key] = s
	return d.writeAll(all)
}

func (d *DurableStore) Delete(key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	all := d.readAll()
	delete(all, key)
	return d.writeAll(all)
}

func (d *DurableStore) readAll() map[string]Session {
	all := make(map[string]Session)
	data, err := os.ReadFile(d.path)
	if err != nil {
		return all
	}
	if err := json.Unmarshal(data, &all); err != nil {
		// Parse edilemeyen kayıt yok sayılır
		return make(map[string]Session)
	}
	return all
}

func (d *DurableStore) writeAll(all map[string]Session) error {
	data, err := json.Marshal(all)
	if err != nil {
		return err
	}
	return os.WriteFile(d.path, data, 0o600)
}
