package roster

import "sync"

// Hub admin koleksiyonundaki her onaylanmış değişiklikte abonelere tam
// snapshot dağıtır. Abonelik Subscribe'ın döndürdüğü cancel fonksiyonu
// ile kapatılır.
type Hub struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]func([]Doc)
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]func([]Doc))}
}

// Subscribe her değişiklikte çağrılacak callback'i kaydeder. Dönen
// fonksiyon aboneliği kapatır; birden çok kez çağrılması zararsızdır.
func (h *Hub) Subscribe(onChange func([]Doc)) (cancel func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = onChange
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// Publish snapshot'ı o an kayıtlı tüm abonelere iletir. Callback'ler
// kilit dışında çağrılır; bir abone Publish sırasında kendini
// kapatabilir.
func (h *Hub) Publish(snapshot []Doc) {
	h.mu.Lock()
	fns := make([]func([]Doc), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}
