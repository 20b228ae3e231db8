package collections

import (
	"errors"
	"log"
)

// ErrStoreUnavailable: veri deposu elde yoksa yüklemenin tamamı başarısız
// olur; tek tek koleksiyon hataları ise yutulur.
var ErrStoreUnavailable = errors.New("veri deposu kullanılamıyor")

// Fetcher tek bir koleksiyonun tüm kayıtlarını getirir.
type Fetcher interface {
	FetchCollection(name string) ([]map[string]any, error)
}

type Loader struct {
	fetcher Fetcher
}

func NewLoader(f Fetcher) *Loader {
	return &Loader{fetcher: f}
}

// LoadAll her koleksiyon için ayrı bir sorgu atar. Bir koleksiyonun
// hatası sadece o koleksiyonu boş bırakır, kalanların yüklenmesini
// durdurmaz ve çağrıyı başarısız yapmaz. Sonuç, tüm isimler
// sonuçlandığında hazırdır.
func (l *Loader) LoadAll(names []string) (map[string][]map[string]any, error) {
	if l.fetcher == nil {
		return nil, ErrStoreUnavailable
	}

	out := make(map[string][]map[string]any, len(names))
	for _, name := range names {
		docs, err := l.fetcher.FetchCollection(name)
		if err != nil {
			log.Printf("[WARN] %s koleksiyonu yüklenemedi: %v", name, err)
			out[name] = []map[string]any{}
			continue
		}
		out[name] = docs
	}
	return out, nil
}
