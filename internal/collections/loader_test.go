package collections

import (
	"errors"
	"testing"
)

// fakeFetcher: koleksiyon başına sabit sonuç ya da hata döndürür.
type fakeFetcher struct {
	data  map[string][]map[string]any
	fails map[string]error
	calls []string
}

func (f *fakeFetcher) FetchCollection(name string) ([]map[string]any, error) {
	f.calls = append(f.calls, name)
	if err, ok := f.fails[name]; ok {
		return nil, err
	}
	return f.data[name], nil
}

func TestLoadAllIsolatesCollectionFailures(t *testing.T) {
	fetcher := &fakeFetcher{
		data: map[string][]map[string]any{
			"Booking":  {{"id": 1}},
			"Employee": {{"id": 2}, {"id": 3}},
		},
		fails: map[string]error{
			"Customer": errors.New("bağlantı koptu"),
		},
	}
	loader := NewLoader(fetcher)

	got, err := loader.LoadAll([]string{"Booking", "Customer", "Employee"})
	if err != nil {
		t.Fatalf("tek koleksiyon hatası tüm çağrıyı düşürmemeli: %v", err)
	}

	if len(got["Customer"]) != 0 || got["Customer"] == nil {
		t.Fatalf("başarısız koleksiyon boş liste olmalı, got %v", got["Customer"])
	}
	if len(got["Booking"]) != 1 || len(got["Employee"]) != 2 {
		t.Fatalf("diğer koleksiyonlar dolu gelmeli, got %v", got)
	}

	// Hata sonrası kalan koleksiyonlar da sorgulanmış olmalı
	if len(fetcher.calls) != 3 {
		t.Fatalf("3 koleksiyonun 3'ü de sorgulanmalı, calls=%v", fetcher.calls)
	}
}

func TestLoadAllFailsWithoutStore(t *testing.T) {
	loader := NewLoader(nil)
	if _, err := loader.LoadAll([]string{"Booking"}); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("depo yokken ErrStoreUnavailable beklenir, got %v", err)
	}
}

func TestLoadAllEmptyNames(t *testing.T) {
	loader := NewLoader(&fakeFetcher{})
	got, err := loader.LoadAll(nil)
	if err != nil {
		t.Fatalf("boş istek hata üretmemeli: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("boş istek boş sonuç döndürmeli, got %v", got)
	}
}
