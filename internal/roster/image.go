package roster

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// En fazla 5 MiB
const MaxImageSize = 5 << 20

// CheckImage yükleme denenmeden önce çalışır: content type bir görsel
// olmalı ve boyut sınırı aşılmamalı. Hatalar diğer alanlardan bağımsız
// olarak "image" anahtarıyla raporlanır.
func CheckImage(fh *multipart.FileHeader) ValidationError {
	if fh == nil {
		return nil
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return ValidationError{"image": "Dosya bir görsel olmalı"}
	}
	if fh.Size > MaxImageSize {
		return ValidationError{"image": "Görsel 5 MB'dan büyük olamaz"}
	}
	return nil
}

// SaveImage görseli yapılandırılmış klasöre benzersiz bir isimle yazar
// ve /images altında sunulan adresini döndürür. Doküman yazısı bu adres
// elde edilmeden yapılmaz.
func SaveImage(fh *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("görsel klasörü oluşturulamadı: %w", err)
	}

	ext := filepath.Ext(fh.Filename)
	name := uuid.NewString() + ext
	dst := filepath.Join(dir, name)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("görsel açılamadı: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("görsel kaydedilemedi: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("görsel yazılamadı: %w", err)
	}

	return "/images/" + name, nil
}
