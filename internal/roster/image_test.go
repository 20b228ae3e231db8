package roster

import (
	"mime/multipart"
	"net/textproto"
	"testing"
)

func imageHeader(contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "profil.png",
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestCheckImage(t *testing.T) {
	tests := []struct {
		name    string
		fh      *multipart.FileHeader
		wantErr bool
	}{
		{"görsel yok (opsiyonel)", nil, false},
		{"geçerli png", imageHeader("image/png", 100_000), false},
		{"tam sınırda", imageHeader("image/jpeg", MaxImageSize), false},
		{"görsel olmayan dosya", imageHeader("application/pdf", 100), true},
		{"5 MiB üstü", imageHeader("image/png", MaxImageSize+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := CheckImage(tt.fh)
			if tt.wantErr {
				if _, ok := errs["image"]; !ok {
					t.Fatalf("image anahtarlı hata beklenir, got %v", errs)
				}
			} else if errs != nil {
				t.Fatalf("hata beklenmiyordu: %v", errs)
			}
		})
	}
}
