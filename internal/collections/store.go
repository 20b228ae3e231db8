package collections

import (
	"encoding/json"
	"fmt"

	"salon-backend/internal/database"
	"salon-backend/internal/models"
)

// GormFetcher koleksiyonları Postgres'ten okur. "Admin" koleksiyonu
// gerçek admin tablosudur; geri kalan koleksiyonlar documents
// tablosundaki ham jsonb kayıtlarıdır.
type GormFetcher struct{}

func (GormFetcher) FetchCollection(name string) ([]map[string]any, error) {
	if database.DB == nil {
		return nil, ErrStoreUnavailable
	}

	if name == "Admin" {
		var admins []models.Admin
		if err := database.DB.Order("created_at asc").Find(&admins).Error; err != nil {
			return nil, fmt.Errorf("admin kayıtları okunamadı: %w", err)
		}
		docs := make([]map[string]any, 0, len(admins))
		for _, a := range admins {
			// Şifre hash'i dashboard'a asla gitmez
			docs = append(docs, map[string]any{
				"id":         a.ID,
				"name":       a.Name,
				"branch":     a.Branch,
				"email":      a.Email,
				"phone":      a.Phone,
				"role":       a.Role,
				"image_url":  a.ImageURL,
				"created_at": a.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return docs, nil
	}

	var rows []models.Document
	if err := database.DB.Where("collection = ?", name).Order("id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("koleksiyon okunamadı: %w", err)
	}

	docs := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		doc := map[string]any{}
		if err := json.Unmarshal([]byte(row.Data), &doc); err != nil {
			// Bozuk kayıt koleksiyonun tamamını düşürmesin
			continue
		}
		doc["id"] = row.ID
		docs = append(docs, doc)
	}
	return docs, nil
}
