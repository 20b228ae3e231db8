package roster

import (
	"fmt"

	"salon-backend/internal/database"
	"salon-backend/internal/models"
)

// Store: gateway'in admin tablosuna erişim yolu. Testler sahte bir
// uygulama geçirir.
type Store interface {
	List() ([]models.Admin, error)
	ByID(id uint) (models.Admin, error)
	ByEmail(email string) (models.Admin, bool)
	Create(a *models.Admin) error
	Save(a *models.Admin) error
	Delete(id uint) error
}

// GormStore Postgres'teki admins tablosunu kullanır.
type GormStore struct{}

func (GormStore) List() ([]models.Admin, error) {
	var admins []models.Admin
	if err := database.DB.Order("created_at asc").Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("admin kayıtları okunamadı: %w", err)
	}
	return admins, nil
}

func (GormStore) ByID(id uint) (models.Admin, error) {
	var a models.Admin
	err := database.DB.First(&a, id).Error
	return a, err
}

func (GormStore) ByEmail(email string) (models.Admin, bool) {
	var a models.Admin
	if err := database.DB.Where("email = ?", email).First(&a).Error; err != nil {
		return models.Admin{}, false
	}
	return a, true
}

func (GormStore) Create(a *models.Admin) error {
	return database.DB.Create(a).Error
}

func (GormStore) Save(a *models.Admin) error {
	return database.DB.Save(a).Error
}

func (GormStore) Delete(id uint) error {
	return database.DB.Delete(&models.Admin{}, id).Error
}
