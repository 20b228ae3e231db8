package models

import "time"

// Görsel yüklenmeden oluşturulan kayıtlar için sabit değer
const NoImageURL = "no image"

// Admin: şube yöneticisi kaydı ("Admin" koleksiyonu). Dashboard'un
// düzenlenebilir tek kayıt tipi budur.
type Admin struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Branch       string `gorm:"size:100;not null"`
	Email        string `gorm:"size:100;uniqueIndex;not null"`
	Phone        int64  `gorm:"not null"`
	Role         string `gorm:"size:50;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	ImageURL     string `gorm:"size:500;not null;default:'no image'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
