package models

import "time"

// SuperAdmin: işletme sahibi hesabı. Sadece doğrulama için okunur,
// dashboard üzerinden düzenlenmez.
type SuperAdmin struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Phone        int64  `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (SuperAdmin) TableName() string { return "super_admins" }
