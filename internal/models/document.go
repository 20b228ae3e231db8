package models

import "time"

// Document: salt-okunur koleksiyonların (Booking, Customer, Employee,
// Products, Services, Shop Branches, Sold_Product) ham kayıtları.
// İçerik yorumlanmaz, koleksiyon adıyla olduğu gibi dashboard'a geçer.
type Document struct {
	ID         uint   `gorm:"primaryKey"`
	Collection string `gorm:"size:50;index;not null"`
	Data       string `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
