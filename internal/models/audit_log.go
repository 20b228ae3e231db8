package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// AuditLog: admin kadrosu üzerindeki her değişikliğin kaydı.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// İşlemi yapan kullanıcı
	ActorID   uint   `json:"actor_id"`
	ActorName string `gorm:"size:100" json:"actor_name"`

	// Hangi admin kaydı?
	AdminID uint `gorm:"index" json:"admin_id"`

	// create/update/delete
	Action AuditAction `gorm:"size:20" json:"action"`

	Description string `gorm:"size:255" json:"description"`

	// Önceki ve sonraki hal (JSON)
	BeforeData string `gorm:"type:jsonb" json:"before_data"`
	AfterData  string `gorm:"type:jsonb" json:"after_data"`
}
