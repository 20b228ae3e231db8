package auth

import (
	"errors"

	"salon-backend/internal/database"
	"salon-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// ErrUnauthorized: iki koleksiyonda da eşleşme yok.
var ErrUnauthorized = errors.New("geçersiz kimlik bilgileri")

type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
)

// Identity doğrulanan kullanıcının kimliği ve kademesi.
type Identity struct {
	ID    uint
	Name  string
	Email string
	Role  Role
}

// Verify önce "Super Admin" tablosunu, eşleşme yoksa "Admin" tablosunu
// dener. Email ve telefon tam eşleşir (telefon sayısal tutulur), şifre
// bcrypt hash'iyle karşılaştırılır. İki kademe de tutmazsa
// ErrUnauthorized döner; otomatik tekrar deneme yoktur.
func Verify(email, password string, phone int64) (*Identity, error) {
	var sa models.SuperAdmin
	err := database.DB.Where("email = ? AND phone = ?", email, phone).First(&sa).Error
	if err == nil && bcrypt.CompareHashAndPassword([]byte(sa.PasswordHash), []byte(password)) == nil {
		return &Identity{ID: sa.ID, Name: sa.Name, Email: sa.Email, Role: RoleSuperAdmin}, nil
	}

	var a models.Admin
	err = database.DB.Where("email = ? AND phone = ?", email, phone).First(&a).Error
	if err == nil && bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil {
		return &Identity{ID: a.ID, Name: a.Name, Email: a.Email, Role: RoleAdmin}, nil
	}

	return nil, ErrUnauthorized
}
