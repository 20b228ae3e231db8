package roster

import (
	"errors"
	"log"
	"mime/multipart"
	"strconv"
	"strings"

	"salon-backend/internal/audit"
	"salon-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound = errors.New("admin kaydı bulunamadı")
	// ErrConfirmationMismatch: silme onayında yazılan isim tutmadı.
	ErrConfirmationMismatch = errors.New("onay metni admin ismiyle eşleşmiyor")
)

// Actor: değişikliği yapan kullanıcı (audit kaydı için).
type Actor struct {
	ID   uint
	Name string
}

// Gateway admin koleksiyonu üzerindeki tek yazma yolu. Her onaylanmış
// yazmadan sonra hub'a tam snapshot yayınlanır; istemci tarafında
// iyimser güncelleme yoktur, dashboard sadece bu snapshot'ları görür.
type Gateway struct {
	ImageDir string
	Hub      *Hub

	store      Store
	writeAudit func(audit.LogOptions) error
}

func NewGateway(imageDir string, hub *Hub, store Store) *Gateway {
	return &Gateway{
		ImageDir:   imageDir,
		Hub:        hub,
		store:      store,
		writeAudit: audit.WriteLog,
	}
}

// Create alan ve görsel doğrulamasından geçmeden hiçbir yazma yapmaz.
// Görsel varsa önce blob olarak kaydedilir ve adresi image_url olarak
// eklenir; yoksa "no image" değeri kullanılır.
func (g *Gateway) Create(f Fields, image *multipart.FileHeader, actor Actor) (uint, error) {
	errs := Validate(f, true)
	if imgErrs := CheckImage(image); imgErrs != nil {
		if errs == nil {
			errs = ValidationError{}
		}
		errs["image"] = imgErrs["image"]
	}
	if errs != nil {
		return 0, errs
	}

	email := strings.TrimSpace(strings.ToLower(f.Email))

	// Email kontrolü
	if _, exists := g.store.ByEmail(email); exists {
		return 0, ValidationError{"email": "Bu email zaten kayıtlı"}
	}

	phone, _ := strconv.ParseInt(strings.TrimSpace(f.Phone), 10, 64)

	hash, err := bcrypt.GenerateFromPassword([]byte(f.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	imageURL := models.NoImageURL
	if image != nil {
		imageURL, err = SaveImage(image, g.ImageDir)
		if err != nil {
			return 0, err
		}
	}

	admin := models.Admin{
		Name:         strings.TrimSpace(f.Name),
		Branch:       strings.TrimSpace(f.Branch),
		Email:        email,
		Phone:        phone,
		Role:         strings.TrimSpace(f.Role),
		PasswordHash: string(hash),
		ImageURL:     imageURL,
	}

	if err := g.store.Create(&admin); err != nil {
		return 0, err
	}

	g.logChange(actor, admin.ID, models.AuditActionCreate, "Admin oluşturuldu: "+admin.Name, nil, DocOf(admin))
	g.publish()
	return admin.ID, nil
}

// Update aynı doğrulamayı uygular. Boş şifre mevcut hash'i korur,
// asla boş değerle ezilmez; yeni görsel yoksa önceki image_url aynen kalır.
func (g *Gateway) Update(id uint, f Fields, image *multipart.FileHeader, actor Actor) error {
	admin, err := g.store.ByID(id)
	if err != nil {
		return ErrNotFound
	}
	before := DocOf(admin)

	errs := Validate(f, false)
	if imgErrs := CheckImage(image); imgErrs != nil {
		if errs == nil {
			errs = ValidationError{}
		}
		errs["image"] = imgErrs["image"]
	}
	if errs != nil {
		return errs
	}

	email := strings.TrimSpace(strings.ToLower(f.Email))

	// Email kontrolü: başka bir kayda ait olmamalı
	if other, exists := g.store.ByEmail(email); exists && other.ID != admin.ID {
		return ValidationError{"email": "Bu email zaten kayıtlı"}
	}

	phone, _ := strconv.ParseInt(strings.TrimSpace(f.Phone), 10, 64)

	admin.Name = strings.TrimSpace(f.Name)
	admin.Branch = strings.TrimSpace(f.Branch)
	admin.Email = email
	admin.Phone = phone
	admin.Role = strings.TrimSpace(f.Role)

	if f.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(f.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin.PasswordHash = string(hash)
	}

	if image != nil {
		imageURL, err := SaveImage(image, g.ImageDir)
		if err != nil {
			return err
		}
		admin.ImageURL = imageURL
	}

	if err := g.store.Save(&admin); err != nil {
		return err
	}

	g.logChange(actor, admin.ID, models.AuditActionUpdate, "Admin güncellendi: "+admin.Name, before, DocOf(admin))
	g.publish()
	return nil
}

// Delete sadece yazılan onay metni kayıttaki isimle eşleşirse çalışır;
// eşleşmezse veritabanına hiç gidilmez.
func (g *Gateway) Delete(id uint, typedName string, actor Actor) error {
	admin, err := g.store.ByID(id)
	if err != nil {
		return ErrNotFound
	}

	if !ConfirmationMatches(typedName, admin.Name) {
		return ErrConfirmationMismatch
	}

	if err := g.store.Delete(id); err != nil {
		return err
	}

	g.logChange(actor, admin.ID, models.AuditActionDelete, "Admin silindi: "+admin.Name, DocOf(admin), nil)
	g.publish()
	return nil
}

func (g *Gateway) publish() {
	snap, err := snapshotFrom(g.store)
	if err != nil {
		log.Printf("[WARN] snapshot alınamadı, aboneler bilgilendirilemedi: %v", err)
		return
	}
	g.Hub.Publish(snap)
}

func (g *Gateway) logChange(actor Actor, adminID uint, action models.AuditAction, desc string, before, after any) {
	if err := g.writeAudit(audit.LogOptions{
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		AdminID:     adminID,
		Action:      action,
		Description: desc,
		Before:      before,
		After:       after,
	}); err != nil {
		log.Printf("[WARN] audit log yazılamadı: %v", err)
	}
}
