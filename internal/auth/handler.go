package auth

import (
	"strconv"
	"strings"

	"salon-backend/internal/config"
	"salon-backend/internal/database"
	"salon-backend/internal/models"
	"salon-backend/internal/sections"
	"salon-backend/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RegisterSuperAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// POST /api/auth/register-super-admin
// İlk kurulum içindir; zaten bir super admin varsa ikincisine izin verilmez.
func RegisterSuperAdminHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterSuperAdminRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		body.Name = strings.TrimSpace(body.Name)

		if body.Email == "" || body.Password == "" || body.Name == "" || body.Phone == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, email, telefon ve şifre zorunlu")
		}

		phone, err := strconv.ParseInt(strings.TrimSpace(body.Phone), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Telefon sayısal olmalı")
		}

		var count int64
		database.DB.Model(&models.SuperAdmin{}).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusForbidden, "Zaten bir super admin var")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		sa := models.SuperAdmin{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Phone:        phone,
		}

		if err := database.DB.Create(&sa).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Super admin oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":    sa.ID,
			"email": sa.Email,
			"role":  RoleSuperAdmin,
		})
	}
}

// POST /api/auth/login
// Kimlik doğrulanınca oturum iki kopyaya birden yazılır ve token döner.
func LoginHandler(cfg *config.Config, mgr *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		// Telefon veritabanında sayısal tutulur; karşılaştırmadan önce
		// girilen değer sayıya çevrilir
		phone, err := strconv.ParseInt(strings.TrimSpace(body.Phone), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email, telefon veya şifre hatalı")
		}

		ident, err := Verify(body.Email, body.Password, phone)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email, telefon veya şifre hatalı")
		}

		sess := session.Session{
			IsAuthenticated: true,
			IsSuperAdmin:    ident.Role == RoleSuperAdmin,
			IsAdmin:         ident.Role == RoleAdmin,
			UserID:          strconv.FormatUint(uint64(ident.ID), 10),
		}

		sessionKey := uuid.NewString()
		if err := mgr.Establish(sessionKey, sess); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Oturum kaydedilemedi")
		}

		token, err := GenerateToken(cfg.JWTSecret, sessionKey, ident)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":    ident.ID,
				"name":  ident.Name,
				"email": ident.Email,
				"role":  ident.Role,
			},
			"session": sess,
		})
	}
}

// POST /api/auth/logout
// İki oturum kopyası birden temizlenir.
func LogoutHandler(mgr *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, ok := c.Locals(CtxSessionKeyKey).(string)
		if !ok || key == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Oturum anahtarı bulunamadı")
		}
		if err := mgr.Clear(key); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Oturum kapatılamadı")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/auth/session
// Dashboard mount olduğunda çağrılır: birleşik yetki durumu, bölüm
// listesi ve açılışta aktif olacak bölüm. Super admin açılışta bir
// kereliğine Admin bölümüne düşer; sonraki gezinme /api/navigate üzerinden.
func SessionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := EffectiveSession(c)
		return c.JSON(fiber.Map{
			"session":         sess,
			"sections":        sections.For(sess),
			"initial_section": sections.Initial(sess),
		})
	}
}

// GET /api/auth/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals(CtxUserIDKey).(uint)
		role, _ := c.Locals(CtxUserRoleKey).(Role)

		// Kullanıcı bilgilerini veritabanından çek
		if role == RoleSuperAdmin {
			var sa models.SuperAdmin
			if err := database.DB.First(&sa, userID).Error; err == nil {
				return c.JSON(fiber.Map{
					"user_id": sa.ID,
					"name":    sa.Name,
					"email":   sa.Email,
					"phone":   sa.Phone,
					"role":    RoleSuperAdmin,
				})
			}
		} else {
			var a models.Admin
			if err := database.DB.First(&a, userID).Error; err == nil {
				return c.JSON(fiber.Map{
					"user_id":   a.ID,
					"name":      a.Name,
					"email":     a.Email,
					"phone":     a.Phone,
					"branch":    a.Branch,
					"role":      RoleAdmin,
					"image_url": a.ImageURL,
				})
			}
		}

		// Fallback: veritabanından çekilemezse token içeriğini döndür
		return c.JSON(fiber.Map{
			"user_id": userID,
			"name":    c.Locals(CtxUserNameKey),
			"role":    role,
		})
	}
}
