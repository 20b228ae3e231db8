package auth

import (
	"fmt"
	"strings"

	"salon-backend/internal/config"
	"salon-backend/internal/sections"
	"salon-backend/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxSessionKeyKey = "session_key"
	CtxSessionKey    = "session"
	CtxUserIDKey     = "user_id"
	CtxUserNameKey   = "user_name"
	CtxUserRoleKey   = "user_role"
)

// JWTMiddleware token'ı çözer, sonra oturumun iki kopyasını birleştirip
// geçerli yetki durumunu hesaplar. Birleşik oturum doğrulanmamışsa
// istek login'e yönlendirilir; exception fırlatılmaz, 401 + redirect
// alanı döner.
func JWTMiddleware(cfg *config.Config, mgr *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return redirectToLogin(c)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization formatı 'Bearer <token>' olmalı")
		}

		tokenStr := parts[1]

		token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("geçersiz imzalama yöntemi")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Geçersiz veya süresi dolmuş token")
		}

		claims, ok := token.Claims.(*JWTCustomClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Token çözümlenemedi")
		}

		// Her korumalı istekte canlı + kalıcı kopya yeniden birleştirilir
		effective := mgr.Resolve(claims.SessionKey)
		if !effective.IsAuthenticated {
			return redirectToLogin(c)
		}

		c.Locals(CtxSessionKeyKey, claims.SessionKey)
		c.Locals(CtxSessionKey, effective)
		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxUserNameKey, claims.Name)
		c.Locals(CtxUserRoleKey, claims.Role)

		return c.Next()
	}
}

// RequireSuperAdmin korumalı Admin bölümünü kapatır: birleşik oturum
// Admin bölümüne gezinemiyorsa istek reddedilir.
func RequireSuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := EffectiveSession(c)
		if !sections.CanNavigate(sess, sections.Admin) {
			return fiber.NewError(fiber.StatusForbidden, "Bu işlem için yetkiniz yok")
		}
		return c.Next()
	}
}

// EffectiveSession middleware'in hesapladığı birleşik oturumu döndürür.
func EffectiveSession(c *fiber.Ctx) session.Session {
	if s, ok := c.Locals(CtxSessionKey).(session.Session); ok {
		return s
	}
	return session.Session{}
}

func redirectToLogin(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":    "Oturum doğrulanamadı",
		"redirect": "/login",
	})
}
