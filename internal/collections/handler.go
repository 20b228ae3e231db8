package collections

import (
	"salon-backend/internal/sections"
	"salon-backend/internal/session"

	"github.com/gofiber/fiber/v2"
)

// GET /api/collections
// Dashboard mount'unda bir kez çağrılır. Sadece katalogda izin verilen
// bölümlerin koleksiyonları istenir; yetkisiz oturum için korumalı
// koleksiyon hiç sorgulanmaz.
func LoadHandler(loader *Loader, sessionOf func(*fiber.Ctx) session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := sessionOf(c)

		data, err := loader.LoadAll(sections.For(sess))
		if err != nil {
			// Depo elde yoksa tüm görünüm hatalıdır, tek tek koleksiyon
			// hataları ise LoadAll içinde yutulmuştur
			return fiber.NewError(fiber.StatusInternalServerError, "Veriler yüklenemedi")
		}

		return c.JSON(data)
	}
}
