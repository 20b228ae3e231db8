package sections

import (
	"salon-backend/internal/session"

	"github.com/gofiber/fiber/v2"
)

type NavigateRequest struct {
	Current string `json:"current"`
	Target  string `json:"target"`
}

// POST /api/navigate
// Hedef bölüme izin varsa geçilir, yoksa mevcut bölüm korunur.
// Düz admin'in "Admin" bölümüne tıklaması sessizce etkisiz kalır.
func NavigateHandler(sessionOf func(*fiber.Ctx) session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body NavigateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		sess := sessionOf(c)
		return c.JSON(fiber.Map{
			"active": Navigate(sess, body.Current, body.Target),
		})
	}
}
