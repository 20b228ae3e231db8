package roster

import (
	"errors"
	"mime/multipart"
	"strconv"

	"salon-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
)

type DeleteRequest struct {
	Name string `json:"name"`
}

// Formlar multipart gelir: alanlar + opsiyonel "image" dosyası.
func fieldsFrom(c *fiber.Ctx) Fields {
	return Fields{
		Name:     c.FormValue("name"),
		Branch:   c.FormValue("branch"),
		Email:    c.FormValue("email"),
		Phone:    c.FormValue("phone"),
		Role:     c.FormValue("role"),
		Password: c.FormValue("password"),
	}
}

func imageFrom(c *fiber.Ctx) *multipart.FileHeader {
	fh, err := c.FormFile("image")
	if err != nil {
		// Görsel opsiyonel; dosya yoksa nil döner
		return nil
	}
	return fh
}

func actorFrom(c *fiber.Ctx) Actor {
	id, _ := c.Locals(auth.CtxUserIDKey).(uint)
	name, _ := c.Locals(auth.CtxUserNameKey).(string)
	return Actor{ID: id, Name: name}
}

// POST /api/admin/roster (sadece super admin)
func CreateAdminHandler(gw *Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := gw.Create(fieldsFrom(c), imageFrom(c), actorFrom(c))
		if err != nil {
			return mutationError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
}

// PUT /api/admin/roster/:id (sadece super admin)
func UpdateAdminHandler(gw *Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz id")
		}
		if err := gw.Update(uint(id), fieldsFrom(c), imageFrom(c), actorFrom(c)); err != nil {
			return mutationError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DELETE /api/admin/roster/:id (sadece super admin)
// Gövdede adminin isminin aynen yazılmış olması beklenir.
func DeleteAdminHandler(gw *Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz id")
		}

		var body DeleteRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if err := gw.Delete(uint(id), body.Name, actorFrom(c)); err != nil {
			return mutationError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func mutationError(c *fiber.Ctx, err error) error {
	var verr ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": verr})
	}
	if errors.Is(err, ErrConfirmationMismatch) {
		return fiber.NewError(fiber.StatusBadRequest, "Onay metni admin ismiyle eşleşmiyor")
	}
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Admin kaydı bulunamadı")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "İşlem tamamlanamadı, tekrar deneyin")
}
