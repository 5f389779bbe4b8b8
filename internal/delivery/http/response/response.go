package response

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dquezada/pasarela/pkg/failure"
)

type Error struct {
	Error string `json:"error"`
}

// WithJSON writes payload as-is with the given status code. The storefront
// and the provider both expect flat bodies, so there is no envelope.
func WithJSON(ctx *fiber.Ctx, code int, payload interface{}) error {
	return response(ctx, code, payload)
}

func WithError(ctx *fiber.Ctx, err error) error {
	code := failure.GetCode(err)

	return response(ctx, code, Error{Error: err.Error()})
}

func response(ctx *fiber.Ctx, code int, payload interface{}) error {
	if payload == nil {
		return ctx.SendStatus(code)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)

	if err := ctx.Status(code).JSON(payload); err != nil {
		return err
	}

	return nil
}
