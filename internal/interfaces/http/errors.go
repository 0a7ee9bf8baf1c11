package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dkolor/cotizador-api/internal/application/dto"
	"github.com/dkolor/cotizador-api/internal/domain"
)

// respondError traduce errores de dominio a respuestas HTTP con código estable.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrConfirmationRequired):
		return c.Status(fiber.StatusPreconditionRequired).
			JSON(dto.ErrorResponse{Code: "CONFIRMATION_REQUIRED", Message: "agregue confirm=true para ejecutar esta operación"})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrClientNotFound):
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrLineOutOfRange):
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).
			JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrMissingSheets):
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// requireConfirm exige el query param confirm=true en operaciones destructivas.
func requireConfirm(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return domain.ErrConfirmationRequired
	}
	return nil
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).
		JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
