package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dkolor/cotizador-api/internal/application/dto"
	"github.com/dkolor/cotizador-api/internal/application/usecase"
	"github.com/dkolor/cotizador-api/internal/domain"
)

// QuoteHandler maneja las peticiones HTTP de la cotización en curso.
type QuoteHandler struct {
	uc *usecase.QuoteUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *usecase.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener la cotización en curso
// @Tags         quote
// @Produce      json
// @Success      200  {object}  dto.QuoteResponse
// @Router       /api/quote [get]
func (h *QuoteHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get())
}

// UpdateHeader godoc
// @Summary      Actualizar cabecera de la cotización
// @Tags         quote
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteHeaderPayload  true  "Campos a actualizar (los omitidos se conservan)"
// @Success      200  {object}  dto.QuoteResponse
// @Router       /api/quote [put]
func (h *QuoteHandler) UpdateHeader(c *fiber.Ctx) error {
	var in dto.QuoteHeaderPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateHeader(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SelectClient godoc
// @Summary      Seleccionar cliente para la cotización
// @Tags         quote
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectClientPayload  true  "Búsqueda por código, nombre o DNI"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quote/client [post]
func (h *QuoteHandler) SelectClient(c *fiber.Ctx) error {
	var in dto.SelectClientPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SelectClient(in.Query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar ítem a la cotización
// @Tags         quote
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddQuoteItemPayload  true  "Búsqueda del producto y cantidad"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quote/items [post]
func (h *QuoteHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddQuoteItemPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddItem(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetQuantity godoc
// @Summary      Cambiar cantidad de un ítem
// @Tags         quote
// @Accept       json
// @Produce      json
// @Param        idx   path  int  true  "Posición del ítem (desde 0)"
// @Param        body  body  dto.QuoteQtyPayload  true  "Nueva cantidad"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quote/items/{idx}/qty [put]
func (h *QuoteHandler) SetQuantity(c *fiber.Ctx) error {
	idx, err := c.ParamsInt("idx")
	if err != nil {
		return respondError(c, domain.ErrLineOutOfRange)
	}
	var in dto.QuoteQtyPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetQuantity(idx, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// BeginPriceEdit godoc
// @Summary      Iniciar edición manual del precio de un ítem
// @Tags         quote
// @Accept       json
// @Param        idx   path  int  true  "Posición del ítem (desde 0)"
// @Param        body  body  dto.QuotePricePayload  true  "Texto tal cual lo escribe el usuario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quote/items/{idx}/price/edit [post]
func (h *QuoteHandler) BeginPriceEdit(c *fiber.Ctx) error {
	idx, err := c.ParamsInt("idx")
	if err != nil {
		return respondError(c, domain.ErrLineOutOfRange)
	}
	var in dto.QuotePricePayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.BeginPriceEdit(idx, in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CommitPriceEdit godoc
// @Summary      Confirmar el precio editado de un ítem
// @Tags         quote
// @Accept       json
// @Produce      json
// @Param        idx   path  int  true  "Posición del ítem (desde 0)"
// @Param        body  body  dto.QuotePricePayload  true  "Expresión de precio a evaluar"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quote/items/{idx}/price [put]
func (h *QuoteHandler) CommitPriceEdit(c *fiber.Ctx) error {
	idx, err := c.ParamsInt("idx")
	if err != nil {
		return respondError(c, domain.ErrLineOutOfRange)
	}
	var in dto.QuotePricePayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CommitPriceEdit(idx, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar un ítem de la cotización
// @Tags         quote
// @Produce      json
// @Param        idx  path  int  true  "Posición del ítem (desde 0)"
// @Success      200  {object}  dto.QuoteResponse
// @Router       /api/quote/items/{idx} [delete]
func (h *QuoteHandler) RemoveItem(c *fiber.Ctx) error {
	idx, err := c.ParamsInt("idx")
	if err != nil {
		return respondError(c, domain.ErrLineOutOfRange)
	}
	out, err := h.uc.RemoveItem(idx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Vaciar la cotización
// @Tags         quote
// @Produce      json
// @Param        confirm  query  bool  false  "Debe ser true"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/quote/items [delete]
func (h *QuoteHandler) Clear(c *fiber.Ctx) error {
	if err := requireConfirm(c); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Clear()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Descargar la cotización en PDF
// @Tags         quote
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/quote/export/pdf [get]
func (h *QuoteHandler) ExportPDF(c *fiber.Ctx) error {
	data, number, err := h.uc.ExportPDF()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.pdf"`, number))
	return c.Send(data)
}

// ExportXLSX godoc
// @Summary      Descargar la cotización en Excel
// @Tags         quote
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/quote/export/xlsx [get]
func (h *QuoteHandler) ExportXLSX(c *fiber.Ctx) error {
	data, number, err := h.uc.ExportXLSX()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.xlsx"`, number))
	return c.Send(data)
}
