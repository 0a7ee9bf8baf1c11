package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dkolor/cotizador-api/internal/application/dto"
	"github.com/dkolor/cotizador-api/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP para la cartera de clientes.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clients
// @Produce      json
// @Param        q  query  string  false  "Filtro por código, nombre o DNI"
// @Success      200  {object}  dto.ClientListResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.Query("q")))
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClientPayload  true  "Datos del cliente"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.ClientPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        codigo  path  string  true  "Código del cliente"
// @Param        body    body  dto.ClientPayload  true  "Datos a actualizar"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{codigo} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.ClientPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("codigo"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         clients
// @Produce      json
// @Param        codigo   path   string  true   "Código del cliente"
// @Param        confirm  query  bool    false  "Debe ser true"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/clients/{codigo} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := requireConfirm(c); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Params("codigo")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
