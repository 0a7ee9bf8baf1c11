package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dkolor/cotizador-api/internal/application/usecase"
	"github.com/dkolor/cotizador-api/internal/domain"
)

// TransferHandler maneja importación, exportación y respaldo de datos.
type TransferHandler struct {
	uc *usecase.TransferUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *usecase.TransferUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Import godoc
// @Summary      Importar productos y clientes desde un libro Excel
// @Description  Reemplaza cada colección solo si la hoja trae registros.
// @Tags         transfer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file     formData  file  true   "Libro .xlsx con hojas Productos y Clientes"
// @Param        confirm  query     bool  false  "Debe ser true"
// @Success      200  {object}  dto.ImportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/transfer/import [post]
func (h *TransferHandler) Import(c *fiber.Ctx) error {
	if err := requireConfirm(c); err != nil {
		return respondError(c, err)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return respondError(c, fmt.Errorf("%w: falta el archivo 'file'", domain.ErrInvalidInput))
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
	}
	defer f.Close()

	out, err := h.uc.ImportWorkbook(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportProducts godoc
// @Summary      Descargar el inventario en Excel
// @Tags         transfer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/transfer/export/products [get]
func (h *TransferHandler) ExportProducts(c *fiber.Ctx) error {
	data, err := h.uc.ExportProducts()
	if err != nil {
		return respondError(c, err)
	}
	return sendWorkbook(c, "inventario", data)
}

// ExportClients godoc
// @Summary      Descargar la cartera de clientes en Excel
// @Tags         transfer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/transfer/export/clients [get]
func (h *TransferHandler) ExportClients(c *fiber.Ctx) error {
	data, err := h.uc.ExportClients()
	if err != nil {
		return respondError(c, err)
	}
	return sendWorkbook(c, "clientes", data)
}

// Backup godoc
// @Summary      Descargar respaldo JSON de productos y clientes
// @Tags         transfer
// @Produce      json
// @Success      200  {file}  binary
// @Router       /api/transfer/backup [get]
func (h *TransferHandler) Backup(c *fiber.Ctx) error {
	data, err := h.uc.Backup()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="respaldo-%s.json"`, time.Now().Format("20060102")))
	return c.Send(data)
}

// Reset godoc
// @Summary      Restablecer los datos de fábrica
// @Description  Descarta todo y vuelve a cargar los datos semilla.
// @Tags         transfer
// @Produce      json
// @Param        confirm  query  bool  false  "Debe ser true"
// @Success      204
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/transfer/reset [post]
func (h *TransferHandler) Reset(c *fiber.Ctx) error {
	if err := requireConfirm(c); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Reset(); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func sendWorkbook(c *fiber.Ctx, name string, data []byte) error {
	c.Set(fiber.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s-%s.xlsx"`, name, time.Now().Format("20060102")))
	return c.Send(data)
}
