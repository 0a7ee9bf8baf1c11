package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dkolor/cotizador-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	ClientUC    *usecase.ClientUseCase
	QuoteUC     *usecase.QuoteUseCase
	TransferUC  *usecase.TransferUseCase
	DashboardUC *usecase.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Panel
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Stats)

	// Productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:codigo", productHandler.Update)
	products.Delete("/:codigo", productHandler.Delete)

	// Clientes
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Put("/:codigo", clientHandler.Update)
	clients.Delete("/:codigo", clientHandler.Delete)

	// Cotización en curso (una sola, como la hoja de trabajo del mostrador)
	quote := api.Group("/quote")
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	quote.Get("/", quoteHandler.Get)
	quote.Put("/", quoteHandler.UpdateHeader)
	quote.Post("/client", quoteHandler.SelectClient)
	quote.Post("/items", quoteHandler.AddItem)
	quote.Delete("/items", quoteHandler.Clear)
	quote.Put("/items/:idx/qty", quoteHandler.SetQuantity)
	quote.Post("/items/:idx/price/edit", quoteHandler.BeginPriceEdit)
	quote.Put("/items/:idx/price", quoteHandler.CommitPriceEdit)
	quote.Delete("/items/:idx", quoteHandler.RemoveItem)
	quote.Get("/export/pdf", quoteHandler.ExportPDF)
	quote.Get("/export/xlsx", quoteHandler.ExportXLSX)

	// Importación / exportación / respaldo
	transfer := api.Group("/transfer")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfer.Post("/import", transferHandler.Import)
	transfer.Get("/export/products", transferHandler.ExportProducts)
	transfer.Get("/export/clients", transferHandler.ExportClients)
	transfer.Get("/backup", transferHandler.Backup)
	transfer.Post("/reset", transferHandler.Reset)
}
