package usecase

import (
	"io"

	"github.com/shopspring/decimal"

	"github.com/dkolor/cotizador-api/internal/domain/entity"
)

// ImportedRecords colecciones candidatas parseadas de un libro Excel. Una
// colección vacía significa "hoja sin datos reconocibles" y no reemplaza
// nada.
type ImportedRecords struct {
	Products []*entity.Product
	Clients  []*entity.Client
}

// WorkbookParser parsea un libro Excel con hojas Productos y Clientes.
// Si faltan las hojas retorna domain.ErrMissingSheets.
type WorkbookParser interface {
	ParseRecords(r io.Reader) (*ImportedRecords, error)
}

// WorkbookExporter genera libros Excel para descarga.
type WorkbookExporter interface {
	ProductsBook(products []*entity.Product) ([]byte, error)
	ClientsBook(clients []*entity.Client) ([]byte, error)
	QuoteBook(d *entity.Draft, client *entity.Client, total decimal.Decimal) ([]byte, error)
}

// QuotePDFGenerator genera el PDF de la cotización en curso. client puede
// ser nil si no hay cliente seleccionado.
type QuotePDFGenerator interface {
	Generate(d *entity.Draft, client *entity.Client, total decimal.Decimal) ([]byte, error)
}

// SeedSource provee el snapshot de arranque (datos iniciales) para el
// primer uso y para la restauración explícita.
type SeedSource interface {
	Bootstrap() (*entity.Snapshot, error)
}
