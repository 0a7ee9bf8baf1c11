// Package excel adapta el catálogo al formato de libro Excel: importación
// con búsqueda de fila de cabecera y exportación de Productos, Clientes y
// Cotización.
package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/dkolor/cotizador-api/internal/application/usecase"
	"github.com/dkolor/cotizador-api/internal/domain"
	"github.com/dkolor/cotizador-api/internal/domain/entity"
)

// Nombres de hoja esperados en el libro de importación.
const (
	sheetProducts = "Productos"
	sheetClients  = "Clientes"
)

// headerScanLimit filas iniciales donde se busca la cabecera.
const headerScanLimit = 120

var (
	productKeywords = []string{"CÓDIGO", "DESCRIPCIÓN", "STOCK"}
	clientKeywords  = []string{"Código", "Cliente", "DNI"}
)

// Adapter implementa usecase.WorkbookParser y usecase.WorkbookExporter.
type Adapter struct {
	businessName string
	footnote     string
}

// NewAdapter construye el adaptador con los datos de presentación para los
// libros exportados.
func NewAdapter(businessName, footnote string) *Adapter {
	return &Adapter{businessName: businessName, footnote: footnote}
}

// ParseRecords lee un libro con hojas Productos y Clientes y devuelve las
// colecciones candidatas. Si falta alguna de las dos hojas retorna
// domain.ErrMissingSheets sin parsear nada.
//
// Por hoja: la cabecera es la primera fila (dentro de las 120 iniciales)
// donde cada palabra clave aparece como subcadena de alguna celda, sin
// distinguir mayúsculas ni tildes. Sin cabecera, la colección queda vacía.
// Las filas de datos se leen hasta la primera con el código inicial en
// blanco.
func (a *Adapter) ParseRecords(r io.Reader) (*usecase.ImportedRecords, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	defer f.Close()

	prodRows, prodErr := f.GetRows(sheetProducts)
	cliRows, cliErr := f.GetRows(sheetClients)
	if prodErr != nil || cliErr != nil {
		return nil, domain.ErrMissingSheets
	}

	return &usecase.ImportedRecords{
		Products: parseProducts(prodRows),
		Clients:  parseClients(cliRows),
	}, nil
}

// findHeaderRow devuelve el índice de la fila de cabecera, o -1.
func findHeaderRow(rows [][]string, keywords []string) int {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for r := 0; r < limit; r++ {
		if headerMatches(rows[r], keywords) {
			return r
		}
	}
	return -1
}

func headerMatches(row []string, keywords []string) bool {
	for _, kw := range keywords {
		found := false
		for _, cell := range row {
			if strings.Contains(fold(cell), fold(kw)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// table indexa las columnas de una hoja por nombre de cabecera normalizado.
type table struct {
	firstCol int
	colByKey map[string]int
}

func newTable(header []string) table {
	t := table{firstCol: -1, colByKey: map[string]int{}}
	for i, cell := range header {
		key := fold(cell)
		if key == "" {
			continue
		}
		if t.firstCol < 0 {
			t.firstCol = i
		}
		if _, dup := t.colByKey[key]; !dup {
			t.colByKey[key] = i
		}
	}
	return t
}

// get devuelve la celda bajo la cabecera name, o "" si no existe.
func (t table) get(row []string, name string) string {
	i, ok := t.colByKey[fold(name)]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// leadCode devuelve el identificador inicial de la fila (primera columna de
// la tabla); en blanco termina el escaneo de la hoja.
func (t table) leadCode(row []string) string {
	if t.firstCol < 0 || t.firstCol >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[t.firstCol])
}

func parseProducts(rows [][]string) []*entity.Product {
	hr := findHeaderRow(rows, productKeywords)
	if hr < 0 {
		return nil
	}
	tbl := newTable(rows[hr])
	var out []*entity.Product
	for r := hr + 1; r < len(rows); r++ {
		row := rows[r]
		code := tbl.leadCode(row)
		if code == "" {
			break
		}
		out = append(out, &entity.Product{
			Codigo:      code,
			Descripcion: tbl.get(row, "DESCRIPCIÓN"),
			Costo:       numOrNull(tbl.get(row, "COSTO (S/)")),
			PrecioUnd:   numOrNull(tbl.get(row, "PRECIO_UND (S/)")),
			Stock:       intCell(tbl.get(row, "STOCK")),
			PrecioDoc:   numOrNull(tbl.get(row, "PRECIO_DOC (S/)")),
			CantMayor:   intOrNull(tbl.get(row, "CANT.MAYOR")),
			PrecioCm:    numOrNull(tbl.get(row, "PRECIO_CM (S/)")),
			Proveedor:   tbl.get(row, "PROVEEDOR"),
			Notas:       tbl.get(row, "NOTAS"),
		})
	}
	return out
}

func parseClients(rows [][]string) []*entity.Client {
	hr := findHeaderRow(rows, clientKeywords)
	if hr < 0 {
		return nil
	}
	tbl := newTable(rows[hr])
	var out []*entity.Client
	for r := hr + 1; r < len(rows); r++ {
		row := rows[r]
		code := tbl.leadCode(row)
		if code == "" {
			break
		}
		out = append(out, &entity.Client{
			Codigo:        code,
			Cliente:       tbl.get(row, "Cliente"),
			DNI:           tbl.get(row, "DNI"),
			Telefono:      tbl.get(row, "Teléfono"),
			Celular:       tbl.get(row, "Celular"),
			Direccion:     tbl.get(row, "Dirección"),
			Observaciones: tbl.get(row, "Observaciones"),
			Tipo:          tbl.get(row, "Tipo"),
		})
	}
	return out
}

// numOrNull convierte una celda a decimal; vacío o no numérico es "sin
// valor", no un error.
func numOrNull(s string) decimal.NullDecimal {
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func intOrNull(s string) *int {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return nil
	}
	n := int(f)
	return &n
}

func intCell(s string) int {
	if n := intOrNull(s); n != nil {
		return *n
	}
	return 0
}
