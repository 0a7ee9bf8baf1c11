package excel

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/dkolor/cotizador-api/internal/domain/entity"
)

var productHeader = []interface{}{
	"CÓDIGO", "DESCRIPCIÓN", "COSTO (S/)", "PRECIO_UND (S/)", "STOCK",
	"PRECIO_DOC (S/)", "CANT.MAYOR", "PRECIO_CM (S/)", "PROVEEDOR", "NOTAS",
}

var clientHeader = []interface{}{
	"Código", "Cliente", "DNI", "Teléfono", "Celular", "Dirección",
	"Observaciones", "Tipo",
}

// ProductsBook genera el libro del catálogo completo, una hoja Productos
// con las mismas cabeceras que acepta la importación (ida y vuelta sin
// pérdida).
func (a *Adapter) ProductsBook(products []*entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetProducts); err != nil {
		return nil, err
	}
	if err := setRow(f, sheetProducts, 1, productHeader); err != nil {
		return nil, err
	}
	for i, p := range products {
		row := []interface{}{
			p.Codigo, p.Descripcion, nullCell(p.Costo), nullCell(p.PrecioUnd),
			p.Stock, nullCell(p.PrecioDoc), intCellValue(p.CantMayor),
			nullCell(p.PrecioCm), p.Proveedor, p.Notas,
		}
		if err := setRow(f, sheetProducts, i+2, row); err != nil {
			return nil, err
		}
	}
	return bookBytes(f)
}

// ClientsBook genera el libro de clientes, hoja Clientes.
func (a *Adapter) ClientsBook(clients []*entity.Client) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetClients); err != nil {
		return nil, err
	}
	if err := setRow(f, sheetClients, 1, clientHeader); err != nil {
		return nil, err
	}
	for i, c := range clients {
		row := []interface{}{
			c.Codigo, c.Cliente, c.DNI, c.Telefono, c.Celular,
			c.Direccion, c.Observaciones, c.Tipo,
		}
		if err := setRow(f, sheetClients, i+2, row); err != nil {
			return nil, err
		}
	}
	return bookBytes(f)
}

// QuoteBook genera el libro de la cotización: título, cabecera, ítems y
// fila de total.
func (a *Adapter) QuoteBook(d *entity.Draft, client *entity.Client, total decimal.Decimal) ([]byte, error) {
	const sheet = "Cotizacion"
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	clientLabel := "—"
	if client != nil {
		clientLabel = fmt.Sprintf("%s - %s", client.Codigo, client.Cliente)
	}
	head := [][]interface{}{
		{a.businessName + " - Cotización"},
		{fmt.Sprintf("N°: %s", d.Number), fmt.Sprintf("Fecha: %s", d.Date)},
		{"Cliente:", clientLabel},
		{},
		{"Código", "Producto", "Cantidad", "Precio Unit (S/)", "Subtotal (S/)"},
	}
	for i, row := range head {
		if err := setRow(f, sheet, i+1, row); err != nil {
			return nil, err
		}
	}

	r := len(head) + 1
	for _, it := range d.Items {
		row := []interface{}{
			it.Codigo, it.Descripcion, it.Qty,
			decimalCell(it.Price.Confirmed()), decimalCell(it.Subtotal()),
		}
		if err := setRow(f, sheet, r, row); err != nil {
			return nil, err
		}
		r++
	}

	totalRow := []interface{}{"", "", "", "TOTAL", decimalCell(total)}
	if err := setRow(f, sheet, r+1, totalRow); err != nil {
		return nil, err
	}
	if a.footnote != "" {
		if err := setRow(f, sheet, r+3, []interface{}{a.footnote}); err != nil {
			return nil, err
		}
	}
	return bookBytes(f)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func bookBytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// nullCell deja la celda vacía cuando el valor no existe; los montos se
// exportan como número redondeado a dos decimales.
func nullCell(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return ""
	}
	return decimalCell(d.Decimal)
}

func decimalCell(d decimal.Decimal) interface{} {
	f, _ := d.Round(2).Float64()
	return f
}

func intCellValue(n *int) interface{} {
	if n == nil {
		return ""
	}
	return *n
}
