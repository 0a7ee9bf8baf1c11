// Package moneyfmt formatea montos en soles peruanos para documentos.
package moneyfmt

import (
	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Soles devuelve el monto con símbolo de moneda, por ejemplo "S/1,234.50".
// Redondea a 2 decimales antes de formatear.
func Soles(d decimal.Decimal) string {
	cents := d.Round(2).Shift(2).IntPart()
	return money.New(cents, money.PEN).Display()
}

// Plain devuelve el monto a 2 decimales sin símbolo, para celdas numéricas
// y columnas de tabla ("1234.50").
func Plain(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}
