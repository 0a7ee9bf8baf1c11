// Package pricing implementa la regla de precio escalonado (servicio de
// dominio, funciones puras).
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/dkolor/cotizador-api/internal/domain/entity"
)

// UnitPrice calcula el precio unitario aplicable a un producto para una
// cantidad dada.
//
// Regla: si el producto define cantidad mínima por mayor Y precio por mayor
// (estrictamente positivo) Y qty >= cant_mayor, aplica el precio por mayor.
// Si no, aplica el precio unitario si existe; en su defecto 0.
// La comparación es >= y un precio por mayor en 0 cae al precio unitario;
// ambas cosas son intencionales. No redondea: devuelve los precios tal como
// están almacenados.
func UnitPrice(p *entity.Product, qty int) decimal.Decimal {
	if qty < 0 {
		qty = 0
	}
	if p.CantMayor != nil && p.PrecioCm.Valid && qty >= *p.CantMayor && p.PrecioCm.Decimal.GreaterThan(decimal.Zero) {
		return p.PrecioCm.Decimal
	}
	if p.PrecioUnd.Valid {
		return p.PrecioUnd.Decimal
	}
	return decimal.Zero
}
