package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Los precios son opcionales:
// un producto puede existir sin precio unitario ni precio por mayor.
// Codigo es el identificador único y estable dentro del catálogo.
type Product struct {
	Codigo      string              `json:"codigo"`
	Descripcion string              `json:"descripcion"`
	Costo       decimal.NullDecimal `json:"costo"`
	PrecioUnd   decimal.NullDecimal `json:"precio_und"` // precio de venta por unidad
	Stock       int                 `json:"stock"`
	PrecioDoc   decimal.NullDecimal `json:"precio_doc"` // precio por docena
	CantMayor   *int                `json:"cant_mayor"` // cantidad mínima para precio por mayor
	PrecioCm    decimal.NullDecimal `json:"precio_cm"`  // precio por mayor
	Proveedor   string              `json:"proveedor"`
	Notas       string              `json:"notas"`
}

// Clone devuelve una copia independiente del producto.
func (p *Product) Clone() *Product {
	cp := *p
	if p.CantMayor != nil {
		n := *p.CantMayor
		cp.CantMayor = &n
	}
	return &cp
}
