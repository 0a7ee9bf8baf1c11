package dto

import (
	"github.com/shopspring/decimal"

	"github.com/dkolor/cotizador-api/internal/domain/entity"
)

// ProductPayload datos de alta/edición de producto. Los campos de precio
// aceptan una expresión aritmética ("10/2", "3,5") o vacío para "sin valor";
// se evalúan y redondean a 2 decimales al guardar.
type ProductPayload struct {
	Descripcion string  `json:"descripcion"`
	Costo       *string `json:"costo"`
	PrecioUnd   *string `json:"precio_und"`
	Stock       int     `json:"stock"`
	PrecioDoc   *string `json:"precio_doc"`
	CantMayor   *int    `json:"cant_mayor"`
	PrecioCm    *string `json:"precio_cm"`
	Proveedor   string  `json:"proveedor"`
	Notas       string  `json:"notas"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	Codigo      string              `json:"codigo"`
	Descripcion string              `json:"descripcion"`
	Costo       decimal.NullDecimal `json:"costo"`
	PrecioUnd   decimal.NullDecimal `json:"precio_und"`
	Stock       int                 `json:"stock"`
	PrecioDoc   decimal.NullDecimal `json:"precio_doc"`
	CantMayor   *int                `json:"cant_mayor"`
	PrecioCm    decimal.NullDecimal `json:"precio_cm"`
	Proveedor   string              `json:"proveedor"`
	Notas       string              `json:"notas"`
}

// ProductListResponse listado filtrado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Meta  ListMeta          `json:"meta"`
}

// ToProductResponse mapea la entidad a su representación HTTP.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		Codigo:      p.Codigo,
		Descripcion: p.Descripcion,
		Costo:       p.Costo,
		PrecioUnd:   p.PrecioUnd,
		Stock:       p.Stock,
		PrecioDoc:   p.PrecioDoc,
		CantMayor:   p.CantMayor,
		PrecioCm:    p.PrecioCm,
		Proveedor:   p.Proveedor,
		Notas:       p.Notas,
	}
}
