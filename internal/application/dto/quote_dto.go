package dto

import (
	"github.com/shopspring/decimal"

	"github.com/dkolor/cotizador-api/internal/domain/entity"
	domainquote "github.com/dkolor/cotizador-api/internal/domain/quote"
)

// QuoteHeaderPayload campos de cabecera de la cotización. Los punteros
// distinguen "no enviado" de "vaciar".
type QuoteHeaderPayload struct {
	Number *string `json:"number"`
	Date   *string `json:"date"`
	Notes  *string `json:"notes"`
}

// AddQuoteItemPayload alta de ítem por búsqueda de producto.
type AddQuoteItemPayload struct {
	Query string `json:"query"` // código o fragmento de descripción
	Qty   int    `json:"qty"`
}

// QuoteQtyPayload cambio de cantidad de un ítem.
type QuoteQtyPayload struct {
	Qty int `json:"qty"`
}

// QuotePricePayload texto de precio, crudo (en edición) o a confirmar.
type QuotePricePayload struct {
	Raw string `json:"raw"`
}

// SelectClientPayload selección de cliente por búsqueda.
type SelectClientPayload struct {
	Query string `json:"query"` // código, nombre o DNI
}

// QuoteLineResponse un ítem de la cotización.
type QuoteLineResponse struct {
	Codigo      string          `json:"codigo"`
	Descripcion string          `json:"descripcion"`
	Qty         int             `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	UnitPriceRaw *string        `json:"unitPriceRaw"`
	ManualPrice bool            `json:"manualPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// QuoteResponse la cotización en curso con su total calculado en fresco.
type QuoteResponse struct {
	Number     string              `json:"number"`
	Date       string              `json:"date"`
	Notes      string              `json:"notes"`
	ClientCode *string             `json:"clientCode"`
	Client     *ClientResponse     `json:"client,omitempty"`
	Items      []QuoteLineResponse `json:"items"`
	Total      decimal.Decimal     `json:"total"`
}

// ToQuoteResponse mapea la cotización; client puede ser nil si la referencia
// no resuelve.
func ToQuoteResponse(d *entity.Draft, client *entity.Client) QuoteResponse {
	resp := QuoteResponse{
		Number:     d.Number,
		Date:       d.Date,
		Notes:      d.Notes,
		ClientCode: d.ClientCode,
		Items:      make([]QuoteLineResponse, 0, len(d.Items)),
		Total:      domainquote.Total(d),
	}
	if client != nil {
		c := ToClientResponse(client)
		resp.Client = &c
	}
	for _, it := range d.Items {
		line := QuoteLineResponse{
			Codigo:      it.Codigo,
			Descripcion: it.Descripcion,
			Qty:         it.Qty,
			UnitPrice:   it.Price.Confirmed(),
			ManualPrice: it.Price.Manual(),
			Subtotal:    it.Subtotal(),
		}
		if raw, editing := it.Price.Editing(); editing {
			line.UnitPriceRaw = &raw
		}
		resp.Items = append(resp.Items, line)
	}
	return resp
}
