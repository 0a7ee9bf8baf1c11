package usecase

import (
	"strings"
	"time"

	"github.com/dkolor/cotizador-api/internal/application/dto"
	"github.com/dkolor/cotizador-api/internal/application/state"
	"github.com/dkolor/cotizador-api/internal/domain"
	"github.com/dkolor/cotizador-api/internal/domain/entity"
	domainquote "github.com/dkolor/cotizador-api/internal/domain/quote"
)

// QuoteUseCase operaciones sobre la única cotización en curso. Cada
// mutación persiste el snapshot completo al terminar.
type QuoteUseCase struct {
	st  *state.State
	pdf QuotePDFGenerator
	xls WorkbookExporter
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(st *state.State, pdf QuotePDFGenerator, xls WorkbookExporter) *QuoteUseCase {
	return &QuoteUseCase{st: st, pdf: pdf, xls: xls}
}

// Get devuelve la cotización con su total y el cliente resuelto (si la
// referencia sigue existiendo).
func (uc *QuoteUseCase) Get() dto.QuoteResponse {
	var resp dto.QuoteResponse
	uc.st.View(func(snap *entity.Snapshot) {
		resp = dto.ToQuoteResponse(snap.Quote, uc.resolveClient(snap))
	})
	return resp
}

// UpdateHeader actualiza número, fecha y/o notas de la cabecera.
func (uc *QuoteUseCase) UpdateHeader(in dto.QuoteHeaderPayload) (dto.QuoteResponse, error) {
	var resp dto.QuoteResponse
	err := uc.st.Update(func(snap *entity.Snapshot) error {
		if in.Number != nil {
			snap.Quote.Number = strings.TrimSpace(*in.Number)
		}
		if in.Date != nil {
			snap.Quote.Date = strings.TrimSpace(*in.Date)
		}
		if in.Notes != nil {
			snap.Quote.Notes = *in.Notes
		}
		resp = dto.ToQuoteResponse(snap.Quote, uc.resolveClient(snap))
		return nil
	})
	return resp, err
}

// SelectClient busca un cliente por código, nombre o DNI y lo asocia a la
// cotización. Sin coincidencia es un error: la selección lo requiere.
func (uc *QuoteUseCase) SelectClient(query string) (dto.QuoteResponse, error) {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return dto.QuoteResponse{}, domain.ErrInvalidInput
	}
	var resp dto.QuoteResponse
	err := uc.st.Update(func(snap *entity.Snapshot) error {
		for _, c := range snap.Clients {
			if clientMatches(c, q) {
				code := c.Codigo
				snap.Quote.ClientCode = &code
				resp = dto.ToQuoteResponse(snap.Quote, c)
				return nil
			}
		}
		return domain.ErrClientNotFound
	})
	return resp, err
}

// AddItem busca un producto por código o descripción y lo agrega a la
// cotización (fusión por código si ya está). Sin coincidencia es un error:
// agregar requiere un producto.
func (uc *QuoteUseCase) AddItem(in dto.AddQuoteItemPayload) (dto.QuoteResponse, error) {
	q := strings.ToUpper(strings.TrimSpace(in.Query))
	if q == "" {
		return dto.QuoteResponse{}, domain.ErrInvalidInput
	}
	qty := in.Qty
	if qty < 1 {
		qty = 1
	}
	var resp dto.QuoteResponse
	err := uc.st.Update(func(snap *entity.Snapshot) error {
		var found *entity.Product
		for _, p := range snap.Products {
			if strings.Contains(strings.ToUpper(p.Codigo), q) ||
				strings.Contains(strings.ToUpper(p.Descripcion), q) {
				found = p
				break
			}
		}
		if found == nil {
			return domain.ErrProductNotFound
		}
		domainquote.AddItem(snap.Quote, found, qty)
		resp = dto.ToQuoteResponse(snap.Quote, uc.resolveClient(snap))
		return nil
	})
	return resp, err
}

// SetQuantity fija la cantidad de un ítem; recalcula el precio solo para
// líneas sin precio manual y con producto aún existente.
func (uc *QuoteUseCase) SetQuantity(idx int, in dto.QuoteQtyPayload) (dto.QuoteResponse, error) {
	var resp dto.QuoteResponse
	err := uc.st.Update(func(snap *entity.Snapshot) error {
		if err := domainquote.SetQuantity(snap.Quote, idx, in.Qty, snap.FindProduct); err != nil {
			return err
		}
		resp = dto.ToQuoteResponse(snap.Quote, uc.resolveClient(snap))
		return nil
	})
	return resp, err
}

// BeginPriceEdit guarda el texto de precio en curso sin evaluarlo. No
// responde la cotización completa: el cliente no debe re-renderizar el campo
// mientras el usuario escribe.
func (uc *QuoteUseCase) BeginPriceEdit(idx int, in dto.QuotePricePayload) error {
	return uc.st.Update(func(snap *entity.Snapshot) error {
		return domainquote.BeginPriceEdit(snap.Quote, idx, in.Raw)
	})
}

// CommitPriceEdit confirma el precio al perder el foco. Una expresión
// inválida deja todo como estaba y retorna el error de validación.
func (uc *QuoteUseCase) CommitPriceEdit(idx int, in dto.QuotePricePayload) (dto.QuoteResponse, error) {
	var resp dto.QuoteResponse
	err := uc.st.Update(func(snap *entity.Snapshot) error {
		if err := domainquote.CommitPriceEdit(snap.Quote, idx, in.Raw); err != nil {
			return err
		}
		resp = dto.ToQuoteResponse(snap.Quote, uc.resolveClient(snap))
		return nil
	})
	return resp, err
}

// RemoveItem elimina un ítem por posición. Fuera de rango no cambia nada,
// pero igual se responde el estado vigente.
func (uc *QuoteUseCase) RemoveItem(idx int) (dto.QuoteResponse, error) {
	var resp dto.QuoteResponse
	err := uc.st.Update(func(snap *entity.Snapshot) error {
		domainquote.RemoveItem(snap.Quote, idx)
		resp = dto.ToQuoteResponse(snap.Quote, uc.resolveClient(snap))
		return nil
	})
	return resp, err
}

// Clear vacía los ítems de la cotización (confirmación en el borde HTTP).
func (uc *QuoteUseCase) Clear() (dto.QuoteResponse, error) {
	var resp dto.QuoteResponse
	err := uc.st.Update(func(snap *entity.Snapshot) error {
		domainquote.Clear(snap.Quote)
		resp = dto.ToQuoteResponse(snap.Quote, uc.resolveClient(snap))
		return nil
	})
	return resp, err
}

// ExportPDF genera el PDF de la cotización en curso.
func (uc *QuoteUseCase) ExportPDF() (data []byte, number string, err error) {
	uc.st.View(func(snap *entity.Snapshot) {
		d := uc.exportDraft(snap)
		data, err = uc.pdf.Generate(d, uc.resolveClient(snap), domainquote.Total(d))
		number = d.Number
	})
	return data, number, err
}

// ExportXLSX genera el Excel de la cotización en curso.
func (uc *QuoteUseCase) ExportXLSX() (data []byte, number string, err error) {
	uc.st.View(func(snap *entity.Snapshot) {
		d := uc.exportDraft(snap)
		data, err = uc.xls.QuoteBook(d, uc.resolveClient(snap), domainquote.Total(d))
		number = d.Number
	})
	return data, number, err
}

// exportDraft completa número y fecha si faltan, solo para el documento;
// el estado persistido no se toca.
func (uc *QuoteUseCase) exportDraft(snap *entity.Snapshot) *entity.Draft {
	d := snap.Quote.Clone()
	now := time.Now()
	if strings.TrimSpace(d.Number) == "" {
		d.Number = domainquote.AutoNumber(now)
	}
	if strings.TrimSpace(d.Date) == "" {
		d.Date = domainquote.TodayISO(now)
	}
	return d
}

func (uc *QuoteUseCase) resolveClient(snap *entity.Snapshot) *entity.Client {
	if snap.Quote.ClientCode == nil {
		return nil
	}
	return snap.FindClient(*snap.Quote.ClientCode)
}
