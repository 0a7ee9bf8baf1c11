// Package quote implementa las operaciones de la cotización en curso
// (servicio de dominio): alta de ítems con fusión por código, cambios de
// cantidad, edición y confirmación de precio, y total.
package quote

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dkolor/cotizador-api/internal/domain"
	"github.com/dkolor/cotizador-api/internal/domain/entity"
	"github.com/dkolor/cotizador-api/internal/domain/expr"
	"github.com/dkolor/cotizador-api/internal/domain/pricing"
)

// ProductLookup resuelve un producto por código; nil si ya no existe.
type ProductLookup func(codigo string) *entity.Product

// AddItem agrega un producto a la cotización. Si ya hay un ítem con ese
// código, incrementa su cantidad en vez de duplicar la línea y, salvo precio
// manual, recalcula el precio unitario para la nueva cantidad.
func AddItem(d *entity.Draft, p *entity.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	if line := d.FindLine(p.Codigo); line != nil {
		line.Qty += qty
		line.Price.Recompute(pricing.UnitPrice(p, line.Qty))
		return
	}
	d.Items = append(d.Items, &entity.QuoteLine{
		Codigo:      p.Codigo,
		Descripcion: p.Descripcion,
		Qty:         qty,
		Price:       entity.ConfirmedPrice(pricing.UnitPrice(p, qty)),
	})
}

// SetQuantity fija la cantidad de un ítem (mínimo 1). Si el precio no es
// manual y el producto referenciado todavía existe, recalcula el precio
// unitario; si el producto fue eliminado, el precio queda como está.
func SetQuantity(d *entity.Draft, idx, qty int, lookup ProductLookup) error {
	if idx < 0 || idx >= len(d.Items) {
		return domain.ErrLineOutOfRange
	}
	if qty < 1 {
		qty = 1
	}
	line := d.Items[idx]
	line.Qty = qty
	if !line.Price.Manual() {
		if p := lookup(line.Codigo); p != nil {
			line.Price.Recompute(pricing.UnitPrice(p, qty))
		}
	}
	return nil
}

// BeginPriceEdit guarda el texto crudo del precio mientras el usuario
// escribe, sin evaluarlo. Marca el precio como manual.
func BeginPriceEdit(d *entity.Draft, idx int, raw string) error {
	if idx < 0 || idx >= len(d.Items) {
		return domain.ErrLineOutOfRange
	}
	d.Items[idx].Price.BeginEdit(raw)
	return nil
}

// CommitPriceEdit evalúa el texto y confirma el precio redondeado a 2
// decimales. Se invoca al perder el foco del campo, no en cada tecla.
//
// Texto en blanco confirma 0 (regla propia de los campos de precio). Una
// expresión inválida deja el precio anterior intacto, conserva el estado de
// edición y devuelve el error para que el llamador decida.
func CommitPriceEdit(d *entity.Draft, idx int, raw string) error {
	if idx < 0 || idx >= len(d.Items) {
		return domain.ErrLineOutOfRange
	}
	v, err := expr.Evaluate(raw)
	if err != nil && err != expr.ErrBlank {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	d.Items[idx].Price.Commit(decimal.NewFromFloat(v).Round(2))
	return nil
}

// RemoveItem elimina el ítem en esa posición. Fuera de rango no hace nada.
func RemoveItem(d *entity.Draft, idx int) {
	if idx < 0 || idx >= len(d.Items) {
		return
	}
	d.Items = append(d.Items[:idx], d.Items[idx+1:]...)
}

// Clear vacía los ítems. La confirmación del usuario es responsabilidad del
// borde (HTTP), no de esta operación.
func Clear(d *entity.Draft) {
	d.Items = []*entity.QuoteLine{}
}

// Total suma qty*precio de todos los ítems. Se calcula siempre en fresco;
// nunca se cachea.
func Total(d *entity.Draft) decimal.Decimal {
	total := decimal.Zero
	for _, it := range d.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// AutoNumber genera un número de cotización con la fecha y un sufijo
// aleatorio de 4 dígitos (no hay correlativo global sin servidor central).
func AutoNumber(now time.Time) string {
	return fmt.Sprintf("COT-%s-%04d", now.Format("20060102"), 1000+rand.Intn(9000))
}

// TodayISO devuelve la fecha en formato ISO (YYYY-MM-DD).
func TodayISO(now time.Time) string {
	return now.Format("2006-01-02")
}
