package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// LinePrice es el estado de precio de un ítem de cotización.
//
// Tiene dos modos excluyentes: Confirmado (valor numérico a 2 decimales) y
// Edición (texto crudo que el usuario aún no confirma). Mientras está en
// edición el último valor confirmado sigue vigente para totales y exportes.
// El flag manual queda fijo desde la primera edición: a partir de ahí los
// cambios de cantidad ya no recalculan el precio.
type LinePrice struct {
	value   decimal.Decimal
	raw     string
	editing bool
	manual  bool
}

// ConfirmedPrice construye un precio confirmado, no manual.
func ConfirmedPrice(v decimal.Decimal) LinePrice {
	return LinePrice{value: v}
}

// Confirmed devuelve el último valor confirmado.
func (p LinePrice) Confirmed() decimal.Decimal { return p.value }

// Editing devuelve el texto en edición y si el estado de edición está activo.
func (p LinePrice) Editing() (string, bool) { return p.raw, p.editing }

// Manual indica si el usuario fijó el precio a mano en algún momento.
func (p LinePrice) Manual() bool { return p.manual }

// BeginEdit guarda el texto tal cual se escribió, sin evaluar ni
// reformatear, y marca el precio como manual.
func (p *LinePrice) BeginEdit(raw string) {
	p.raw = raw
	p.editing = true
	p.manual = true
}

// Commit confirma un valor ya redondeado a 2 decimales y sale del modo
// edición. El precio queda manual de forma permanente.
func (p *LinePrice) Commit(v decimal.Decimal) {
	p.value = v
	p.raw = ""
	p.editing = false
	p.manual = true
}

// Recompute reemplaza el valor confirmado solo si el precio no es manual.
func (p *LinePrice) Recompute(v decimal.Decimal) {
	if p.manual {
		return
	}
	p.value = v
}

// linePriceJSON es la forma persistida del estado de precio. unitPriceRaw
// es null salvo en modo edición.
type linePriceJSON struct {
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	UnitPriceRaw *string         `json:"unitPriceRaw"`
	ManualPrice  bool            `json:"manualPrice"`
}

// MarshalJSON serializa el estado con las claves del snapshot.
func (p LinePrice) MarshalJSON() ([]byte, error) {
	out := linePriceJSON{UnitPrice: p.value, ManualPrice: p.manual}
	if p.editing {
		raw := p.raw
		out.UnitPriceRaw = &raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON restaura el estado desde el snapshot.
func (p *LinePrice) UnmarshalJSON(data []byte) error {
	var in linePriceJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	p.value = in.UnitPrice
	p.manual = in.ManualPrice
	if in.UnitPriceRaw != nil {
		p.raw = *in.UnitPriceRaw
		p.editing = true
	} else {
		p.raw = ""
		p.editing = false
	}
	return nil
}

// QuoteLine es un ítem de la cotización. Codigo referencia un producto por
// código (búsqueda no estructural: el producto puede desaparecer después).
// Descripcion se copia al agregar y no sigue ediciones posteriores del
// producto.
type QuoteLine struct {
	Codigo      string    `json:"codigo"`
	Descripcion string    `json:"descripcion"`
	Qty         int       `json:"qty"`
	Price       LinePrice `json:"price"`
}

// Subtotal devuelve qty * precio confirmado.
func (l *QuoteLine) Subtotal() decimal.Decimal {
	return decimal.NewFromInt(int64(l.Qty)).Mul(l.Price.Confirmed())
}

// Draft es la única cotización en curso. Items conserva el orden de
// inserción; el orden es significativo para la vista y los exportes.
type Draft struct {
	Number     string       `json:"number"`
	Date       string       `json:"date"` // fecha ISO (YYYY-MM-DD)
	Notes      string       `json:"notes"`
	ClientCode *string      `json:"clientCode"`
	Items      []*QuoteLine `json:"items"`
}

// NewDraft crea una cotización vacía con la fecha indicada.
func NewDraft(dateISO string) *Draft {
	return &Draft{Date: dateISO, Items: []*QuoteLine{}}
}

// FindLine devuelve el ítem cuyo código coincide, o nil.
func (d *Draft) FindLine(codigo string) *QuoteLine {
	for _, it := range d.Items {
		if it.Codigo == codigo {
			return it
		}
	}
	return nil
}

// Clone devuelve una copia independiente de la cotización.
func (d *Draft) Clone() *Draft {
	cp := *d
	if d.ClientCode != nil {
		code := *d.ClientCode
		cp.ClientCode = &code
	}
	cp.Items = make([]*QuoteLine, len(d.Items))
	for i, it := range d.Items {
		line := *it
		cp.Items[i] = &line
	}
	return &cp
}
