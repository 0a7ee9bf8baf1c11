package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El snapshot persiste unitPrice/unitPriceRaw/manualPrice; unitPriceRaw solo
// existe en modo edición.
func TestLinePrice_SnapshotJSON(t *testing.T) {
	p := ConfirmedPrice(decimal.RequireFromString("4.50"))

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"unitPrice":"4.5","unitPriceRaw":null,"manualPrice":false}`, string(data))

	p.BeginEdit("10/2")
	data, err = json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"unitPrice":"4.5","unitPriceRaw":"10/2","manualPrice":true}`, string(data))

	var restored LinePrice
	require.NoError(t, json.Unmarshal(data, &restored))
	raw, editing := restored.Editing()
	assert.True(t, editing)
	assert.Equal(t, "10/2", raw)
	assert.True(t, restored.Manual())
	assert.True(t, restored.Confirmed().Equal(decimal.RequireFromString("4.50")))
}

func TestLinePrice_CommitSaleDeEdicion(t *testing.T) {
	p := ConfirmedPrice(decimal.RequireFromString("1.00"))
	p.BeginEdit("3+1.5")
	p.Commit(decimal.RequireFromString("4.50"))

	_, editing := p.Editing()
	assert.False(t, editing)
	assert.True(t, p.Manual())
	assert.True(t, p.Confirmed().Equal(decimal.RequireFromString("4.50")))
}

func TestLinePrice_RecomputeRespetaManual(t *testing.T) {
	p := ConfirmedPrice(decimal.RequireFromString("4.50"))
	p.Recompute(decimal.RequireFromString("3.80"))
	assert.True(t, p.Confirmed().Equal(decimal.RequireFromString("3.80")))

	p.Commit(decimal.RequireFromString("9.99"))
	p.Recompute(decimal.RequireFromString("3.80"))
	assert.True(t, p.Confirmed().Equal(decimal.RequireFromString("9.99")),
		"un precio manual no se recalcula")
}

// Mutar el clon no debe tocar el snapshot original (base del copy-on-write
// del estado).
func TestSnapshot_CloneIndependiente(t *testing.T) {
	um := 12
	s := &Snapshot{
		Products: []*Product{{Codigo: "PROD_0001", Descripcion: "Cartulina", CantMayor: &um}},
		Clients:  []*Client{{Codigo: "C_000001", Cliente: "Bodega Central"}},
		Quote: &Draft{
			Number: "COT-20260830-1234",
			Items: []*QuoteLine{
				{Codigo: "PROD_0001", Descripcion: "Cartulina", Qty: 2,
					Price: ConfirmedPrice(decimal.RequireFromString("4.50"))},
			},
		},
	}

	cp := s.Clone()
	cp.Products[0].Descripcion = "otro"
	*cp.Products[0].CantMayor = 99
	cp.Clients[0].Cliente = "otro"
	cp.Quote.Items[0].Qty = 50

	assert.Equal(t, "Cartulina", s.Products[0].Descripcion)
	assert.Equal(t, 12, *s.Products[0].CantMayor)
	assert.Equal(t, "Bodega Central", s.Clients[0].Cliente)
	assert.Equal(t, 2, s.Quote.Items[0].Qty)
}
