package usecase

import (
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkolor/cotizador-api/internal/application/state"
	"github.com/dkolor/cotizador-api/internal/domain"
	"github.com/dkolor/cotizador-api/internal/domain/entity"
)

// memStore guarda el snapshot en memoria; suficiente para los casos de uso.
type memStore struct {
	snap *entity.Snapshot
}

func (m *memStore) Load() (*entity.Snapshot, error) { return m.snap, nil }
func (m *memStore) Save(s *entity.Snapshot) error {
	m.snap = s
	return nil
}
func (m *memStore) Bootstrap() (*entity.Snapshot, error) {
	return &entity.Snapshot{
		Products: []*entity.Product{{Codigo: "PROD_0001", Descripcion: "semilla"}},
		Clients:  []*entity.Client{},
		Quote:    entity.NewDraft("2026-08-30"),
	}, nil
}

// fakeParser devuelve colecciones fijas sin leer el reader.
type fakeParser struct {
	records ImportedRecords
}

func (f *fakeParser) ParseRecords(io.Reader) (*ImportedRecords, error) {
	return &f.records, nil
}

func newTransferState(t *testing.T) (*state.State, *memStore) {
	t.Helper()
	ms := &memStore{snap: &entity.Snapshot{
		Products: []*entity.Product{
			{Codigo: "PROD_0001", Descripcion: "Tinte 7.1"},
			{Codigo: "PROD_0002", Descripcion: "Oxigenada"},
		},
		Clients: []*entity.Client{{Codigo: "C_000001", Cliente: "Bodega"}},
		Quote:   entity.NewDraft("2026-08-30"),
	}}
	st, err := state.New(ms)
	require.NoError(t, err)
	return st, ms
}

func TestImportWorkbook_ReemplazaSoloColeccionesConDatos(t *testing.T) {
	st, _ := newTransferState(t)
	parser := &fakeParser{records: ImportedRecords{
		Products: []*entity.Product{{Codigo: "PROD_0009", Descripcion: "Nuevo"}},
		Clients:  []*entity.Client{}, // hoja sin datos: no toca los clientes
	}}
	uc := NewTransferUseCase(st, parser, nil, nil)

	out, err := uc.ImportWorkbook(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 1, out.Products)
	assert.Equal(t, 0, out.Clients)

	st.View(func(snap *entity.Snapshot) {
		require.Len(t, snap.Products, 1)
		assert.Equal(t, "PROD_0009", snap.Products[0].Codigo)
		// La colección de clientes vigente queda intacta.
		require.Len(t, snap.Clients, 1)
		assert.Equal(t, "C_000001", snap.Clients[0].Codigo)
	})
}

func TestImportWorkbook_CodigoRepetidoRechazaTodo(t *testing.T) {
	st, _ := newTransferState(t)
	parser := &fakeParser{records: ImportedRecords{
		Products: []*entity.Product{
			{Codigo: "PROD_0009"},
			{Codigo: "PROD_0009"},
		},
	}}
	uc := NewTransferUseCase(st, parser, nil, nil)

	_, err := uc.ImportWorkbook(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Nada cambió.
	st.View(func(snap *entity.Snapshot) {
		assert.Len(t, snap.Products, 2)
		assert.Equal(t, "PROD_0001", snap.Products[0].Codigo)
	})
}

func TestBackup_ExcluyeLaCotizacion(t *testing.T) {
	st, _ := newTransferState(t)
	require.NoError(t, st.Update(func(snap *entity.Snapshot) error {
		snap.Quote.Items = append(snap.Quote.Items, &entity.QuoteLine{
			Codigo: "PROD_0001", Qty: 2,
			Price: entity.ConfirmedPrice(decimal.RequireFromString("14.00")),
		})
		return nil
	}))
	uc := NewTransferUseCase(st, nil, nil, nil)

	data, err := uc.Backup()
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `"products"`)
	assert.Contains(t, s, `"clients"`)
	assert.NotContains(t, s, `"quote"`)
	assert.NotContains(t, s, `"unitPrice"`)
}

func TestReset_VuelveALosDatosIniciales(t *testing.T) {
	st, ms := newTransferState(t)
	uc := NewTransferUseCase(st, nil, nil, ms)

	require.NoError(t, uc.Reset())

	st.View(func(snap *entity.Snapshot) {
		require.Len(t, snap.Products, 1)
		assert.Equal(t, "semilla", snap.Products[0].Descripcion)
		assert.Empty(t, snap.Clients)
	})
}
