package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkolor/cotizador-api/internal/domain/entity"
	"github.com/dkolor/cotizador-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func writeSeed(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad_SinSnapshotUsaSeeds(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "products.json",
		`[{"codigo":"PROD_0001","descripcion":"Cartulina","precio_und":"4.5","stock":10,"cant_mayor":12,"precio_cm":"3.8"}]`)
	writeSeed(t, dir, "clients.json",
		`[{"codigo":"C_000001","cliente":"Bodega Central","dni":"12345678"}]`)

	st := New(filepath.Join(dir, "snapshot.json"), dir, testLogger())
	snap, err := st.Load()
	require.NoError(t, err)

	require.Len(t, snap.Products, 1)
	assert.Equal(t, "PROD_0001", snap.Products[0].Codigo)
	assert.True(t, snap.Products[0].PrecioUnd.Valid)
	require.Len(t, snap.Clients, 1)

	// El borrador arranca normalizado: vacío, con fecha y número.
	require.NotNil(t, snap.Quote)
	assert.Empty(t, snap.Quote.Items)
	assert.NotEmpty(t, snap.Quote.Date)
	assert.Regexp(t, `^COT-\d{8}-\d{4}$`, snap.Quote.Number)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	st := New(path, dir, testLogger())

	um := 12
	original := &entity.Snapshot{
		Revision: "rev-1",
		Products: []*entity.Product{{
			Codigo:      "PROD_0001",
			Descripcion: "Cartulina",
			PrecioUnd:   decimal.NullDecimal{Decimal: decimal.RequireFromString("4.50"), Valid: true},
			Stock:       10,
			CantMayor:   &um,
			PrecioCm:    decimal.NullDecimal{Decimal: decimal.RequireFromString("3.80"), Valid: true},
		}},
		Clients: []*entity.Client{{Codigo: "C_000001", Cliente: "Bodega Central"}},
		Quote:   entity.NewDraft("2026-08-30"),
	}
	original.Quote.Number = "COT-20260830-1234"
	original.Quote.Items = []*entity.QuoteLine{{
		Codigo: "PROD_0001", Descripcion: "Cartulina", Qty: 2,
		Price: entity.ConfirmedPrice(decimal.RequireFromString("4.50")),
	}}

	require.NoError(t, st.Save(original))
	restored, err := st.Load()
	require.NoError(t, err)

	assert.Equal(t, "rev-1", restored.Revision)
	require.Len(t, restored.Products, 1)
	assert.True(t, restored.Products[0].PrecioUnd.Decimal.Equal(decimal.RequireFromString("4.50")))
	require.NotNil(t, restored.Products[0].CantMayor)
	assert.Equal(t, 12, *restored.Products[0].CantMayor)
	require.Len(t, restored.Quote.Items, 1)
	assert.Equal(t, 2, restored.Quote.Items[0].Qty)
	assert.True(t, restored.Quote.Items[0].Price.Confirmed().Equal(decimal.RequireFromString("4.50")))
}

// Un snapshot ilegible no rompe el arranque: se vuelve a los seeds y el
// archivo previo queda en su lugar.
func TestLoad_SnapshotCorruptoCaeASeeds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrupto"), 0o644))
	writeSeed(t, dir, "products.json", `[{"codigo":"PROD_0001","descripcion":"Cartulina","stock":0}]`)
	writeSeed(t, dir, "clients.json", `[]`)

	st := New(path, dir, testLogger())
	snap, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, snap.Products, 1)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr, "el snapshot corrupto no se borra")
}

func TestBootstrap_SeedAusenteDejaColeccionVacia(t *testing.T) {
	dir := t.TempDir() // sin seeds
	st := New(filepath.Join(dir, "snapshot.json"), dir, testLogger())

	snap, err := st.Bootstrap()
	require.NoError(t, err)
	assert.Empty(t, snap.Products)
	assert.Empty(t, snap.Clients)
	assert.NotNil(t, snap.Quote)
}

// El guardado reemplaza el archivo entero; nunca quedan temporales sueltos.
func TestSave_NoDejaTemporales(t *testing.T) {
	dir := t.TempDir()
	st := New(filepath.Join(dir, "snapshot.json"), dir, testLogger())
	require.NoError(t, st.Save(&entity.Snapshot{Quote: entity.NewDraft("2026-08-30")}))
	require.NoError(t, st.Save(&entity.Snapshot{Quote: entity.NewDraft("2026-08-30")}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "snapshot.json", entries[0].Name())
}
