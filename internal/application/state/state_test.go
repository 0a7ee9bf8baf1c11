package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkolor/cotizador-api/internal/domain/entity"
)

// fakeStore guarda el snapshot en memoria y cuenta los Save.
type fakeStore struct {
	snap    *entity.Snapshot
	saves   int
	saveErr error
}

func (f *fakeStore) Load() (*entity.Snapshot, error) { return f.snap, nil }
func (f *fakeStore) Save(s *entity.Snapshot) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.snap = s
	return nil
}

func newTestState(t *testing.T, fs *fakeStore) *State {
	t.Helper()
	if fs.snap == nil {
		fs.snap = &entity.Snapshot{Quote: entity.NewDraft("2026-08-30")}
	}
	st, err := New(fs)
	require.NoError(t, err)
	return st
}

// Cada mutación exitosa persiste el snapshot completo y estampa una revisión
// nueva.
func TestUpdate_PersisteTrasMutacion(t *testing.T) {
	fs := &fakeStore{}
	st := newTestState(t, fs)

	err := st.Update(func(snap *entity.Snapshot) error {
		snap.Products = append(snap.Products, &entity.Product{Codigo: "PROD_0001"})
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, fs.saves)
	assert.NotEmpty(t, fs.snap.Revision)
	st.View(func(snap *entity.Snapshot) {
		assert.Len(t, snap.Products, 1)
	})
}

// Una mutación que falla no persiste nada y no deja cambios a medias,
// aunque la función haya alcanzado a mutar la copia.
func TestUpdate_ErrorDescartaLaCopia(t *testing.T) {
	fs := &fakeStore{}
	st := newTestState(t, fs)

	err := st.Update(func(snap *entity.Snapshot) error {
		snap.Products = append(snap.Products, &entity.Product{Codigo: "PROD_0001"})
		return errors.New("validación falla a mitad de camino")
	})
	require.Error(t, err)

	assert.Equal(t, 0, fs.saves)
	st.View(func(snap *entity.Snapshot) {
		assert.Empty(t, snap.Products)
	})
}

// Si la tienda falla al guardar, el estado en memoria tampoco cambia: o todo
// o nada.
func TestUpdate_FalloDePersistenciaNoPublica(t *testing.T) {
	fs := &fakeStore{saveErr: errors.New("disco lleno")}
	st := newTestState(t, fs)

	err := st.Update(func(snap *entity.Snapshot) error {
		snap.Products = append(snap.Products, &entity.Product{Codigo: "PROD_0001"})
		return nil
	})
	require.Error(t, err)

	st.View(func(snap *entity.Snapshot) {
		assert.Empty(t, snap.Products)
	})
}

func TestReplace_SustituyeYPersiste(t *testing.T) {
	fs := &fakeStore{}
	st := newTestState(t, fs)

	fresh := &entity.Snapshot{
		Products: []*entity.Product{{Codigo: "PROD_0009"}},
		Quote:    entity.NewDraft("2026-08-30"),
	}
	require.NoError(t, st.Replace(fresh))

	assert.Equal(t, 1, fs.saves)
	st.View(func(snap *entity.Snapshot) {
		require.Len(t, snap.Products, 1)
		assert.Equal(t, "PROD_0009", snap.Products[0].Codigo)
	})
}
