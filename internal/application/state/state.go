// Package state posee el estado único de la aplicación (productos, clientes
// y cotización en curso) y el puerto de persistencia del snapshot.
//
// Todas las mutaciones pasan por Update: se aplican sobre una copia, se
// persisten como un todo y recién entonces se publican. Una mutación que
// falla no persiste nada y deja el estado en memoria intacto. El mutex
// serializa las mutaciones: dos operaciones nunca se entrelazan a medias.
package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dkolor/cotizador-api/internal/domain/entity"
)

// Store es el puerto de persistencia del snapshot. Save reemplaza el estado
// persistido entero (último escritor gana, sin transacciones).
type Store interface {
	Load() (*entity.Snapshot, error)
	Save(snap *entity.Snapshot) error
}

// State envuelve el snapshot en memoria y su tienda.
type State struct {
	mu    sync.RWMutex
	snap  *entity.Snapshot
	store Store
	now   func() time.Time
}

// New carga el snapshot desde la tienda y construye el estado.
func New(store Store) (*State, error) {
	snap, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar snapshot: %w", err)
	}
	return &State{snap: snap, store: store, now: time.Now}, nil
}

// View ejecuta fn con acceso de solo lectura al snapshot. fn no debe retener
// referencias ni mutar nada.
func (s *State) View(fn func(snap *entity.Snapshot)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.snap)
}

// Update aplica fn sobre una copia del snapshot. Si fn retorna error, la
// copia se descarta. Si no, se estampa una nueva revisión, se persiste el
// snapshot completo y la copia pasa a ser el estado vigente. Un fallo al
// persistir también descarta la copia.
func (s *State) Update(fn func(snap *entity.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.snap.Clone()
	if err := fn(work); err != nil {
		return err
	}
	work.Revision = uuid.New().String()
	work.SavedAt = s.now()
	if err := s.store.Save(work); err != nil {
		return fmt.Errorf("guardar snapshot: %w", err)
	}
	s.snap = work
	return nil
}

// Replace sustituye el estado completo por otro snapshot (restaurar datos
// iniciales) y lo persiste.
func (s *State) Replace(snap *entity.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := snap.Clone()
	work.Revision = uuid.New().String()
	work.SavedAt = s.now()
	if err := s.store.Save(work); err != nil {
		return fmt.Errorf("guardar snapshot: %w", err)
	}
	s.snap = work
	return nil
}
