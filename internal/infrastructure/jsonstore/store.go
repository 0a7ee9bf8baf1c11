// Package jsonstore persiste el snapshot completo en un único archivo JSON
// local. Cada guardado escribe a un archivo temporal y lo renombra encima
// del anterior: un corte a mitad de escritura deja el estado previo
// completo, nunca uno a medias.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dkolor/cotizador-api/internal/domain/entity"
	domainquote "github.com/dkolor/cotizador-api/internal/domain/quote"
	"github.com/dkolor/cotizador-api/pkg/logger"
)

// Archivos de datos iniciales dentro del directorio de seeds.
const (
	seedProductsFile = "products.json"
	seedClientsFile  = "clients.json"
)

// Store implementa state.Store y usecase.SeedSource sobre el sistema de
// archivos.
type Store struct {
	path    string // archivo único del snapshot
	seedDir string
	log     *logger.Logger
	now     func() time.Time
}

// New construye la tienda. path es el archivo del snapshot; seedDir el
// directorio con los JSON de arranque.
func New(path, seedDir string, log *logger.Logger) *Store {
	return &Store{path: path, seedDir: seedDir, log: log, now: time.Now}
}

// Load devuelve el snapshot persistido. Si no existe o no es legible, carga
// los datos iniciales (primer arranque). En ambos casos normaliza la
// cotización: nunca se entrega un snapshot sin borrador con fecha.
func (s *Store) Load() (*entity.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("leer snapshot %s: %w", s.path, err)
		}
		s.log.Info().Str("path", s.path).Msg("sin snapshot previo, cargando datos iniciales")
		return s.Bootstrap()
	}

	var snap entity.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// Snapshot ilegible: se conserva el archivo y se arranca de seeds.
		s.log.Warn().Err(err).Str("path", s.path).Msg("snapshot corrupto, cargando datos iniciales")
		return s.Bootstrap()
	}
	s.normalize(&snap)
	return &snap, nil
}

// Save reemplaza el snapshot entero de forma atómica (tmp + rename).
func (s *Store) Save(snap *entity.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar snapshot: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("reemplazar snapshot: %w", err)
	}
	return nil
}

// Bootstrap construye el snapshot de datos iniciales: productos y clientes
// de los seeds, cotización vacía con fecha de hoy. Un seed ausente deja la
// colección vacía; no es error.
func (s *Store) Bootstrap() (*entity.Snapshot, error) {
	snap := &entity.Snapshot{
		Products: []*entity.Product{},
		Clients:  []*entity.Client{},
	}
	if err := s.readSeed(seedProductsFile, &snap.Products); err != nil {
		return nil, err
	}
	if err := s.readSeed(seedClientsFile, &snap.Clients); err != nil {
		return nil, err
	}
	s.normalize(snap)
	return snap, nil
}

func (s *Store) readSeed(name string, v any) error {
	path := filepath.Join(s.seedDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Warn().Str("path", path).Msg("seed ausente, colección vacía")
			return nil
		}
		return fmt.Errorf("leer seed %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsear seed %s: %w", path, err)
	}
	return nil
}

// normalize garantiza borrador presente, con fecha de hoy y número
// autogenerado cuando faltan.
func (s *Store) normalize(snap *entity.Snapshot) {
	now := s.now()
	if snap.Quote == nil {
		snap.Quote = entity.NewDraft(domainquote.TodayISO(now))
	}
	if snap.Quote.Items == nil {
		snap.Quote.Items = []*entity.QuoteLine{}
	}
	if strings.TrimSpace(snap.Quote.Date) == "" {
		snap.Quote.Date = domainquote.TodayISO(now)
	}
	if strings.TrimSpace(snap.Quote.Number) == "" {
		snap.Quote.Number = domainquote.AutoNumber(now)
	}
	if snap.Products == nil {
		snap.Products = []*entity.Product{}
	}
	if snap.Clients == nil {
		snap.Clients = []*entity.Client{}
	}
}
