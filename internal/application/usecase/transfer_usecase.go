package usecase

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dkolor/cotizador-api/internal/application/dto"
	"github.com/dkolor/cotizador-api/internal/application/state"
	"github.com/dkolor/cotizador-api/internal/domain"
	"github.com/dkolor/cotizador-api/internal/domain/entity"
)

// TransferUseCase importación y exportación masiva: Excel de catálogo,
// respaldo JSON y restauración de datos iniciales.
type TransferUseCase struct {
	st     *state.State
	parser WorkbookParser
	export WorkbookExporter
	seeds  SeedSource
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(st *state.State, parser WorkbookParser, export WorkbookExporter, seeds SeedSource) *TransferUseCase {
	return &TransferUseCase{st: st, parser: parser, export: export, seeds: seeds}
}

// ImportWorkbook parsea un libro Excel y reemplaza las colecciones en bloque.
//
// La importación es todo-o-nada respecto del estado: si el parseo falla no
// cambia nada. Una hoja sin cabecera reconocible produce una colección vacía
// y la colección vigente queda intacta (no es error).
func (uc *TransferUseCase) ImportWorkbook(r io.Reader) (*dto.ImportResponse, error) {
	records, err := uc.parser.ParseRecords(r)
	if err != nil {
		return nil, err
	}
	if err := checkUniqueProductCodes(records.Products); err != nil {
		return nil, err
	}
	if err := checkUniqueClientCodes(records.Clients); err != nil {
		return nil, err
	}
	err = uc.st.Update(func(snap *entity.Snapshot) error {
		if len(records.Products) > 0 {
			snap.Products = records.Products
		}
		if len(records.Clients) > 0 {
			snap.Clients = records.Clients
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ImportResponse{
		Products: len(records.Products),
		Clients:  len(records.Clients),
	}, nil
}

// Los códigos deben ser únicos dentro de cada hoja; un libro con códigos
// repetidos se rechaza entero.

func checkUniqueProductCodes(products []*entity.Product) error {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.Codigo]; ok {
			return fmt.Errorf("%w: código de producto repetido %q", domain.ErrDuplicate, p.Codigo)
		}
		seen[p.Codigo] = struct{}{}
	}
	return nil
}

func checkUniqueClientCodes(clients []*entity.Client) error {
	seen := make(map[string]struct{}, len(clients))
	for _, c := range clients {
		if _, ok := seen[c.Codigo]; ok {
			return fmt.Errorf("%w: código de cliente repetido %q", domain.ErrDuplicate, c.Codigo)
		}
		seen[c.Codigo] = struct{}{}
	}
	return nil
}

// ExportProducts genera el Excel del catálogo completo.
func (uc *TransferUseCase) ExportProducts() (data []byte, err error) {
	uc.st.View(func(snap *entity.Snapshot) {
		data, err = uc.export.ProductsBook(snap.Products)
	})
	return data, err
}

// ExportClients genera el Excel de todos los clientes.
func (uc *TransferUseCase) ExportClients() (data []byte, err error) {
	uc.st.View(func(snap *entity.Snapshot) {
		data, err = uc.export.ClientsBook(snap.Clients)
	})
	return data, err
}

// Backup serializa productos y clientes como JSON legible. La cotización en
// curso queda fuera del respaldo a propósito: es un borrador.
func (uc *TransferUseCase) Backup() ([]byte, error) {
	var out []byte
	var err error
	uc.st.View(func(snap *entity.Snapshot) {
		out, err = json.MarshalIndent(struct {
			Products []*entity.Product `json:"products"`
			Clients  []*entity.Client  `json:"clients"`
		}{snap.Products, snap.Clients}, "", "  ")
	})
	if err != nil {
		return nil, fmt.Errorf("serializar respaldo: %w", err)
	}
	return out, nil
}

// Reset descarta todo el estado y vuelve a los datos iniciales. La
// confirmación del usuario se exige en el borde HTTP.
func (uc *TransferUseCase) Reset() error {
	snap, err := uc.seeds.Bootstrap()
	if err != nil {
		return fmt.Errorf("cargar datos iniciales: %w", err)
	}
	return uc.st.Replace(snap)
}
