package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dkolor/cotizador-api/internal/application/dto"
	"github.com/dkolor/cotizador-api/internal/application/state"
	"github.com/dkolor/cotizador-api/internal/domain"
	"github.com/dkolor/cotizador-api/internal/domain/codes"
	"github.com/dkolor/cotizador-api/internal/domain/entity"
	"github.com/dkolor/cotizador-api/internal/domain/expr"
)

// maxListRows límite de filas devueltas en listados (rendimiento).
const maxListRows = 500

// ProductUseCase CRUD y búsqueda de productos sobre el estado único.
type ProductUseCase struct {
	st *state.State
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(st *state.State) *ProductUseCase {
	return &ProductUseCase{st: st}
}

// List devuelve los productos cuyo código o descripción contiene q
// (insensible a mayúsculas), limitado a maxListRows.
func (uc *ProductUseCase) List(q string) dto.ProductListResponse {
	q = strings.ToUpper(strings.TrimSpace(q))
	out := dto.ProductListResponse{Items: []dto.ProductResponse{}}
	uc.st.View(func(snap *entity.Snapshot) {
		out.Meta.Total = len(snap.Products)
		for _, p := range snap.Products {
			if q != "" &&
				!strings.Contains(strings.ToUpper(p.Codigo), q) &&
				!strings.Contains(strings.ToUpper(p.Descripcion), q) {
				continue
			}
			out.Items = append(out.Items, dto.ToProductResponse(p))
			if len(out.Items) >= maxListRows {
				break
			}
		}
	})
	out.Meta.Shown = len(out.Items)
	return out
}

// Create da de alta un producto con el siguiente código PROD_ libre y lo
// antepone a la colección.
func (uc *ProductUseCase) Create(in dto.ProductPayload) (*dto.ProductResponse, error) {
	p, err := productFromPayload(in)
	if err != nil {
		return nil, err
	}
	var resp dto.ProductResponse
	err = uc.st.Update(func(snap *entity.Snapshot) error {
		existing := make([]string, 0, len(snap.Products))
		for _, e := range snap.Products {
			existing = append(existing, e.Codigo)
		}
		p.Codigo = codes.Next(existing, codes.ProductPrefix, codes.ProductWidth)
		snap.Products = append([]*entity.Product{p}, snap.Products...)
		resp = dto.ToProductResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Update edita un producto existente por código. El código no cambia.
func (uc *ProductUseCase) Update(codigo string, in dto.ProductPayload) (*dto.ProductResponse, error) {
	upd, err := productFromPayload(in)
	if err != nil {
		return nil, err
	}
	var resp dto.ProductResponse
	err = uc.st.Update(func(snap *entity.Snapshot) error {
		p := snap.FindProduct(codigo)
		if p == nil {
			return domain.ErrProductNotFound
		}
		upd.Codigo = p.Codigo
		*p = *upd
		resp = dto.ToProductResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete elimina un producto por código. La confirmación del usuario se
// exige en el borde HTTP, no aquí.
func (uc *ProductUseCase) Delete(codigo string) error {
	return uc.st.Update(func(snap *entity.Snapshot) error {
		for i, p := range snap.Products {
			if p.Codigo == codigo {
				snap.Products = append(snap.Products[:i], snap.Products[i+1:]...)
				return nil
			}
		}
		return domain.ErrProductNotFound
	})
}

// productFromPayload valida y evalúa los campos de precio del payload.
// Un campo en blanco queda sin valor; una expresión inválida es error.
func productFromPayload(in dto.ProductPayload) (*entity.Product, error) {
	costo, err := priceField("costo", in.Costo)
	if err != nil {
		return nil, err
	}
	precioUnd, err := priceField("precio_und", in.PrecioUnd)
	if err != nil {
		return nil, err
	}
	precioDoc, err := priceField("precio_doc", in.PrecioDoc)
	if err != nil {
		return nil, err
	}
	precioCm, err := priceField("precio_cm", in.PrecioCm)
	if err != nil {
		return nil, err
	}
	stock := in.Stock
	if stock < 0 {
		stock = 0
	}
	return &entity.Product{
		Descripcion: strings.TrimSpace(in.Descripcion),
		Costo:       costo,
		PrecioUnd:   precioUnd,
		Stock:       stock,
		PrecioDoc:   precioDoc,
		CantMayor:   in.CantMayor,
		PrecioCm:    precioCm,
		Proveedor:   strings.TrimSpace(in.Proveedor),
		Notas:       strings.TrimSpace(in.Notas),
	}, nil
}

func priceField(name string, s *string) (decimal.NullDecimal, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return decimal.NullDecimal{}, nil
	}
	v, err := expr.Evaluate(*s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%w: campo %s: %v", domain.ErrInvalidInput, name, err)
	}
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(v).Round(2), Valid: true}, nil
}
