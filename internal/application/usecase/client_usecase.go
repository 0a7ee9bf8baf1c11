package usecase

import (
	"strings"

	"github.com/dkolor/cotizador-api/internal/application/dto"
	"github.com/dkolor/cotizador-api/internal/application/state"
	"github.com/dkolor/cotizador-api/internal/domain"
	"github.com/dkolor/cotizador-api/internal/domain/codes"
	"github.com/dkolor/cotizador-api/internal/domain/entity"
)

// ClientUseCase CRUD y búsqueda de clientes sobre el estado único.
type ClientUseCase struct {
	st *state.State
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(st *state.State) *ClientUseCase {
	return &ClientUseCase{st: st}
}

// List devuelve los clientes cuyo código, nombre o DNI contiene q
// (insensible a mayúsculas), limitado a maxListRows.
func (uc *ClientUseCase) List(q string) dto.ClientListResponse {
	q = strings.ToUpper(strings.TrimSpace(q))
	out := dto.ClientListResponse{Items: []dto.ClientResponse{}}
	uc.st.View(func(snap *entity.Snapshot) {
		out.Meta.Total = len(snap.Clients)
		for _, c := range snap.Clients {
			if q != "" && !clientMatches(c, q) {
				continue
			}
			out.Items = append(out.Items, dto.ToClientResponse(c))
			if len(out.Items) >= maxListRows {
				break
			}
		}
	})
	out.Meta.Shown = len(out.Items)
	return out
}

// Create da de alta un cliente con el siguiente código C_ libre y lo
// antepone a la colección.
func (uc *ClientUseCase) Create(in dto.ClientPayload) (*dto.ClientResponse, error) {
	c := clientFromPayload(in)
	var resp dto.ClientResponse
	err := uc.st.Update(func(snap *entity.Snapshot) error {
		existing := make([]string, 0, len(snap.Clients))
		for _, e := range snap.Clients {
			existing = append(existing, e.Codigo)
		}
		c.Codigo = codes.Next(existing, codes.ClientPrefix, codes.ClientWidth)
		snap.Clients = append([]*entity.Client{c}, snap.Clients...)
		resp = dto.ToClientResponse(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Update edita un cliente existente por código. El código no cambia.
func (uc *ClientUseCase) Update(codigo string, in dto.ClientPayload) (*dto.ClientResponse, error) {
	upd := clientFromPayload(in)
	var resp dto.ClientResponse
	err := uc.st.Update(func(snap *entity.Snapshot) error {
		c := snap.FindClient(codigo)
		if c == nil {
			return domain.ErrClientNotFound
		}
		upd.Codigo = c.Codigo
		*c = *upd
		resp = dto.ToClientResponse(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete elimina un cliente por código (confirmación en el borde HTTP).
func (uc *ClientUseCase) Delete(codigo string) error {
	return uc.st.Update(func(snap *entity.Snapshot) error {
		for i, c := range snap.Clients {
			if c.Codigo == codigo {
				snap.Clients = append(snap.Clients[:i], snap.Clients[i+1:]...)
				return nil
			}
		}
		return domain.ErrClientNotFound
	})
}

func clientMatches(c *entity.Client, q string) bool {
	return strings.Contains(strings.ToUpper(c.Codigo), q) ||
		strings.Contains(strings.ToUpper(c.Cliente), q) ||
		strings.Contains(strings.ToUpper(c.DNI), q)
}

func clientFromPayload(in dto.ClientPayload) *entity.Client {
	return &entity.Client{
		Cliente:       strings.TrimSpace(in.Cliente),
		DNI:           strings.TrimSpace(in.DNI),
		Telefono:      strings.TrimSpace(in.Telefono),
		Celular:       strings.TrimSpace(in.Celular),
		Direccion:     strings.TrimSpace(in.Direccion),
		Observaciones: strings.TrimSpace(in.Observaciones),
		Tipo:          strings.TrimSpace(in.Tipo),
	}
}
