package entity

import "time"

// Snapshot es el estado completo persistido como una sola unidad: catálogo,
// clientes y la cotización en curso. Se reemplaza entero en cada guardado
// (último escritor gana); Revision identifica cada versión guardada.
type Snapshot struct {
	Revision string     `json:"revision,omitempty"`
	SavedAt  time.Time  `json:"savedAt,omitempty"`
	Products []*Product `json:"products"`
	Clients  []*Client  `json:"clients"`
	Quote    *Draft     `json:"quote"`
}

// Clone devuelve una copia profunda del snapshot.
func (s *Snapshot) Clone() *Snapshot {
	cp := &Snapshot{
		Revision: s.Revision,
		SavedAt:  s.SavedAt,
		Products: make([]*Product, len(s.Products)),
		Clients:  make([]*Client, len(s.Clients)),
	}
	for i, p := range s.Products {
		cp.Products[i] = p.Clone()
	}
	for i, c := range s.Clients {
		cp.Clients[i] = c.Clone()
	}
	if s.Quote != nil {
		cp.Quote = s.Quote.Clone()
	}
	return cp
}

// FindProduct devuelve el producto con ese código exacto, o nil.
func (s *Snapshot) FindProduct(codigo string) *Product {
	for _, p := range s.Products {
		if p.Codigo == codigo {
			return p
		}
	}
	return nil
}

// FindClient devuelve el cliente con ese código exacto, o nil.
func (s *Snapshot) FindClient(codigo string) *Client {
	for _, c := range s.Clients {
		if c.Codigo == codigo {
			return c
		}
	}
	return nil
}
