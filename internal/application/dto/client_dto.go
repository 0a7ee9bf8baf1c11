package dto

import "github.com/dkolor/cotizador-api/internal/domain/entity"

// ClientPayload datos de alta/edición de cliente.
type ClientPayload struct {
	Cliente       string `json:"cliente"`
	DNI           string `json:"dni"`
	Telefono      string `json:"telefono"`
	Celular       string `json:"celular"`
	Direccion     string `json:"direccion"`
	Observaciones string `json:"observaciones"`
	Tipo          string `json:"tipo"`
}

// ClientResponse representación de un cliente en respuestas.
type ClientResponse struct {
	Codigo        string `json:"codigo"`
	Cliente       string `json:"cliente"`
	DNI           string `json:"dni"`
	Telefono      string `json:"telefono"`
	Celular       string `json:"celular"`
	Direccion     string `json:"direccion"`
	Observaciones string `json:"observaciones"`
	Tipo          string `json:"tipo"`
}

// ClientListResponse listado filtrado de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Meta  ListMeta         `json:"meta"`
}

// ToClientResponse mapea la entidad a su representación HTTP.
func ToClientResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		Codigo:        c.Codigo,
		Cliente:       c.Cliente,
		DNI:           c.DNI,
		Telefono:      c.Telefono,
		Celular:       c.Celular,
		Direccion:     c.Direccion,
		Observaciones: c.Observaciones,
		Tipo:          c.Tipo,
	}
}
