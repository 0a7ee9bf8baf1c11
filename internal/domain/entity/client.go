package entity

// Client representa un cliente del negocio. Codigo es único dentro del
// registro de clientes.
type Client struct {
	Codigo        string `json:"codigo"`
	Cliente       string `json:"cliente"` // nombre o razón social
	DNI           string `json:"dni"`
	Telefono      string `json:"telefono"`
	Celular       string `json:"celular"`
	Direccion     string `json:"direccion"`
	Observaciones string `json:"observaciones"`
	Tipo          string `json:"tipo"`
}

// Clone devuelve una copia independiente del cliente.
func (c *Client) Clone() *Client {
	cp := *c
	return &cp
}
