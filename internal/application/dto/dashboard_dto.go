package dto

// DashboardResponse indicadores del tablero.
type DashboardResponse struct {
	Products   int `json:"products"`
	Clients    int `json:"clients"`
	TotalStock int `json:"totalStock"`
	LowStock   int `json:"lowStock"` // productos con stock <= umbral
}

// ImportResponse resultado de una importación de Excel.
type ImportResponse struct {
	Products int `json:"products"` // 0 = hoja sin cabecera reconocible, colección intacta
	Clients  int `json:"clients"`
}
