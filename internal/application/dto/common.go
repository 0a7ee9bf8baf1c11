package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListMeta metadatos de un listado filtrado. El listado se limita por
// rendimiento; Total es el tamaño real de la colección.
type ListMeta struct {
	Shown int `json:"shown"`
	Total int `json:"total"`
}
