package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrProductNotFound      = errors.New("producto no encontrado")
	ErrClientNotFound       = errors.New("cliente no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrConfirmationRequired = errors.New("se requiere confirmación explícita")
	ErrLineOutOfRange       = errors.New("ítem de cotización fuera de rango")
	ErrMissingSheets        = errors.New("faltan las hojas 'Productos' y/o 'Clientes'")
)
