package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// La taxonomía del núcleo es sólo Unauthorized/NotFound: toda operación de escritura
// aborta completa antes de mutar nada si la autorización falla.
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrProductNotFound = errors.New("producto no encontrado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrInvalidInput    = errors.New("entrada inválida")
)
