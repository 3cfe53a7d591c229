package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrConflict      = errors.New("conflicto con el estado actual")
	ErrBackend       = errors.New("el backend CRUD respondió con error")
	ErrSinCambios    = errors.New("no hay cambios que guardar")
	ErrSesionVencida = errors.New("la sesión de selección no existe o venció")
)
