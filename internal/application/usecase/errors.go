package usecase

import (
	"sort"
	"strings"

	"github.com/jhoicas/Precios-admin/internal/domain"
)

// Códigos de validación de formularios de listas y promociones.
const (
	CampoRequerido      = "Requerido"
	RangoFechasInvalido = "RangoFechasInvalido"
	TipoDesconocido     = "TipoDesconocido"
	FueraDeRango        = "FueraDeRango"
	SinProductos        = "SinProductos"
)

// ErrorFormulario campos inválidos de un formulario, todos a la vez.
type ErrorFormulario struct {
	Campos map[string]string
}

func (e *ErrorFormulario) Error() string {
	campos := make([]string, 0, len(e.Campos))
	for c, cod := range e.Campos {
		campos = append(campos, c+"="+cod)
	}
	sort.Strings(campos)
	return "formulario inválido: " + strings.Join(campos, ", ")
}

func (e *ErrorFormulario) Unwrap() error { return domain.ErrInvalidInput }

// formulario acumula errores por campo.
type formulario map[string]string

func (f formulario) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ErrorFormulario{Campos: f}
}
