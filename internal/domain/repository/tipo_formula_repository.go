package repository

import "github.com/jhoicas/Precios-admin/internal/domain/entity"

// TipoFormulaRepository catálogo de tipos de fórmula, cargado al arranque.
type TipoFormulaRepository interface {
	Existe(id string) bool
	Obtener(id string) (entity.TipoFormula, bool)
	Listar() []entity.TipoFormula
}
