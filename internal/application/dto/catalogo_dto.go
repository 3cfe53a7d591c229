package dto

import "github.com/jhoicas/Precios-admin/internal/domain/entity"

// Órdenes admitidos por FiltroProductos.Orden.
const (
	OrdenNombre = "nombre"
	OrdenSKU    = "skuid"
	OrdenFecha  = "fecha"
)

// FiltroProductos búsqueda sobre el catálogo.
type FiltroProductos struct {
	Texto       string `query:"q"`
	Categoria   string `query:"categoria"`
	SoloActivos bool   `query:"activos"`
	Orden       string `query:"orden"`
	Desc        bool   `query:"desc"`
	Limit       int    `query:"limit"`
	Offset      int    `query:"offset"`
}

// ProductoListResponse página de productos con sus presentaciones.
type ProductoListResponse struct {
	Items []entity.ProductoConPresentaciones `json:"items"`
	Page  PageResponse                       `json:"page"`
}

// CategoriaListResponse categorías del catálogo.
type CategoriaListResponse struct {
	Items []entity.Categoria `json:"items"`
}

// TipoFormulaListResponse tipos de fórmula configurados.
type TipoFormulaListResponse struct {
	Items []entity.TipoFormula `json:"items"`
}
