package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Precios-admin/internal/domain/entity"
)

// PromocionRequest formulario de promoción. Solo el campo de descuento del tipo elegido
// se conserva; el otro se guarda en cero.
type PromocionRequest struct {
	Titulo              string                     `json:"Titulo" validate:"required"`
	Descripcion         string                     `json:"Descripcion"`
	FechaIni            entity.Fecha               `json:"FechaIni"`
	FechaFin            entity.Fecha               `json:"FechaFin"`
	ProductosAplicables []entity.ProductoAplicable `json:"ProductosAplicables"`
	TipoDescuento       entity.TipoDescuento       `json:"TipoDescuento"`
	DescuentoPorcentaje decimal.Decimal            `json:"DescuentoPorcentaje"`
	DescuentoMonto      decimal.Decimal            `json:"DescuentoMonto"`
	PermiteAcumulacion  bool                       `json:"PermiteAcumulacion"`
	LimiteUsos          *int                       `json:"LimiteUsos"`
	Activo              *bool                      `json:"ACTIVED"`
}

// PromocionEdicionResponse promoción resultante y llamadas al backend ejecutadas.
type PromocionEdicionResponse struct {
	Item     entity.Promocion `json:"item"`
	Acciones []string         `json:"acciones"`
}

// PromocionListResponse promociones.
type PromocionListResponse struct {
	Items []entity.Promocion `json:"items"`
}

// ConstruirProductosRequest arma la foto de productos aplicables desde una sesión de selección.
// IdListaOK vacío toma el primer precio de cada presentación.
type ConstruirProductosRequest struct {
	SesionID  string `json:"sesion_id" validate:"required"`
	IdListaOK string `json:"IdListaOK"`
}

// ProductosAplicablesResponse foto de productos aplicables.
type ProductosAplicablesResponse struct {
	Items []entity.ProductoAplicable `json:"items"`
}

// PreviewDescuentosRequest productos y descuento a simular.
type PreviewDescuentosRequest struct {
	ProductosAplicables []entity.ProductoAplicable `json:"ProductosAplicables"`
	TipoDescuento       entity.TipoDescuento       `json:"TipoDescuento"`
	DescuentoPorcentaje decimal.Decimal            `json:"DescuentoPorcentaje"`
	DescuentoMonto      decimal.Decimal            `json:"DescuentoMonto"`
}

// PreviewDescuentoItem producto aplicable con su precio final.
type PreviewDescuentoItem struct {
	entity.ProductoAplicable
	PrecioConDescuento decimal.Decimal `json:"PrecioConDescuento"`
	Ahorro             decimal.Decimal `json:"Ahorro"`
}

// PreviewDescuentosResponse simulación completa.
type PreviewDescuentosResponse struct {
	Items []PreviewDescuentoItem `json:"items"`
}
