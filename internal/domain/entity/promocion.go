package entity

import "github.com/shopspring/decimal"

// TipoDescuento selecciona cuál de DescuentoPorcentaje / DescuentoMonto está activo.
type TipoDescuento string

const (
	DescuentoPorcentaje TipoDescuento = "PORCENTAJE"
	DescuentoMontoFijo  TipoDescuento = "MONTO_FIJO"
)

// Valido informa si el tipo es uno de los soportados.
func (t TipoDescuento) Valido() bool {
	return t == DescuentoPorcentaje || t == DescuentoMontoFijo
}

// ProductoAplicable es una foto desnormalizada de presentación + precio al crear la promoción.
// No es una referencia viva: cambios posteriores de precio no la alteran.
type ProductoAplicable struct {
	IdPresentaOK       string              `json:"IdPresentaOK"`
	SKUID              string              `json:"SKUID"`
	NombreProducto     string              `json:"NombreProducto"`
	NombrePresentacion string              `json:"NombrePresentacion"`
	PrecioOriginal     decimal.NullDecimal `json:"PrecioOriginal"`
}

// Promocion campaña de descuento sobre un conjunto de presentaciones.
type Promocion struct {
	IdPromoOK           string              `json:"IdPromoOK"`
	Titulo              string              `json:"Titulo"`
	Descripcion         string              `json:"Descripcion"`
	FechaIni            Fecha               `json:"FechaIni"`
	FechaFin            Fecha               `json:"FechaFin"`
	ProductosAplicables []ProductoAplicable `json:"ProductosAplicables"`
	TipoDescuento       TipoDescuento       `json:"TipoDescuento"`
	DescuentoPorcentaje decimal.Decimal     `json:"DescuentoPorcentaje"`
	DescuentoMonto      decimal.Decimal     `json:"DescuentoMonto"`
	PermiteAcumulacion  bool                `json:"PermiteAcumulacion"`
	LimiteUsos          *int                `json:"LimiteUsos"`
	Activo              bool                `json:"ACTIVED"`
	Eliminado           bool                `json:"DELETED"`
	RegUser             string              `json:"REGUSER,omitempty"`
	RegDate             Fecha               `json:"REGDATE"`
}
