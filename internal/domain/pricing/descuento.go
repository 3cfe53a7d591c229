package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Precios-admin/internal/domain/entity"
)

var cien = decimal.NewFromInt(100)

// CalcularPrecioConDescuento aplica el descuento de una promoción al precio original.
// PORCENTAJE: original * (1 - porcentaje/100). MONTO_FIJO: original - monto.
// Un precio original ausente cuenta como 0. No se limita a cero: la validación del formulario
// es quien impide descuentos absurdos. Un tipo desconocido deja el precio intacto.
func CalcularPrecioConDescuento(original decimal.NullDecimal, tipo entity.TipoDescuento, porcentaje, monto decimal.Decimal) decimal.Decimal {
	base := decimal.Zero
	if original.Valid {
		base = original.Decimal
	}
	switch tipo {
	case entity.DescuentoPorcentaje:
		return base.Mul(decimal.NewFromInt(1).Sub(porcentaje.Div(cien)))
	case entity.DescuentoMontoFijo:
		return base.Sub(monto)
	default:
		return base
	}
}

// AhorroPromocion es la diferencia entre el precio original y el precio con descuento.
func AhorroPromocion(original decimal.NullDecimal, tipo entity.TipoDescuento, porcentaje, monto decimal.Decimal) decimal.Decimal {
	base := decimal.Zero
	if original.Valid {
		base = original.Decimal
	}
	return base.Sub(CalcularPrecioConDescuento(original, tipo, porcentaje, monto))
}
