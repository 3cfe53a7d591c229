package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Precios-admin/internal/domain/entity"
)

// LineaHoja una presentación en la hoja de precios.
type LineaHoja struct {
	SKUID              string
	NombreProducto     string
	NombrePresentacion string
	CostoIni           decimal.Decimal
	Formula            string
	Precio             decimal.Decimal
}

// HojaPrecios datos de entrada del generador PDF.
type HojaPrecios struct {
	Lista       entity.ListaPrecios
	TipoFormula string
	Lineas      []LineaHoja
	GeneradaEn  time.Time
	GeneradaPor string
}
