package usecase

import (
	"context"

	"github.com/jhoicas/Precios-admin/internal/application/dto"
)

// HojaPreciosGenerator puerto de salida para el PDF de la hoja de precios.
type HojaPreciosGenerator interface {
	GenerarHojaPrecios(ctx context.Context, hoja *dto.HojaPrecios) ([]byte, error)
}
