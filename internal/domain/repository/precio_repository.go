package repository

import (
	"context"

	"github.com/jhoicas/Precios-admin/internal/domain/entity"
)

// PrecioRepository puerto hacia los precios por presentación del backend CRUD.
type PrecioRepository interface {
	ListByPresentacion(ctx context.Context, idPresentaOK string) ([]entity.PrecioItem, error)
	ListByLista(ctx context.Context, idListaOK string) ([]entity.PrecioItem, error)
	Create(ctx context.Context, usuario string, p entity.PrecioItem) (*entity.PrecioItem, error)
	Update(ctx context.Context, usuario string, p entity.PrecioItem) (*entity.PrecioItem, error)
	Delete(ctx context.Context, usuario, idPrecioOK string) error
}
