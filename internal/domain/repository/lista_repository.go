package repository

import (
	"context"

	"github.com/jhoicas/Precios-admin/internal/domain/entity"
)

// ListaRepository puerto hacia las listas de precios.
// Update no toca ACTIVED; para eso están Activate y Deactivate.
type ListaRepository interface {
	List(ctx context.Context) ([]entity.ListaPrecios, error)
	GetByID(ctx context.Context, idListaOK string) (*entity.ListaPrecios, error)
	Create(ctx context.Context, usuario string, l entity.ListaPrecios) (*entity.ListaPrecios, error)
	Update(ctx context.Context, usuario string, l entity.ListaPrecios) (*entity.ListaPrecios, error)
	Activate(ctx context.Context, usuario, idListaOK string) error
	Deactivate(ctx context.Context, usuario, idListaOK string) error
	DeleteHard(ctx context.Context, usuario, idListaOK string) error
}
