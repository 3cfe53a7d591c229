package repository

import (
	"context"

	"github.com/jhoicas/Precios-admin/internal/domain/entity"
)

// CatalogoRepository puerto de solo lectura al catálogo de productos externo.
type CatalogoRepository interface {
	ListProductos(ctx context.Context) ([]entity.Producto, error)
	ListPresentaciones(ctx context.Context) ([]entity.Presentacion, error)
	ListPresentacionesBySKU(ctx context.Context, skuid string) ([]entity.Presentacion, error)
	ListCategorias(ctx context.Context) ([]entity.Categoria, error)
}
