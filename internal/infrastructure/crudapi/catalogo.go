package crudapi

import (
	"context"
	"net/url"

	"github.com/jhoicas/Precios-admin/internal/domain/entity"
	"github.com/jhoicas/Precios-admin/internal/domain/repository"
)

var _ repository.CatalogoRepository = (*CatalogoRepository)(nil)

// CatalogoRutas rutas de los recursos de solo lectura del catálogo.
type CatalogoRutas struct {
	Productos      string
	Presentaciones string
	Categorias     string
}

// CatalogoRepository productos, presentaciones y categorías.
type CatalogoRepository struct {
	c     *Client
	rutas CatalogoRutas
}

// NewCatalogoRepository construye el repositorio.
func NewCatalogoRepository(c *Client, rutas CatalogoRutas) *CatalogoRepository {
	return &CatalogoRepository{c: c, rutas: rutas}
}

func (r *CatalogoRepository) ListProductos(ctx context.Context) ([]entity.Producto, error) {
	out := []entity.Producto{}
	if err := r.c.ejecutar(ctx, llamada{ruta: r.rutas.Productos, proceso: ProcesoGetAll}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogoRepository) ListPresentaciones(ctx context.Context) ([]entity.Presentacion, error) {
	out := []entity.Presentacion{}
	if err := r.c.ejecutar(ctx, llamada{ruta: r.rutas.Presentaciones, proceso: ProcesoGetAll}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPresentacionesBySKU presentaciones de un producto.
func (r *CatalogoRepository) ListPresentacionesBySKU(ctx context.Context, skuid string) ([]entity.Presentacion, error) {
	var todas []entity.Presentacion
	err := r.c.ejecutar(ctx, llamada{
		ruta:    r.rutas.Presentaciones,
		proceso: ProcesoGetAll,
		params:  url.Values{"skuid": {skuid}},
	}, &todas)
	if err != nil {
		if esNoEncontrado(err) {
			return []entity.Presentacion{}, nil
		}
		return nil, err
	}
	out := make([]entity.Presentacion, 0, len(todas))
	for _, p := range todas {
		if p.SKUID == skuid {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *CatalogoRepository) ListCategorias(ctx context.Context) ([]entity.Categoria, error) {
	out := []entity.Categoria{}
	if err := r.c.ejecutar(ctx, llamada{ruta: r.rutas.Categorias, proceso: ProcesoGetAll}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
