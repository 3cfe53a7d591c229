package crudapi

import (
	"context"
	"net/url"

	"github.com/jhoicas/Precios-admin/internal/domain/entity"
	"github.com/jhoicas/Precios-admin/internal/domain/repository"
)

var _ repository.PrecioRepository = (*PrecioRepository)(nil)

// ProcesoGetByPresentacion variante de consulta de precios filtrada en el backend.
const ProcesoGetByPresentacion = "GetByIdPresentaOK"

// PrecioRepository precios por presentación (preciosItemsCRUD).
type PrecioRepository struct {
	c    *Client
	ruta string
}

// NewPrecioRepository construye el repositorio sobre la ruta indicada.
func NewPrecioRepository(c *Client, ruta string) *PrecioRepository {
	return &PrecioRepository{c: c, ruta: ruta}
}

// ListByPresentacion precios de una presentación en todas las listas.
// El resultado se filtra también aquí por si el backend ignora el parámetro.
func (r *PrecioRepository) ListByPresentacion(ctx context.Context, idPresentaOK string) ([]entity.PrecioItem, error) {
	var out []entity.PrecioItem
	err := r.c.ejecutar(ctx, llamada{
		ruta:    r.ruta,
		proceso: ProcesoGetByPresentacion,
		params:  url.Values{"IdPresentaOK": {idPresentaOK}},
	}, &out)
	if err != nil {
		if esNoEncontrado(err) {
			return []entity.PrecioItem{}, nil
		}
		return nil, err
	}
	return filtrarPrecios(out, func(p entity.PrecioItem) bool { return p.IdPresentaOK == idPresentaOK }), nil
}

// ListByLista precios de todas las presentaciones de una lista.
func (r *PrecioRepository) ListByLista(ctx context.Context, idListaOK string) ([]entity.PrecioItem, error) {
	var out []entity.PrecioItem
	err := r.c.ejecutar(ctx, llamada{
		ruta:    r.ruta,
		proceso: ProcesoGetAll,
		params:  url.Values{"IdListaOK": {idListaOK}},
	}, &out)
	if err != nil {
		return nil, err
	}
	return filtrarPrecios(out, func(p entity.PrecioItem) bool { return p.IdListaOK == idListaOK }), nil
}

// Create AddOne. Si el backend no devuelve el registro se retorna el enviado.
func (r *PrecioRepository) Create(ctx context.Context, usuario string, p entity.PrecioItem) (*entity.PrecioItem, error) {
	return r.guardar(ctx, ProcesoAddOne, usuario, p)
}

// Update UpdateOne sobre IdPrecioOK.
func (r *PrecioRepository) Update(ctx context.Context, usuario string, p entity.PrecioItem) (*entity.PrecioItem, error) {
	return r.guardar(ctx, ProcesoUpdateOne, usuario, p)
}

// Delete DeleteHard.
func (r *PrecioRepository) Delete(ctx context.Context, usuario, idPrecioOK string) error {
	return r.c.ejecutar(ctx, llamada{
		ruta:    r.ruta,
		proceso: ProcesoDeleteHard,
		usuario: usuario,
		params:  url.Values{"IdPrecioOK": {idPrecioOK}},
	}, nil)
}

func (r *PrecioRepository) guardar(ctx context.Context, proceso, usuario string, p entity.PrecioItem) (*entity.PrecioItem, error) {
	p.RegUser = usuario
	var out []entity.PrecioItem
	err := r.c.ejecutar(ctx, llamada{
		ruta:    r.ruta,
		proceso: proceso,
		usuario: usuario,
		params:  url.Values{"IdPrecioOK": {p.IdPrecioOK}},
		cuerpo:  p,
	}, &out)
	if err != nil {
		return nil, err
	}
	if len(out) > 0 && out[0].IdPrecioOK != "" {
		return &out[0], nil
	}
	return &p, nil
}

func filtrarPrecios(in []entity.PrecioItem, ok func(entity.PrecioItem) bool) []entity.PrecioItem {
	out := make([]entity.PrecioItem, 0, len(in))
	for _, p := range in {
		if ok(p) {
			out = append(out, p)
		}
	}
	return out
}
