package crudapi

import (
	"context"
	"net/url"

	"github.com/jhoicas/Precios-admin/internal/domain/entity"
	"github.com/jhoicas/Precios-admin/internal/domain/repository"
)

var _ repository.ListaRepository = (*ListaRepository)(nil)

// ListaRepository listas de precios (preciosListasCRUD).
type ListaRepository struct {
	c    *Client
	ruta string
}

// NewListaRepository construye el repositorio sobre la ruta indicada.
func NewListaRepository(c *Client, ruta string) *ListaRepository {
	return &ListaRepository{c: c, ruta: ruta}
}

func (r *ListaRepository) List(ctx context.Context) ([]entity.ListaPrecios, error) {
	var out []entity.ListaPrecios
	if err := r.c.ejecutar(ctx, llamada{ruta: r.ruta, proceso: ProcesoGetAll}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.ListaPrecios{}
	}
	return out, nil
}

func (r *ListaRepository) GetByID(ctx context.Context, idListaOK string) (*entity.ListaPrecios, error) {
	var out entity.ListaPrecios
	err := r.c.ejecutar(ctx, llamada{
		ruta:    r.ruta,
		proceso: ProcesoGetOne,
		params:  url.Values{"IDLISTAOK": {idListaOK}},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ListaRepository) Create(ctx context.Context, usuario string, l entity.ListaPrecios) (*entity.ListaPrecios, error) {
	return r.guardar(ctx, ProcesoAddOne, usuario, l)
}

func (r *ListaRepository) Update(ctx context.Context, usuario string, l entity.ListaPrecios) (*entity.ListaPrecios, error) {
	return r.guardar(ctx, ProcesoUpdateOne, usuario, l)
}

// Activate ActivateOne.
func (r *ListaRepository) Activate(ctx context.Context, usuario, idListaOK string) error {
	return r.porID(ctx, ProcesoActivateOne, usuario, idListaOK)
}

// Deactivate DeleteLogic: el backend no tiene DeactivateOne, el borrado lógico
// deja ACTIVED=false sin eliminar el registro.
func (r *ListaRepository) Deactivate(ctx context.Context, usuario, idListaOK string) error {
	return r.porID(ctx, ProcesoDeleteLogic, usuario, idListaOK)
}

func (r *ListaRepository) DeleteHard(ctx context.Context, usuario, idListaOK string) error {
	return r.porID(ctx, ProcesoDeleteHard, usuario, idListaOK)
}

func (r *ListaRepository) porID(ctx context.Context, proceso, usuario, id string) error {
	return r.c.ejecutar(ctx, llamada{
		ruta:    r.ruta,
		proceso: proceso,
		usuario: usuario,
		params:  url.Values{"IDLISTAOK": {id}},
	}, nil)
}

func (r *ListaRepository) guardar(ctx context.Context, proceso, usuario string, l entity.ListaPrecios) (*entity.ListaPrecios, error) {
	l.RegUser = usuario
	var out []entity.ListaPrecios
	err := r.c.ejecutar(ctx, llamada{
		ruta:    r.ruta,
		proceso: proceso,
		usuario: usuario,
		params:  url.Values{"IDLISTAOK": {l.IdListaOK}},
		cuerpo:  l,
	}, &out)
	if err != nil {
		return nil, err
	}
	if len(out) > 0 && out[0].IdListaOK != "" {
		return &out[0], nil
	}
	return &l, nil
}
