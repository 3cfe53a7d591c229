package crudapi

import (
	"context"
	"net/url"

	"github.com/jhoicas/Precios-admin/internal/domain/entity"
	"github.com/jhoicas/Precios-admin/internal/domain/repository"
)

var _ repository.PromocionRepository = (*PromocionRepository)(nil)

// PromocionRepository promociones (crudPromociones).
type PromocionRepository struct {
	c    *Client
	ruta string
}

// NewPromocionRepository construye el repositorio sobre la ruta indicada.
func NewPromocionRepository(c *Client, ruta string) *PromocionRepository {
	return &PromocionRepository{c: c, ruta: ruta}
}

func (r *PromocionRepository) List(ctx context.Context) ([]entity.Promocion, error) {
	var out []entity.Promocion
	if err := r.c.ejecutar(ctx, llamada{ruta: r.ruta, proceso: ProcesoGetAll}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.Promocion{}
	}
	return out, nil
}

func (r *PromocionRepository) GetByID(ctx context.Context, idPromoOK string) (*entity.Promocion, error) {
	var out entity.Promocion
	err := r.c.ejecutar(ctx, llamada{
		ruta:    r.ruta,
		proceso: ProcesoGetOne,
		params:  url.Values{"IdPromoOK": {idPromoOK}},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PromocionRepository) Create(ctx context.Context, usuario string, p entity.Promocion) (*entity.Promocion, error) {
	return r.guardar(ctx, ProcesoAddOne, usuario, p)
}

func (r *PromocionRepository) Update(ctx context.Context, usuario string, p entity.Promocion) (*entity.Promocion, error) {
	return r.guardar(ctx, ProcesoUpdateOne, usuario, p)
}

// Activate ActivateOne.
func (r *PromocionRepository) Activate(ctx context.Context, usuario, idPromoOK string) error {
	return r.porID(ctx, ProcesoActivateOne, usuario, idPromoOK)
}

// Deactivate DeleteLogic, igual que en listas: la promoción queda inactiva sin borrarse.
func (r *PromocionRepository) Deactivate(ctx context.Context, usuario, idPromoOK string) error {
	return r.porID(ctx, ProcesoDeleteLogic, usuario, idPromoOK)
}

func (r *PromocionRepository) DeleteHard(ctx context.Context, usuario, idPromoOK string) error {
	return r.porID(ctx, ProcesoDeleteHard, usuario, idPromoOK)
}

func (r *PromocionRepository) porID(ctx context.Context, proceso, usuario, id string) error {
	return r.c.ejecutar(ctx, llamada{
		ruta:    r.ruta,
		proceso: proceso,
		usuario: usuario,
		params:  url.Values{"IdPromoOK": {id}},
	}, nil)
}

func (r *PromocionRepository) guardar(ctx context.Context, proceso, usuario string, p entity.Promocion) (*entity.Promocion, error) {
	p.RegUser = usuario
	var out []entity.Promocion
	err := r.c.ejecutar(ctx, llamada{
		ruta:    r.ruta,
		proceso: proceso,
		usuario: usuario,
		params:  url.Values{"IdPromoOK": {p.IdPromoOK}},
		cuerpo:  p,
	}, &out)
	if err != nil {
		return nil, err
	}
	if len(out) > 0 && out[0].IdPromoOK != "" {
		return &out[0], nil
	}
	return &p, nil
}
