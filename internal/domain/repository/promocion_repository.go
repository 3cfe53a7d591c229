package repository

import (
	"context"

	"github.com/jhoicas/Precios-admin/internal/domain/entity"
)

// PromocionRepository puerto hacia las promociones.
type PromocionRepository interface {
	List(ctx context.Context) ([]entity.Promocion, error)
	GetByID(ctx context.Context, idPromoOK string) (*entity.Promocion, error)
	Create(ctx context.Context, usuario string, p entity.Promocion) (*entity.Promocion, error)
	Update(ctx context.Context, usuario string, p entity.Promocion) (*entity.Promocion, error)
	Activate(ctx context.Context, usuario, idPromoOK string) error
	Deactivate(ctx context.Context, usuario, idPromoOK string) error
	DeleteHard(ctx context.Context, usuario, idPromoOK string) error
}
