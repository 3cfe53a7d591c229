package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Precios-admin/internal/application/dto"
	"github.com/jhoicas/Precios-admin/internal/domain/entity"
	"github.com/jhoicas/Precios-admin/internal/domain/pricing"
	"github.com/jhoicas/Precios-admin/internal/domain/repository"
	"github.com/jhoicas/Precios-admin/pkg/logger"
)

var cienPorciento = decimal.NewFromInt(100)

// PromocionUseCase armado y mantenimiento de promociones.
type PromocionUseCase struct {
	repo     repository.PromocionRepository
	precios  repository.PrecioRepository
	sesiones *SesionStore
	log      *logger.Logger
}

// NewPromocionUseCase construye el caso de uso.
func NewPromocionUseCase(repo repository.PromocionRepository, precios repository.PrecioRepository, sesiones *SesionStore, log *logger.Logger) *PromocionUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PromocionUseCase{repo: repo, precios: precios, sesiones: sesiones, log: log.With("promociones")}
}

// Listar promociones no eliminadas.
func (uc *PromocionUseCase) Listar(ctx context.Context) (*dto.PromocionListResponse, error) {
	promos, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Promocion, 0, len(promos))
	for _, p := range promos {
		if !p.Eliminado {
			out = append(out, p)
		}
	}
	return &dto.PromocionListResponse{Items: out}, nil
}

// Obtener promoción por id.
func (uc *PromocionUseCase) Obtener(ctx context.Context, id string) (*entity.Promocion, error) {
	return uc.repo.GetByID(ctx, id)
}

// Crear valida el formulario y da de alta la promoción.
func (uc *PromocionUseCase) Crear(ctx context.Context, usuario string, in dto.PromocionRequest) (*entity.Promocion, error) {
	if err := validarPromocion(in); err != nil {
		return nil, err
	}
	p := aplicarPromocion(entity.Promocion{IdPromoOK: "PROMO-" + uuid.NewString()}, in)
	p.Activo = in.Activo == nil || *in.Activo

	creada, err := uc.repo.Create(ctx, usuario, p)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("id_promo", creada.IdPromoOK).Int("productos", len(creada.ProductosAplicables)).Msg("promoción creada")
	return creada, nil
}

// Actualizar aplica la misma política de ACTIVED que las listas.
func (uc *PromocionUseCase) Actualizar(ctx context.Context, usuario, id string, in dto.PromocionRequest) (*dto.PromocionEdicionResponse, error) {
	if err := validarPromocion(in); err != nil {
		return nil, err
	}
	actual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	nueva := aplicarPromocion(*actual, in)
	pedido := actual.Activo
	if in.Activo != nil {
		pedido = *in.Activo
	}
	plan := planificar(mismaPromocion(*actual, nueva), actual.Activo, pedido)

	nueva.Activo = actual.Activo
	e := edicion[entity.Promocion]{
		log: uc.log, entidad: "promoción", campoID: "id_promo", id: id,
		actualizar:  func() (*entity.Promocion, error) { return uc.repo.Update(ctx, usuario, nueva) },
		activar:     func() error { return uc.repo.Activate(ctx, usuario, id) },
		desactivar:  func() error { return uc.repo.Deactivate(ctx, usuario, id) },
		fijarActivo: func(p *entity.Promocion, activo bool) { p.Activo = activo },
	}
	item, acciones, err := e.ejecutar(plan, *actual)
	if err != nil {
		return nil, err
	}
	return &dto.PromocionEdicionResponse{Item: item, Acciones: acciones}, nil
}

// Activar ActivateOne.
func (uc *PromocionUseCase) Activar(ctx context.Context, usuario, id string) error {
	return uc.repo.Activate(ctx, usuario, id)
}

// Eliminar borrado lógico o físico.
func (uc *PromocionUseCase) Eliminar(ctx context.Context, usuario, id string, fisico bool) error {
	if fisico {
		return uc.repo.DeleteHard(ctx, usuario, id)
	}
	return uc.repo.Deactivate(ctx, usuario, id)
}

// ConstruirProductosAplicables arma la foto desnormalizada de las presentaciones finales de
// la sesión. Las que venían de la promoción de origen conservan su foto; el resto toma el
// precio de idListaOK (o el primero disponible si idListaOK está vacío).
func (uc *PromocionUseCase) ConstruirProductosAplicables(ctx context.Context, sesionID, idListaOK string) (*dto.ProductosAplicablesResponse, error) {
	type pendiente struct {
		ap     entity.ProductoAplicable
		previo bool
	}
	var pendientes []pendiente
	err := uc.sesiones.Con(sesionID, func(s *Sesion) error {
		for _, id := range s.Sel.PresentacionesFinales() {
			if ap, ok := s.Previos[id]; ok {
				pendientes = append(pendientes, pendiente{ap: ap, previo: true})
				continue
			}
			pr, prod, ok := s.Sel.Presentacion(id)
			if !ok {
				continue
			}
			pendientes = append(pendientes, pendiente{ap: entity.ProductoAplicable{
				IdPresentaOK:       id,
				SKUID:              prod.SKUID,
				NombreProducto:     prod.Nombre,
				NombrePresentacion: pr.Nombre,
			}})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]entity.ProductoAplicable, 0, len(pendientes))
	for _, p := range pendientes {
		if !p.previo {
			precios, err := uc.precios.ListByPresentacion(ctx, p.ap.IdPresentaOK)
			if err != nil {
				return nil, fmt.Errorf("precio de %s: %w", p.ap.IdPresentaOK, err)
			}
			p.ap.PrecioOriginal = elegirPrecio(precios, idListaOK)
		}
		out = append(out, p.ap)
	}
	return &dto.ProductosAplicablesResponse{Items: out}, nil
}

// PreviewDescuentos precio con descuento de cada producto aplicable.
func (uc *PromocionUseCase) PreviewDescuentos(in dto.PreviewDescuentosRequest) *dto.PreviewDescuentosResponse {
	out := make([]dto.PreviewDescuentoItem, 0, len(in.ProductosAplicables))
	for _, ap := range in.ProductosAplicables {
		out = append(out, dto.PreviewDescuentoItem{
			ProductoAplicable:  ap,
			PrecioConDescuento: pricing.CalcularPrecioConDescuento(ap.PrecioOriginal, in.TipoDescuento, in.DescuentoPorcentaje, in.DescuentoMonto).Round(2),
			Ahorro:             pricing.AhorroPromocion(ap.PrecioOriginal, in.TipoDescuento, in.DescuentoPorcentaje, in.DescuentoMonto).Round(2),
		})
	}
	return &dto.PreviewDescuentosResponse{Items: out}
}

func elegirPrecio(precios []entity.PrecioItem, idListaOK string) decimal.NullDecimal {
	for _, p := range precios {
		if idListaOK == "" || p.IdListaOK == idListaOK {
			return decimal.NewNullDecimal(p.Precio)
		}
	}
	return decimal.NullDecimal{}
}

func validarPromocion(in dto.PromocionRequest) error {
	f := formulario{}
	if strings.TrimSpace(in.Titulo) == "" {
		f["Titulo"] = CampoRequerido
	}
	if in.FechaFin.Antes(in.FechaIni) {
		f["FechaFin"] = RangoFechasInvalido
	}
	switch in.TipoDescuento {
	case entity.DescuentoPorcentaje:
		if !in.DescuentoPorcentaje.IsPositive() || in.DescuentoPorcentaje.GreaterThan(cienPorciento) {
			f["DescuentoPorcentaje"] = FueraDeRango
		}
	case entity.DescuentoMontoFijo:
		if !in.DescuentoMonto.IsPositive() {
			f["DescuentoMonto"] = FueraDeRango
		}
	default:
		f["TipoDescuento"] = TipoDesconocido
	}
	if len(in.ProductosAplicables) == 0 {
		f["ProductosAplicables"] = SinProductos
	}
	if in.LimiteUsos != nil && *in.LimiteUsos <= 0 {
		f["LimiteUsos"] = FueraDeRango
	}
	return f.err()
}

// aplicarPromocion copia el formulario sobre base y deja en cero el descuento del tipo no elegido.
func aplicarPromocion(base entity.Promocion, in dto.PromocionRequest) entity.Promocion {
	base.Titulo = strings.TrimSpace(in.Titulo)
	base.Descripcion = in.Descripcion
	base.FechaIni = in.FechaIni
	base.FechaFin = in.FechaFin
	base.ProductosAplicables = in.ProductosAplicables
	base.TipoDescuento = in.TipoDescuento
	base.DescuentoPorcentaje = decimal.Zero
	base.DescuentoMonto = decimal.Zero
	if in.TipoDescuento == entity.DescuentoPorcentaje {
		base.DescuentoPorcentaje = in.DescuentoPorcentaje
	} else {
		base.DescuentoMonto = in.DescuentoMonto
	}
	base.PermiteAcumulacion = in.PermiteAcumulacion
	base.LimiteUsos = in.LimiteUsos
	return base
}

func mismaPromocion(a, b entity.Promocion) bool {
	if a.Titulo != b.Titulo || a.Descripcion != b.Descripcion ||
		!a.FechaIni.Equal(b.FechaIni.Time) || !a.FechaFin.Equal(b.FechaFin.Time) ||
		a.TipoDescuento != b.TipoDescuento ||
		!a.DescuentoPorcentaje.Equal(b.DescuentoPorcentaje) || !a.DescuentoMonto.Equal(b.DescuentoMonto) ||
		a.PermiteAcumulacion != b.PermiteAcumulacion {
		return false
	}
	if (a.LimiteUsos == nil) != (b.LimiteUsos == nil) || (a.LimiteUsos != nil && *a.LimiteUsos != *b.LimiteUsos) {
		return false
	}
	if len(a.ProductosAplicables) != len(b.ProductosAplicables) {
		return false
	}
	for i := range a.ProductosAplicables {
		x, y := a.ProductosAplicables[i], b.ProductosAplicables[i]
		if x.IdPresentaOK != y.IdPresentaOK || x.PrecioOriginal.Valid != y.PrecioOriginal.Valid ||
			!x.PrecioOriginal.Decimal.Equal(y.PrecioOriginal.Decimal) {
			return false
		}
	}
	return true
}
