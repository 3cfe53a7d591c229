package usecase

import (
	"context"

	"github.com/jhoicas/Precios-admin/internal/application/dto"
	"github.com/jhoicas/Precios-admin/internal/domain/entity"
	"github.com/jhoicas/Precios-admin/internal/domain/repository"
	"github.com/jhoicas/Precios-admin/internal/domain/selection"
	"github.com/jhoicas/Precios-admin/pkg/logger"
)

// SeleccionUseCase sesiones de selección de presentaciones para listas y promociones.
type SeleccionUseCase struct {
	catalogo *CatalogoUseCase
	listas   repository.ListaRepository
	promos   repository.PromocionRepository
	store    *SesionStore
	log      *logger.Logger
}

// NewSeleccionUseCase construye el caso de uso.
func NewSeleccionUseCase(
	catalogo *CatalogoUseCase,
	listas repository.ListaRepository,
	promos repository.PromocionRepository,
	store *SesionStore,
	log *logger.Logger,
) *SeleccionUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SeleccionUseCase{catalogo: catalogo, listas: listas, promos: promos, store: store, log: log.With("seleccion")}
}

// Crear abre una sesión sobre el catálogo actual. Si se indica una promoción, sus productos
// aplicables quedan bloqueados; si se indica una lista, todas las presentaciones de sus SKUSIDS.
func (uc *SeleccionUseCase) Crear(ctx context.Context, in dto.CrearSesionRequest) (*dto.SesionResponse, error) {
	catalogo, err := uc.catalogo.ProductosConPresentaciones(ctx)
	if err != nil {
		return nil, err
	}

	var bloqueo selection.Bloqueo
	previos := map[string]entity.ProductoAplicable{}
	if in.IdPromoOK != "" {
		promo, err := uc.promos.GetByID(ctx, in.IdPromoOK)
		if err != nil {
			return nil, err
		}
		for _, ap := range promo.ProductosAplicables {
			bloqueo.Presentaciones = append(bloqueo.Presentaciones, ap.IdPresentaOK)
			previos[ap.IdPresentaOK] = ap
		}
	}
	if in.IdListaOK != "" {
		lista, err := uc.listas.GetByID(ctx, in.IdListaOK)
		if err != nil {
			return nil, err
		}
		bloqueo.SKUs = append(bloqueo.SKUs, lista.SKUSIDS...)
	}

	ses := uc.store.Crear(selection.Nueva(catalogo, bloqueo), previos)
	uc.log.Debug().
		Str("sesion", ses.ID).
		Int("bloqueadas", len(bloqueo.Presentaciones)).
		Int("skus_bloqueados", len(bloqueo.SKUs)).
		Msg("sesión de selección creada")
	return respuestaSesion(ses, 0), nil
}

// Obtener estado actual.
func (uc *SeleccionUseCase) Obtener(id string) (*dto.SesionResponse, error) {
	return uc.operar(id, func(*selection.Seleccion) (int, error) { return 0, nil })
}

// Cerrar descarta la sesión.
func (uc *SeleccionUseCase) Cerrar(id string) {
	uc.store.Eliminar(id)
}

func (uc *SeleccionUseCase) AlternarProducto(id, sku string) (*dto.SesionResponse, error) {
	return uc.operar(id, func(s *selection.Seleccion) (int, error) { return 0, s.AlternarProducto(sku) })
}

func (uc *SeleccionUseCase) AlternarPresentacion(id, idPresenta, sku string) (*dto.SesionResponse, error) {
	return uc.operar(id, func(s *selection.Seleccion) (int, error) {
		if sku == "" {
			if _, prod, ok := s.Presentacion(idPresenta); ok {
				sku = prod.SKUID
			}
		}
		return 0, s.AlternarPresentacion(idPresenta, sku)
	})
}

func (uc *SeleccionUseCase) Confirmar(id string) (*dto.SesionResponse, error) {
	return uc.operar(id, func(s *selection.Seleccion) (int, error) { return s.ConfirmarTransitorias() })
}

func (uc *SeleccionUseCase) IniciarGestion(id string) (*dto.SesionResponse, error) {
	return uc.operar(id, func(s *selection.Seleccion) (int, error) { s.IniciarGestion(); return 0, nil })
}

func (uc *SeleccionUseCase) CancelarGestion(id string) (*dto.SesionResponse, error) {
	return uc.operar(id, func(s *selection.Seleccion) (int, error) { s.CancelarGestion(); return 0, nil })
}

func (uc *SeleccionUseCase) MarcarParaQuitar(id, idPresenta string) (*dto.SesionResponse, error) {
	return uc.operar(id, func(s *selection.Seleccion) (int, error) { return 0, s.MarcarParaQuitar(idPresenta) })
}

func (uc *SeleccionUseCase) DesmarcarParaQuitar(id, idPresenta string) (*dto.SesionResponse, error) {
	return uc.operar(id, func(s *selection.Seleccion) (int, error) { return 0, s.DesmarcarParaQuitar(idPresenta) })
}

func (uc *SeleccionUseCase) MarcarProductoParaQuitar(id, sku string) (*dto.SesionResponse, error) {
	return uc.operar(id, func(s *selection.Seleccion) (int, error) { return 0, s.MarcarProductoParaQuitar(sku) })
}

func (uc *SeleccionUseCase) AplicarQuitas(id string) (*dto.SesionResponse, error) {
	return uc.operar(id, func(s *selection.Seleccion) (int, error) { return s.AplicarQuitas(), nil })
}

// operar ejecuta op sobre la selección bloqueada. Un conflicto se devuelve como error y la
// selección queda como estaba.
func (uc *SeleccionUseCase) operar(id string, op func(*selection.Seleccion) (int, error)) (*dto.SesionResponse, error) {
	var out *dto.SesionResponse
	err := uc.store.Con(id, func(ses *Sesion) error {
		n, err := op(ses.Sel)
		if err != nil {
			return err
		}
		out = respuestaSesion(ses, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func respuestaSesion(ses *Sesion, afectadas int) *dto.SesionResponse {
	return &dto.SesionResponse{
		ID:        ses.ID,
		VenceEn:   ses.VenceEn,
		Afectadas: afectadas,
		Estado:    ses.Sel.Instantanea(),
		Finales:   ses.Sel.PresentacionesFinales(),
		SKUsFinal: ses.Sel.SKUsFinales(),
	}
}
