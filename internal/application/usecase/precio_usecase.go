package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Precios-admin/internal/application/dto"
	"github.com/jhoicas/Precios-admin/internal/domain"
	"github.com/jhoicas/Precios-admin/internal/domain/entity"
	"github.com/jhoicas/Precios-admin/internal/domain/pricing"
	"github.com/jhoicas/Precios-admin/internal/domain/repository"
	"github.com/jhoicas/Precios-admin/pkg/logger"
)

// PrecioUseCase vista previa de fórmulas y guardado de precios por presentación.
type PrecioUseCase struct {
	repo        repository.PrecioRepository
	conciliador *pricing.Conciliador
	log         *logger.Logger
}

// NewPrecioUseCase construye el caso de uso.
func NewPrecioUseCase(repo repository.PrecioRepository, log *logger.Logger) *PrecioUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PrecioUseCase{repo: repo, conciliador: pricing.NuevoConciliador(), log: log.With("precios")}
}

// WithConciliador reemplaza el conciliador (generador de ids y reloj).
func (uc *PrecioUseCase) WithConciliador(c *pricing.Conciliador) *PrecioUseCase {
	uc.conciliador = c
	return uc
}

// PreviewFormula evalúa la fórmula sobre el costo. Una fórmula inválida devuelve precio 0
// y el motivo en Error.
func (uc *PrecioUseCase) PreviewFormula(in dto.PreviewFormulaRequest) dto.PreviewFormulaResponse {
	out := dto.PreviewFormulaResponse{
		Expresion: pricing.SustituirCosto(in.CostoIni, in.Formula),
		Valida:    true,
	}
	if strings.TrimSpace(in.Formula) != "" {
		if err := pricing.ValidarFormula(in.Formula); err != nil {
			out.Valida = false
			out.Error = err.Error()
		}
	}
	out.Precio, out.CostoFin = pricing.CalcularPrecio(in.CostoIni, in.Formula, decimal.Zero)
	return out
}

// Guardar concilia el precio capturado con los existentes de la presentación y ejecuta
// AddOne o UpdateOne según corresponda.
func (uc *PrecioUseCase) Guardar(ctx context.Context, usuario string, in dto.GuardarPrecioRequest) (*dto.GuardarPrecioResponse, error) {
	if strings.TrimSpace(in.IdPresentaOK) == "" || strings.TrimSpace(in.IdListaOK) == "" {
		return nil, fmt.Errorf("IdPresentaOK e IdListaOK son obligatorios: %w", domain.ErrInvalidInput)
	}

	existentes, err := uc.repo.ListByPresentacion(ctx, in.IdPresentaOK)
	if err != nil {
		return nil, fmt.Errorf("consultar precios de %s: %w", in.IdPresentaOK, err)
	}

	res, err := uc.conciliador.Conciliar(existentes, pricing.EntradaConciliacion{
		IdPresentaOK: in.IdPresentaOK,
		SKUID:        in.SKUID,
		IdListaOK:    in.IdListaOK,
		CostoIni:     in.CostoIni,
		Formula:      in.Formula,
		RegUser:      usuario,
	})
	if err != nil {
		return nil, err
	}

	var guardado *entity.PrecioItem
	switch res.Modo {
	case pricing.ModoActualizar:
		guardado, err = uc.repo.Update(ctx, usuario, res.Payload)
	default:
		guardado, err = uc.repo.Create(ctx, usuario, res.Payload)
	}
	if err != nil {
		uc.log.Error().Err(err).
			Str("modo", string(res.Modo)).
			Str("id_presenta", in.IdPresentaOK).
			Str("id_lista", in.IdListaOK).
			Msg("no se pudo guardar el precio")
		return nil, err
	}

	uc.log.Info().
		Str("modo", string(res.Modo)).
		Str("id_precio", guardado.IdPrecioOK).
		Str("precio", guardado.Precio.StringFixed(2)).
		Msg("precio guardado")
	return &dto.GuardarPrecioResponse{Modo: string(res.Modo), Precio: *guardado}, nil
}

// ListarPorPresentacion precios de una presentación en todas las listas.
func (uc *PrecioUseCase) ListarPorPresentacion(ctx context.Context, idPresentaOK string) (*dto.PrecioListResponse, error) {
	items, err := uc.repo.ListByPresentacion(ctx, idPresentaOK)
	if err != nil {
		return nil, err
	}
	return &dto.PrecioListResponse{Items: items}, nil
}

// ListarPorLista precios de una lista.
func (uc *PrecioUseCase) ListarPorLista(ctx context.Context, idListaOK string) (*dto.PrecioListResponse, error) {
	items, err := uc.repo.ListByLista(ctx, idListaOK)
	if err != nil {
		return nil, err
	}
	return &dto.PrecioListResponse{Items: items}, nil
}

// Eliminar borra físicamente el precio.
func (uc *PrecioUseCase) Eliminar(ctx context.Context, usuario, idPrecioOK string) error {
	if err := uc.repo.Delete(ctx, usuario, idPrecioOK); err != nil {
		return err
	}
	uc.log.Info().Str("id_precio", idPrecioOK).Str("usuario", usuario).Msg("precio eliminado")
	return nil
}
