package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Precios-admin/internal/application/dto"
	"github.com/jhoicas/Precios-admin/internal/application/usecase"
	"github.com/jhoicas/Precios-admin/internal/domain"
	"github.com/jhoicas/Precios-admin/internal/domain/entity"
	"github.com/jhoicas/Precios-admin/internal/domain/pricing"
)

func conciliadorFijo() *pricing.Conciliador {
	return &pricing.Conciliador{
		NuevoID: func(idPresentaOK, _ string) string { return idPresentaOK + "-NUEVO" },
		Ahora:   func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) },
	}
}

func TestPreviewFormula_Valida(t *testing.T) {
	uc := usecase.NewPrecioUseCase(&fakePrecios{}, nil)

	out := uc.PreviewFormula(dto.PreviewFormulaRequest{CostoIni: decimal.NewFromInt(100), Formula: "costo * 1.16"})

	assert.True(t, out.Valida)
	assert.Empty(t, out.Error)
	assert.Equal(t, "100 * 1.16", out.Expresion)
	assert.True(t, decimal.NewFromInt(116).Equal(out.Precio))
	assert.True(t, out.Precio.Equal(out.CostoFin))
}

func TestPreviewFormula_InvalidaExplicaMotivo(t *testing.T) {
	uc := usecase.NewPrecioUseCase(&fakePrecios{}, nil)

	out := uc.PreviewFormula(dto.PreviewFormulaRequest{CostoIni: decimal.NewFromInt(100), Formula: "COSTO * x"})

	assert.False(t, out.Valida)
	assert.NotEmpty(t, out.Error)
	assert.True(t, out.Precio.IsZero())
}

func TestGuardar_CreaCuandoNoHayPrecioEnLaLista(t *testing.T) {
	repo := &fakePrecios{items: []entity.PrecioItem{
		{IdPrecioOK: "PR-OTRA", IdListaOK: "L-OTRA", IdPresentaOK: "P1"},
	}}
	uc := usecase.NewPrecioUseCase(repo, nil).WithConciliador(conciliadorFijo())

	out, err := uc.Guardar(context.Background(), "ana", dto.GuardarPrecioRequest{
		IdPresentaOK: "P1", SKUID: "SKU-1", IdListaOK: "L-1",
		CostoIni: decimal.NewFromInt(100), Formula: "COSTO*1.2",
	})
	require.NoError(t, err)

	assert.Equal(t, string(pricing.ModoCrear), out.Modo)
	assert.Equal(t, "P1-NUEVO", out.Precio.IdPrecioOK)
	assert.Equal(t, "ana", out.Precio.RegUser)
	require.Len(t, repo.creados, 1)
	assert.Empty(t, repo.updates)
	assert.True(t, decimal.NewFromInt(120).Equal(repo.creados[0].Precio))
}

func TestGuardar_ActualizaElPrecioExistente(t *testing.T) {
	repo := &fakePrecios{items: []entity.PrecioItem{
		{IdPrecioOK: "PR-1", IdListaOK: "L-1", IdPresentaOK: "P1", SKUID: "SKU-1"},
	}}
	uc := usecase.NewPrecioUseCase(repo, nil).WithConciliador(conciliadorFijo())

	out, err := uc.Guardar(context.Background(), "ana", dto.GuardarPrecioRequest{
		IdPresentaOK: "P1", IdListaOK: "L-1",
		CostoIni: decimal.NewFromInt(50), Formula: "COSTO+10",
	})
	require.NoError(t, err)

	assert.Equal(t, string(pricing.ModoActualizar), out.Modo)
	assert.Equal(t, "PR-1", out.Precio.IdPrecioOK)
	assert.Equal(t, "SKU-1", out.Precio.SKUID)
	assert.Empty(t, repo.creados)
	require.Len(t, repo.updates, 1)
}

func TestGuardar_ValidacionNoEscribe(t *testing.T) {
	repo := &fakePrecios{}
	uc := usecase.NewPrecioUseCase(repo, nil)

	_, err := uc.Guardar(context.Background(), "ana", dto.GuardarPrecioRequest{IdPresentaOK: "P1", IdListaOK: "L-1"})

	var ev *pricing.ErrorValidacion
	require.True(t, errors.As(err, &ev))
	assert.Equal(t, pricing.CostoFaltante, ev.Campos["CostoIni"])
	assert.Equal(t, pricing.FormulaFaltante, ev.Campos["Formula"])
	assert.Equal(t, pricing.PrecioNoPositivo, ev.Campos["Precio"])
	assert.Empty(t, repo.creados)
	assert.Empty(t, repo.updates)
}

func TestGuardar_SinIdentificadores(t *testing.T) {
	uc := usecase.NewPrecioUseCase(&fakePrecios{}, nil)
	_, err := uc.Guardar(context.Background(), "ana", dto.GuardarPrecioRequest{IdPresentaOK: "P1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGuardar_PropagaErrorDelBackend(t *testing.T) {
	uc := usecase.NewPrecioUseCase(&fakePrecios{errGuard: errBackendCaido}, nil)
	_, err := uc.Guardar(context.Background(), "ana", dto.GuardarPrecioRequest{
		IdPresentaOK: "P1", IdListaOK: "L-1", CostoIni: decimal.NewFromInt(1), Formula: "COSTO",
	})
	assert.ErrorIs(t, err, errBackendCaido)
}

func TestEliminar_DelegaAlRepositorio(t *testing.T) {
	repo := &fakePrecios{}
	uc := usecase.NewPrecioUseCase(repo, nil)
	require.NoError(t, uc.Eliminar(context.Background(), "ana", "PR-1"))
	assert.Equal(t, []string{"PR-1"}, repo.borrados)
}
