package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Precios-admin/internal/application/dto"
	"github.com/jhoicas/Precios-admin/internal/application/usecase"
	"github.com/jhoicas/Precios-admin/internal/domain"
	"github.com/jhoicas/Precios-admin/internal/domain/entity"
)

type fakeGenerador struct {
	recibida *dto.HojaPrecios
}

func (f *fakeGenerador) GenerarHojaPrecios(_ context.Context, hoja *dto.HojaPrecios) ([]byte, error) {
	f.recibida = hoja
	return []byte("%PDF-fake"), nil
}

func TestGenerarHoja_OrdenaYResuelveNombres(t *testing.T) {
	listas := nuevasListas(entity.ListaPrecios{IdListaOK: "L-1", DesLista: "Mayoreo", IdTipoFormulaOK: "MARGEN"})
	precios := &fakePrecios{items: []entity.PrecioItem{
		{IdPrecioOK: "A", IdListaOK: "L-1", IdPresentaOK: "P3", SKUID: "SKU-2", Precio: decimal.NewFromInt(30)},
		{IdPrecioOK: "B", IdListaOK: "L-1", IdPresentaOK: "P1", SKUID: "SKU-1", Precio: decimal.NewFromInt(10)},
		{IdPrecioOK: "C", IdListaOK: "L-1", IdPresentaOK: "P2", SKUID: "SKU-1", Precio: decimal.NewFromInt(20)},
		{IdPrecioOK: "D", IdListaOK: "L-1", IdPresentaOK: "PX", SKUID: "SKU-X", Precio: decimal.NewFromInt(5)},
		{IdPrecioOK: "E", IdListaOK: "L-OTRA", IdPresentaOK: "P1", SKUID: "SKU-1", Precio: decimal.NewFromInt(99)},
	}}
	gen := &fakeGenerador{}
	tipos := fakeTipos{"MARGEN": {ID: "MARGEN", Nombre: "Margen sobre costo"}}
	uc := usecase.NewHojaPreciosUseCase(listas, precios, catalogoBase(), tipos, gen)

	pdf, nombre, err := uc.Generar(context.Background(), "ana", "L-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Equal(t, "hoja-precios-L-1.pdf", nombre)

	h := gen.recibida
	require.NotNil(t, h)
	assert.Equal(t, "Margen sobre costo", h.TipoFormula)
	assert.Equal(t, "ana", h.GeneradaPor)
	require.Len(t, h.Lineas, 4)

	nombres := []string{}
	for _, l := range h.Lineas {
		nombres = append(nombres, l.NombreProducto+"/"+l.NombrePresentacion)
	}
	assert.Equal(t, []string{
		"Café molido/Bolsa 1kg",
		"Café molido/Caja 500g",
		"SKU-X/PX",
		"Té verde/Caja 20 sobres",
	}, nombres)
}

func TestGenerarHoja_ListaInexistente(t *testing.T) {
	uc := usecase.NewHojaPreciosUseCase(nuevasListas(), &fakePrecios{}, catalogoBase(), nil, &fakeGenerador{})
	_, _, err := uc.Generar(context.Background(), "ana", "NO")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
