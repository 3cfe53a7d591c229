package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Precios-admin/internal/application/dto"
	"github.com/jhoicas/Precios-admin/internal/domain/entity"
	"github.com/jhoicas/Precios-admin/internal/infrastructure/pdf"
)

func TestGenerarHojaPrecios_ProducePDF(t *testing.T) {
	hoja := &dto.HojaPrecios{
		Lista: entity.ListaPrecios{
			IdListaOK:      "L-1",
			DesLista:       "Mayoreo",
			Activo:         true,
			FechaExpiraIni: entity.NuevaFecha(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		},
		TipoFormula: "Margen sobre costo",
		Lineas: []dto.LineaHoja{
			{SKUID: "SKU-1", NombreProducto: "Café", NombrePresentacion: "Caja 500g", CostoIni: decimal.NewFromInt(100), Formula: "COSTO*1.3", Precio: decimal.NewFromInt(130)},
			{SKUID: "SKU-2", NombreProducto: "Té", NombrePresentacion: "Bolsa", CostoIni: decimal.NewFromInt(50), Precio: decimal.NewFromInt(70)},
		},
		GeneradaEn:  time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
		GeneradaPor: "ana",
	}

	out, err := pdf.NewMarotoPDFGenerator().GenerarHojaPrecios(context.Background(), hoja)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
}

func TestGenerarHojaPrecios_ListaSinPrecios(t *testing.T) {
	out, err := pdf.NewMarotoPDFGenerator().GenerarHojaPrecios(context.Background(), &dto.HojaPrecios{
		Lista: entity.ListaPrecios{IdListaOK: "L-VACIA"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerarHojaPrecios_Nil(t *testing.T) {
	_, err := pdf.NewMarotoPDFGenerator().GenerarHojaPrecios(context.Background(), nil)
	assert.Error(t, err)
}
