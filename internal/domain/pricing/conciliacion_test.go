package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Precios-admin/internal/domain/entity"
	"github.com/jhoicas/Precios-admin/internal/domain/pricing"
)

var relojFijo = func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) }

func conciliadorDePrueba() *pricing.Conciliador {
	return &pricing.Conciliador{
		NuevoID: func(idPresentaOK, idListaOK string) string { return "NUEVO-" + idPresentaOK + "-" + idListaOK },
		Ahora:   relojFijo,
	}
}

func entradaValida() pricing.EntradaConciliacion {
	return pricing.EntradaConciliacion{
		IdPresentaOK: "P1",
		SKUID:        "SKU-1",
		IdListaOK:    "L1",
		CostoIni:     dec("100"),
		Formula:      "COSTO*1.35",
		RegUser:      "ADMIN",
	}
}

func TestConciliar_SinPreciosExistentesCrea(t *testing.T) {
	res, err := conciliadorDePrueba().Conciliar(nil, entradaValida())
	require.NoError(t, err)

	assert.Equal(t, pricing.ModoCrear, res.Modo)
	assert.Equal(t, "NUEVO-P1-L1", res.Payload.IdPrecioOK)
	assertDec(t, "135", res.Payload.Precio)
	assertDec(t, "135", res.Payload.CostoFin)
	assert.Equal(t, "ADMIN", res.Payload.RegUser)
	assert.Equal(t, relojFijo(), res.Payload.RegDate.Time)
}

func TestConciliar_PrecioExistenteActualizaConservandoID(t *testing.T) {
	existentes := []entity.PrecioItem{
		{IdPrecioOK: "PR-OTRA", IdListaOK: "L2", IdPresentaOK: "P1"},
		{IdPrecioOK: "PR-77", IdListaOK: "L1", IdPresentaOK: "P1", SKUID: "SKU-1", Precio: dec("1")},
	}
	res, err := conciliadorDePrueba().Conciliar(existentes, entradaValida())
	require.NoError(t, err)

	assert.Equal(t, pricing.ModoActualizar, res.Modo)
	assert.Equal(t, "PR-77", res.Payload.IdPrecioOK)
	assertDec(t, "135", res.Payload.Precio, "el precio se recalcula con la fórmula")
}

func TestConciliar_OtraListaNoCuenta(t *testing.T) {
	existentes := []entity.PrecioItem{{IdPrecioOK: "PR-OTRA", IdListaOK: "L2"}}
	res, err := conciliadorDePrueba().Conciliar(existentes, entradaValida())
	require.NoError(t, err)
	assert.Equal(t, pricing.ModoCrear, res.Modo)
}

// ── Validaciones ──────────────────────────────────────────────────────────────

func TestConciliar_CostoCero(t *testing.T) {
	in := entradaValida()
	in.CostoIni = dec("0")
	_, err := conciliadorDePrueba().Conciliar(nil, in)

	var verr *pricing.ErrorValidacion
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, pricing.CostoFaltante, verr.Campos["CostoIni"])
}

func TestConciliar_FormulaVacia(t *testing.T) {
	in := entradaValida()
	in.Formula = ""
	_, err := conciliadorDePrueba().Conciliar(nil, in)

	var verr *pricing.ErrorValidacion
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, pricing.FormulaFaltante, verr.Campos["Formula"])
	assert.NotContains(t, verr.Campos, "CostoIni")
}

func TestConciliar_PrecioNoPositivo(t *testing.T) {
	for _, f := range []string{"COSTO - COSTO", "COSTO - 500", "COSTO + + "} {
		in := entradaValida()
		in.Formula = f
		_, err := conciliadorDePrueba().Conciliar(nil, in)

		var verr *pricing.ErrorValidacion
		require.ErrorAs(t, err, &verr, f)
		assert.True(t, verr.Tiene(pricing.PrecioNoPositivo), f)
		assert.Len(t, verr.Campos, 1, f)
	}
}

func TestConciliar_ValidacionesIndependientes(t *testing.T) {
	in := entradaValida()
	in.CostoIni = dec("-1")
	in.Formula = " "
	_, err := conciliadorDePrueba().Conciliar(nil, in)

	var verr *pricing.ErrorValidacion
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Campos, 3)
	assert.Contains(t, verr.Error(), "CostoIni=CostoFaltante")
}

func TestIDPorTiempo_NoRepiteEnRafaga(t *testing.T) {
	vistos := map[string]bool{}
	for i := 0; i < 200; i++ {
		id := pricing.IDPorTiempo("P1", "L1")
		assert.False(t, vistos[id], "id repetido: %s", id)
		vistos[id] = true
	}
}

func TestConciliarPrecio_Funcional(t *testing.T) {
	res, err := pricing.ConciliarPrecio(nil, entradaValida())
	require.NoError(t, err)
	assert.Equal(t, pricing.ModoCrear, res.Modo)
	assert.Contains(t, res.Payload.IdPrecioOK, "P1-")
}
