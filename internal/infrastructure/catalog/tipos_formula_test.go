package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Precios-admin/internal/domain/entity"
	"github.com/jhoicas/Precios-admin/internal/infrastructure/catalog"
)

func escribir(t *testing.T, contenido string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tipos_formula.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contenido), 0o600))
	return path
}

func TestCargar_ArchivoValido(t *testing.T) {
	path := escribir(t, `
tipos_formula:
  - id: MARGEN_20
    nombre: Margen 20%
    formula_base: COSTO * 1.20
  - id: MANUAL
    nombre: Precio manual
`)
	c, err := catalog.Cargar(path)
	require.NoError(t, err)

	assert.True(t, c.Existe("MARGEN_20"))
	assert.False(t, c.Existe("OTRO"))

	tipos := c.Listar()
	require.Len(t, tipos, 2)
	assert.Equal(t, "MANUAL", tipos[0].ID)
	assert.Equal(t, "COSTO * 1.20", tipos[1].FormulaBase)
}

func TestCargar_FormulaBaseInvalida(t *testing.T) {
	path := escribir(t, `
tipos_formula:
  - id: ROTA
    nombre: Rota
    formula_base: COSTO * iva
`)
	_, err := catalog.Cargar(path)
	assert.Error(t, err)
}

func TestNuevo_IDRepetido(t *testing.T) {
	_, err := catalog.Nuevo([]entity.TipoFormula{{ID: "A"}, {ID: " A "}})
	assert.Error(t, err)
}

func TestCargar_ArchivoInexistente(t *testing.T) {
	_, err := catalog.Cargar(filepath.Join(t.TempDir(), "no-existe.yaml"))
	assert.Error(t, err)
}

func TestCatalogoNil_AceptaTodo(t *testing.T) {
	var c *catalog.TiposFormula
	assert.True(t, c.Existe("CUALQUIERA"))
	assert.Empty(t, c.Listar())
}
