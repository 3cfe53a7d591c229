// Package catalog carga el catálogo de tipos de fórmula (IDTIPOFORMULAOK) desde YAML.
package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/Precios-admin/internal/domain/entity"
	"github.com/jhoicas/Precios-admin/internal/domain/pricing"
	"github.com/jhoicas/Precios-admin/internal/domain/repository"
)

var _ repository.TipoFormulaRepository = (*TiposFormula)(nil)

type archivo struct {
	TiposFormula []entity.TipoFormula `yaml:"tipos_formula"`
}

// TiposFormula catálogo en memoria, de solo lectura una vez cargado.
type TiposFormula struct {
	porID map[string]entity.TipoFormula
}

// Nuevo valida y arma el catálogo: ids únicos y no vacíos, fórmulas base parseables.
func Nuevo(tipos []entity.TipoFormula) (*TiposFormula, error) {
	c := &TiposFormula{porID: make(map[string]entity.TipoFormula, len(tipos))}
	for i, t := range tipos {
		t.ID = strings.TrimSpace(t.ID)
		if t.ID == "" {
			return nil, fmt.Errorf("catalog: tipo de fórmula #%d sin id", i+1)
		}
		if _, dup := c.porID[t.ID]; dup {
			return nil, fmt.Errorf("catalog: id de tipo de fórmula repetido %q", t.ID)
		}
		if strings.TrimSpace(t.FormulaBase) != "" {
			if err := pricing.ValidarFormula(t.FormulaBase); err != nil {
				return nil, fmt.Errorf("catalog: fórmula base de %q: %w", t.ID, err)
			}
		}
		c.porID[t.ID] = t
	}
	return c, nil
}

// Cargar lee el archivo YAML indicado.
func Cargar(path string) (*TiposFormula, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: leer %s: %w", path, err)
	}
	var a archivo
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("catalog: parsear %s: %w", path, err)
	}
	return Nuevo(a.TiposFormula)
}

// Existe informa si id está en el catálogo. Un catálogo nil acepta cualquier id.
func (c *TiposFormula) Existe(id string) bool {
	if c == nil {
		return true
	}
	_, ok := c.porID[id]
	return ok
}

// Obtener devuelve el tipo por id.
func (c *TiposFormula) Obtener(id string) (entity.TipoFormula, bool) {
	if c == nil {
		return entity.TipoFormula{}, false
	}
	t, ok := c.porID[id]
	return t, ok
}

// Listar tipos ordenados por id.
func (c *TiposFormula) Listar() []entity.TipoFormula {
	if c == nil {
		return []entity.TipoFormula{}
	}
	out := make([]entity.TipoFormula, 0, len(c.porID))
	for _, t := range c.porID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
