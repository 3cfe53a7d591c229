package usecase

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Precios-admin/internal/domain"
	"github.com/jhoicas/Precios-admin/internal/domain/entity"
	"github.com/jhoicas/Precios-admin/pkg/logger"
)

type registroEdicion struct {
	llamadas  []string
	errUpdate error
	errEstado error
}

func (r *registroEdicion) edicion(log *logger.Logger, guardada entity.Promocion) edicion[entity.Promocion] {
	return edicion[entity.Promocion]{
		log: log, entidad: "promoción", campoID: "id_promo", id: guardada.IdPromoOK,
		actualizar: func() (*entity.Promocion, error) {
			r.llamadas = append(r.llamadas, AccionActualizar)
			if r.errUpdate != nil {
				return nil, r.errUpdate
			}
			return &guardada, nil
		},
		activar: func() error {
			r.llamadas = append(r.llamadas, AccionActivar)
			return r.errEstado
		},
		desactivar: func() error {
			r.llamadas = append(r.llamadas, AccionDesactivar)
			return r.errEstado
		},
		fijarActivo: func(p *entity.Promocion, activo bool) { p.Activo = activo },
	}
}

func TestEdicion_PlanVacioNoLlamaAlBackend(t *testing.T) {
	r := &registroEdicion{}
	_, _, err := r.edicion(logger.Nop(), entity.Promocion{IdPromoOK: "PR-1"}).ejecutar(planEdicion{}, entity.Promocion{})
	assert.ErrorIs(t, err, domain.ErrSinCambios)
	assert.Empty(t, r.llamadas)
}

func TestEdicion_UpdateYLuegoEstado(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "info", Output: &buf})
	r := &registroEdicion{}
	actual := entity.Promocion{IdPromoOK: "PR-1", Titulo: "Antes", Activo: false}
	guardada := entity.Promocion{IdPromoOK: "PR-1", Titulo: "Después", Activo: false}

	item, acciones, err := r.edicion(log, guardada).ejecutar(planificar(false, false, true), actual)
	require.NoError(t, err)
	assert.Equal(t, []string{AccionActualizar, AccionActivar}, acciones)
	assert.Equal(t, acciones, r.llamadas)
	assert.Equal(t, "Después", item.Titulo)
	assert.True(t, item.Activo)
	assert.Contains(t, buf.String(), `"id_promo":"PR-1"`)
	assert.Contains(t, buf.String(), "promoción actualizada")
}

func TestEdicion_FalloDeUpdateSeRegistraYNoCambiaEstado(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "info", Output: &buf})
	r := &registroEdicion{errUpdate: errors.New("timeout")}

	_, _, err := r.edicion(log, entity.Promocion{IdPromoOK: "PR-1"}).ejecutar(planificar(false, true, false), entity.Promocion{IdPromoOK: "PR-1", Activo: true})
	assert.Error(t, err)
	assert.Equal(t, []string{AccionActualizar}, r.llamadas)
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "UpdateOne falló")
}

func TestEdicion_FalloDeEstadoSoloNoEnvuelve(t *testing.T) {
	boom := errors.New("boom")
	r := &registroEdicion{errEstado: boom}

	_, _, err := r.edicion(logger.Nop(), entity.Promocion{IdPromoOK: "PR-1"}).ejecutar(planificar(true, true, false), entity.Promocion{IdPromoOK: "PR-1", Activo: true})
	assert.Equal(t, boom, err)
	assert.Equal(t, []string{AccionDesactivar}, r.llamadas)
}
