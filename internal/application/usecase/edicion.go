package usecase

import (
	"fmt"

	"github.com/jhoicas/Precios-admin/internal/domain"
	"github.com/jhoicas/Precios-admin/pkg/logger"
)

// Acciones registradas en las respuestas de edición.
const (
	AccionCrear      = "AddOne"
	AccionActualizar = "UpdateOne"
	AccionActivar    = "ActivateOne"
	AccionDesactivar = "DeleteLogic"
)

// planEdicion llamadas al backend para guardar una entidad con ACTIVED.
// UpdateOne no cambia ACTIVED, así que un cambio de estado va siempre en su propia llamada,
// después del update.
type planEdicion struct {
	actualizar    bool
	cambiarEstado bool
	activar       bool
}

func planificar(mismosCampos, activoActual, activoPedido bool) planEdicion {
	return planEdicion{
		actualizar:    !mismosCampos,
		cambiarEstado: activoActual != activoPedido,
		activar:       activoPedido,
	}
}

func (p planEdicion) vacio() bool { return !p.actualizar && !p.cambiarEstado }

// edicion llamadas concretas de un agregado con ACTIVED. Listas y promociones comparten
// el mismo orden: UpdateOne primero, luego ActivateOne o DeleteLogic.
type edicion[T any] struct {
	log         *logger.Logger
	entidad     string // para los mensajes: "lista", "promoción"
	campoID     string
	id          string
	actualizar  func() (*T, error)
	activar     func() error
	desactivar  func() error
	fijarActivo func(*T, bool)
}

// ejecutar corre el plan sobre actual y devuelve el resultado con las acciones hechas, en orden.
// Si UpdateOne falla no se intenta el cambio de estado.
func (e edicion[T]) ejecutar(plan planEdicion, actual T) (T, []string, error) {
	var cero T
	if plan.vacio() {
		return cero, nil, domain.ErrSinCambios
	}
	item := actual
	acciones := []string{}

	if plan.actualizar {
		guardado, err := e.actualizar()
		if err != nil {
			e.log.Error().Err(err).Str(e.campoID, e.id).Msg("UpdateOne falló; no se cambia ACTIVED")
			return cero, nil, err
		}
		item = *guardado
		acciones = append(acciones, AccionActualizar)
	}

	if plan.cambiarEstado {
		accion := AccionDesactivar
		var err error
		if plan.activar {
			accion = AccionActivar
			err = e.activar()
		} else {
			err = e.desactivar()
		}
		if err != nil {
			e.log.Error().Err(err).Str(e.campoID, e.id).Str("accion", accion).Msg("no se pudo cambiar ACTIVED")
			if plan.actualizar {
				return cero, nil, fmt.Errorf("campos guardados pero %s falló: %w", accion, err)
			}
			return cero, nil, err
		}
		e.fijarActivo(&item, plan.activar)
		acciones = append(acciones, accion)
	}

	e.log.Info().Str(e.campoID, e.id).Strs("acciones", acciones).Msg(e.entidad + " actualizada")
	return item, acciones, nil
}
