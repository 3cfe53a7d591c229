package usecase

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Precios-admin/internal/domain"
	"github.com/jhoicas/Precios-admin/internal/domain/selection"
)

type relojFalso struct{ t time.Time }

func (r *relojFalso) ahora() time.Time        { return r.t }
func (r *relojFalso) avanzar(d time.Duration) { r.t = r.t.Add(d) }

func TestSesionStore_VenceTrasTTL(t *testing.T) {
	reloj := &relojFalso{t: time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)}
	s := NewSesionStore(30 * time.Minute)
	s.ahora = reloj.ahora

	ses := s.Crear(selection.Nueva(nil, selection.Bloqueo{}), nil)

	reloj.avanzar(20 * time.Minute)
	require.NoError(t, s.Con(ses.ID, func(*Sesion) error { return nil }), "el uso renueva el vencimiento")

	reloj.avanzar(20 * time.Minute)
	require.NoError(t, s.Con(ses.ID, func(*Sesion) error { return nil }))

	reloj.avanzar(31 * time.Minute)
	err := s.Con(ses.ID, func(*Sesion) error { return nil })
	assert.ErrorIs(t, err, domain.ErrSesionVencida)
	assert.Zero(t, s.Len())
}

func TestSesionStore_CrearPurgaVencidas(t *testing.T) {
	reloj := &relojFalso{t: time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)}
	s := NewSesionStore(time.Minute)
	s.ahora = reloj.ahora

	s.Crear(selection.Nueva(nil, selection.Bloqueo{}), nil)
	s.Crear(selection.Nueva(nil, selection.Bloqueo{}), nil)
	reloj.avanzar(2 * time.Minute)
	s.Crear(selection.Nueva(nil, selection.Bloqueo{}), nil)

	assert.Equal(t, 1, s.Len())
}

func TestSesionStore_PropagaErrorDeLaOperacion(t *testing.T) {
	s := NewSesionStore(time.Hour)
	ses := s.Crear(selection.Nueva(nil, selection.Bloqueo{}), nil)

	boom := errors.New("boom")
	assert.ErrorIs(t, s.Con(ses.ID, func(*Sesion) error { return boom }), boom)
}

func TestSesionStore_OperacionesConcurrentes(t *testing.T) {
	s := NewSesionStore(time.Hour)
	ses := s.Crear(selection.Nueva(nil, selection.Bloqueo{}), nil)

	contador := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Con(ses.ID, func(*Sesion) error {
				contador++
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, contador)
}

func TestSesionStore_RenovacionVisibleDentroDeCon(t *testing.T) {
	reloj := &relojFalso{t: time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)}
	s := NewSesionStore(30 * time.Minute)
	s.ahora = reloj.ahora
	ses := s.Crear(selection.Nueva(nil, selection.Bloqueo{}), nil)

	reloj.avanzar(10 * time.Minute)
	var visto time.Time
	require.NoError(t, s.Con(ses.ID, func(x *Sesion) error {
		visto = x.VenceEn
		return nil
	}))
	assert.Equal(t, reloj.t.Add(30*time.Minute), visto)
}

func TestSesionStore_RenovacionYLecturaConcurrentes(t *testing.T) {
	s := NewSesionStore(time.Hour)
	ses := s.Crear(selection.Nueva(nil, selection.Bloqueo{}), nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				_ = s.Con(ses.ID, func(x *Sesion) error {
					_ = x.VenceEn
					return nil
				})
			}
		}()
	}
	for i := 0; i < 100; i++ {
		s.Crear(selection.Nueva(nil, selection.Bloqueo{}), nil)
	}
	wg.Wait()
	assert.Equal(t, 101, s.Len())
}

func TestPlanificar_PoliticaDeActivacion(t *testing.T) {
	assert.Equal(t, planEdicion{cambiarEstado: true, activar: false}, planificar(true, true, false))
	assert.Equal(t, planEdicion{actualizar: true, activar: true}, planificar(false, true, true))
	assert.Equal(t, planEdicion{actualizar: true, cambiarEstado: true, activar: true}, planificar(false, false, true))
	assert.True(t, planificar(true, true, true).vacio())
}
