package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Precios-admin/internal/domain"
	"github.com/jhoicas/Precios-admin/internal/domain/entity"
	"github.com/jhoicas/Precios-admin/internal/domain/selection"
)

// Sesion selección en curso de un usuario. Previos guarda la foto de productos aplicables
// de la promoción de origen, para no recalcular precios de lo ya comprometido.
//
// VenceEn es la copia del vencimiento que ve fn dentro de Con; el store decide con vence,
// protegido por SesionStore.mu.
type Sesion struct {
	ID      string
	Sel     *selection.Seleccion
	Previos map[string]entity.ProductoAplicable
	VenceEn time.Time

	mu    sync.Mutex
	vence time.Time
}

// SesionStore sesiones en memoria con vencimiento deslizante.
type SesionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	ahora    func() time.Time
	sesiones map[string]*Sesion
}

// NewSesionStore construye el store. ttl <= 0 usa dos horas.
func NewSesionStore(ttl time.Duration) *SesionStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &SesionStore{ttl: ttl, ahora: time.Now, sesiones: map[string]*Sesion{}}
}

// Crear registra una sesión nueva y purga las vencidas.
func (s *SesionStore) Crear(sel *selection.Seleccion, previos map[string]entity.ProductoAplicable) *Sesion {
	s.mu.Lock()
	defer s.mu.Unlock()
	ahora := s.ahora()
	for id, ses := range s.sesiones {
		if ahora.After(ses.vence) {
			delete(s.sesiones, id)
		}
	}
	vence := ahora.Add(s.ttl)
	ses := &Sesion{ID: uuid.NewString(), Sel: sel, Previos: previos, VenceEn: vence, vence: vence}
	s.sesiones[ses.ID] = ses
	return ses
}

// Con ejecuta fn con la sesión bloqueada y renueva su vencimiento.
func (s *SesionStore) Con(id string, fn func(*Sesion) error) error {
	s.mu.Lock()
	ses, ok := s.sesiones[id]
	ahora := s.ahora()
	if ok && ahora.After(ses.vence) {
		delete(s.sesiones, id)
		ok = false
	}
	var vence time.Time
	if ok {
		ses.vence = ahora.Add(s.ttl)
		vence = ses.vence
	}
	s.mu.Unlock()
	if !ok {
		return domain.ErrSesionVencida
	}

	ses.mu.Lock()
	defer ses.mu.Unlock()
	// Dos renovaciones pueden llegar aquí en cualquier orden; gana la más tardía.
	if vence.After(ses.VenceEn) {
		ses.VenceEn = vence
	}
	return fn(ses)
}

// Eliminar descarta la sesión. No falla si no existe.
func (s *SesionStore) Eliminar(id string) {
	s.mu.Lock()
	delete(s.sesiones, id)
	s.mu.Unlock()
}

// Len sesiones vigentes o aún no purgadas.
func (s *SesionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sesiones)
}
