// Package selection modela el estado de selección de productos y presentaciones
// al armar una lista de precios o una promoción.
//
// Hay tres niveles: bloqueadas (ya comprometidas en una sesión anterior, inmutables),
// confirmadas (agregadas en esta sesión, removibles en modo gestión) y transitorias
// (elegidas pero aún sin confirmar). Aparte se lleva el conjunto de candidatas a quitar.
package selection

import (
	"fmt"
	"sort"

	"github.com/jhoicas/Precios-admin/internal/domain/entity"
)

// Códigos de conflicto.
const (
	ConflictoBloqueado         = "BLOQUEADO"
	ConflictoRequiereGestion   = "REQUIERE_GESTION"
	ConflictoFueraDeGestion    = "FUERA_DE_GESTION"
	ConflictoNoEncontrado      = "NO_ENCONTRADO"
	ConflictoSinPresentaciones = "SIN_PRESENTACIONES"
	ConflictoSinActivas        = "SIN_ACTIVAS"
	ConflictoSinDisponibles    = "SIN_DISPONIBLES"
	ConflictoInactiva          = "INACTIVA"
	ConflictoNoConfirmada      = "NO_CONFIRMADA"
	ConflictoNadaQueAgregar    = "NADA_QUE_AGREGAR"
)

// ErrorConflicto describe por qué una operación no tuvo efecto. El estado no cambia.
type ErrorConflicto struct {
	Codigo string
	Motivo string
}

func (e *ErrorConflicto) Error() string { return e.Motivo }

func conflicto(codigo, formato string, args ...interface{}) error {
	return &ErrorConflicto{Codigo: codigo, Motivo: fmt.Sprintf(formato, args...)}
}

type conjunto map[string]struct{}

func (c conjunto) tiene(id string) bool { _, ok := c[id]; return ok }
func (c conjunto) poner(id string)      { c[id] = struct{}{} }
func (c conjunto) quitar(id string)     { delete(c, id) }

func (c conjunto) ordenado() []string {
	out := make([]string, 0, len(c))
	for id := range c {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Bloqueo presentaciones y SKUs ya comprometidos antes de esta sesión.
// Un SKU bloqueado bloquea todas sus presentaciones.
type Bloqueo struct {
	Presentaciones []string
	SKUs           []string
}

// Seleccion estado de selección. No es seguro para uso concurrente.
type Seleccion struct {
	productos map[string]entity.ProductoConPresentaciones
	duenoDe   map[string]string
	pres      map[string]entity.Presentacion

	bloqueadas, productosBloqueados     conjunto
	confirmadas, productosConfirmados   conjunto
	transitorias, productosTransitorios conjunto
	marcadas, productosMarcados         conjunto

	gestionando bool
}

// Nueva construye la selección sobre el catálogo con las presentaciones bloqueadas indicadas.
// Un producto queda bloqueado si su SKU está en el bloqueo o si todas sus presentaciones lo están.
func Nueva(catalogo []entity.ProductoConPresentaciones, bloqueo Bloqueo) *Seleccion {
	s := &Seleccion{
		productos:             make(map[string]entity.ProductoConPresentaciones, len(catalogo)),
		duenoDe:               map[string]string{},
		pres:                  map[string]entity.Presentacion{},
		bloqueadas:            conjunto{},
		productosBloqueados:   conjunto{},
		confirmadas:           conjunto{},
		productosConfirmados:  conjunto{},
		transitorias:          conjunto{},
		productosTransitorios: conjunto{},
		marcadas:              conjunto{},
		productosMarcados:     conjunto{},
	}
	for _, p := range catalogo {
		s.productos[p.SKUID] = p
		for _, pr := range p.Presentaciones {
			s.duenoDe[pr.IdPresentaOK] = p.SKUID
			s.pres[pr.IdPresentaOK] = pr
		}
	}
	for _, id := range bloqueo.Presentaciones {
		s.bloqueadas.poner(id)
	}
	for _, sku := range bloqueo.SKUs {
		s.productosBloqueados.poner(sku)
		for _, pr := range s.productos[sku].Presentaciones {
			s.bloqueadas.poner(pr.IdPresentaOK)
		}
	}
	for sku, p := range s.productos {
		if len(p.Presentaciones) == 0 {
			continue
		}
		todas := true
		for _, pr := range p.Presentaciones {
			if !s.bloqueadas.tiene(pr.IdPresentaOK) {
				todas = false
				break
			}
		}
		if todas {
			s.productosBloqueados.poner(sku)
		}
	}
	return s
}

// ── Consultas ─────────────────────────────────────────────────────────────────

// Gestionando informa si el modo gestión está activo.
func (s *Seleccion) Gestionando() bool { return s.gestionando }

// ProductoBloqueado informa si el producto no puede alternarse.
func (s *Seleccion) ProductoBloqueado(sku string) bool { return s.productosBloqueados.tiene(sku) }

// ProductoSeleccionado informa si alguna presentación del producto está bloqueada,
// confirmada o en la selección transitoria.
func (s *Seleccion) ProductoSeleccionado(sku string) bool {
	if s.productosBloqueados.tiene(sku) || s.productosConfirmados.tiene(sku) || s.productosTransitorios.tiene(sku) {
		return true
	}
	for _, pr := range s.productos[sku].Presentaciones {
		if s.bloqueadas.tiene(pr.IdPresentaOK) {
			return true
		}
	}
	return false
}

// ProductoMarcado informa si todas las presentaciones removibles del producto están marcadas.
func (s *Seleccion) ProductoMarcado(sku string) bool { return s.productosMarcados.tiene(sku) }

// Instantanea copia ordenada del estado.
type Instantanea struct {
	Bloqueadas            []string `json:"bloqueadas"`
	Confirmadas           []string `json:"confirmadas"`
	Transitorias          []string `json:"transitorias"`
	MarcadasParaQuitar    []string `json:"marcadas_para_quitar"`
	ProductosBloqueados   []string `json:"productos_bloqueados"`
	ProductosConfirmados  []string `json:"productos_confirmados"`
	ProductosTransitorios []string `json:"productos_transitorios"`
	ProductosMarcados     []string `json:"productos_marcados"`
	Gestionando           bool     `json:"gestionando"`
}

// Instantanea devuelve el estado actual con todos los conjuntos ordenados.
func (s *Seleccion) Instantanea() Instantanea {
	return Instantanea{
		Bloqueadas:            s.bloqueadas.ordenado(),
		Confirmadas:           s.confirmadas.ordenado(),
		Transitorias:          s.transitorias.ordenado(),
		MarcadasParaQuitar:    s.marcadas.ordenado(),
		ProductosBloqueados:   s.productosBloqueados.ordenado(),
		ProductosConfirmados:  s.productosConfirmados.ordenado(),
		ProductosTransitorios: s.productosTransitorios.ordenado(),
		ProductosMarcados:     s.productosMarcados.ordenado(),
		Gestionando:           s.gestionando,
	}
}

// PresentacionesFinales bloqueadas ∪ confirmadas, ordenadas. Las transitorias no cuentan.
func (s *Seleccion) PresentacionesFinales() []string {
	union := conjunto{}
	for id := range s.bloqueadas {
		union.poner(id)
	}
	for id := range s.confirmadas {
		union.poner(id)
	}
	return union.ordenado()
}

// SKUsFinales SKUs dueños de alguna presentación final, más los SKUs bloqueados.
func (s *Seleccion) SKUsFinales() []string {
	union := conjunto{}
	for sku := range s.productosBloqueados {
		union.poner(sku)
	}
	for _, id := range s.PresentacionesFinales() {
		if sku, ok := s.duenoDe[id]; ok {
			union.poner(sku)
		}
	}
	return union.ordenado()
}

// Presentacion devuelve la presentación del catálogo y su producto.
func (s *Seleccion) Presentacion(id string) (entity.Presentacion, entity.Producto, bool) {
	pr, ok := s.pres[id]
	if !ok {
		return entity.Presentacion{}, entity.Producto{}, false
	}
	return pr, s.productos[s.duenoDe[id]].Producto, true
}

// ── Operaciones ───────────────────────────────────────────────────────────────

// AlternarProducto agrega o quita un producto completo.
// Agregar pone en la selección transitoria todas sus presentaciones vigentes que no estén
// bloqueadas ni confirmadas. Quitar un producto confirmado exige modo gestión.
func (s *Seleccion) AlternarProducto(sku string) error {
	if s.productosBloqueados.tiene(sku) {
		return conflicto(ConflictoBloqueado, "el producto %s ya está comprometido y no puede modificarse", sku)
	}
	p, ok := s.productos[sku]
	if !ok {
		return conflicto(ConflictoNoEncontrado, "el producto %s no existe en el catálogo", sku)
	}

	if s.productosConfirmados.tiene(sku) {
		if !s.gestionando {
			return conflicto(ConflictoRequiereGestion, "active el modo gestión para quitar el producto %s", sku)
		}
		for _, pr := range p.Presentaciones {
			s.confirmadas.quitar(pr.IdPresentaOK)
			s.transitorias.quitar(pr.IdPresentaOK)
			s.marcadas.quitar(pr.IdPresentaOK)
		}
		s.productosConfirmados.quitar(sku)
		s.productosTransitorios.quitar(sku)
		s.productosMarcados.quitar(sku)
		return nil
	}

	if s.productosTransitorios.tiene(sku) {
		for _, pr := range p.Presentaciones {
			s.transitorias.quitar(pr.IdPresentaOK)
		}
		s.productosTransitorios.quitar(sku)
		return nil
	}

	if len(p.Presentaciones) == 0 {
		return conflicto(ConflictoSinPresentaciones, "el producto %s no tiene presentaciones", sku)
	}
	var elegibles []string
	vigentes := 0
	for _, pr := range p.Presentaciones {
		if !pr.Vigente() {
			continue
		}
		vigentes++
		if s.bloqueadas.tiene(pr.IdPresentaOK) || s.confirmadas.tiene(pr.IdPresentaOK) {
			continue
		}
		elegibles = append(elegibles, pr.IdPresentaOK)
	}
	if vigentes == 0 {
		return conflicto(ConflictoSinActivas, "el producto %s no tiene presentaciones activas", sku)
	}
	if len(elegibles) == 0 {
		return conflicto(ConflictoSinDisponibles, "todas las presentaciones activas de %s ya están agregadas", sku)
	}
	for _, id := range elegibles {
		s.transitorias.poner(id)
	}
	s.productosTransitorios.poner(sku)
	return nil
}

// AlternarPresentacion agrega o quita una presentación. Agregarla agrega también su producto;
// quitar la última presentación de un producto quita el producto.
func (s *Seleccion) AlternarPresentacion(id, sku string) error {
	if s.bloqueadas.tiene(id) {
		return conflicto(ConflictoBloqueado, "la presentación %s ya está comprometida y no puede modificarse", id)
	}
	pr, ok := s.pres[id]
	if !ok || s.duenoDe[id] != sku {
		return conflicto(ConflictoNoEncontrado, "la presentación %s no pertenece al producto %s", id, sku)
	}

	if s.confirmadas.tiene(id) {
		if !s.gestionando {
			return conflicto(ConflictoRequiereGestion, "active el modo gestión para quitar la presentación %s", id)
		}
		s.confirmadas.quitar(id)
		s.marcadas.quitar(id)
		if !s.algunaEn(s.confirmadas, sku) {
			s.productosConfirmados.quitar(sku)
		}
		s.recalcularMarca(sku)
		return nil
	}

	if s.transitorias.tiene(id) {
		s.transitorias.quitar(id)
		if !s.algunaEn(s.transitorias, sku) {
			s.productosTransitorios.quitar(sku)
		}
		return nil
	}

	if !pr.Vigente() {
		return conflicto(ConflictoInactiva, "la presentación %s no está activa", id)
	}
	s.transitorias.poner(id)
	s.productosTransitorios.poner(sku)
	return nil
}

// ConfirmarTransitorias pasa la selección transitoria a confirmada y la vacía.
// Devuelve cuántas presentaciones se confirmaron.
func (s *Seleccion) ConfirmarTransitorias() (int, error) {
	if len(s.transitorias) == 0 {
		return 0, conflicto(ConflictoNadaQueAgregar, "no hay presentaciones nuevas para agregar")
	}
	n := len(s.transitorias)
	for id := range s.transitorias {
		s.confirmadas.poner(id)
	}
	for sku := range s.productosTransitorios {
		s.productosConfirmados.poner(sku)
		s.recalcularMarca(sku)
	}
	s.transitorias = conjunto{}
	s.productosTransitorios = conjunto{}
	return n, nil
}

// IniciarGestion habilita quitar o marcar elementos confirmados.
func (s *Seleccion) IniciarGestion() { s.gestionando = true }

// CancelarGestion sale del modo gestión descartando las marcas.
func (s *Seleccion) CancelarGestion() {
	s.marcadas = conjunto{}
	s.productosMarcados = conjunto{}
	s.gestionando = false
}

// MarcarParaQuitar agrega una presentación confirmada a las candidatas a quitar.
func (s *Seleccion) MarcarParaQuitar(id string) error {
	if err := s.validarMarca(id); err != nil {
		return err
	}
	s.marcadas.poner(id)
	s.recalcularMarca(s.duenoDe[id])
	return nil
}

// DesmarcarParaQuitar revierte MarcarParaQuitar.
func (s *Seleccion) DesmarcarParaQuitar(id string) error {
	if err := s.validarMarca(id); err != nil {
		return err
	}
	s.marcadas.quitar(id)
	s.recalcularMarca(s.duenoDe[id])
	return nil
}

// MarcarProductoParaQuitar marca todas las presentaciones confirmadas del producto.
func (s *Seleccion) MarcarProductoParaQuitar(sku string) error {
	if !s.gestionando {
		return conflicto(ConflictoFueraDeGestion, "active el modo gestión para marcar elementos")
	}
	if !s.productosConfirmados.tiene(sku) {
		return conflicto(ConflictoNoConfirmada, "el producto %s no tiene presentaciones confirmadas", sku)
	}
	for _, pr := range s.productos[sku].Presentaciones {
		if s.confirmadas.tiene(pr.IdPresentaOK) {
			s.marcadas.poner(pr.IdPresentaOK)
		}
	}
	s.recalcularMarca(sku)
	return nil
}

// AplicarQuitas elimina de las confirmadas todo lo marcado, limpia las marcas y sale del
// modo gestión. Devuelve cuántas presentaciones se quitaron.
func (s *Seleccion) AplicarQuitas() int {
	n := 0
	for id := range s.marcadas {
		if s.confirmadas.tiene(id) {
			s.confirmadas.quitar(id)
			n++
		}
	}
	for sku := range s.productosConfirmados {
		if !s.algunaEn(s.confirmadas, sku) {
			s.productosConfirmados.quitar(sku)
		}
	}
	s.CancelarGestion()
	return n
}

func (s *Seleccion) validarMarca(id string) error {
	if !s.gestionando {
		return conflicto(ConflictoFueraDeGestion, "active el modo gestión para marcar elementos")
	}
	if s.bloqueadas.tiene(id) {
		return conflicto(ConflictoBloqueado, "la presentación %s ya está comprometida y no puede quitarse", id)
	}
	if !s.confirmadas.tiene(id) {
		return conflicto(ConflictoNoConfirmada, "la presentación %s no está confirmada", id)
	}
	return nil
}

// recalcularMarca marca el producto solo si todas sus presentaciones removibles están marcadas.
func (s *Seleccion) recalcularMarca(sku string) {
	removibles, marcadas := 0, 0
	for _, pr := range s.productos[sku].Presentaciones {
		if !s.confirmadas.tiene(pr.IdPresentaOK) {
			continue
		}
		removibles++
		if s.marcadas.tiene(pr.IdPresentaOK) {
			marcadas++
		}
	}
	if removibles > 0 && removibles == marcadas {
		s.productosMarcados.poner(sku)
	} else {
		s.productosMarcados.quitar(sku)
	}
}

func (s *Seleccion) algunaEn(c conjunto, sku string) bool {
	for _, pr := range s.productos[sku].Presentaciones {
		if c.tiene(pr.IdPresentaOK) {
			return true
		}
	}
	return false
}
