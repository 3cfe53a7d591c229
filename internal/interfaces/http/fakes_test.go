package http_test

import (
	"context"
	"sync"

	"github.com/jhoicas/Precios-admin/internal/domain"
	"github.com/jhoicas/Precios-admin/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para probar handlers de punta a punta
// ──────────────────────────────────────────────────────────────────────────────

type memPrecios struct {
	mu      sync.Mutex
	items   []entity.PrecioItem
	usuario string
}

func (m *memPrecios) ListByPresentacion(_ context.Context, id string) ([]entity.PrecioItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.PrecioItem
	for _, p := range m.items {
		if p.IdPresentaOK == id {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPrecios) ListByLista(_ context.Context, id string) ([]entity.PrecioItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.PrecioItem
	for _, p := range m.items {
		if p.IdListaOK == id {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPrecios) Create(_ context.Context, usuario string, p entity.PrecioItem) (*entity.PrecioItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usuario = usuario
	m.items = append(m.items, p)
	return &p, nil
}

func (m *memPrecios) Update(_ context.Context, usuario string, p entity.PrecioItem) (*entity.PrecioItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usuario = usuario
	for i := range m.items {
		if m.items[i].IdPrecioOK == p.IdPrecioOK {
			m.items[i] = p
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memPrecios) Delete(_ context.Context, _ string, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].IdPrecioOK == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memListas struct {
	mu       sync.Mutex
	listas   map[string]entity.ListaPrecios
	errCrear error
}

func (m *memListas) List(context.Context) ([]entity.ListaPrecios, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.ListaPrecios, 0, len(m.listas))
	for _, l := range m.listas {
		out = append(out, l)
	}
	return out, nil
}

func (m *memListas) GetByID(_ context.Context, id string) (*entity.ListaPrecios, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.listas[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &l, nil
}

func (m *memListas) Create(_ context.Context, _ string, l entity.ListaPrecios) (*entity.ListaPrecios, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.errCrear != nil {
		return nil, m.errCrear
	}
	m.listas[l.IdListaOK] = l
	return &l, nil
}

func (m *memListas) Update(_ context.Context, _ string, l entity.ListaPrecios) (*entity.ListaPrecios, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listas[l.IdListaOK] = l
	return &l, nil
}

func (m *memListas) Activate(_ context.Context, _ string, id string) error {
	return m.estado(id, true)
}

func (m *memListas) Deactivate(_ context.Context, _ string, id string) error {
	return m.estado(id, false)
}

func (m *memListas) DeleteHard(_ context.Context, _ string, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.listas, id)
	return nil
}

func (m *memListas) estado(id string, activo bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.listas[id]
	if !ok {
		return domain.ErrNotFound
	}
	l.Activo = activo
	m.listas[id] = l
	return nil
}

type memPromos struct{}

func (memPromos) List(context.Context) ([]entity.Promocion, error) { return nil, nil }
func (memPromos) GetByID(context.Context, string) (*entity.Promocion, error) {
	return nil, domain.ErrNotFound
}
func (memPromos) Create(_ context.Context, _ string, p entity.Promocion) (*entity.Promocion, error) {
	return &p, nil
}
func (memPromos) Update(_ context.Context, _ string, p entity.Promocion) (*entity.Promocion, error) {
	return &p, nil
}
func (memPromos) Activate(context.Context, string, string) error   { return nil }
func (memPromos) Deactivate(context.Context, string, string) error { return nil }
func (memPromos) DeleteHard(context.Context, string, string) error { return nil }

type memCatalogo struct{}

func (memCatalogo) ListProductos(context.Context) ([]entity.Producto, error) {
	return []entity.Producto{
		{SKUID: "SKU-1", Nombre: "Café molido", Categorias: []string{"CAT-1"}, Activo: true},
		{SKUID: "SKU-2", Nombre: "Azúcar", Categorias: []string{"CAT-2"}, Activo: true},
	}, nil
}

func (memCatalogo) ListPresentaciones(context.Context) ([]entity.Presentacion, error) {
	return []entity.Presentacion{
		{IdPresentaOK: "P1", SKUID: "SKU-1", Nombre: "Bolsa 250g", Activo: true},
		{IdPresentaOK: "P2", SKUID: "SKU-1", Nombre: "Bolsa 1kg", Activo: true},
		{IdPresentaOK: "P3", SKUID: "SKU-2", Nombre: "Kilo", Activo: true},
	}, nil
}

func (c memCatalogo) ListPresentacionesBySKU(ctx context.Context, sku string) ([]entity.Presentacion, error) {
	todas, _ := c.ListPresentaciones(ctx)
	var out []entity.Presentacion
	for _, p := range todas {
		if p.SKUID == sku {
			out = append(out, p)
		}
	}
	return out, nil
}

func (memCatalogo) ListCategorias(context.Context) ([]entity.Categoria, error) {
	return []entity.Categoria{{CatID: "CAT-1", Nombre: "Bebidas", Activo: true}}, nil
}
