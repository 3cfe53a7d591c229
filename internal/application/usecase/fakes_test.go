package usecase_test

import (
	"context"
	"errors"

	"github.com/jhoicas/Precios-admin/internal/domain"
	"github.com/jhoicas/Precios-admin/internal/domain/entity"
)

var errBackendCaido = errors.New("backend caído")

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakePrecios struct {
	items    []entity.PrecioItem
	creados  []entity.PrecioItem
	updates  []entity.PrecioItem
	borrados []string
	errGuard error
}

func (f *fakePrecios) ListByPresentacion(_ context.Context, id string) ([]entity.PrecioItem, error) {
	var out []entity.PrecioItem
	for _, p := range f.items {
		if p.IdPresentaOK == id {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePrecios) ListByLista(_ context.Context, id string) ([]entity.PrecioItem, error) {
	var out []entity.PrecioItem
	for _, p := range f.items {
		if p.IdListaOK == id {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePrecios) Create(_ context.Context, usuario string, p entity.PrecioItem) (*entity.PrecioItem, error) {
	if f.errGuard != nil {
		return nil, f.errGuard
	}
	p.RegUser = usuario
	f.creados = append(f.creados, p)
	return &p, nil
}

func (f *fakePrecios) Update(_ context.Context, usuario string, p entity.PrecioItem) (*entity.PrecioItem, error) {
	if f.errGuard != nil {
		return nil, f.errGuard
	}
	p.RegUser = usuario
	f.updates = append(f.updates, p)
	return &p, nil
}

func (f *fakePrecios) Delete(_ context.Context, _ string, id string) error {
	f.borrados = append(f.borrados, id)
	return nil
}

type fakeListas struct {
	listas    map[string]entity.ListaPrecios
	llamadas  []string
	errUpdate error
	errEstado error
}

func nuevasListas(ls ...entity.ListaPrecios) *fakeListas {
	f := &fakeListas{listas: map[string]entity.ListaPrecios{}}
	for _, l := range ls {
		f.listas[l.IdListaOK] = l
	}
	return f
}

func (f *fakeListas) List(context.Context) ([]entity.ListaPrecios, error) {
	out := make([]entity.ListaPrecios, 0, len(f.listas))
	for _, l := range f.listas {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeListas) GetByID(_ context.Context, id string) (*entity.ListaPrecios, error) {
	l, ok := f.listas[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &l, nil
}

func (f *fakeListas) Create(_ context.Context, _ string, l entity.ListaPrecios) (*entity.ListaPrecios, error) {
	f.llamadas = append(f.llamadas, "AddOne")
	f.listas[l.IdListaOK] = l
	return &l, nil
}

func (f *fakeListas) Update(_ context.Context, _ string, l entity.ListaPrecios) (*entity.ListaPrecios, error) {
	f.llamadas = append(f.llamadas, "UpdateOne")
	if f.errUpdate != nil {
		return nil, f.errUpdate
	}
	f.listas[l.IdListaOK] = l
	return &l, nil
}

func (f *fakeListas) estado(id string, activo bool, llamada string) error {
	f.llamadas = append(f.llamadas, llamada)
	if f.errEstado != nil {
		return f.errEstado
	}
	l := f.listas[id]
	l.Activo = activo
	f.listas[id] = l
	return nil
}

func (f *fakeListas) Activate(_ context.Context, _ string, id string) error {
	return f.estado(id, true, "ActivateOne")
}

func (f *fakeListas) Deactivate(_ context.Context, _ string, id string) error {
	return f.estado(id, false, "DeleteLogic")
}

func (f *fakeListas) DeleteHard(_ context.Context, _ string, id string) error {
	f.llamadas = append(f.llamadas, "DeleteHard")
	delete(f.listas, id)
	return nil
}

type fakePromos struct {
	promos    map[string]entity.Promocion
	llamadas  []string
	errUpdate error
	errEstado error
}

func nuevasPromos(ps ...entity.Promocion) *fakePromos {
	f := &fakePromos{promos: map[string]entity.Promocion{}}
	for _, p := range ps {
		f.promos[p.IdPromoOK] = p
	}
	return f
}

func (f *fakePromos) List(context.Context) ([]entity.Promocion, error) {
	out := make([]entity.Promocion, 0, len(f.promos))
	for _, p := range f.promos {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePromos) GetByID(_ context.Context, id string) (*entity.Promocion, error) {
	p, ok := f.promos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (f *fakePromos) Create(_ context.Context, _ string, p entity.Promocion) (*entity.Promocion, error) {
	f.llamadas = append(f.llamadas, "AddOne")
	f.promos[p.IdPromoOK] = p
	return &p, nil
}

func (f *fakePromos) Update(_ context.Context, _ string, p entity.Promocion) (*entity.Promocion, error) {
	f.llamadas = append(f.llamadas, "UpdateOne")
	if f.errUpdate != nil {
		return nil, f.errUpdate
	}
	f.promos[p.IdPromoOK] = p
	return &p, nil
}

func (f *fakePromos) Activate(_ context.Context, _ string, id string) error {
	f.llamadas = append(f.llamadas, "ActivateOne")
	return f.errEstado
}

func (f *fakePromos) Deactivate(_ context.Context, _ string, id string) error {
	f.llamadas = append(f.llamadas, "DeleteLogic")
	return f.errEstado
}

func (f *fakePromos) DeleteHard(_ context.Context, _ string, id string) error {
	f.llamadas = append(f.llamadas, "DeleteHard")
	return nil
}

type fakeCatalogo struct {
	productos      []entity.Producto
	presentaciones []entity.Presentacion
	categorias     []entity.Categoria
}

func (f *fakeCatalogo) ListProductos(context.Context) ([]entity.Producto, error) {
	return f.productos, nil
}

func (f *fakeCatalogo) ListPresentaciones(context.Context) ([]entity.Presentacion, error) {
	return f.presentaciones, nil
}

func (f *fakeCatalogo) ListPresentacionesBySKU(_ context.Context, sku string) ([]entity.Presentacion, error) {
	var out []entity.Presentacion
	for _, p := range f.presentaciones {
		if p.SKUID == sku {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCatalogo) ListCategorias(context.Context) ([]entity.Categoria, error) {
	return f.categorias, nil
}

// catalogoBase: SKU-1 (Café: P1, P2), SKU-2 (Té: P3), SKU-3 eliminado.
func catalogoBase() *fakeCatalogo {
	return &fakeCatalogo{
		productos: []entity.Producto{
			{SKUID: "SKU-2", Nombre: "Té verde", Categorias: []string{"BEB"}, Activo: true},
			{SKUID: "SKU-1", Nombre: "Café molido", Categorias: []string{"BEB", "GRANO"}, Activo: true},
			{SKUID: "SKU-4", Nombre: "Azúcar", Categorias: []string{"ABARROTES"}, Activo: false},
			{SKUID: "SKU-3", Nombre: "Borrado", Eliminado: true},
		},
		presentaciones: []entity.Presentacion{
			{IdPresentaOK: "P2", SKUID: "SKU-1", Nombre: "Bolsa 1kg", Activo: true},
			{IdPresentaOK: "P1", SKUID: "SKU-1", Nombre: "Caja 500g", Activo: true},
			{IdPresentaOK: "P3", SKUID: "SKU-2", Nombre: "Caja 20 sobres", Activo: true},
			{IdPresentaOK: "P4", SKUID: "SKU-4", Nombre: "Kilo", Activo: true},
		},
		categorias: []entity.Categoria{
			{CatID: "GRANO", Nombre: "Grano"},
			{CatID: "BEB", Nombre: "Bebidas"},
			{CatID: "OLD", Nombre: "Vieja", Eliminado: true},
		},
	}
}

type fakeTipos map[string]entity.TipoFormula

func (f fakeTipos) Existe(id string) bool { _, ok := f[id]; return ok }

func (f fakeTipos) Obtener(id string) (entity.TipoFormula, bool) {
	t, ok := f[id]
	return t, ok
}

func (f fakeTipos) Listar() []entity.TipoFormula {
	out := make([]entity.TipoFormula, 0, len(f))
	for _, t := range f {
		out = append(out, t)
	}
	return out
}
