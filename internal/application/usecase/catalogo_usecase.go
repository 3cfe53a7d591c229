package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/Precios-admin/internal/application/dto"
	"github.com/jhoicas/Precios-admin/internal/domain/entity"
	"github.com/jhoicas/Precios-admin/internal/domain/repository"
	"github.com/jhoicas/Precios-admin/pkg/formato"
)

// CatalogoUseCase consultas al catálogo de productos. El backend no filtra ni ordena:
// se hace aquí sobre el listado completo.
type CatalogoUseCase struct {
	repo  repository.CatalogoRepository
	tipos repository.TipoFormulaRepository
}

// NewCatalogoUseCase construye el caso de uso. tipos puede ser nil.
func NewCatalogoUseCase(repo repository.CatalogoRepository, tipos repository.TipoFormulaRepository) *CatalogoUseCase {
	return &CatalogoUseCase{repo: repo, tipos: tipos}
}

// ProductosConPresentaciones catálogo completo sin productos eliminados, ordenado por SKU.
func (uc *CatalogoUseCase) ProductosConPresentaciones(ctx context.Context) ([]entity.ProductoConPresentaciones, error) {
	productos, err := uc.repo.ListProductos(ctx)
	if err != nil {
		return nil, err
	}
	presentaciones, err := uc.repo.ListPresentaciones(ctx)
	if err != nil {
		return nil, err
	}
	return agruparCatalogo(productos, presentaciones), nil
}

// ListarProductos filtra por texto (SKU o nombre, sin tildes), categoría y estado; ordena y pagina.
func (uc *CatalogoUseCase) ListarProductos(ctx context.Context, f dto.FiltroProductos) (*dto.ProductoListResponse, error) {
	todos, err := uc.ProductosConPresentaciones(ctx)
	if err != nil {
		return nil, err
	}

	texto := formato.Normalizar(f.Texto)
	filtrados := make([]entity.ProductoConPresentaciones, 0, len(todos))
	for _, p := range todos {
		if f.SoloActivos && !p.Activo {
			continue
		}
		if f.Categoria != "" && !contiene(p.Categorias, f.Categoria) {
			continue
		}
		if texto != "" &&
			!strings.Contains(formato.Normalizar(p.SKUID), texto) &&
			!strings.Contains(formato.Normalizar(p.Nombre), texto) {
			continue
		}
		filtrados = append(filtrados, p)
	}

	ordenarProductos(filtrados, f.Orden, f.Desc)

	page := dto.PageRequest{Limit: f.Limit, Offset: f.Offset}
	page.DefaultPage()
	total := len(filtrados)
	ini := min(page.Offset, total)
	fin := min(ini+page.Limit, total)

	return &dto.ProductoListResponse{
		Items: filtrados[ini:fin],
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// ListarCategorias categorías no eliminadas, por nombre.
func (uc *CatalogoUseCase) ListarCategorias(ctx context.Context) (*dto.CategoriaListResponse, error) {
	cats, err := uc.repo.ListCategorias(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Categoria, 0, len(cats))
	for _, c := range cats {
		if !c.Eliminado {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return formato.Normalizar(out[i].Nombre) < formato.Normalizar(out[j].Nombre)
	})
	return &dto.CategoriaListResponse{Items: out}, nil
}

// TiposFormula tipos de fórmula configurados (vacío si no hay catálogo).
func (uc *CatalogoUseCase) TiposFormula() *dto.TipoFormulaListResponse {
	if uc.tipos == nil {
		return &dto.TipoFormulaListResponse{Items: []entity.TipoFormula{}}
	}
	return &dto.TipoFormulaListResponse{Items: uc.tipos.Listar()}
}

func agruparCatalogo(productos []entity.Producto, presentaciones []entity.Presentacion) []entity.ProductoConPresentaciones {
	porSKU := make(map[string][]entity.Presentacion, len(productos))
	for _, pr := range presentaciones {
		if pr.Eliminado {
			continue
		}
		porSKU[pr.SKUID] = append(porSKU[pr.SKUID], pr)
	}
	out := make([]entity.ProductoConPresentaciones, 0, len(productos))
	for _, p := range productos {
		if p.Eliminado {
			continue
		}
		ps := porSKU[p.SKUID]
		sort.Slice(ps, func(i, j int) bool { return ps[i].IdPresentaOK < ps[j].IdPresentaOK })
		if ps == nil {
			ps = []entity.Presentacion{}
		}
		out = append(out, entity.ProductoConPresentaciones{Producto: p, Presentaciones: ps})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKUID < out[j].SKUID })
	return out
}

func ordenarProductos(ps []entity.ProductoConPresentaciones, orden string, desc bool) {
	menor := func(a, b entity.ProductoConPresentaciones) bool {
		switch orden {
		case dto.OrdenSKU:
			return a.SKUID < b.SKUID
		case dto.OrdenFecha:
			if !a.RegDate.Equal(b.RegDate.Time) {
				return a.RegDate.Before(b.RegDate.Time)
			}
		default:
			na, nb := formato.Normalizar(a.Nombre), formato.Normalizar(b.Nombre)
			if na != nb {
				return na < nb
			}
		}
		return a.SKUID < b.SKUID
	}
	sort.SliceStable(ps, func(i, j int) bool {
		if desc {
			return menor(ps[j], ps[i])
		}
		return menor(ps[i], ps[j])
	})
}

func contiene(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
