package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Precios-admin/internal/application/dto"
	"github.com/jhoicas/Precios-admin/internal/domain/repository"
	"github.com/jhoicas/Precios-admin/pkg/formato"
)

// HojaPreciosUseCase genera el PDF de precios de una lista.
type HojaPreciosUseCase struct {
	listas    repository.ListaRepository
	precios   repository.PrecioRepository
	catalogo  repository.CatalogoRepository
	tipos     repository.TipoFormulaRepository
	generador HojaPreciosGenerator
	ahora     func() time.Time
}

// NewHojaPreciosUseCase construye el caso de uso.
func NewHojaPreciosUseCase(
	listas repository.ListaRepository,
	precios repository.PrecioRepository,
	catalogo repository.CatalogoRepository,
	tipos repository.TipoFormulaRepository,
	generador HojaPreciosGenerator,
) *HojaPreciosUseCase {
	return &HojaPreciosUseCase{
		listas: listas, precios: precios, catalogo: catalogo, tipos: tipos,
		generador: generador, ahora: time.Now,
	}
}

// Generar devuelve el PDF y un nombre de archivo sugerido.
func (uc *HojaPreciosUseCase) Generar(ctx context.Context, usuario, idListaOK string) ([]byte, string, error) {
	hoja, err := uc.Armar(ctx, usuario, idListaOK)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generador.GenerarHojaPrecios(ctx, hoja)
	if err != nil {
		return nil, "", fmt.Errorf("generar hoja de precios: %w", err)
	}
	return pdf, fmt.Sprintf("hoja-precios-%s.pdf", idListaOK), nil
}

// Armar reúne lista, precios y nombres del catálogo, ordenado por producto y presentación.
func (uc *HojaPreciosUseCase) Armar(ctx context.Context, usuario, idListaOK string) (*dto.HojaPrecios, error) {
	lista, err := uc.listas.GetByID(ctx, idListaOK)
	if err != nil {
		return nil, err
	}
	precios, err := uc.precios.ListByLista(ctx, idListaOK)
	if err != nil {
		return nil, err
	}
	productos, err := uc.catalogo.ListProductos(ctx)
	if err != nil {
		return nil, err
	}
	presentaciones, err := uc.catalogo.ListPresentaciones(ctx)
	if err != nil {
		return nil, err
	}

	nombreProducto := make(map[string]string, len(productos))
	for _, p := range productos {
		nombreProducto[p.SKUID] = p.Nombre
	}
	nombrePres := make(map[string]string, len(presentaciones))
	for _, p := range presentaciones {
		nombrePres[p.IdPresentaOK] = p.Nombre
	}

	lineas := make([]dto.LineaHoja, 0, len(precios))
	for _, p := range precios {
		l := dto.LineaHoja{
			SKUID:              p.SKUID,
			NombreProducto:     nombreProducto[p.SKUID],
			NombrePresentacion: nombrePres[p.IdPresentaOK],
			CostoIni:           p.CostoIni,
			Formula:            p.Formula,
			Precio:             p.Precio,
		}
		if l.NombreProducto == "" {
			l.NombreProducto = p.SKUID
		}
		if l.NombrePresentacion == "" {
			l.NombrePresentacion = p.IdPresentaOK
		}
		lineas = append(lineas, l)
	}
	sort.SliceStable(lineas, func(i, j int) bool {
		a, b := formato.Normalizar(lineas[i].NombreProducto), formato.Normalizar(lineas[j].NombreProducto)
		if a != b {
			return a < b
		}
		return formato.Normalizar(lineas[i].NombrePresentacion) < formato.Normalizar(lineas[j].NombrePresentacion)
	})

	tipo := lista.IdTipoFormulaOK
	if uc.tipos != nil {
		if t, ok := uc.tipos.Obtener(lista.IdTipoFormulaOK); ok {
			tipo = t.Nombre
		}
	}

	return &dto.HojaPrecios{
		Lista:       *lista,
		TipoFormula: tipo,
		Lineas:      lineas,
		GeneradaEn:  uc.ahora(),
		GeneradaPor: usuario,
	}, nil
}
