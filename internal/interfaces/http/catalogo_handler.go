package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Precios-admin/internal/application/dto"
	"github.com/jhoicas/Precios-admin/internal/application/usecase"
)

// CatalogoHandler consultas de solo lectura sobre productos, categorías y tipos de fórmula.
type CatalogoHandler struct {
	uc *usecase.CatalogoUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// Productos godoc
// @Summary      Listar productos con presentaciones
// @Tags         catalogo
// @Produce      json
// @Param        q          query  string  false  "Texto sobre SKUID o nombre"
// @Param        categoria  query  string  false  "IdCategoriaOK"
// @Param        activos    query  bool    false  "Solo activos"
// @Param        orden      query  string  false  "nombre | skuid | fecha"
// @Param        desc       query  bool    false  "Orden descendente"
// @Param        limit      query  int     false  "Límite (default 20, máx 100)"
// @Param        offset     query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ProductoListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/productos [get]
func (h *CatalogoHandler) Productos(c *fiber.Ctx) error {
	var f dto.FiltroProductos
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	out, err := h.uc.ListarProductos(c.Context(), f)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Categorias godoc
// @Summary      Listar categorías
// @Tags         catalogo
// @Produce      json
// @Success      200  {object}  dto.CategoriaListResponse
// @Router       /api/categorias [get]
func (h *CatalogoHandler) Categorias(c *fiber.Ctx) error {
	out, err := h.uc.ListarCategorias(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// TiposFormula godoc
// @Summary      Tipos de fórmula configurados
// @Tags         catalogo
// @Produce      json
// @Success      200  {object}  dto.TipoFormulaListResponse
// @Router       /api/tipos-formula [get]
func (h *CatalogoHandler) TiposFormula(c *fiber.Ctx) error {
	return c.JSON(h.uc.TiposFormula())
}
