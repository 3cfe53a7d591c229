package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Precios-admin/internal/application/dto"
	"github.com/jhoicas/Precios-admin/internal/application/usecase"
)

// PrecioHandler precios por presentación y vista previa de fórmulas.
type PrecioHandler struct {
	uc *usecase.PrecioUseCase
}

// NewPrecioHandler construye el handler.
func NewPrecioHandler(uc *usecase.PrecioUseCase) *PrecioHandler {
	return &PrecioHandler{uc: uc}
}

// Preview godoc
// @Summary      Vista previa de fórmula
// @Description  Sustituye COSTO, evalúa la fórmula y devuelve precio y costo final sin guardar.
// @Tags         precios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PreviewFormulaRequest  true  "Costo y fórmula"
// @Success      200   {object}  dto.PreviewFormulaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/precios/preview [post]
func (h *PrecioHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewFormulaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	return c.JSON(h.uc.PreviewFormula(in))
}

// Guardar godoc
// @Summary      Guardar precio
// @Description  Crea el precio de la presentación en la lista o actualiza el existente.
// @Tags         precios
// @Accept       json
// @Produce      json
// @Param        X-Usuario  header  string  false  "Usuario que registra"
// @Param        body  body  dto.GuardarPrecioRequest  true  "Precio capturado"
// @Success      200   {object}  dto.GuardarPrecioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/precios [post]
func (h *PrecioHandler) Guardar(c *fiber.Ctx) error {
	var in dto.GuardarPrecioRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Guardar(c.Context(), GetUsuario(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ListarPorPresentacion godoc
// @Summary      Precios de una presentación
// @Tags         precios
// @Produce      json
// @Param        id   path  string  true  "IdPresentaOK"
// @Success      200  {object}  dto.PrecioListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/presentaciones/{id}/precios [get]
func (h *PrecioHandler) ListarPorPresentacion(c *fiber.Ctx) error {
	out, err := h.uc.ListarPorPresentacion(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ListarPorLista godoc
// @Summary      Precios de una lista
// @Tags         precios
// @Produce      json
// @Param        id   path  string  true  "IDLISTAOK"
// @Success      200  {object}  dto.PrecioListResponse
// @Router       /api/listas/{id}/precios [get]
func (h *PrecioHandler) ListarPorLista(c *fiber.Ctx) error {
	out, err := h.uc.ListarPorLista(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar precio
// @Tags         precios
// @Param        id   path  string  true  "IdPrecioOK"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/precios/{id} [delete]
func (h *PrecioHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), GetUsuario(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
