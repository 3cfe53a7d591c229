package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Precios-admin/internal/application/dto"
	"github.com/jhoicas/Precios-admin/internal/application/usecase"
)

// PromocionHandler promociones y vista previa de descuentos.
type PromocionHandler struct {
	uc *usecase.PromocionUseCase
}

// NewPromocionHandler construye el handler.
func NewPromocionHandler(uc *usecase.PromocionUseCase) *PromocionHandler {
	return &PromocionHandler{uc: uc}
}

// List godoc
// @Summary      Listar promociones
// @Tags         promociones
// @Produce      json
// @Success      200  {object}  dto.PromocionListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/promociones [get]
func (h *PromocionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener promoción
// @Tags         promociones
// @Produce      json
// @Param        id   path  string  true  "IdPromoOK"
// @Success      200  {object}  entity.Promocion
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/promociones/{id} [get]
func (h *PromocionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear promoción
// @Tags         promociones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PromocionRequest  true  "Datos de la promoción"
// @Success      201   {object}  entity.Promocion
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/promociones [post]
func (h *PromocionHandler) Create(c *fiber.Ctx) error {
	var in dto.PromocionRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Crear(c.Context(), GetUsuario(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar promoción
// @Tags         promociones
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "IdPromoOK"
// @Param        body  body  dto.PromocionRequest  true  "Datos de la promoción"
// @Success      200   {object}  dto.PromocionEdicionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/promociones/{id} [put]
func (h *PromocionHandler) Update(c *fiber.Ctx) error {
	var in dto.PromocionRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Actualizar(c.Context(), GetUsuario(c), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Activate godoc
// @Summary      Activar promoción
// @Tags         promociones
// @Param        id   path  string  true  "IdPromoOK"
// @Success      204
// @Router       /api/promociones/{id}/activar [post]
func (h *PromocionHandler) Activate(c *fiber.Ctx) error {
	if err := h.uc.Activar(c.Context(), GetUsuario(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar promoción
// @Tags         promociones
// @Param        id      path   string  true   "IdPromoOK"
// @Param        fisico  query  bool    false  "Borrado físico"
// @Success      204
// @Router       /api/promociones/{id} [delete]
func (h *PromocionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), GetUsuario(c), c.Params("id"), c.QueryBool("fisico", false)); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ProductosAplicables godoc
// @Summary      Construir productos aplicables
// @Description  Arma la instantánea de presentaciones finales de la sesión con el precio de la lista indicada.
// @Tags         promociones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConstruirProductosRequest  true  "Sesión y lista"
// @Success      200   {object}  dto.ProductosAplicablesResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/promociones/productos-aplicables [post]
func (h *PromocionHandler) ProductosAplicables(c *fiber.Ctx) error {
	var in dto.ConstruirProductosRequest
	if err := c.BodyParser(&in); err != nil || in.SesionID == "" {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.ConstruirProductosAplicables(c.Context(), in.SesionID, in.IdListaOK)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// PreviewDescuentos godoc
// @Summary      Vista previa de descuentos
// @Tags         promociones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PreviewDescuentosRequest  true  "Productos y descuento"
// @Success      200   {object}  dto.PreviewDescuentosResponse
// @Router       /api/promociones/preview-descuentos [post]
func (h *PromocionHandler) PreviewDescuentos(c *fiber.Ctx) error {
	var in dto.PreviewDescuentosRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	return c.JSON(h.uc.PreviewDescuentos(in))
}
