package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Precios-admin/internal/application/dto"
	"github.com/jhoicas/Precios-admin/internal/application/usecase"
)

// ListaHandler listas de precios y su hoja PDF.
type ListaHandler struct {
	uc   *usecase.ListaUseCase
	hoja *usecase.HojaPreciosUseCase
}

// NewListaHandler construye el handler.
func NewListaHandler(uc *usecase.ListaUseCase, hoja *usecase.HojaPreciosUseCase) *ListaHandler {
	return &ListaHandler{uc: uc, hoja: hoja}
}

// List godoc
// @Summary      Listar listas de precios
// @Tags         listas
// @Produce      json
// @Success      200  {object}  dto.ListaListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/listas [get]
func (h *ListaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener lista de precios
// @Tags         listas
// @Produce      json
// @Param        id   path  string  true  "IDLISTAOK"
// @Success      200  {object}  entity.ListaPrecios
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/listas/{id} [get]
func (h *ListaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear lista de precios
// @Tags         listas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ListaRequest  true  "Datos de la lista"
// @Success      201   {object}  entity.ListaPrecios
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/listas [post]
func (h *ListaHandler) Create(c *fiber.Ctx) error {
	var in dto.ListaRequest
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
// @Summary      Actualizar lista de precios
// @Description  UpdateOne no cambia ACTIVED; si ACTIVED cambia se llama además ActivateOne o DeleteLogic.
// @Tags         listas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "IDLISTAOK"
// @Param        body  body  dto.ListaRequest  true  "Datos de la lista"
// @Success      200   {object}  dto.ListaEdicionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/listas/{id} [put]
func (h *ListaHandler) Update(c *fiber.Ctx) error {
	var in dto.ListaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Actualizar(c.Context(), GetUsuario(c), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// AplicarSeleccion godoc
// @Summary      Reemplazar SKUSIDS desde una sesión de selección
// @Tags         listas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "IDLISTAOK"
// @Param        body  body  dto.AplicarSeleccionRequest  true  "Sesión"
// @Success      200   {object}  dto.ListaEdicionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/listas/{id}/seleccion [put]
func (h *ListaHandler) AplicarSeleccion(c *fiber.Ctx) error {
	var in dto.AplicarSeleccionRequest
	if err := c.BodyParser(&in); err != nil || in.SesionID == "" {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.AplicarSeleccion(c.Context(), GetUsuario(c), c.Params("id"), in.SesionID)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Activate godoc
// @Summary      Activar lista de precios
// @Tags         listas
// @Param        id   path  string  true  "IDLISTAOK"
// @Success      204
// @Router       /api/listas/{id}/activar [post]
func (h *ListaHandler) Activate(c *fiber.Ctx) error {
	if err := h.uc.Activar(c.Context(), GetUsuario(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar lista de precios
// @Description  Por defecto borrado lógico (DeleteLogic); con fisico=true borrado físico.
// @Tags         listas
// @Param        id      path   string  true   "IDLISTAOK"
// @Param        fisico  query  bool    false  "Borrado físico"
// @Success      204
// @Router       /api/listas/{id} [delete]
func (h *ListaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), GetUsuario(c), c.Params("id"), c.QueryBool("fisico", false)); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HojaPDF godoc
// @Summary      Hoja de precios en PDF
// @Tags         listas
// @Produce      application/pdf
// @Param        id   path  string  true  "IDLISTAOK"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/listas/{id}/hoja.pdf [get]
func (h *ListaHandler) HojaPDF(c *fiber.Ctx) error {
	pdf, nombre, err := h.hoja.Generar(c.Context(), GetUsuario(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+nombre+`"`)
	return c.Send(pdf)
}
