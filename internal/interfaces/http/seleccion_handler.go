package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Precios-admin/internal/application/dto"
	"github.com/jhoicas/Precios-admin/internal/application/usecase"
)

// SeleccionHandler sesiones de selección de productos y presentaciones.
// Todas las operaciones responden con el estado completo de la sesión.
type SeleccionHandler struct {
	uc *usecase.SeleccionUseCase
}

// NewSeleccionHandler construye el handler.
func NewSeleccionHandler(uc *usecase.SeleccionUseCase) *SeleccionHandler {
	return &SeleccionHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir sesión de selección
// @Description  Con IdPromoOK o IDLISTAOK las presentaciones ya asignadas quedan bloqueadas.
// @Tags         seleccion
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearSesionRequest  false  "Origen de los bloqueos"
// @Success      201   {object}  dto.SesionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/selecciones [post]
func (h *SeleccionHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearSesionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return cuerpoInvalido(c)
		}
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Estado de la sesión
// @Tags         seleccion
// @Produce      json
// @Param        id   path  string  true  "ID de sesión"
// @Success      200  {object}  dto.SesionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/selecciones/{id} [get]
func (h *SeleccionHandler) GetByID(c *fiber.Ctx) error {
	return h.responder(c, h.uc.Obtener)
}

// Delete godoc
// @Summary      Cerrar sesión
// @Tags         seleccion
// @Param        id   path  string  true  "ID de sesión"
// @Success      204
// @Router       /api/selecciones/{id} [delete]
func (h *SeleccionHandler) Delete(c *fiber.Ctx) error {
	h.uc.Cerrar(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// AlternarProducto godoc
// @Summary      Alternar producto
// @Description  Agrega todas las presentaciones activas libres o quita las transitorias del producto.
// @Tags         seleccion
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de sesión"
// @Param        body  body  dto.ProductoRequest  true  "Producto"
// @Success      200   {object}  dto.SesionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/selecciones/{id}/productos [post]
func (h *SeleccionHandler) AlternarProducto(c *fiber.Ctx) error {
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil || in.SKUID == "" {
		return cuerpoInvalido(c)
	}
	return h.responder(c, func(id string) (*dto.SesionResponse, error) { return h.uc.AlternarProducto(id, in.SKUID) })
}

// AlternarPresentacion godoc
// @Summary      Alternar presentación
// @Tags         seleccion
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de sesión"
// @Param        body  body  dto.PresentacionRequest  true  "Presentación"
// @Success      200   {object}  dto.SesionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/selecciones/{id}/presentaciones [post]
func (h *SeleccionHandler) AlternarPresentacion(c *fiber.Ctx) error {
	var in dto.PresentacionRequest
	if err := c.BodyParser(&in); err != nil || in.IdPresentaOK == "" {
		return cuerpoInvalido(c)
	}
	return h.responder(c, func(id string) (*dto.SesionResponse, error) {
		return h.uc.AlternarPresentacion(id, in.IdPresentaOK, in.SKUID)
	})
}

// Confirmar godoc
// @Summary      Confirmar selección transitoria
// @Tags         seleccion
// @Produce      json
// @Param        id   path  string  true  "ID de sesión"
// @Success      200  {object}  dto.SesionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/selecciones/{id}/confirmar [post]
func (h *SeleccionHandler) Confirmar(c *fiber.Ctx) error {
	return h.responder(c, h.uc.Confirmar)
}

// IniciarGestion godoc
// @Summary      Entrar en modo gestión
// @Tags         seleccion
// @Produce      json
// @Param        id   path  string  true  "ID de sesión"
// @Success      200  {object}  dto.SesionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/selecciones/{id}/gestion [post]
func (h *SeleccionHandler) IniciarGestion(c *fiber.Ctx) error {
	return h.responder(c, h.uc.IniciarGestion)
}

// CancelarGestion godoc
// @Summary      Salir de modo gestión sin aplicar
// @Tags         seleccion
// @Produce      json
// @Param        id   path  string  true  "ID de sesión"
// @Success      200  {object}  dto.SesionResponse
// @Router       /api/selecciones/{id}/gestion [delete]
func (h *SeleccionHandler) CancelarGestion(c *fiber.Ctx) error {
	return h.responder(c, h.uc.CancelarGestion)
}

// Marcar godoc
// @Summary      Marcar presentación para quitar
// @Tags         seleccion
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de sesión"
// @Param        body  body  dto.PresentacionRequest  true  "Presentación"
// @Success      200   {object}  dto.SesionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/selecciones/{id}/marcas [post]
func (h *SeleccionHandler) Marcar(c *fiber.Ctx) error {
	var in dto.PresentacionRequest
	if err := c.BodyParser(&in); err != nil || in.IdPresentaOK == "" {
		return cuerpoInvalido(c)
	}
	return h.responder(c, func(id string) (*dto.SesionResponse, error) { return h.uc.MarcarParaQuitar(id, in.IdPresentaOK) })
}

// Desmarcar godoc
// @Summary      Desmarcar presentación
// @Tags         seleccion
// @Produce      json
// @Param        id          path  string  true  "ID de sesión"
// @Param        idPresenta  path  string  true  "IdPresentaOK"
// @Success      200  {object}  dto.SesionResponse
// @Router       /api/selecciones/{id}/marcas/{idPresenta} [delete]
func (h *SeleccionHandler) Desmarcar(c *fiber.Ctx) error {
	idPresenta := c.Params("idPresenta")
	return h.responder(c, func(id string) (*dto.SesionResponse, error) { return h.uc.DesmarcarParaQuitar(id, idPresenta) })
}

// MarcarProducto godoc
// @Summary      Marcar producto completo para quitar
// @Tags         seleccion
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de sesión"
// @Param        body  body  dto.ProductoRequest  true  "Producto"
// @Success      200   {object}  dto.SesionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/selecciones/{id}/marcas/producto [post]
func (h *SeleccionHandler) MarcarProducto(c *fiber.Ctx) error {
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil || in.SKUID == "" {
		return cuerpoInvalido(c)
	}
	return h.responder(c, func(id string) (*dto.SesionResponse, error) { return h.uc.MarcarProductoParaQuitar(id, in.SKUID) })
}

// AplicarQuitas godoc
// @Summary      Quitar las presentaciones marcadas
// @Tags         seleccion
// @Produce      json
// @Param        id   path  string  true  "ID de sesión"
// @Success      200  {object}  dto.SesionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/selecciones/{id}/quitas [post]
func (h *SeleccionHandler) AplicarQuitas(c *fiber.Ctx) error {
	return h.responder(c, h.uc.AplicarQuitas)
}

func (h *SeleccionHandler) responder(c *fiber.Ctx, op func(id string) (*dto.SesionResponse, error)) error {
	out, err := op(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
