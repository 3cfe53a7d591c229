package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Precios-admin/internal/application/dto"
)

// Locals key y cabecera del usuario que registra los cambios (REGUSER).
const (
	LocalUsuario   = "usuario"
	HeaderUsuario  = "X-Usuario"
	usuarioAnonimo = "anonimo"
)

// UsuarioMiddleware toma la etiqueta del usuario de la cabecera X-Usuario (o del query
// LoggedUser) y la deja en c.Locals. No autentica: el backend solo la registra en REGUSER.
// Con requerido=true las peticiones sin usuario se rechazan con 400.
func UsuarioMiddleware(requerido bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		usuario := strings.TrimSpace(c.Get(HeaderUsuario))
		if usuario == "" {
			usuario = strings.TrimSpace(c.Query("LoggedUser"))
		}
		if usuario == "" {
			if requerido {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_USER", Message: "cabecera " + HeaderUsuario + " requerida"})
			}
			usuario = usuarioAnonimo
		}
		c.Locals(LocalUsuario, usuario)
		return c.Next()
	}
}

// GetUsuario devuelve el usuario del contexto (después de UsuarioMiddleware).
func GetUsuario(c *fiber.Ctx) string {
	v := c.Locals(LocalUsuario)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
