package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Precios-admin/internal/application/dto"
	"github.com/jhoicas/Precios-admin/internal/application/usecase"
	"github.com/jhoicas/Precios-admin/internal/domain"
	"github.com/jhoicas/Precios-admin/internal/domain/pricing"
	"github.com/jhoicas/Precios-admin/internal/domain/selection"
)

// responderError traduce errores de dominio a status HTTP y dto.ErrorResponse.
func responderError(c *fiber.Ctx, err error) error {
	var (
		ev *pricing.ErrorValidacion
		ef *usecase.ErrorFormulario
		ec *selection.ErrorConflicto
	)
	switch {
	case errors.As(err, &ev):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "revise los campos marcados", Fields: ev.Campos})
	case errors.As(err, &ef):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "revise los campos marcados", Fields: ef.Campos})
	case errors.As(err, &ec):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: ec.Codigo, Message: ec.Motivo})
	case errors.Is(err, domain.ErrSesionVencida):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrSinCambios):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_CHANGES", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrBackend):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_ERROR", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func cuerpoInvalido(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
