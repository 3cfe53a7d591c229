package dto

import (
	"time"

	"github.com/jhoicas/Precios-admin/internal/domain/selection"
)

// CrearSesionRequest origen de las presentaciones bloqueadas. Ambos vacíos = selección nueva.
type CrearSesionRequest struct {
	IdPromoOK string `json:"IdPromoOK"`
	IdListaOK string `json:"IDLISTAOK"`
}

// ProductoRequest operación sobre un producto completo.
type ProductoRequest struct {
	SKUID string `json:"SKUID" validate:"required"`
}

// PresentacionRequest operación sobre una presentación.
type PresentacionRequest struct {
	IdPresentaOK string `json:"IdPresentaOK" validate:"required"`
	SKUID        string `json:"SKUID"`
}

// SesionResponse estado de la sesión tras cada operación.
type SesionResponse struct {
	ID        string                `json:"id"`
	VenceEn   time.Time             `json:"vence_en"`
	Afectadas int                   `json:"afectadas"`
	Estado    selection.Instantanea `json:"estado"`
	Finales   []string              `json:"presentaciones_finales"`
	SKUsFinal []string              `json:"skus_finales"`
}
