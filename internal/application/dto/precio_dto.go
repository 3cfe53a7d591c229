package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Precios-admin/internal/domain/entity"
)

// PreviewFormulaRequest costo y fórmula a evaluar sin guardar nada.
type PreviewFormulaRequest struct {
	CostoIni decimal.Decimal `json:"CostoIni"`
	Formula  string          `json:"Formula"`
}

// PreviewFormulaResponse resultado de la vista previa. Error explica por qué la fórmula no es válida.
type PreviewFormulaResponse struct {
	Expresion string          `json:"expresion"`
	Precio    decimal.Decimal `json:"Precio"`
	CostoFin  decimal.Decimal `json:"CostoFin"`
	Valida    bool            `json:"valida"`
	Error     string          `json:"error,omitempty"`
}

// GuardarPrecioRequest precio capturado para una presentación en una lista.
type GuardarPrecioRequest struct {
	IdPresentaOK string          `json:"IdPresentaOK" validate:"required"`
	SKUID        string          `json:"SKUID"`
	IdListaOK    string          `json:"IdListaOK" validate:"required"`
	CostoIni     decimal.Decimal `json:"CostoIni"`
	Formula      string          `json:"Formula"`
}

// GuardarPrecioResponse indica si el precio se creó o se actualizó.
type GuardarPrecioResponse struct {
	Modo   string            `json:"modo"`
	Precio entity.PrecioItem `json:"precio"`
}

// PrecioListResponse precios de una presentación o de una lista.
type PrecioListResponse struct {
	Items []entity.PrecioItem `json:"items"`
}
