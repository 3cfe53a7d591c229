package entity

import "github.com/shopspring/decimal"

// PrecioItem es el precio de una presentación dentro de una lista de precios.
// Si Formula no está vacía, Precio y CostoFin son el resultado de evaluarla sobre CostoIni.
// El backend garantiza a lo sumo un PrecioItem por (IdPresentaOK, IdListaOK).
type PrecioItem struct {
	IdPrecioOK   string          `json:"IdPrecioOK"`
	IdListaOK    string          `json:"IdListaOK"`
	IdPresentaOK string          `json:"IdPresentaOK"`
	SKUID        string          `json:"SKUID"`
	CostoIni     decimal.Decimal `json:"CostoIni"`
	Formula      string          `json:"Formula"`
	Precio       decimal.Decimal `json:"Precio"`
	CostoFin     decimal.Decimal `json:"CostoFin"`
	RegUser      string          `json:"REGUSER,omitempty"`
	RegDate      Fecha           `json:"REGDATE"`
}
