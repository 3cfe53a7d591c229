package dto

import "github.com/jhoicas/Precios-admin/internal/domain/entity"

// ListaRequest campos editables de una lista de precios. Activo nil conserva el estado actual
// (en creación, nil equivale a activa).
type ListaRequest struct {
	DesLista        string       `json:"DESLISTA" validate:"required"`
	SKUSIDS         []string     `json:"SKUSIDS"`
	IdInstitutoOK   string       `json:"IDINSTITUTOOK"`
	IdTipoListaOK   string       `json:"IDTIPOLISTAOK"`
	IdTipoFormulaOK string       `json:"IDTIPOFORMULAOK"`
	FechaExpiraIni  entity.Fecha `json:"FECHAEXPIRAINI"`
	FechaExpiraFin  entity.Fecha `json:"FECHAEXPIRAFIN"`
	Activo          *bool        `json:"ACTIVED"`
}

// ListaEdicionResponse lista resultante y llamadas al backend que se ejecutaron, en orden.
type ListaEdicionResponse struct {
	Item     entity.ListaPrecios `json:"item"`
	Acciones []string            `json:"acciones"`
}

// ListaListResponse listas de precios.
type ListaListResponse struct {
	Items []entity.ListaPrecios `json:"items"`
}

// AplicarSeleccionRequest sesión cuyo resultado final reemplaza SKUSIDS.
type AplicarSeleccionRequest struct {
	SesionID string `json:"sesion_id" validate:"required"`
}
