package entity

// Categoria representa una categoría de productos (jerárquica opcional).
type Categoria struct {
	CatID     string `json:"CATID"`
	Nombre    string `json:"Nombre"`
	PadreID   string `json:"PadreCATID,omitempty"` // vacío si es raíz
	Activo    bool   `json:"ACTIVED"`
	Eliminado bool   `json:"DELETED"`
}
