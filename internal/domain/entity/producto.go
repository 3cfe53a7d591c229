package entity

// Producto representa un producto del catálogo externo (dueño de presentaciones).
type Producto struct {
	SKUID       string   `json:"SKUID"`
	Nombre      string   `json:"PRODUCTNAME"`
	Descripcion string   `json:"DESSKU"`
	Marca       string   `json:"MARCA,omitempty"`
	UnidadMed   string   `json:"IDUNIDADMEDIDA,omitempty"`
	Categorias  []string `json:"CATEGORIAS"`
	Activo      bool     `json:"ACTIVED"`
	Eliminado   bool     `json:"DELETED"`
	RegUser     string   `json:"REGUSER,omitempty"`
	RegDate     Fecha    `json:"REGDATE"`
}

// Presentacion es una variante vendible de un producto (ej. "Caja 500g").
// La crea el catálogo externo; aquí es de solo lectura.
type Presentacion struct {
	IdPresentaOK string `json:"IdPresentaOK"`
	SKUID        string `json:"SKUID"`
	Nombre       string `json:"NOMBREPRESENTACION"`
	Descripcion  string `json:"Descripcion,omitempty"`
	Activo       bool   `json:"ACTIVED"`
	Eliminado    bool   `json:"DELETED"`
}

// Vigente informa si la presentación puede elegirse (activa y no eliminada).
func (p Presentacion) Vigente() bool {
	return p.Activo && !p.Eliminado
}

// ProductoConPresentaciones agrupa un producto con sus variantes.
type ProductoConPresentaciones struct {
	Producto
	Presentaciones []Presentacion `json:"presentaciones"`
}
