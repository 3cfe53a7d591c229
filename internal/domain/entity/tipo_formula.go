package entity

// TipoFormula entrada del catálogo de IDTIPOFORMULAOK. FormulaBase es la fórmula sugerida
// al crear precios de una lista de este tipo; vacía significa precio manual.
type TipoFormula struct {
	ID          string `yaml:"id" json:"id"`
	Nombre      string `yaml:"nombre" json:"nombre"`
	Descripcion string `yaml:"descripcion,omitempty" json:"descripcion,omitempty"`
	FormulaBase string `yaml:"formula_base,omitempty" json:"formula_base,omitempty"`
}
