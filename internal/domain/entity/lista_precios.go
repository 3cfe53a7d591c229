package entity

// ListaPrecios es una colección nombrada de SKUs con un tipo de fórmula y ventana de vigencia.
// ACTIVED no se modifica con UpdateOne: el backend expone ActivateOne / DeleteLogic para eso.
type ListaPrecios struct {
	IdListaOK       string   `json:"IDLISTAOK"`
	DesLista        string   `json:"DESLISTA"`
	SKUSIDS         []string `json:"SKUSIDS"`
	IdInstitutoOK   string   `json:"IDINSTITUTOOK"`
	IdTipoListaOK   string   `json:"IDTIPOLISTAOK"`
	IdTipoFormulaOK string   `json:"IDTIPOFORMULAOK"`
	FechaExpiraIni  Fecha    `json:"FECHAEXPIRAINI"`
	FechaExpiraFin  Fecha    `json:"FECHAEXPIRAFIN"`
	Activo          bool     `json:"ACTIVED"`
	Eliminado       bool     `json:"DELETED"`
	RegUser         string   `json:"REGUSER,omitempty"`
	RegDate         Fecha    `json:"REGDATE"`
}

// MismosCampos compara los campos editables (todo salvo ACTIVED/DELETED y auditoría).
func (l ListaPrecios) MismosCampos(otra ListaPrecios) bool {
	if l.DesLista != otra.DesLista ||
		l.IdInstitutoOK != otra.IdInstitutoOK ||
		l.IdTipoListaOK != otra.IdTipoListaOK ||
		l.IdTipoFormulaOK != otra.IdTipoFormulaOK ||
		!l.FechaExpiraIni.Equal(otra.FechaExpiraIni.Time) ||
		!l.FechaExpiraFin.Equal(otra.FechaExpiraFin.Time) {
		return false
	}
	if len(l.SKUSIDS) != len(otra.SKUSIDS) {
		return false
	}
	vistos := make(map[string]int, len(l.SKUSIDS))
	for _, s := range l.SKUSIDS {
		vistos[s]++
	}
	for _, s := range otra.SKUSIDS {
		if vistos[s] == 0 {
			return false
		}
		vistos[s]--
	}
	return true
}
