package pricing

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Precios-admin/internal/domain/entity"
)

// Modo indica qué operación del backend debe ejecutarse con el payload conciliado.
type Modo string

const (
	ModoCrear      Modo = "crear"
	ModoActualizar Modo = "actualizar"
)

// Códigos de validación por campo.
const (
	CostoFaltante    = "CostoFaltante"
	FormulaFaltante  = "FormulaFaltante"
	PrecioNoPositivo = "PrecioNoPositivo"
)

// ErrorValidacion agrupa los campos que no pasaron validación. Cada campo se valida
// por separado para que la UI muestre todos los mensajes a la vez.
type ErrorValidacion struct {
	Campos map[string]string // campo → código
}

func (e *ErrorValidacion) Error() string {
	campos := make([]string, 0, len(e.Campos))
	for c, cod := range e.Campos {
		campos = append(campos, c+"="+cod)
	}
	sort.Strings(campos)
	return "validación de precio: " + strings.Join(campos, ", ")
}

// Tiene informa si el código aparece en algún campo.
func (e *ErrorValidacion) Tiene(codigo string) bool {
	for _, c := range e.Campos {
		if c == codigo {
			return true
		}
	}
	return false
}

// GeneradorID produce identificadores para precios nuevos.
type GeneradorID func(idPresentaOK, idListaOK string) string

// IDPorTiempo genera "<IdPresentaOK>-<unixms>-<8 hex de uuid>". El sufijo aleatorio evita
// colisiones en creaciones consecutivas dentro del mismo milisegundo.
func IDPorTiempo(idPresentaOK, _ string) string {
	sufijo := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s", idPresentaOK, time.Now().UnixMilli(), sufijo)
}

// EntradaConciliacion datos que el usuario capturó para un precio.
type EntradaConciliacion struct {
	IdPresentaOK string
	SKUID        string
	IdListaOK    string
	CostoIni     decimal.Decimal
	Formula      string
	RegUser      string
}

// Conciliacion resultado explícito: qué hacer y con qué payload.
type Conciliacion struct {
	Modo    Modo
	Payload entity.PrecioItem
}

// Conciliador decide si un precio se crea o se actualiza.
type Conciliador struct {
	NuevoID GeneradorID
	Ahora   func() time.Time
}

// NuevoConciliador con el generador de ids por tiempo y reloj real.
func NuevoConciliador() *Conciliador {
	return &Conciliador{NuevoID: IDPorTiempo, Ahora: time.Now}
}

// Conciliar busca en existentes (ya filtrados por presentación) el precio de la lista destino.
// Si existe, el resultado es ModoActualizar con su IdPrecioOK; si no, ModoCrear con un id nuevo.
// Precio y CostoFin se recalculan siempre con la fórmula.
func (c *Conciliador) Conciliar(existentes []entity.PrecioItem, in EntradaConciliacion) (Conciliacion, error) {
	precio := EvaluarFormula(in.CostoIni, in.Formula)

	campos := map[string]string{}
	if !in.CostoIni.IsPositive() {
		campos["CostoIni"] = CostoFaltante
	}
	if strings.TrimSpace(in.Formula) == "" {
		campos["Formula"] = FormulaFaltante
	}
	if !precio.IsPositive() {
		campos["Precio"] = PrecioNoPositivo
	}
	if len(campos) > 0 {
		return Conciliacion{}, &ErrorValidacion{Campos: campos}
	}

	payload := entity.PrecioItem{
		IdListaOK:    in.IdListaOK,
		IdPresentaOK: in.IdPresentaOK,
		SKUID:        in.SKUID,
		CostoIni:     in.CostoIni,
		Formula:      strings.TrimSpace(in.Formula),
		Precio:       precio,
		CostoFin:     precio,
		RegUser:      in.RegUser,
		RegDate:      entity.NuevaFecha(c.Ahora()),
	}

	for _, p := range existentes {
		if p.IdListaOK == in.IdListaOK {
			payload.IdPrecioOK = p.IdPrecioOK
			if payload.SKUID == "" {
				payload.SKUID = p.SKUID
			}
			return Conciliacion{Modo: ModoActualizar, Payload: payload}, nil
		}
	}

	payload.IdPrecioOK = c.NuevoID(in.IdPresentaOK, in.IdListaOK)
	return Conciliacion{Modo: ModoCrear, Payload: payload}, nil
}

// ConciliarPrecio es la forma funcional de Conciliador.Conciliar con los valores por defecto.
func ConciliarPrecio(existentes []entity.PrecioItem, in EntradaConciliacion) (Conciliacion, error) {
	return NuevoConciliador().Conciliar(existentes, in)
}
