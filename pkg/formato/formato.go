// Package formato da formato en español (Colombia) a montos y fechas para
// reportes y respuestas legibles.
package formato

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var printer = message.NewPrinter(language.Spanish)

var meses = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Numero formatea d con separador de miles "." y decimal "," con dos decimales.
// Ej: 1234567.891 → "1.234.567,89"
func Numero(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%.2f", f)
}

// Moneda antepone el símbolo de pesos a Numero. Los negativos llevan el signo antes del símbolo.
func Moneda(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$ " + Numero(d.Abs())
	}
	return "$ " + Numero(d)
}

// Porcentaje formatea un valor ya expresado en puntos porcentuales. Ej: 15 → "15,00 %"
func Porcentaje(d decimal.Decimal) string {
	return Numero(d) + " %"
}

// Fecha devuelve la fecha larga en español. Ej: "18 de octubre de 2026"
func Fecha(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), meses[t.Month()-1], t.Year())
}

// FechaCorta devuelve dd/mm/aaaa.
func FechaCorta(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02/01/2006")
}

// Vigencia describe un rango de fechas; extremos vacíos se muestran como "sin límite".
func Vigencia(ini, fin time.Time) string {
	desde, hasta := "sin límite", "sin límite"
	if !ini.IsZero() {
		desde = FechaCorta(ini)
	}
	if !fin.IsZero() {
		hasta = FechaCorta(fin)
	}
	return strings.Join([]string{desde, hasta}, " – ")
}

// Normalizar pasa a minúsculas y quita tildes para comparar textos de búsqueda.
// Ej: "Café Molido" → "cafe molido"
func Normalizar(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
