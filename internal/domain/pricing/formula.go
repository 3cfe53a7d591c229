// Package pricing contiene la lógica de precios del dominio: evaluación de fórmulas
// sobre el costo, conciliación de registros de precio y cálculo de descuentos.
package pricing

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// TokenCosto es el marcador que el usuario escribe en la fórmula para referirse al costo.
const TokenCosto = "COSTO"

var tokenCostoRe = regexp.MustCompile(`(?i)` + TokenCosto)

// Límites de la fórmula. El parser es recursivo; sin tope de anidamiento una entrada
// como "((((…" agota la pila de la goroutine y tumba el proceso.
const (
	LongitudMaximaFormula    = 1024
	ProfundidadMaximaFormula = 64
)

var (
	// ErrDivisionPorCero se produce al dividir por una subexpresión que evalúa a cero.
	ErrDivisionPorCero = errors.New("fórmula: división por cero")
	// ErrFormulaMuyLarga rechaza fórmulas de más de LongitudMaximaFormula bytes.
	ErrFormulaMuyLarga = fmt.Errorf("fórmula: supera %d caracteres", LongitudMaximaFormula)
	// ErrFormulaMuyProfunda rechaza anidamientos de paréntesis o signos unarios de más de ProfundidadMaximaFormula niveles.
	ErrFormulaMuyProfunda = fmt.Errorf("fórmula: supera %d niveles de anidamiento", ProfundidadMaximaFormula)
)

// Expr es un nodo del árbol de la fórmula. Solo existen las variantes de este archivo.
type Expr interface {
	Eval() (decimal.Decimal, error)
	expr()
}

// Num literal decimal.
type Num struct{ Valor decimal.Decimal }

// Add suma.
type Add struct{ Izq, Der Expr }

// Sub resta. El menos unario se representa como Sub{Num 0, x}.
type Sub struct{ Izq, Der Expr }

// Mul producto.
type Mul struct{ Izq, Der Expr }

// Div cociente.
type Div struct{ Izq, Der Expr }

// Paren agrupación explícita.
type Paren struct{ Interna Expr }

func (Num) expr()   {}
func (Add) expr()   {}
func (Sub) expr()   {}
func (Mul) expr()   {}
func (Div) expr()   {}
func (Paren) expr() {}

func (n Num) Eval() (decimal.Decimal, error) { return n.Valor, nil }

func (n Add) Eval() (decimal.Decimal, error) {
	a, b, err := evalPar(n.Izq, n.Der)
	if err != nil {
		return decimal.Zero, err
	}
	return a.Add(b), nil
}

func (n Sub) Eval() (decimal.Decimal, error) {
	a, b, err := evalPar(n.Izq, n.Der)
	if err != nil {
		return decimal.Zero, err
	}
	return a.Sub(b), nil
}

func (n Mul) Eval() (decimal.Decimal, error) {
	a, b, err := evalPar(n.Izq, n.Der)
	if err != nil {
		return decimal.Zero, err
	}
	return a.Mul(b), nil
}

func (n Div) Eval() (decimal.Decimal, error) {
	a, b, err := evalPar(n.Izq, n.Der)
	if err != nil {
		return decimal.Zero, err
	}
	if b.IsZero() {
		return decimal.Zero, ErrDivisionPorCero
	}
	return a.Div(b), nil
}

func (n Paren) Eval() (decimal.Decimal, error) { return n.Interna.Eval() }

func evalPar(izq, der Expr) (decimal.Decimal, decimal.Decimal, error) {
	a, err := izq.Eval()
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	b, err := der.Eval()
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return a, b, nil
}

// SustituirCosto reemplaza todas las apariciones de COSTO (sin distinguir mayúsculas) por el costo.
// Los costos negativos se envuelven en paréntesis para que "2*COSTO" siga siendo válido.
func SustituirCosto(costo decimal.Decimal, formula string) string {
	valor := costo.String()
	if costo.IsNegative() {
		valor = "(" + valor + ")"
	}
	return tokenCostoRe.ReplaceAllLiteralString(formula, valor)
}

// ParsearFormula analiza una expresión aritmética ya sustituida.
// Gramática:
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := ('+' | '-') factor | numero | '(' expr ')'
//
// La profundidad de anidamiento está acotada por ProfundidadMaximaFormula.
func ParsearFormula(entrada string) (Expr, error) {
	p := &parser{src: entrada}
	if strings.TrimSpace(entrada) == "" {
		return nil, errors.New("fórmula vacía")
	}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.saltarEspacios()
	if p.pos < len(p.src) {
		return nil, fmt.Errorf("fórmula: carácter inesperado %q en posición %d", p.src[p.pos], p.pos)
	}
	return e, nil
}

// ValidarFormula verifica que la fórmula, con COSTO sustituido por 1, sea aritmética válida.
// A diferencia de EvaluarFormula devuelve el motivo del rechazo.
func ValidarFormula(formula string) error {
	if strings.TrimSpace(formula) == "" {
		return errors.New("fórmula vacía")
	}
	if len(formula) > LongitudMaximaFormula {
		return ErrFormulaMuyLarga
	}
	e, err := ParsearFormula(SustituirCosto(decimal.NewFromInt(1), formula))
	if err != nil {
		return err
	}
	_, err = e.Eval()
	return err
}

// EvaluarFormula calcula el precio derivado de costoBase según la fórmula.
// Devuelve 0 si la fórmula está vacía o no es aritmética válida, si el costo es cero,
// si hay división por cero o si excede los límites de longitud o anidamiento.
// El resultado se redondea a 2 decimales, mitad lejos de cero.
func EvaluarFormula(costoBase decimal.Decimal, formula string) decimal.Decimal {
	if strings.TrimSpace(formula) == "" || costoBase.IsZero() || len(formula) > LongitudMaximaFormula {
		return decimal.Zero
	}
	e, err := ParsearFormula(SustituirCosto(costoBase, formula))
	if err != nil {
		return decimal.Zero
	}
	v, err := e.Eval()
	if err != nil {
		return decimal.Zero
	}
	return v.Round(2)
}

// CalcularPrecio aplica la regla del PrecioItem: con fórmula, Precio y CostoFin salen de evaluarla;
// sin fórmula, Precio es precioManual y CostoFin es el costo inicial.
func CalcularPrecio(costoIni decimal.Decimal, formula string, precioManual decimal.Decimal) (precio, costoFin decimal.Decimal) {
	if strings.TrimSpace(formula) == "" {
		return precioManual, costoIni
	}
	v := EvaluarFormula(costoIni, formula)
	return v, v
}

type parser struct {
	src  string
	pos  int
	prof int
}

func (p *parser) saltarEspacios() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) mirar() (byte, bool) {
	p.saltarEspacios()
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) expr() (Expr, error) {
	izq, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		c, ok := p.mirar()
		if !ok || (c != '+' && c != '-') {
			return izq, nil
		}
		p.pos++
		der, err := p.term()
		if err != nil {
			return nil, err
		}
		if c == '+' {
			izq = Add{Izq: izq, Der: der}
		} else {
			izq = Sub{Izq: izq, Der: der}
		}
	}
}

func (p *parser) term() (Expr, error) {
	izq, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		c, ok := p.mirar()
		if !ok || (c != '*' && c != '/') {
			return izq, nil
		}
		p.pos++
		der, err := p.factor()
		if err != nil {
			return nil, err
		}
		if c == '*' {
			izq = Mul{Izq: izq, Der: der}
		} else {
			izq = Div{Izq: izq, Der: der}
		}
	}
}

func (p *parser) factor() (Expr, error) {
	if p.prof >= ProfundidadMaximaFormula {
		return nil, ErrFormulaMuyProfunda
	}
	p.prof++
	defer func() { p.prof-- }()

	c, ok := p.mirar()
	if !ok {
		return nil, errors.New("fórmula: se esperaba un operando al final")
	}
	switch {
	case c == '+':
		p.pos++
		return p.factor()
	case c == '-':
		p.pos++
		x, err := p.factor()
		if err != nil {
			return nil, err
		}
		return Sub{Izq: Num{Valor: decimal.Zero}, Der: x}, nil
	case c == '(':
		p.pos++
		interna, err := p.expr()
		if err != nil {
			return nil, err
		}
		if c, ok := p.mirar(); !ok || c != ')' {
			return nil, fmt.Errorf("fórmula: falta ')' en posición %d", p.pos)
		}
		p.pos++
		return Paren{Interna: interna}, nil
	case c == '.' || (c >= '0' && c <= '9'):
		return p.numero()
	default:
		return nil, fmt.Errorf("fórmula: carácter inesperado %q en posición %d", c, p.pos)
	}
}

func (p *parser) numero() (Expr, error) {
	inicio := p.pos
	punto := false
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '.' {
			if punto {
				return nil, fmt.Errorf("fórmula: número mal formado en posición %d", inicio)
			}
			punto = true
			p.pos++
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		p.pos++
	}
	lit := p.src[inicio:p.pos]
	if lit == "." {
		return nil, fmt.Errorf("fórmula: número mal formado en posición %d", inicio)
	}
	v, err := decimal.NewFromString(lit)
	if err != nil {
		return nil, fmt.Errorf("fórmula: número %q: %w", lit, err)
	}
	return Num{Valor: v}, nil
}
