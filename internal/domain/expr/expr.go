// Package expr evalúa expresiones aritméticas restringidas escritas por el
// usuario en campos de precio ("10/2", "3+1.5", "8*0.9", "3,5").
//
// La lista blanca de caracteres se aplica ANTES de parsear: cualquier
// carácter fuera de dígitos, + - * / ( ) y punto decimal rechaza la entrada
// completa. No hay identificadores, llamadas ni ninguna otra sintaxis; el
// parser es descenso recursivo sobre esa gramática cerrada.
package expr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrBlank indica entrada vacía o solo espacios. El significado (cero o
	// "sin valor") lo decide cada contexto de uso, no el evaluador.
	ErrBlank = errors.New("expresión vacía")
	// ErrBadChar indica un carácter fuera de la lista blanca.
	ErrBadChar = errors.New("carácter no permitido en la expresión")
	// ErrMalformed indica una expresión sintácticamente inválida o con
	// resultado no finito (por ejemplo división entre cero).
	ErrMalformed = errors.New("expresión aritmética inválida")
)

// Evaluate evalúa la expresión y devuelve su valor numérico.
//
// Normaliza la coma decimal a punto y elimina todo espacio en blanco antes
// de validar la lista blanca. La precedencia de operadores es la
// convencional y se admiten paréntesis y signo unario.
func Evaluate(input string) (float64, error) {
	s := normalize(input)
	if s == "" {
		return 0, ErrBlank
	}
	for _, r := range s {
		if !allowed(r) {
			return 0, fmt.Errorf("%w: %q", ErrBadChar, r)
		}
	}
	p := &parser{src: s}
	v, err := p.expression()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.src) {
		return 0, fmt.Errorf("%w: sobra %q", ErrMalformed, p.src[p.pos:])
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrMalformed
	}
	return v, nil
}

func normalize(input string) string {
	s := strings.ReplaceAll(input, ",", ".")
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func allowed(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '+' || r == '-' || r == '*' || r == '/' || r == '(' || r == ')' || r == '.':
		return true
	}
	return false
}

// parser implementa la gramática:
//
//	expression = term { ("+"|"-") term }
//	term       = factor { ("*"|"/") factor }
//	factor     = number | "(" expression ")" | ("+"|"-") factor
type parser struct {
	src string
	pos int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) expression() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.term()
			if err != nil {
				return 0, err
			}
			v += rhs
		case '-':
			p.pos++
			rhs, err := p.term()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) term() (float64, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			rhs, err := p.factor()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case '/':
			p.pos++
			rhs, err := p.factor()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, fmt.Errorf("%w: división entre cero", ErrMalformed)
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) factor() (float64, error) {
	switch p.peek() {
	case '+':
		p.pos++
		return p.factor()
	case '-':
		p.pos++
		v, err := p.factor()
		return -v, err
	case '(':
		p.pos++
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("%w: falta ')'", ErrMalformed)
		}
		p.pos++
		return v, nil
	}
	return p.number()
}

func (p *parser) number() (float64, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c >= '0' && c <= '9') || c == '.' {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return 0, fmt.Errorf("%w: se esperaba un número", ErrMalformed)
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, p.src[start:p.pos])
	}
	return v, nil
}
