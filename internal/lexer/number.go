package lexer

import (
	"math"

	"github.com/hassan/jvc/internal/diag"
	"github.com/hassan/jvc/internal/source"
)

// numberAcc accumulates digits as an overflow-checked int64 and as a float64
// at the same time.
type numberAcc struct {
	i     int64
	iFits bool
	f     float64
}

func (a *numberAcc) addDigit(base, d int) {
	a.f = a.f*float64(base) + float64(d)
	if !a.iFits {
		return
	}
	if mulOverflows(a.i, int64(base)) {
		a.iFits = false
		return
	}
	a.i *= int64(base)
	if addOverflows(a.i, int64(d)) {
		a.iFits = false
		return
	}
	a.i += int64(d)
}

func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	c := a * b
	return c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64)
}

func addOverflows(a, b int64) bool {
	c := a + b
	return (b > 0 && c < a) || (b < 0 && c > a)
}

// lexNumber lexes a number literal. sign is '+', '-' or 0 and, when set, has
// already been consumed.
func (l *Lexer) lexNumber(start source.Location, sign byte) {
	prefix := PrefixNone
	acc := numberAcc{iFits: true}
	integer := true

	if l.match('0') {
		switch ch, _ := l.peek(); {
		case ch == 'x' || ch == 'X':
			l.read()
			prefix = PrefixHex
		case isOctDigit(ch):
			prefix = PrefixOct
		}
	}
	base := prefix.Base()

	isBaseDigit := func(ch byte) bool {
		d := digitValue(ch)
		return d >= 0 && d < base
	}

	for {
		ch, ok := l.peek()
		if !ok || !isBaseDigit(ch) {
			break
		}
		l.read()
		acc.addDigit(base, digitValue(ch))
	}

	if l.match('.') {
		integer = false
		scale := 1.0
		for {
			ch, ok := l.peek()
			if !ok || !isBaseDigit(ch) {
				break
			}
			l.read()
			scale /= float64(base)
			acc.f += float64(digitValue(ch)) * scale
		}
	}

	// Hex digits include e, so only other bases take an exponent.
	if prefix != PrefixHex {
		if ch, ok := l.peek(); ok && (ch == 'e' || ch == 'E') {
			l.read()
			integer = false
			l.lexExponent(&acc)
		}
	}

	suffix := SuffixNone
	if ch, ok := l.peek(); ok {
		switch {
		case ch == 'l' || ch == 'L':
			l.read()
			suffix = SuffixLong
		case (ch == 'f' || ch == 'F') && prefix != PrefixHex:
			l.read()
			suffix = SuffixFloat
		}
	}

	if sign == '-' {
		acc.i = -acc.i
		acc.f = -acc.f
	}

	iFits := acc.iFits && integer
	fFits := !math.IsInf(acc.f, 0)
	rng := l.spanFrom(start)

	var num Number
	switch suffix {
	case SuffixLong:
		if !iFits {
			l.report(diag.Over(diag.Error, rng, "Number literal cannot fit into 64-bit integer type."))
			num = FloatNumber(acc.f, prefix, suffix)
		} else {
			num = IntNumber(acc.i, prefix, suffix)
		}
	case SuffixFloat:
		if !fFits {
			l.report(diag.Over(diag.Error, rng, "Number literal cannot fit into double precision floating point type."))
		}
		num = FloatNumber(acc.f, prefix, suffix)
	default:
		switch {
		case iFits:
			num = IntNumber(acc.i, prefix, suffix)
		case !fFits:
			l.report(diag.Over(diag.Error, rng,
				"Number literal cannot fit into either 64-bit integer type or double precision floating point type."))
			num = FloatNumber(acc.f, prefix, suffix)
		default:
			if integer {
				l.report(diag.Over(diag.Warning, rng,
					"Number literal is written in integer form but cannot fit in 64-bit integer type. "+
						"Fallback to interpret it as a double precision floating point value instead."))
			}
			num = FloatNumber(acc.f, prefix, suffix)
		}
	}

	l.emit(&Token{
		Kind:    TokenLiteral,
		Range:   rng,
		Literal: Literal{Kind: LiteralNumber, Number: num},
	})
}

// lexExponent reads the signed decimal exponent after e and scales acc.f.
// An exponent too large to represent sends the value to infinity. A marker
// with no digits after it, even at end of input, counts as exponent 0.
func (l *Lexer) lexExponent(acc *numberAcc) {
	negative := false
	if ch, ok := l.peek(); ok && (ch == '+' || ch == '-') {
		l.read()
		negative = ch == '-'
	}

	exp := numberAcc{iFits: true}
	for {
		ch, ok := l.peek()
		if !ok || !isDigit(ch) {
			break
		}
		l.read()
		exp.addDigit(10, digitValue(ch))
	}

	switch {
	case !exp.iFits:
		acc.f = math.Inf(1)
	case acc.f != 0:
		e := exp.i
		if negative {
			e = -e
		}
		acc.f *= math.Pow(10, float64(e))
	}
}
