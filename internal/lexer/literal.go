package lexer

import (
	"github.com/hassan/jvc/internal/diag"
	"github.com/hassan/jvc/internal/source"
)

// literalBuf collects a quoted literal both as written and decoded.
type literalBuf struct {
	raw     []byte
	content []byte
}

// appendCodeUnit stores a 16-bit escape value as its low byte followed by
// its high byte, the high byte only when it is nonzero.
func (b *literalBuf) appendCodeUnit(v uint16) {
	b.content = append(b.content, byte(v))
	if hi := byte(v >> 8); hi != 0 {
		b.content = append(b.content, hi)
	}
}

func (l *Lexer) lexChar(start source.Location) {
	var buf literalBuf
	l.read()
	buf.raw = append(buf.raw, '\'')

	if !l.lexLogicalChar(&buf) {
		return
	}

	ch, ok := l.mustPeek()
	if !ok {
		return
	}
	if ch != '\'' {
		l.report(diag.Atf(diag.Error, l.NextLocation(),
			"Unexpected input character: expected `'`, but found `%s`.", printable(ch)))
		return
	}
	l.read()
	buf.raw = append(buf.raw, '\'')

	if len(buf.content) == 0 {
		// The escape was rejected and already reported.
		return
	}
	l.emit(&Token{
		Kind:  TokenLiteral,
		Range: l.spanFrom(start),
		Literal: Literal{
			Kind:   LiteralCharacter,
			Source: string(buf.raw),
			Char:   buf.content[0],
		},
	})
}

func (l *Lexer) lexString(start source.Location) {
	var buf literalBuf
	l.read()
	buf.raw = append(buf.raw, '"')

	for {
		ch, ok := l.peek()
		if !ok {
			l.report(diag.Over(diag.Error, l.spanFrom(start), "Unclosed string literal."))
			return
		}
		if ch == '"' {
			l.read()
			buf.raw = append(buf.raw, '"')
			break
		}
		if !l.lexLogicalChar(&buf) {
			return
		}
	}

	l.emit(&Token{
		Kind:  TokenLiteral,
		Range: l.spanFrom(start),
		Literal: Literal{
			Kind:    LiteralString,
			Source:  string(buf.raw),
			Content: string(buf.content),
		},
	})
}

// lexLogicalChar consumes one plain byte or one escape sequence. It returns
// false if the input ran out, which has been reported.
func (l *Lexer) lexLogicalChar(buf *literalBuf) bool {
	ch, ok := l.mustRead()
	if !ok {
		return false
	}
	buf.raw = append(buf.raw, ch)
	if ch != '\\' {
		buf.content = append(buf.content, ch)
		return true
	}
	return l.lexEscape(buf)
}

// lexEscape decodes the escape whose backslash was just consumed.
func (l *Lexer) lexEscape(buf *literalBuf) bool {
	at := l.NextLocation()
	ch, ok := l.mustRead()
	if !ok {
		return false
	}
	buf.raw = append(buf.raw, ch)

	switch ch {
	case 'n':
		buf.content = append(buf.content, '\n')
	case 't':
		buf.content = append(buf.content, '\t')
	case 'r':
		buf.content = append(buf.content, '\r')
	case 'f':
		buf.content = append(buf.content, '\f')
	case 'b':
		buf.content = append(buf.content, '\b')
	case '\'':
		buf.content = append(buf.content, '\'')
	case '\\':
		buf.content = append(buf.content, '\\')
	case 'u':
		return l.lexUnicodeEscape(at, buf)
	default:
		if isOctDigit(ch) {
			l.lexOctalEscape(ch, buf)
			return true
		}
		l.report(diag.Atf(diag.Error, at, "Unknown escape sequence: `\\%s`.", printable(ch)))
	}
	return true
}

// lexUnicodeEscape reads the 1 to 4 hex digits following \u.
func (l *Lexer) lexUnicodeEscape(at source.Location, buf *literalBuf) bool {
	ch, ok := l.mustPeek()
	if !ok {
		return false
	}
	if !isHexDigit(ch) {
		l.report(diag.At(diag.Error, at, "Invalid unicode escape sequence."))
		return true
	}

	var v uint16
	for digits := 0; digits < 4; digits++ {
		ch, ok := l.peek()
		if !ok || !isHexDigit(ch) {
			break
		}
		l.read()
		buf.raw = append(buf.raw, ch)
		v = v<<4 | uint16(digitValue(ch))
	}
	buf.appendCodeUnit(v)
	return true
}

// lexOctalEscape reads up to two more octal digits after first.
func (l *Lexer) lexOctalEscape(first byte, buf *literalBuf) {
	v := uint16(first - '0')
	for digits := 1; digits < 3; digits++ {
		ch, ok := l.peek()
		if !ok || !isOctDigit(ch) {
			break
		}
		l.read()
		buf.raw = append(buf.raw, ch)
		v = v<<3 | uint16(ch-'0')
	}
	buf.appendCodeUnit(v)
}
