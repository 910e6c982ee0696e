package lexer

import (
	"fmt"

	"github.com/hassan/jvc/internal/diag"
	"github.com/hassan/jvc/internal/source"
)

func isDelimiter(ch byte) bool {
	switch ch {
	case '{', '}', '[', ']', '(', ')', ',', '.', ';', '@':
		return true
	default:
		return false
	}
}

// isOperatorLeader reports whether ch starts an operator. '+', '-' and '/'
// also start numbers or comments and are dispatched separately.
func isOperatorLeader(ch byte) bool {
	switch ch {
	case '>', '<', '&', '|', '^', '=', '!', '%', '*', '~', '?', ':':
		return true
	default:
		return false
	}
}

func (l *Lexer) lexDelimiter(start source.Location) {
	ch, _ := l.read()

	var d Delimiter
	switch ch {
	case '{':
		d = DelimOpenBrace
	case '}':
		d = DelimCloseBrace
	case '[':
		d = DelimOpenBracket
	case ']':
		d = DelimCloseBracket
	case '(':
		d = DelimOpenParen
	case ')':
		d = DelimCloseParen
	case ',':
		d = DelimComma
	case '.':
		d = DelimDot
	case ';':
		d = DelimSemicolon
	case '@':
		d = DelimAt
	default:
		panic(fmt.Sprintf("lexer: %q dispatched as a delimiter", ch))
	}
	l.emit(&Token{Kind: TokenDelimiter, Range: l.spanFrom(start), Delimiter: d})
}

// lexOperator lexes the longest operator starting at the cursor.
func (l *Lexer) lexOperator(start source.Location) {
	ch, _ := l.read()

	var op Operator
	switch ch {
	case '>':
		switch {
		case l.match('='):
			op = OpGreaterOrEqual
		case l.match('>'):
			switch {
			case l.match('='):
				op = OpRightShiftAssignment
			case l.match('>'):
				op = OpUnsignedRightShift
				if l.match('=') {
					op = OpUnsignedRightShiftAssignment
				}
			default:
				op = OpRightShift
			}
		default:
			op = OpGreater
		}
	case '<':
		switch {
		case l.match('='):
			op = OpLessOrEqual
		case l.match('<'):
			op = OpLeftShift
			if l.match('=') {
				op = OpLeftShiftAssignment
			}
		default:
			op = OpLess
		}
	case '&':
		switch {
		case l.match('='):
			op = OpAndAssignment
		case l.match('&'):
			op = OpLogicalAnd
		default:
			op = OpAnd
		}
	case '|':
		switch {
		case l.match('='):
			op = OpOrAssignment
		case l.match('|'):
			op = OpLogicalOr
		default:
			op = OpOr
		}
	case '^':
		op = l.withAssignment(OpXor, OpXorAssignment)
	case '=':
		op = l.withAssignment(OpAssignment, OpEqual)
	case '!':
		op = l.withAssignment(OpNot, OpNotEqual)
	case '%':
		op = l.withAssignment(OpModulo, OpModuloAssignment)
	case '*':
		op = l.withAssignment(OpMultiply, OpMultiplyAssignment)
	case '~':
		op = OpBitwiseNeg
	case '?':
		op = OpQuestionMark
	case ':':
		op = OpColon
	default:
		panic(fmt.Sprintf("lexer: %q dispatched as an operator", ch))
	}
	l.emit(&Token{Kind: TokenOperator, Range: l.spanFrom(start), Operator: op})
}

// withAssignment returns withEq if the next byte is '=' and consumes it,
// plain otherwise.
func (l *Lexer) withAssignment(plain, withEq Operator) Operator {
	if l.match('=') {
		return withEq
	}
	return plain
}

// lexSignOrNumber handles '+' and '-': a following digit makes a signed
// number literal, otherwise an operator.
func (l *Lexer) lexSignOrNumber(start source.Location) {
	sign, _ := l.read()
	if ch, ok := l.peek(); ok && isDigit(ch) {
		l.lexNumber(start, sign)
		return
	}

	var op Operator
	if sign == '+' {
		switch {
		case l.match('+'):
			op = OpIncrement
		case l.match('='):
			op = OpAddAssignment
		default:
			op = OpAdd
		}
	} else {
		switch {
		case l.match('-'):
			op = OpDecrement
		case l.match('='):
			op = OpSubtractAssignment
		default:
			op = OpSubtract
		}
	}
	l.emit(&Token{Kind: TokenOperator, Range: l.spanFrom(start), Operator: op})
}

// lexSlash handles '/': line comment, block comment, '/=' or '/'.
func (l *Lexer) lexSlash(start source.Location) {
	l.read()
	switch {
	case l.match('/'):
		l.lexLineComment(start)
	case l.match('*'):
		l.lexBlockComment(start)
	case l.match('='):
		l.emit(&Token{Kind: TokenOperator, Range: l.spanFrom(start), Operator: OpDivideAssignment})
	default:
		l.emit(&Token{Kind: TokenOperator, Range: l.spanFrom(start), Operator: OpDivide})
	}
}

// lexLineComment reads up to, not including, the next newline.
func (l *Lexer) lexLineComment(start source.Location) {
	var content []byte
	for {
		ch, ok := l.peek()
		if !ok || ch == '\n' {
			break
		}
		l.read()
		content = append(content, ch)
	}
	l.emit(&Token{
		Kind:    TokenComment,
		Range:   l.spanFrom(start),
		Comment: Comment{Kind: LineComment, Content: string(content)},
	})
}

// lexBlockComment reads through the first "*/".
func (l *Lexer) lexBlockComment(start source.Location) {
	var content []byte
	for {
		ch, ok := l.read()
		if !ok {
			l.report(diag.Over(diag.Error, l.spanFrom(start), "Unclosed block comment."))
			return
		}
		if ch == '*' && l.match('/') {
			break
		}
		content = append(content, ch)
	}
	l.emit(&Token{
		Kind:    TokenComment,
		Range:   l.spanFrom(start),
		Comment: Comment{Kind: BlockComment, Content: string(content)},
	})
}
