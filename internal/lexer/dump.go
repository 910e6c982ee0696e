package lexer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hassan/jvc/internal/source"
)

// Dump writes the one-line debug rendering of the token to w, without a
// trailing newline.
func (t *Token) Dump(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

// String returns the debug rendering of the token, e.g.
//
//	Keyword `public` (1:1:1:7)
//	NumberLiteral <non-integer> 0.16 (3:5:3:11)
func (t *Token) String() string {
	if t == nil {
		return "<nil token>"
	}

	var sb strings.Builder
	switch t.Kind {
	case TokenKeyword:
		fmt.Fprintf(&sb, "Keyword `%s`", t.Keyword)
	case TokenIdentifier:
		fmt.Fprintf(&sb, "Identifier `%s`", t.Name)
	case TokenLiteral:
		sb.WriteString(t.Literal.Kind.String())
		switch t.Literal.Kind {
		case LiteralNumber:
			n := t.Literal.Number
			if n.IsInteger() {
				sb.WriteString(" " + strconv.FormatInt(n.Int64(), 10))
			} else {
				sb.WriteString(" <non-integer>")
			}
			sb.WriteString(" " + strconv.FormatFloat(n.Float64(), 'g', -1, 64))
		case LiteralString:
			fmt.Fprintf(&sb, " `%s`", t.Literal.Content)
		case LiteralCharacter:
			fmt.Fprintf(&sb, " `%s`", []byte{t.Literal.Char})
		}
	case TokenDelimiter:
		fmt.Fprintf(&sb, "Delimiter <%s>", t.Delimiter)
	case TokenOperator:
		fmt.Fprintf(&sb, "Operator <%s>", t.Operator)
	case TokenComment:
		fmt.Fprintf(&sb, "Comment <%s> `%s`", t.Comment.Kind, t.Comment.Content)
	case TokenWhitespace:
		sb.WriteString("Whitespace")
	default:
		sb.WriteString("Unknown")
	}
	sb.WriteString(" (" + dumpRange(t.Range) + ")")
	return sb.String()
}

func dumpRange(r source.Range) string {
	if !r.IsValid() {
		return "<invalid range>"
	}
	return r.Start.String() + ":" + r.End.String()
}
