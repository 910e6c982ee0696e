package lexer

import "github.com/hassan/jvc/internal/source"

// TokenKind is the discriminant of a Token.
type TokenKind int

const (
	TokenKeyword TokenKind = iota
	TokenIdentifier
	TokenLiteral
	TokenDelimiter
	TokenOperator
	TokenComment
	TokenWhitespace
)

func (k TokenKind) String() string {
	switch k {
	case TokenKeyword:
		return "Keyword"
	case TokenIdentifier:
		return "Identifier"
	case TokenLiteral:
		return "Literal"
	case TokenDelimiter:
		return "Delimiter"
	case TokenOperator:
		return "Operator"
	case TokenComment:
		return "Comment"
	case TokenWhitespace:
		return "Whitespace"
	default:
		return "Unknown"
	}
}

// Token is a classified, range-tagged unit of lexical input.
//
// Token is a tagged union: Kind selects which of the payload fields is
// meaningful, the others are left at their zero value. Consumers switch on
// Kind rather than on the payload:
//
//	switch tok.Kind {
//	case TokenKeyword:
//		... tok.Keyword ...
//	case TokenLiteral:
//		... tok.Literal.Kind, tok.Literal.Number ...
//	}
//
// Range is half-open and counts bytes: Start is the first byte of the token
// and End the byte right after it. For input that lexes without errors, the
// ranges of all tokens, trivia included, cover the file with no gaps.
//
// The lexer hands out tokens by pointer and never touches them again.
type Token struct {
	Kind  TokenKind
	Range source.Range

	Keyword   Keyword   // TokenKeyword
	Name      string    // TokenIdentifier
	Literal   Literal   // TokenLiteral
	Delimiter Delimiter // TokenDelimiter
	Operator  Operator  // TokenOperator
	Comment   Comment   // TokenComment
}

// Is reports whether the token is of kind k.
func (t *Token) Is(k TokenKind) bool {
	return t != nil && t.Kind == k
}

// IsKeyword reports whether the token is the keyword kw.
func (t *Token) IsKeyword(kw Keyword) bool {
	return t.Is(TokenKeyword) && t.Keyword == kw
}

// IsOperator reports whether the token is the operator op.
func (t *Token) IsOperator(op Operator) bool {
	return t.Is(TokenOperator) && t.Operator == op
}

// IsDelimiter reports whether the token is the delimiter d.
func (t *Token) IsDelimiter(d Delimiter) bool {
	return t.Is(TokenDelimiter) && t.Delimiter == d
}

// Keyword enumerates the reserved words.
type Keyword int

const (
	KwAbstract Keyword = iota
	KwBoolean
	KwBreak
	KwByte
	KwCase
	KwCatch
	KwChar
	KwClass
	KwConst
	KwContinue
	KwDefault
	KwDo
	KwDouble
	KwElse
	KwExtends
	KwFalse
	KwFinal
	KwFinally
	KwFloat
	KwFor
	KwGoto
	KwIf
	KwImplements
	KwImport
	KwInstanceof
	KwInt
	KwInterface
	KwLong
	KwNative
	KwNew
	KwNull
	KwPackage
	KwPrivate
	KwProtected
	KwPublic
	KwReturn
	KwShort
	KwStatic
	KwSuper
	KwSwitch
	KwSynchronized
	KwThis
	KwThrow
	KwThrows
	KwTransient
	KwTrue
	KwTry
	KwVoid
	KwVolatile
	KwWhile

	keywordCount
)

var keywordSpellings = [keywordCount]string{
	KwAbstract:     "abstract",
	KwBoolean:      "boolean",
	KwBreak:        "break",
	KwByte:         "byte",
	KwCase:         "case",
	KwCatch:        "catch",
	KwChar:         "char",
	KwClass:        "class",
	KwConst:        "const",
	KwContinue:     "continue",
	KwDefault:      "default",
	KwDo:           "do",
	KwDouble:       "double",
	KwElse:         "else",
	KwExtends:      "extends",
	KwFalse:        "false",
	KwFinal:        "final",
	KwFinally:      "finally",
	KwFloat:        "float",
	KwFor:          "for",
	KwGoto:         "goto",
	KwIf:           "if",
	KwImplements:   "implements",
	KwImport:       "import",
	KwInstanceof:   "instanceof",
	KwInt:          "int",
	KwInterface:    "interface",
	KwLong:         "long",
	KwNative:       "native",
	KwNew:          "new",
	KwNull:         "null",
	KwPackage:      "package",
	KwPrivate:      "private",
	KwProtected:    "protected",
	KwPublic:       "public",
	KwReturn:       "return",
	KwShort:        "short",
	KwStatic:       "static",
	KwSuper:        "super",
	KwSwitch:       "switch",
	KwSynchronized: "synchronized",
	KwThis:         "this",
	KwThrow:        "throw",
	KwThrows:       "throws",
	KwTransient:    "transient",
	KwTrue:         "true",
	KwTry:          "try",
	KwVoid:         "void",
	KwVolatile:     "volatile",
	KwWhile:        "while",
}

// keywords maps every spelling back to its keyword. Built once from
// keywordSpellings and never modified.
var keywords = func() map[string]Keyword {
	m := make(map[string]Keyword, keywordCount)
	for kw, s := range keywordSpellings {
		m[s] = Keyword(kw)
	}
	return m
}()

// LookupKeyword returns the keyword spelled exactly as s. The match is
// case-sensitive.
func LookupKeyword(s string) (Keyword, bool) {
	kw, ok := keywords[s]
	return kw, ok
}

// String returns the source spelling of the keyword.
func (kw Keyword) String() string {
	if kw < 0 || kw >= keywordCount {
		return "<unknown keyword>"
	}
	return keywordSpellings[kw]
}

// IsTypeSpecifier reports whether the keyword names a primitive type or void.
func (kw Keyword) IsTypeSpecifier() bool {
	switch kw {
	case KwBoolean, KwByte, KwChar, KwDouble, KwFloat, KwInt, KwLong, KwShort, KwVoid:
		return true
	default:
		return false
	}
}

// LiteralKind selects the payload of a Literal.
type LiteralKind int

const (
	LiteralNumber LiteralKind = iota
	LiteralString
	LiteralCharacter
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralNumber:
		return "NumberLiteral"
	case LiteralString:
		return "StringLiteral"
	case LiteralCharacter:
		return "CharacterLiteral"
	default:
		return "UnknownLiteral"
	}
}

// Literal is the payload of a TokenLiteral.
type Literal struct {
	Kind LiteralKind

	// Source is the literal as written, quotes and escapes included.
	// Set for string and character literals.
	Source string

	// Content is the decoded text of a string literal.
	Content string

	// Char is the decoded byte of a character literal.
	Char byte

	// Number is set for number literals.
	Number Number
}

// NumberPrefix is the base marker a number literal was written with.
type NumberPrefix int

const (
	PrefixNone NumberPrefix = iota
	PrefixOct               // leading 0
	PrefixHex               // 0x or 0X
)

func (p NumberPrefix) String() string {
	switch p {
	case PrefixNone:
		return "None"
	case PrefixOct:
		return "Oct"
	case PrefixHex:
		return "Hex"
	default:
		return "Unknown"
	}
}

// Base returns the radix the prefix selects.
func (p NumberPrefix) Base() int {
	switch p {
	case PrefixOct:
		return 8
	case PrefixHex:
		return 16
	default:
		return 10
	}
}

// NumberSuffix is the representation marker trailing a number literal.
type NumberSuffix int

const (
	SuffixNone  NumberSuffix = iota
	SuffixLong               // l or L
	SuffixFloat              // f or F
)

func (s NumberSuffix) String() string {
	switch s {
	case SuffixNone:
		return "None"
	case SuffixLong:
		return "Long"
	case SuffixFloat:
		return "Float"
	default:
		return "Unknown"
	}
}

// Number is the value of a number literal: a 64-bit signed integer or a
// double, plus the prefix and suffix it was written with.
type Number struct {
	integer bool
	i       int64
	f       float64
	Prefix  NumberPrefix
	Suffix  NumberSuffix
}

// IntNumber builds an integer-valued number.
func IntNumber(v int64, prefix NumberPrefix, suffix NumberSuffix) Number {
	return Number{integer: true, i: v, f: float64(v), Prefix: prefix, Suffix: suffix}
}

// FloatNumber builds a floating-point-valued number.
func FloatNumber(v float64, prefix NumberPrefix, suffix NumberSuffix) Number {
	return Number{f: v, Prefix: prefix, Suffix: suffix}
}

// IsInteger reports whether the value is held in integer form.
func (n Number) IsInteger() bool { return n.integer }

// Int64 returns the integer value; it is 0 for non-integer numbers.
func (n Number) Int64() int64 { return n.i }

// Float64 returns the value as a double. Integer numbers convert.
func (n Number) Float64() float64 { return n.f }

// Delimiter enumerates the single-character punctuators.
type Delimiter int

const (
	DelimOpenBrace Delimiter = iota
	DelimCloseBrace
	DelimOpenBracket
	DelimCloseBracket
	DelimOpenParen
	DelimCloseParen
	DelimComma
	DelimDot
	DelimSemicolon
	DelimAt
)

func (d Delimiter) String() string {
	switch d {
	case DelimOpenBrace:
		return "OpenBrace"
	case DelimCloseBrace:
		return "CloseBrace"
	case DelimOpenBracket:
		return "OpenBracket"
	case DelimCloseBracket:
		return "CloseBracket"
	case DelimOpenParen:
		return "OpenParen"
	case DelimCloseParen:
		return "CloseParen"
	case DelimComma:
		return "Comma"
	case DelimDot:
		return "Dot"
	case DelimSemicolon:
		return "Semicolon"
	case DelimAt:
		return "At"
	default:
		return "Unknown"
	}
}

// Operator enumerates the operators.
type Operator int

const (
	OpAddAssignment Operator = iota
	OpAdd
	OpAssignment
	OpAnd
	OpAndAssignment
	OpOr
	OpOrAssignment
	OpXor
	OpXorAssignment
	OpBitwiseNeg
	OpQuestionMark
	OpColon
	OpDecrement
	OpDivideAssignment
	OpDivide
	OpEqual
	OpGreater
	OpGreaterOrEqual
	OpIncrement
	OpLeftShift
	OpLeftShiftAssignment
	OpLess
	OpLessOrEqual
	OpModulo
	OpModuloAssignment
	OpMultiply
	OpMultiplyAssignment
	OpNot
	OpNotEqual
	OpRightShift
	OpRightShiftAssignment
	OpLogicalAnd
	OpLogicalOr
	OpSubtractAssignment
	OpSubtract
	OpUnsignedRightShift
	OpUnsignedRightShiftAssignment

	operatorCount
)

type operatorInfo struct {
	name     string
	spelling string
}

var operatorTable = [operatorCount]operatorInfo{
	OpAddAssignment:                {"AddAssignment", "+="},
	OpAdd:                          {"Add", "+"},
	OpAssignment:                   {"Assignment", "="},
	OpAnd:                          {"And", "&"},
	OpAndAssignment:                {"AndAssignment", "&="},
	OpOr:                           {"Or", "|"},
	OpOrAssignment:                 {"OrAssignment", "|="},
	OpXor:                          {"Xor", "^"},
	OpXorAssignment:                {"XorAssignment", "^="},
	OpBitwiseNeg:                   {"BitwiseNeg", "~"},
	OpQuestionMark:                 {"QuestionMark", "?"},
	OpColon:                        {"Colon", ":"},
	OpDecrement:                    {"Decrement", "--"},
	OpDivideAssignment:             {"DivideAssignment", "/="},
	OpDivide:                       {"Divide", "/"},
	OpEqual:                        {"Equal", "=="},
	OpGreater:                      {"Greater", ">"},
	OpGreaterOrEqual:               {"GreaterOrEqual", ">="},
	OpIncrement:                    {"Increment", "++"},
	OpLeftShift:                    {"LeftShift", "<<"},
	OpLeftShiftAssignment:          {"LeftShiftAssignment", "<<="},
	OpLess:                         {"Less", "<"},
	OpLessOrEqual:                  {"LessOrEqual", "<="},
	OpModulo:                       {"Modulo", "%"},
	OpModuloAssignment:             {"ModuloAssignment", "%="},
	OpMultiply:                     {"Multiply", "*"},
	OpMultiplyAssignment:           {"MultiplyAssignment", "*="},
	OpNot:                          {"Not", "!"},
	OpNotEqual:                     {"NotEqual", "!="},
	OpRightShift:                   {"RightShift", ">>"},
	OpRightShiftAssignment:         {"RightShiftAssignment", ">>="},
	OpLogicalAnd:                   {"LogicalAnd", "&&"},
	OpLogicalOr:                    {"LogicalOr", "||"},
	OpSubtractAssignment:           {"SubtractAssignment", "-="},
	OpSubtract:                     {"Subtract", "-"},
	OpUnsignedRightShift:           {"UnsignedRightShift", ">>>"},
	OpUnsignedRightShiftAssignment: {"UnsignedRightShiftAssignment", ">>>="},
}

// String returns the operator's name, e.g. "AddAssignment".
func (op Operator) String() string {
	if op < 0 || op >= operatorCount {
		return "Unknown"
	}
	return operatorTable[op].name
}

// Spelling returns the operator as written in source, e.g. "+=".
func (op Operator) Spelling() string {
	if op < 0 || op >= operatorCount {
		return ""
	}
	return operatorTable[op].spelling
}

// CommentKind distinguishes // from /* */ comments.
type CommentKind int

const (
	LineComment CommentKind = iota
	BlockComment
)

func (k CommentKind) String() string {
	switch k {
	case LineComment:
		return "LineComment"
	case BlockComment:
		return "BlockComment"
	default:
		return "UnknownCommentType"
	}
}

// Comment is the payload of a TokenComment. Content excludes the comment
// markers.
type Comment struct {
	Kind    CommentKind
	Content string
}
