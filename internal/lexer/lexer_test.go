package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hassan/jvc/internal/diag"
	"github.com/hassan/jvc/internal/session"
	"github.com/hassan/jvc/internal/source"
)

type fixture struct {
	lx   *Lexer
	sess *session.Session
	out  *strings.Builder
	id   int
}

func newFixture(t *testing.T, src string, opts Options, dopts diag.Options) *fixture {
	t.Helper()
	out := &strings.Builder{}
	s := session.New(out, dopts)
	id := s.Sources().Add("Test.java", []byte(src))
	lx, err := New(s, id, opts)
	require.NoError(t, err)
	return &fixture{lx: lx, sess: s, out: out, id: id}
}

func lexAll(t *testing.T, src string, opts Options) []*Token {
	t.Helper()
	f := newFixture(t, src, opts, diag.Options{})
	tokens := f.lx.ReadAll()
	require.Zero(t, f.lx.ErrorCount(), "unexpected diagnostics:\n%s", f.out.String())
	require.True(t, f.lx.AtEOF())
	return tokens
}

func (f *fixture) span(r1, c1, r2, c2 int) source.Range {
	return source.Span(source.At(f.id, r1, c1), source.At(f.id, r2, c2))
}

func TestNew_UnknownFile(t *testing.T) {
	s := session.New(&strings.Builder{}, diag.Options{})

	lx, err := New(s, 7, Options{})

	assert.Nil(t, lx)
	assert.ErrorIs(t, err, ErrUnknownFile)
}

func TestLexer_Keywords(t *testing.T) {
	f := newFixture(t, "public abstract", Options{}, diag.Options{})

	first := f.lx.ReadNextToken()
	require.NotNil(t, first)
	assert.True(t, first.IsKeyword(KwPublic))
	assert.Equal(t, f.span(1, 1, 1, 7), first.Range)

	second := f.lx.ReadNextToken()
	require.NotNil(t, second)
	assert.True(t, second.IsKeyword(KwAbstract))
	assert.Equal(t, f.span(1, 8, 1, 16), second.Range)

	assert.Nil(t, f.lx.ReadNextToken())
	assert.Zero(t, f.lx.ErrorCount())
}

func TestLexer_EveryKeyword(t *testing.T) {
	for kw := Keyword(0); kw < keywordCount; kw++ {
		tokens := lexAll(t, kw.String(), Options{})
		require.Len(t, tokens, 1, kw.String())
		assert.True(t, tokens[0].IsKeyword(kw), kw.String())
	}
}

func TestLexer_Identifiers(t *testing.T) {
	tokens := lexAll(t, "while1 while_ _while $x x$y While abc while", Options{})

	var got []string
	for _, tok := range tokens[:len(tokens)-1] {
		require.Equal(t, TokenIdentifier, tok.Kind, tok.String())
		got = append(got, tok.Name)
	}
	assert.Equal(t, []string{"while1", "while_", "_while", "$x", "x$y", "While", "abc"}, got)
	assert.True(t, tokens[len(tokens)-1].IsKeyword(KwWhile))
}

func TestLexer_Delimiters(t *testing.T) {
	tokens := lexAll(t, "{}.()[] ; @,", Options{})

	want := []Delimiter{
		DelimOpenBrace, DelimCloseBrace, DelimDot, DelimOpenParen, DelimCloseParen,
		DelimOpenBracket, DelimCloseBracket, DelimSemicolon, DelimAt, DelimComma,
	}
	require.Len(t, tokens, len(want))
	for i, d := range want {
		assert.True(t, tokens[i].IsDelimiter(d), "token %d: %s", i, tokens[i])
	}
}

func TestLexer_Operators(t *testing.T) {
	tests := []struct {
		src  string
		want []Operator
	}{
		{"+= ++ + -- -= -", []Operator{OpAddAssignment, OpIncrement, OpAdd, OpDecrement, OpSubtractAssignment, OpSubtract}},
		{">>>= >>> >>= >> >= >", []Operator{
			OpUnsignedRightShiftAssignment, OpUnsignedRightShift, OpRightShiftAssignment,
			OpRightShift, OpGreaterOrEqual, OpGreater,
		}},
		{"<<= << <= <", []Operator{OpLeftShiftAssignment, OpLeftShift, OpLessOrEqual, OpLess}},
		{"&= && & |= || |", []Operator{OpAndAssignment, OpLogicalAnd, OpAnd, OpOrAssignment, OpLogicalOr, OpOr}},
		{"^= ^ == = != !", []Operator{OpXorAssignment, OpXor, OpEqual, OpAssignment, OpNotEqual, OpNot}},
		{"%= % *= * /= /", []Operator{OpModuloAssignment, OpModulo, OpMultiplyAssignment, OpMultiply, OpDivideAssignment, OpDivide}},
		{"~?:", []Operator{OpBitwiseNeg, OpQuestionMark, OpColon}},
		{"!~", []Operator{OpNot, OpBitwiseNeg}},
		{">>>>=", []Operator{OpUnsignedRightShift, OpGreaterOrEqual}},
		{"<<<", []Operator{OpLeftShift, OpLess}},
		{"===", []Operator{OpEqual, OpAssignment}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens := lexAll(t, tt.src, Options{})
			require.Len(t, tokens, len(tt.want))
			for i, op := range tt.want {
				assert.True(t, tokens[i].IsOperator(op), "token %d: want %s, got %s", i, op, tokens[i])
			}
		})
	}
}

func TestLexer_OperatorRanges(t *testing.T) {
	f := newFixture(t, "x>>>=y", Options{}, diag.Options{})

	tokens := f.lx.ReadAll()

	require.Len(t, tokens, 3)
	assert.True(t, tokens[1].IsOperator(OpUnsignedRightShiftAssignment))
	assert.Equal(t, f.span(1, 2, 1, 6), tokens[1].Range)
	assert.Equal(t, "y", tokens[2].Name)
}

func TestLexer_SignedNumbers(t *testing.T) {
	tokens := lexAll(t, "a - 1 -1 +b", Options{})

	require.Len(t, tokens, 6)
	assert.True(t, tokens[1].IsOperator(OpSubtract))
	assert.Equal(t, int64(1), tokens[2].Literal.Number.Int64())
	assert.Equal(t, int64(-1), tokens[3].Literal.Number.Int64())
	assert.True(t, tokens[4].IsOperator(OpAdd))
	assert.Equal(t, "b", tokens[5].Name)
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		src     string
		integer bool
		i       int64
		f       float64
		prefix  NumberPrefix
		suffix  NumberSuffix
	}{
		{"-12.14e-2", false, 0, -0.1214, PrefixNone, SuffixNone},
		{"+014", true, 12, 12, PrefixOct, SuffixNone},
		{"13e+4", false, 0, 130000, PrefixNone, SuffixNone},
		{"12l", true, 12, 12, PrefixNone, SuffixLong},
		{"16e-2F", false, 0, 0.16, PrefixNone, SuffixFloat},
		{"0", true, 0, 0, PrefixNone, SuffixNone},
		{"0x1F", true, 31, 31, PrefixHex, SuffixNone},
		{"0XffL", true, 255, 255, PrefixHex, SuffixLong},
		{"1.5", false, 0, 1.5, PrefixNone, SuffixNone},
		{"0.25", false, 0, 0.25, PrefixNone, SuffixNone},
		{"3f", false, 0, 3, PrefixNone, SuffixFloat},
		{"2E3", false, 0, 2000, PrefixNone, SuffixNone},
		{"0e500", false, 0, 0, PrefixNone, SuffixNone},
		{"-7", true, -7, -7, PrefixNone, SuffixNone},
		{"9223372036854775807", true, 9223372036854775807, 9223372036854775807, PrefixNone, SuffixNone},
		{"0x7fffffffffffffff", true, 9223372036854775807, 9223372036854775807, PrefixHex, SuffixNone},
		{"1e", false, 0, 1, PrefixNone, SuffixNone},
		{"1E", false, 0, 1, PrefixNone, SuffixNone},
		{"1e+", false, 0, 1, PrefixNone, SuffixNone},
		{"2e-", false, 0, 2, PrefixNone, SuffixNone},
		{"3eF", false, 0, 3, PrefixNone, SuffixFloat},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens := lexAll(t, tt.src, Options{})
			require.Len(t, tokens, 1)

			tok := tokens[0]
			require.Equal(t, TokenLiteral, tok.Kind)
			require.Equal(t, LiteralNumber, tok.Literal.Kind)

			n := tok.Literal.Number
			assert.Equal(t, tt.integer, n.IsInteger())
			if tt.integer {
				assert.Equal(t, tt.i, n.Int64())
			}
			assert.InDelta(t, tt.f, n.Float64(), 1e-9)
			assert.Equal(t, tt.prefix, n.Prefix)
			assert.Equal(t, tt.suffix, n.Suffix)
		})
	}
}

func TestLexer_NumberSequence(t *testing.T) {
	f := newFixture(t, "-12.14e-2 +014 13e+4 12l 16e-2F", Options{}, diag.Options{})

	tokens := f.lx.ReadAll()

	require.Len(t, tokens, 5)
	assert.Equal(t, f.span(1, 1, 1, 10), tokens[0].Range)
	assert.Equal(t, f.span(1, 11, 1, 15), tokens[1].Range)
	assert.Equal(t, f.span(1, 26, 1, 32), tokens[4].Range)
}

func TestLexer_ExponentWithoutDigits(t *testing.T) {
	for _, src := range []string{"1e;", "1e", "1e+;"} {
		t.Run(src, func(t *testing.T) {
			f := newFixture(t, src, Options{}, diag.Options{})

			tok := f.lx.ReadNextToken()

			require.NotNil(t, tok)
			require.Equal(t, LiteralNumber, tok.Literal.Kind)
			assert.False(t, tok.Literal.Number.IsInteger())
			assert.Equal(t, 1.0, tok.Literal.Number.Float64())
			assert.Equal(t, f.span(1, 1, 1, len(strings.TrimSuffix(src, ";"))+1), tok.Range)
			assert.Zero(t, f.lx.ErrorCount())
			assert.Empty(t, f.out.String())
		})
	}
}

func TestLexer_NumberFitDiagnostics(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		level   diag.Level
		message string
	}{
		{"integer overflow falls back to double", "9223372036854775808", diag.Warning,
			"Number literal is written in integer form but cannot fit in 64-bit integer type."},
		{"long overflow", "9223372036854775808L", diag.Error,
			"Number literal cannot fit into 64-bit integer type."},
		{"float overflow", "1e400F", diag.Error,
			"Number literal cannot fit into double precision floating point type."},
		{"overflow everywhere", "1e400", diag.Error,
			"Number literal cannot fit into either 64-bit integer type or double precision floating point type."},
		{"exponent overflow", "1e99999999999999999999", diag.Error,
			"Number literal cannot fit into either 64-bit integer type or double precision floating point type."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.src, Options{}, diag.Options{})

			tok := f.lx.ReadNextToken()

			require.NotNil(t, tok, "number diagnostics still yield a token")
			assert.False(t, tok.Literal.Number.IsInteger())
			assert.Equal(t, 1, f.sess.Diagnostics().Count(tt.level))
			assert.Contains(t, f.out.String(), "jvc: "+tt.level.String()+": "+tt.message)
			assert.Contains(t, f.out.String(), "In file Test.java:1:1-1:")
		})
	}
}

func TestLexer_IntegerOverflowWarningValue(t *testing.T) {
	f := newFixture(t, "9223372036854775808", Options{}, diag.Options{})

	tok := f.lx.ReadNextToken()

	require.NotNil(t, tok)
	assert.InEpsilon(t, 9.223372036854775808e18, tok.Literal.Number.Float64(), 1e-12)
	assert.Zero(t, f.lx.ErrorCount())
}

func TestLexer_StringLiteral(t *testing.T) {
	src := `"literal\n\t\uac12\123value"`
	f := newFixture(t, src, Options{}, diag.Options{})

	tok := f.lx.ReadNextToken()

	require.NotNil(t, tok)
	require.Equal(t, LiteralString, tok.Literal.Kind)
	assert.Equal(t, "literal\n\t\x12\xacSvalue", tok.Literal.Content)
	assert.Equal(t, src, tok.Literal.Source)
	assert.Equal(t, f.span(1, 1, 1, len(src)+1), tok.Range)
	assert.Nil(t, f.lx.ReadNextToken())
	assert.Zero(t, f.lx.ErrorCount())
}

func TestLexer_StringEscapes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`""`, ""},
		{`"\r\f\b"`, "\r\f\b"},
		{`"\'\\"`, `'\`},
		{`"\u41"`, "A"},
		{`"\u0041B"`, "AB"},
		{`"\u12345"`, "\x34\x125"},
		{`"\0"`, "\x00"},
		{`"\1234"`, "S4"},
		{`"\78"`, "\x078"},
		{"\"two\nlines\"", "two\nlines"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens := lexAll(t, tt.src, Options{})
			require.Len(t, tokens, 1)
			assert.Equal(t, tt.want, tokens[0].Literal.Content)
		})
	}
}

func TestLexer_UnknownEscape(t *testing.T) {
	f := newFixture(t, `"a\qb"`, Options{}, diag.Options{})

	tok := f.lx.ReadNextToken()

	require.NotNil(t, tok)
	assert.Equal(t, "ab", tok.Literal.Content)
	assert.Equal(t, 1, f.lx.ErrorCount())
	assert.Contains(t, f.out.String(), "jvc: error: Unknown escape sequence: `\\q`.")
	assert.Contains(t, f.out.String(), "In file Test.java:1:4")
}

func TestLexer_InvalidUnicodeEscape(t *testing.T) {
	f := newFixture(t, `"\uz"`, Options{}, diag.Options{})

	tok := f.lx.ReadNextToken()

	require.NotNil(t, tok)
	assert.Equal(t, "z", tok.Literal.Content)
	assert.Equal(t, 1, f.lx.ErrorCount())
	assert.Contains(t, f.out.String(), "Invalid unicode escape sequence.")
}

func TestLexer_UnterminatedString(t *testing.T) {
	f := newFixture(t, `"abc`, Options{}, diag.Options{})

	assert.Nil(t, f.lx.ReadNextToken())
	assert.Equal(t, 1, f.lx.ErrorCount())
	assert.Equal(t, 1, f.sess.Diagnostics().Count(diag.Error))
	assert.Contains(t, f.out.String(), "jvc: error: Unclosed string literal.\n  In file Test.java:1:1-1:5:\n")

	assert.Nil(t, f.lx.ReadNextToken())
	assert.True(t, f.lx.AtEOF())
	assert.Equal(t, 1, f.lx.ErrorCount())
}

func TestLexer_EOFInsideEscape(t *testing.T) {
	f := newFixture(t, `"abc\`, Options{}, diag.Options{})

	assert.Nil(t, f.lx.ReadNextToken())
	assert.Equal(t, 1, f.lx.ErrorCount())
	assert.Contains(t, f.out.String(), "jvc: error: Unexpected end-of-file.")
}

func TestLexer_CharacterLiterals(t *testing.T) {
	tests := []struct {
		src  string
		want byte
	}{
		{`'a'`, 'a'},
		{`'\n'`, '\n'},
		{`'\''`, '\''},
		{`'\\'`, '\\'},
		{`'\u0041'`, 'A'},
		{`'\101'`, 'A'},
		{`'"'`, '"'},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens := lexAll(t, tt.src, Options{})
			require.Len(t, tokens, 1)
			lit := tokens[0].Literal
			assert.Equal(t, LiteralCharacter, lit.Kind)
			assert.Equal(t, tt.want, lit.Char)
			assert.Equal(t, tt.src, lit.Source)
		})
	}
}

func TestLexer_CharacterLiteralMissingQuote(t *testing.T) {
	f := newFixture(t, `'ab x`, Options{}, diag.Options{})

	assert.Nil(t, f.lx.ReadNextToken())
	assert.Equal(t, 1, f.lx.ErrorCount())
	assert.Contains(t, f.out.String(), "Unexpected input character: expected `'`, but found `b`.")

	next := f.lx.ReadNextToken()
	require.NotNil(t, next)
	assert.Equal(t, "b", next.Name)
	assert.Equal(t, f.span(1, 3, 1, 4), next.Range)
}

func TestLexer_CharacterLiteralAtEOF(t *testing.T) {
	f := newFixture(t, `'a`, Options{}, diag.Options{})

	assert.Nil(t, f.lx.ReadNextToken())
	assert.Equal(t, 1, f.lx.ErrorCount())
	assert.Contains(t, f.out.String(), "jvc: error: Unexpected end-of-file.\n  In file Test.java:1:3\n")
}

func TestLexer_Comments(t *testing.T) {
	f := newFixture(t, "/ // public\n /* public\ninterface*/", Options{KeepComments: true}, diag.Options{})

	tokens := f.lx.ReadAll()

	require.Len(t, tokens, 3)
	assert.True(t, tokens[0].IsOperator(OpDivide))
	assert.Equal(t, f.span(1, 1, 1, 2), tokens[0].Range)

	assert.Equal(t, Comment{Kind: LineComment, Content: " public"}, tokens[1].Comment)
	assert.Equal(t, f.span(1, 3, 1, 12), tokens[1].Range)

	assert.Equal(t, Comment{Kind: BlockComment, Content: " public\ninterface"}, tokens[2].Comment)
	assert.Equal(t, f.span(2, 2, 3, 12), tokens[2].Range)
}

func TestLexer_BlockCommentStars(t *testing.T) {
	tokens := lexAll(t, "/* a **/x", Options{KeepComments: true})

	require.Len(t, tokens, 2)
	assert.Equal(t, " a *", tokens[0].Comment.Content)
	assert.Equal(t, "x", tokens[1].Name)
}

func TestLexer_UnclosedBlockComment(t *testing.T) {
	f := newFixture(t, "/* never ends", Options{KeepComments: true}, diag.Options{})

	assert.Nil(t, f.lx.ReadNextToken())
	assert.Equal(t, 1, f.lx.ErrorCount())
	assert.Contains(t, f.out.String(), "jvc: error: Unclosed block comment.")
}

func TestLexer_TriviaFilter(t *testing.T) {
	src := "a /* c */ b // d\n"

	tests := []struct {
		name  string
		opts  Options
		kinds []TokenKind
	}{
		{"default drops trivia", Options{}, []TokenKind{TokenIdentifier, TokenIdentifier}},
		{"keep comments", Options{KeepComments: true}, []TokenKind{
			TokenIdentifier, TokenComment, TokenIdentifier, TokenComment,
		}},
		{"keep whitespace", Options{KeepWhitespace: true}, []TokenKind{
			TokenIdentifier, TokenWhitespace, TokenWhitespace, TokenIdentifier, TokenWhitespace, TokenWhitespace,
		}},
		{"keep both", Options{KeepComments: true, KeepWhitespace: true}, []TokenKind{
			TokenIdentifier, TokenWhitespace, TokenComment, TokenWhitespace,
			TokenIdentifier, TokenWhitespace, TokenComment, TokenWhitespace,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var kinds []TokenKind
			for _, tok := range lexAll(t, src, tt.opts) {
				kinds = append(kinds, tok.Kind)
			}
			assert.Equal(t, tt.kinds, kinds)
		})
	}
}

func TestLexer_Lossless(t *testing.T) {
	src := "package demo;\n\npublic class A extends B {\n" +
		"\t// counter\n\tprivate long n = 0x1FL;\n" +
		"\t/* text */ String s = \"a\\tb\";\n" +
		"\tchar c = '\\n'; double d = -1.5e3;\n" +
		"\tvoid f() { n >>>= 2; s += c; }\n}\n"
	f := newFixture(t, src, Options{KeepComments: true, KeepWhitespace: true}, diag.Options{})

	tokens := f.lx.ReadAll()

	require.Zero(t, f.lx.ErrorCount(), f.out.String())
	require.NotEmpty(t, tokens)

	file, ok := f.sess.Sources().Lookup(f.id)
	require.True(t, ok)

	offsets := lineOffsets(src)
	var rebuilt strings.Builder
	next := source.At(f.id, 1, 1)
	for _, tok := range tokens {
		require.Equal(t, next, tok.Range.Start, "gap before %s", tok)
		start := offsets[tok.Range.Start.Row-1] + tok.Range.Start.Column - 1
		end := offsets[tok.Range.End.Row-1] + tok.Range.End.Column - 1
		rebuilt.WriteString(src[start:end])
		next = tok.Range.End
	}
	assert.Equal(t, src, rebuilt.String())
	assert.Equal(t, file.EOFLocation(), next)
	assert.Equal(t, next, f.lx.NextLocation())
}

func lineOffsets(src string) []int {
	offsets := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

func TestLexer_UnrecognizedByte(t *testing.T) {
	f := newFixture(t, "#a", Options{}, diag.Options{})

	assert.Nil(t, f.lx.ReadNextToken())
	assert.Equal(t, 1, f.lx.ErrorCount())
	assert.Contains(t, f.out.String(), "jvc: error: Unrecognized token: `#`.\n  In file Test.java:1:1\n")

	next := f.lx.ReadNextToken()
	require.NotNil(t, next)
	assert.Equal(t, "a", next.Name)
	assert.Equal(t, f.span(1, 2, 1, 3), next.Range)
}

func TestLexer_AbortLatches(t *testing.T) {
	f := newFixture(t, "# a b", Options{}, diag.Options{ExitOnError: true})

	assert.Nil(t, f.lx.ReadNextToken())
	assert.True(t, f.lx.Aborted())

	assert.Nil(t, f.lx.ReadNextToken())
	assert.Nil(t, f.lx.PeekNextToken())
	assert.Equal(t, 1, f.lx.ErrorCount())
	assert.Equal(t, 1, f.sess.Diagnostics().Count(diag.Error))
}

func TestLexer_AbortDropsTokenWithDiagnostic(t *testing.T) {
	var codes []int
	dopts := diag.Options{
		TreatWarningsAsErrors: true,
		ExitOnError:           true,
		Exit:                  func(code int) { codes = append(codes, code) },
	}
	f := newFixture(t, "9223372036854775808 x", Options{}, dopts)

	assert.Nil(t, f.lx.ReadNextToken())
	assert.True(t, f.lx.Aborted())
	assert.Equal(t, []int{1}, codes)
	assert.Contains(t, f.out.String(), "jvc: error: Number literal is written in integer form")
}

func TestLexer_WarningsDoNotStopLexing(t *testing.T) {
	f := newFixture(t, "9223372036854775808 x", Options{}, diag.Options{ExitOnError: true})

	tokens := f.lx.ReadAll()

	require.Len(t, tokens, 2)
	assert.False(t, f.lx.Aborted())
	assert.Equal(t, 1, f.sess.Diagnostics().Count(diag.Warning))
}

func TestLexer_PeekIsIdempotent(t *testing.T) {
	f := newFixture(t, "a b", Options{}, diag.Options{})

	p1 := f.lx.PeekNextToken()
	p2 := f.lx.PeekNextToken()
	require.NotNil(t, p1)
	assert.Same(t, p1, p2)

	r := f.lx.ReadNextToken()
	assert.Same(t, p1, r)

	next := f.lx.PeekNextToken()
	require.NotNil(t, next)
	assert.Equal(t, "b", next.Name)
}

func TestLexer_PeekSkipsFilteredTrivia(t *testing.T) {
	f := newFixture(t, "  // c\n  x", Options{}, diag.Options{})

	tok := f.lx.PeekNextToken()

	require.NotNil(t, tok)
	assert.Equal(t, "x", tok.Name)
	assert.Equal(t, f.span(2, 3, 2, 4), tok.Range)
}

func TestLexer_NextLocation(t *testing.T) {
	f := newFixture(t, "ab\ncd", Options{}, diag.Options{})

	assert.Equal(t, source.At(f.id, 1, 1), f.lx.NextLocation())
	f.lx.ReadNextToken()
	assert.Equal(t, source.At(f.id, 1, 3), f.lx.NextLocation())
	f.lx.ReadNextToken()
	assert.Equal(t, source.At(f.id, 2, 3), f.lx.NextLocation())
}

func TestLexer_EmptyInput(t *testing.T) {
	f := newFixture(t, "", Options{KeepWhitespace: true}, diag.Options{})

	assert.Nil(t, f.lx.PeekNextToken())
	assert.True(t, f.lx.AtEOF())
	assert.NoError(t, f.lx.Err())
	assert.Empty(t, f.out.String())
}
