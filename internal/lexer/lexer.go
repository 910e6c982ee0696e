package lexer

import (
	"errors"
	"fmt"

	"github.com/hassan/jvc/internal/diag"
	"github.com/hassan/jvc/internal/session"
	"github.com/hassan/jvc/internal/source"
)

// ErrUnknownFile is returned by New when the file id is not registered with
// the session.
var ErrUnknownFile = errors.New("lexer: source file is not registered")

// Options selects which trivia tokens the lexer hands out.
type Options struct {
	KeepComments   bool
	KeepWhitespace bool
}

// Lexer turns the bytes of one registered source file into tokens.
//
// The lexer is the first phase of the front end. Its responsibilities are:
//
//   - pulling bytes from the file through a block-buffered reader
//   - tracking the row and column of every byte it consumes
//   - classifying runs of bytes as keywords, identifiers, literals,
//     delimiters, operators, comments or whitespace
//   - reporting malformed input to the session's diagnostics engine
//
// The lexer does NOT build syntax trees, check types or resolve names.
//
// Tokens are produced on demand, one at a time, through PeekNextToken and
// ReadNextToken. A single pending slot holds the token that has been lexed
// but not yet consumed, so any number of peeks between two reads see the
// same token. Whitespace and comments are lexed like every other token and
// then dropped unless Options asks for them.
//
// ERROR RECOVERY: a lexical error is reported, the offending input is
// skipped and the call that hit it returns nil. The next call resumes
// after the bad input. When the engine answers an emission with
// diag.Abort the lexer stops for good and yields no more tokens; Aborted
// tells that apart from a recoverable error, and ErrorCount says how many
// errors were seen.
//
// A Lexer must not be used from more than one goroutine. Several lexers
// may share one session.
type Lexer struct {
	// diag receives every diagnostic. Its verdict decides whether lexing
	// may go on.
	diag *diag.Engine

	// opts selects which trivia tokens are handed out.
	opts Options

	// loc is the position of the next unconsumed byte. It only moves
	// forward, one Advance per byte read.
	loc LocationBuilder

	// reader is the only way bytes enter the lexer.
	reader *charReader

	// pending is the lexed but unconsumed token, or nil. It never holds a
	// token the trivia filter rejects once PeekNextToken returns.
	pending *Token

	// errors counts diagnostics raised at Error level or above.
	errors int

	// aborted latches the first diag.Abort verdict.
	aborted bool

	// reported is set once a read failure of the source has been emitted,
	// so it is emitted only once.
	reported bool
}

// New creates a lexer over the registered file fileID.
func New(s *session.Session, fileID int, opts Options) (*Lexer, error) {
	f, ok := s.Sources().Lookup(fileID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownFile, fileID)
	}
	return &Lexer{
		diag:   s.Diagnostics(),
		opts:   opts,
		loc:    NewLocationBuilder(fileID),
		reader: newCharReader(f.NewReader()),
	}, nil
}

// PeekNextToken returns the next token that passes the trivia filter without
// consuming it. Repeated calls return the same token. A nil result means no
// token is available: the input is exhausted, the token under the cursor
// failed to lex (see ErrorCount), or the lexer aborted.
func (l *Lexer) PeekNextToken() *Token {
	if l.pending == nil {
		l.scan()
	}
	for l.pending != nil && !l.keep(l.pending) {
		l.scan()
	}
	return l.pending
}

// ReadNextToken returns the same token PeekNextToken would and consumes it.
func (l *Lexer) ReadNextToken() *Token {
	t := l.PeekNextToken()
	l.pending = nil
	return t
}

// ReadAll reads tokens until the first nil result.
func (l *Lexer) ReadAll() []*Token {
	var tokens []*Token
	for t := l.ReadNextToken(); t != nil; t = l.ReadNextToken() {
		tokens = append(tokens, t)
	}
	return tokens
}

// NextLocation returns the location of the next unconsumed byte.
func (l *Lexer) NextLocation() source.Location {
	return l.loc.Location()
}

// AtEOF reports whether the input is exhausted and no token is pending.
func (l *Lexer) AtEOF() bool {
	if l.pending != nil {
		return false
	}
	_, ok := l.reader.peek()
	return !ok
}

// ErrorCount returns how many errors the lexer has reported.
func (l *Lexer) ErrorCount() int { return l.errors }

// Aborted reports whether the diagnostics engine told the lexer to stop.
func (l *Lexer) Aborted() bool { return l.aborted }

// Err returns the failure of the underlying byte source, if any.
func (l *Lexer) Err() error { return l.reader.Err() }

func (l *Lexer) keep(t *Token) bool {
	switch t.Kind {
	case TokenWhitespace:
		return l.opts.KeepWhitespace
	case TokenComment:
		return l.opts.KeepComments
	default:
		return true
	}
}

// scan lexes one token into l.pending, leaving it nil when none results.
func (l *Lexer) scan() {
	l.pending = nil
	if l.aborted {
		return
	}

	start := l.NextLocation()
	ch, ok := l.peek()
	if !ok {
		l.checkReadError()
		return
	}

	switch {
	case isSpace(ch):
		l.lexWhitespace(start)
	case isAlpha(ch):
		l.lexKeywordOrIdentifier(start)
	case ch == '_' || ch == '$':
		l.lexIdentifier(start)
	case isDigit(ch):
		l.lexNumber(start, 0)
	case ch == '\'':
		l.lexChar(start)
	case ch == '"':
		l.lexString(start)
	case isDelimiter(ch):
		l.lexDelimiter(start)
	case ch == '+' || ch == '-':
		l.lexSignOrNumber(start)
	case ch == '/':
		l.lexSlash(start)
	case isOperatorLeader(ch):
		l.lexOperator(start)
	default:
		l.read()
		l.report(diag.Atf(diag.Error, start, "Unrecognized token: `%s`.", printable(ch)))
	}

	if l.aborted {
		l.pending = nil
	}
}

func (l *Lexer) emit(t *Token) {
	l.pending = t
}

// report forwards m to the diagnostics engine and latches an abort verdict.
func (l *Lexer) report(m diag.Message) {
	if m.Level >= diag.Error {
		l.errors++
	}
	if l.diag.Emit(m) == diag.Abort {
		l.aborted = true
	}
}

func (l *Lexer) checkReadError() {
	if err := l.reader.Err(); err != nil && !l.reported {
		l.reported = true
		l.report(diag.Atf(diag.Error, l.NextLocation(), "cannot read source: %v", err))
	}
}

func (l *Lexer) peek() (byte, bool) {
	return l.reader.peek()
}

func (l *Lexer) read() (byte, bool) {
	ch, ok := l.reader.read()
	if ok {
		l.loc.Advance(ch)
	}
	return ch, ok
}

// match consumes the next byte if it equals expected.
func (l *Lexer) match(expected byte) bool {
	ch, ok := l.peek()
	if !ok || ch != expected {
		return false
	}
	l.read()
	return true
}

// mustPeek is peek for positions where the token cannot end yet. Running out
// of input there is reported as an error.
func (l *Lexer) mustPeek() (byte, bool) {
	ch, ok := l.peek()
	if !ok {
		l.unexpectedEOF()
	}
	return ch, ok
}

func (l *Lexer) mustRead() (byte, bool) {
	ch, ok := l.read()
	if !ok {
		l.unexpectedEOF()
	}
	return ch, ok
}

func (l *Lexer) unexpectedEOF() {
	if err := l.reader.Err(); err != nil {
		l.checkReadError()
		return
	}
	l.report(diag.At(diag.Error, l.NextLocation(), "Unexpected end-of-file."))
}

func (l *Lexer) lexWhitespace(start source.Location) {
	for {
		ch, ok := l.peek()
		if !ok || !isSpace(ch) {
			break
		}
		l.read()
	}
	l.emit(&Token{Kind: TokenWhitespace, Range: l.spanFrom(start)})
}

// lexKeywordOrIdentifier lexes an alpha-led word. A word containing a digit
// or underscore is always an identifier.
func (l *Lexer) lexKeywordOrIdentifier(start source.Location) {
	word, plain := l.readWord()
	rng := l.spanFrom(start)
	if plain {
		if kw, ok := LookupKeyword(word); ok {
			l.emit(&Token{Kind: TokenKeyword, Range: rng, Keyword: kw})
			return
		}
	}
	l.emit(&Token{Kind: TokenIdentifier, Range: rng, Name: word})
}

func (l *Lexer) lexIdentifier(start source.Location) {
	word, _ := l.readWord()
	l.emit(&Token{Kind: TokenIdentifier, Range: l.spanFrom(start), Name: word})
}

// readWord consumes an identifier run. plain is false if the run holds a
// digit or underscore.
func (l *Lexer) readWord() (word string, plain bool) {
	var buf []byte
	plain = true
	for {
		ch, ok := l.peek()
		if !ok || !isIdentPart(ch) {
			break
		}
		if isDigit(ch) || ch == '_' {
			plain = false
		}
		buf = append(buf, ch)
		l.read()
	}
	return string(buf), plain
}

func (l *Lexer) spanFrom(start source.Location) source.Range {
	return source.Span(start, l.NextLocation())
}

// isSpace matches the C locale whitespace set.
func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isOctDigit(ch byte) bool {
	return ch >= '0' && ch <= '7'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isIdentPart(ch byte) bool {
	return isAlpha(ch) || isDigit(ch) || ch == '_' || ch == '$'
}

// digitValue returns the value of a hex, decimal or octal digit.
func digitValue(ch byte) int {
	switch {
	case isDigit(ch):
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	default:
		return -1
	}
}

// printable renders a byte for a diagnostic.
func printable(ch byte) string {
	if ch >= 0x20 && ch < 0x7f {
		return string(rune(ch))
	}
	return fmt.Sprintf("\\x%02x", ch)
}
