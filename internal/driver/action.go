// Package driver runs frontend actions over the files of a session.
package driver

import (
	"errors"
	"fmt"
	"io"

	"github.com/hassan/jvc/internal/diag"
	"github.com/hassan/jvc/internal/lexer"
	"github.com/hassan/jvc/internal/session"
	"github.com/hassan/jvc/internal/textio"
)

var (
	// ErrUnsupportedAction is returned by Run for actions with no
	// implementation.
	ErrUnsupportedAction = errors.New("driver: unsupported action")

	// ErrAborted is returned when the diagnostics engine stopped the action.
	ErrAborted = errors.New("driver: aborted by diagnostics")
)

// Action selects what the frontend does with the loaded files.
type Action int

const (
	ActionLexOnly Action = iota
	ActionEmitLLVM
)

func (a Action) String() string {
	switch a {
	case ActionLexOnly:
		return "lex-only"
	case ActionEmitLLVM:
		return "emit-llvm"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Run executes action over every file registered with s, writing results to
// out. Unsupported actions are reported as a fatal diagnostic.
func Run(action Action, s *session.Session, out io.Writer, opts lexer.Options) error {
	switch action {
	case ActionLexOnly:
		return LexOnly(s, out, opts)
	default:
		s.Diagnostics().Emit(diag.New(diag.Fatal, "Unsupported action type."))
		return fmt.Errorf("%w: %s", ErrUnsupportedAction, action)
	}
}

// LexOnly tokenizes every registered file in id order and prints the dump
// of each token, indented under a header naming the file.
func LexOnly(s *session.Session, out io.Writer, opts lexer.Options) error {
	w := textio.NewWriter(out)
	for id := 1; id <= s.Sources().Len(); id++ {
		if err := lexFile(s, id, w, opts); err != nil {
			return err
		}
	}
	return w.Err()
}

func lexFile(s *session.Session, id int, w *textio.Writer, opts lexer.Options) error {
	f, ok := s.Sources().Lookup(id)
	if !ok {
		return fmt.Errorf("%w: id %d", lexer.ErrUnknownFile, id)
	}
	lx, err := lexer.New(s, id, opts)
	if err != nil {
		return err
	}

	w.Printf("Tokenization of source file: %s\n", f.Path())
	err = w.WithIndent(func() error {
		dumpTokens(lx, w)
		return nil
	})
	w.Println()
	if err != nil {
		return err
	}

	if lx.Aborted() {
		return ErrAborted
	}
	if err := lx.Err(); err != nil {
		return fmt.Errorf("lexing %s: %w", f.Path(), err)
	}
	return w.Err()
}

// dumpTokens prints tokens until the input runs out. Tokens that fail to lex
// have already been reported and are skipped.
func dumpTokens(lx *lexer.Lexer, w *textio.Writer) {
	for !lx.AtEOF() && !lx.Aborted() {
		if tok := lx.ReadNextToken(); tok != nil {
			w.Println(tok.String())
		}
	}
}
