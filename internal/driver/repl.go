package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/hassan/jvc/internal/lexer"
	"github.com/hassan/jvc/internal/session"
	"github.com/hassan/jvc/internal/textio"
)

const (
	replPrompt  = "jvc> "
	replBanner  = "jvc interactive lexer. Type :quit to exit."
	HistoryFile = ".jvc_history"
)

// REPLConfig configures RunREPL.
type REPLConfig struct {
	// HistoryPath is where line history is loaded from and saved to. Empty
	// disables history.
	HistoryPath string
	Lexer       lexer.Options
}

// RunREPL reads lines from the terminal and prints the tokens of each. Every
// line is registered with s as its own source file, so diagnostics point at
// the line that caused them.
func RunREPL(s *session.Session, out io.Writer, cfg REPLConfig) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.HistoryPath != "" {
		if f, err := os.Open(cfg.HistoryPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(cfg.HistoryPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	r := newREPL(s, out, cfg.Lexer)
	fmt.Fprintln(out, replBanner)
	for {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}

		done, err := r.eval(line)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
	}
}

type repl struct {
	s     *session.Session
	w     *textio.Writer
	opts  lexer.Options
	lines int
}

func newREPL(s *session.Session, out io.Writer, opts lexer.Options) *repl {
	return &repl{s: s, w: textio.NewWriter(out), opts: opts}
}

// eval handles one input line. done is true when the user asked to leave.
func (r *repl) eval(line string) (done bool, err error) {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return false, nil
	case strings.HasPrefix(trimmed, ":"):
		switch strings.ToLower(trimmed) {
		case ":quit", ":q":
			return true, nil
		default:
			r.w.Println("unknown command. Type :quit to exit.")
			return false, r.w.Err()
		}
	}

	r.lines++
	id := r.s.Sources().Add(fmt.Sprintf("<stdin:%d>", r.lines), []byte(line+"\n"))
	lx, err := lexer.New(r.s, id, r.opts)
	if err != nil {
		return false, err
	}
	err = r.w.WithIndent(func() error {
		dumpTokens(lx, r.w)
		return nil
	})
	if err != nil {
		return false, err
	}
	return false, r.w.Err()
}
