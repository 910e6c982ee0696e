// Command jvc is the front end of a compiler for a subset of Java.
//
// Usage:
//
//	jvc -lex-only [-o out.txt] [-keep-comments] [-keep-whitespace] File.java...
//	jvc -repl
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hassan/jvc/internal/diag"
	"github.com/hassan/jvc/internal/driver"
	"github.com/hassan/jvc/internal/lexer"
	"github.com/hassan/jvc/internal/session"
)

type config struct {
	lexOnly        bool
	repl           bool
	output         string
	werror         bool
	exitOnError    bool
	keepComments   bool
	keepWhitespace bool
	inputs         []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Exit))
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("jvc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.lexOnly, "lex-only", false, "Execute lexer only.")
	fs.BoolVar(&cfg.repl, "repl", false, "Tokenize lines read interactively.")
	fs.StringVar(&cfg.output, "o", "", "Path to the output file")
	fs.BoolVar(&cfg.werror, "Werror", false, "Treat warnings as errors.")
	fs.BoolVar(&cfg.exitOnError, "exit-on-error", false, "Stop at the first error.")
	fs.BoolVar(&cfg.keepComments, "keep-comments", false, "Emit comment tokens.")
	fs.BoolVar(&cfg.keepWhitespace, "keep-whitespace", false, "Emit whitespace tokens.")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.inputs = fs.Args()
	if !cfg.repl && len(cfg.inputs) == 0 {
		return cfg, errors.New("no input files")
	}
	return cfg, nil
}

// run executes the compiler and returns the process exit status. exit is
// handed to the diagnostics engine for fatal messages in batch mode.
func run(args []string, stdout, stderr io.Writer, exit func(int)) int {
	cfg, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: fatal: %v\n", diag.Prefix, err)
		return 1
	}

	opts := diag.Options{
		TreatWarningsAsErrors: cfg.werror,
		ExitOnError:           cfg.exitOnError,
	}
	if !cfg.repl {
		opts.Exit = exit
	}
	s := session.New(stderr, opts)
	lexOpts := lexer.Options{KeepComments: cfg.keepComments, KeepWhitespace: cfg.keepWhitespace}

	if cfg.repl {
		history := ""
		if home, err := os.UserHomeDir(); err == nil {
			history = filepath.Join(home, driver.HistoryFile)
		}
		lexOpts.KeepComments = true
		if err := driver.RunREPL(s, stdout, driver.REPLConfig{HistoryPath: history, Lexer: lexOpts}); err != nil {
			fmt.Fprintf(stderr, "%s: fatal: %v\n", diag.Prefix, err)
			return 1
		}
		return 0
	}

	for _, path := range cfg.inputs {
		if _, v, _ := s.Load(path); v == diag.Abort {
			return 1
		}
	}

	action := driver.ActionEmitLLVM
	if cfg.lexOnly {
		action = driver.ActionLexOnly
	}
	if err := runAction(s, action, cfg.output, stdout, lexOpts); err != nil {
		// Aborts and unsupported actions have been reported already.
		if !errors.Is(err, driver.ErrAborted) && !errors.Is(err, driver.ErrUnsupportedAction) {
			s.Diagnostics().Emit(diag.New(diag.Fatal, err.Error()))
		}
		return 1
	}
	if s.Diagnostics().HasErrors() {
		return 1
	}
	return 0
}

// createOutput opens the -o destination.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// runAction runs action with its results going to the file at output, or to
// stdout when output is empty. A failure to close the file is returned like
// any other write failure.
func runAction(s *session.Session, action driver.Action, output string, stdout io.Writer, opts lexer.Options) error {
	if output == "" {
		return driver.Run(action, s, stdout, opts)
	}

	f, err := createOutput(output)
	if err != nil {
		return fmt.Errorf("cannot open output file: %w", err)
	}
	runErr := driver.Run(action, s, f, opts)
	if err := f.Close(); err != nil && runErr == nil {
		return fmt.Errorf("cannot close output file %s: %w", output, err)
	}
	return runErr
}
