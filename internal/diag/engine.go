package diag

import (
	"io"
	"strings"
	"sync"

	"github.com/hassan/jvc/internal/source"
	"github.com/hassan/jvc/internal/textio"
)

// Prefix starts every line the engine prints for a message.
const Prefix = "jvc"

// Verdict tells the caller of Emit whether it may keep going.
type Verdict int

const (
	// Continue means the message was reported and work may go on.
	Continue Verdict = iota
	// Abort means the session must stop: the message was fatal, or an
	// error while the engine exits on errors.
	Abort
)

func (v Verdict) String() string {
	if v == Abort {
		return "abort"
	}
	return "continue"
}

// Options configures an Engine.
type Options struct {
	// TreatWarningsAsErrors reports every Warning as an Error.
	TreatWarningsAsErrors bool

	// ExitOnError makes Error messages abort the session, not only Fatal ones.
	ExitOnError bool

	// Exit, when set, is called with status 1 before Emit returns Abort.
	// Batch drivers pass os.Exit; embedders leave it nil and stop on the
	// returned verdict instead.
	Exit func(code int)
}

// FileLookup resolves file ids to registered files for source excerpts.
type FileLookup interface {
	Lookup(id int) (*source.File, bool)
}

// Engine formats diagnostics onto a sink and applies the escalation policy.
// Emit may be called from several goroutines; output of one message is
// never interleaved with another.
type Engine struct {
	mu     sync.Mutex
	out    *textio.Writer
	files  FileLookup
	opts   Options
	counts [Fatal + 1]int
}

// NewEngine creates an engine writing to out. files may be nil, in which case
// no excerpts are printed.
func NewEngine(out io.Writer, files FileLookup, opts Options) *Engine {
	tw, ok := out.(*textio.Writer)
	if !ok {
		tw = textio.NewWriter(out)
	}
	return &Engine{out: tw, files: files, opts: opts}
}

// Options returns the engine configuration.
func (e *Engine) Options() Options {
	return e.opts
}

// Emit reports m and returns whether the caller may continue.
//
// Warnings are mapped to errors first when TreatWarningsAsErrors is set. If
// the message carries a valid range (or failing that, a valid location) in
// a registered file, the file path, position and the affected source lines
// follow the header.
func (e *Engine) Emit(m Message) Verdict {
	level := e.mapLevel(m.Level)

	e.mu.Lock()
	defer e.mu.Unlock()

	if level >= Info && level <= Fatal {
		e.counts[level]++
	}

	e.out.Printf("%s: %s: %s\n", Prefix, level, m.Text)
	switch {
	case m.Range.IsValid():
		if f, ok := e.lookup(m.Range.FileID()); ok {
			e.excerpt(f.Path()+":"+m.Range.String()+":", f.ViewInRange(m.Range))
		}
	case m.Location.IsValid():
		if f, ok := e.lookup(m.Location.FileID); ok {
			e.excerpt(f.Path()+":"+m.Location.String(), f.ViewAtLocation(m.Location))
		}
	}

	if !e.shouldExit(level) {
		return Continue
	}
	if e.opts.Exit != nil {
		e.opts.Exit(1)
	}
	return Abort
}

// Count returns how many messages were emitted at level, after mapping.
func (e *Engine) Count(level Level) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if level < Info || level > Fatal {
		return 0
	}
	return e.counts[level]
}

// HasErrors reports whether any Error or Fatal message was emitted.
func (e *Engine) HasErrors() bool {
	return e.Count(Error) > 0 || e.Count(Fatal) > 0
}

// Err returns the first write error of the output sink.
func (e *Engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.out.Err()
}

func (e *Engine) lookup(id int) (*source.File, bool) {
	if e.files == nil {
		return nil, false
	}
	return e.files.Lookup(id)
}

func (e *Engine) excerpt(where, text string) {
	_ = e.out.WithIndent(func() error {
		e.out.Printf("In file %s\n", where)
		return e.out.WithIndent(func() error {
			if text == "" {
				return nil
			}
			e.out.Printf("%s", text)
			if !strings.HasSuffix(text, "\n") {
				e.out.Printf("\n")
			}
			return nil
		})
	})
}

func (e *Engine) mapLevel(level Level) Level {
	if level == Warning && e.opts.TreatWarningsAsErrors {
		return Error
	}
	return level
}

func (e *Engine) shouldExit(level Level) bool {
	return level == Fatal || (level == Error && e.opts.ExitOnError)
}
