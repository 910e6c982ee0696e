// Package session holds the state shared by every phase of one compiler
// invocation: the registry of loaded files and the diagnostics engine.
package session

import (
	"io"

	"github.com/hassan/jvc/internal/diag"
	"github.com/hassan/jvc/internal/source"
)

// Session is shared by reference among all lexers created against it.
type Session struct {
	sources *source.Manager
	diag    *diag.Engine
}

// New creates a session whose diagnostics go to out.
func New(out io.Writer, opts diag.Options) *Session {
	sources := source.NewManager()
	return &Session{
		sources: sources,
		diag:    diag.NewEngine(out, sources, opts),
	}
}

// Sources returns the file registry.
func (s *Session) Sources() *source.Manager {
	return s.sources
}

// Diagnostics returns the diagnostics engine.
func (s *Session) Diagnostics() *diag.Engine {
	return s.diag
}

// Load registers the file at path. On failure a Fatal diagnostic is emitted
// and the verdict of the engine is returned alongside the error.
func (s *Session) Load(path string) (int, diag.Verdict, error) {
	id, err := s.sources.Load(path)
	if err != nil {
		return 0, s.diag.Emit(diag.New(diag.Fatal, err.Error())), err
	}
	return id, diag.Continue, nil
}
