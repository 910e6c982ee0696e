package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// File is one source file registered with a Manager. The whole content is
// kept in memory so diagnostics can quote it.
type File struct {
	id         int
	path       string
	content    []byte
	lineStarts []int // byte offset of the first byte of every row
}

func newFile(id int, path string, content []byte) *File {
	lineStarts := []int{0}
	for i, b := range content {
		if b == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &File{id: id, path: path, content: content, lineStarts: lineStarts}
}

// ID returns the id the file was registered under.
func (f *File) ID() int { return f.id }

// Path returns the path the file was loaded from.
func (f *File) Path() string { return f.path }

// Content returns the whole text of the file.
func (f *File) Content() []byte { return f.content }

// Lines returns the number of rows in the file. An empty file has one row.
func (f *File) Lines() int { return len(f.lineStarts) }

// NewReader returns a fresh byte source positioned at the start of the file.
func (f *File) NewReader() io.Reader {
	return bytes.NewReader(f.content)
}

// ViewInRange returns the text of every row touched by r, from the start of
// the first row to the end of the last one (newline included). An end at
// column 1 touches nothing of its row. It returns
// an empty string when r is invalid, belongs to another file or lies out of
// bounds.
func (f *File) ViewInRange(r Range) string {
	if !r.IsValid() || r.FileID() != f.id {
		return ""
	}
	last := r.End.Row
	if r.End.Column == 1 && last > r.Start.Row {
		// The range stops before the first byte of its end row.
		last--
	}
	return f.rows(r.Start.Row, last+1)
}

// ViewAtLocation returns the row containing loc, newline included.
func (f *File) ViewAtLocation(loc Location) string {
	if !loc.IsValid() || loc.FileID != f.id {
		return ""
	}
	return f.rows(loc.Row, loc.Row+1)
}

// EOFLocation returns the location right after the last byte of the file.
func (f *File) EOFLocation() Location {
	last := len(f.lineStarts)
	width := len(f.content) - f.lineStarts[last-1]
	return At(f.id, last, width+1)
}

// rows returns rows [startRow, endRow) as text; rows are 1-based.
func (f *File) rows(startRow, endRow int) string {
	lines := len(f.lineStarts)
	if startRow < 1 || startRow > lines {
		return ""
	}
	if endRow <= startRow {
		return ""
	}
	start := f.lineStarts[startRow-1]
	if endRow > lines {
		return string(f.content[start:])
	}
	return string(f.content[start:f.lineStarts[endRow-1]])
}

// Manager is the registry of files loaded into one compiler session.
// Ids are handed out sequentially starting at 1.
type Manager struct {
	files []*File
}

// NewManager creates an empty registry.
func NewManager() *Manager {
	return &Manager{}
}

// Add registers in-memory content under the given path and returns its id.
func (m *Manager) Add(path string, content []byte) int {
	id := len(m.files) + 1
	m.files = append(m.files, newFile(id, path, content))
	return id
}

// LoadReader reads r to the end and registers the result under path.
func (m *Manager) LoadReader(path string, r io.Reader) (int, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("cannot load source file %s: %w", path, err)
	}
	return m.Add(path, content), nil
}

// Load reads the file at path from disk and registers it.
func (m *Manager) Load(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("cannot load source file: %w", err)
	}
	return m.Add(path, content), nil
}

// Lookup returns the file registered under id.
func (m *Manager) Lookup(id int) (*File, bool) {
	if id < 1 || id > len(m.files) {
		return nil, false
	}
	return m.files[id-1], true
}

// Len returns the number of registered files.
func (m *Manager) Len() int {
	return len(m.files)
}

// EOFLocation returns the end-of-file location of the given file, or an
// invalid location if it is not registered.
func (m *Manager) EOFLocation(id int) Location {
	f, ok := m.Lookup(id)
	if !ok {
		return Invalid()
	}
	return f.EOFLocation()
}
