// Package diag implements the diagnostics engine: the single channel through
// which the front end reports malformed input and the policy that decides
// whether compilation may go on.
package diag

import (
	"fmt"

	"github.com/hassan/jvc/internal/source"
)

// Level is the severity of a diagnostic.
type Level int

const (
	Info Level = iota
	Warning
	Error
	Fatal
)

func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "custom"
	}
}

// Message is one diagnostic. Location and Range are optional: leave them at
// their zero value (which is invalid) when the message has no position. When
// both are valid the range wins.
type Message struct {
	Level    Level
	Location source.Location
	Range    source.Range
	Text     string
}

// New builds a message without a source position.
func New(level Level, text string) Message {
	return Message{Level: level, Text: text}
}

// Newf is New with fmt.Sprintf formatting.
func Newf(level Level, format string, args ...any) Message {
	return New(level, fmt.Sprintf(format, args...))
}

// At builds a message pointing at a single location.
func At(level Level, loc source.Location, text string) Message {
	return Message{Level: level, Location: loc, Text: text}
}

// Atf is At with fmt.Sprintf formatting.
func Atf(level Level, loc source.Location, format string, args ...any) Message {
	return At(level, loc, fmt.Sprintf(format, args...))
}

// Over builds a message spanning a source range.
func Over(level Level, rng source.Range, text string) Message {
	return Message{Level: level, Range: rng, Text: text}
}

// Overf is Over with fmt.Sprintf formatting.
func Overf(level Level, rng source.Range, format string, args ...any) Message {
	return Over(level, rng, fmt.Sprintf(format, args...))
}

// String renders the header line of the message without the excerpt.
func (m Message) String() string {
	return m.Level.String() + ": " + m.Text
}
