package ioerr

import (
	"errors"
	"fmt"
	"strings"
)

// Pos is a source position. Row and Col are 1-based, Index is the 0-based
// character offset.
type Pos struct {
	Row   int
	Col   int
	Index int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d (offset %d)", p.Row, p.Col, p.Index)
}

// Error is the error type produced by every iox package.
type Error struct {
	Code Code
	Msg  string
	// Pos is nil when the failure has no source text, e.g. while loading
	// or serializing native values.
	Pos *Pos
	// Path is the dotted member path, when known.
	Path string
	Err  error
}

// New returns an error for code with the catalog message.
func New(code Code, pos *Pos) *Error {
	return &Error{Code: code, Msg: code.Message(), Pos: pos}
}

// Newf returns an error for code with a formatted detail appended to the
// catalog message.
func Newf(code Code, pos *Pos, format string, args ...any) *Error {
	return &Error{
		Code: code,
		Msg:  code.Message() + ": " + fmt.Sprintf(format, args...),
		Pos:  pos,
	}
}

// Wrap returns an error for code wrapping err.
func Wrap(code Code, pos *Pos, err error) *Error {
	return &Error{Code: code, Msg: code.Message() + ": " + err.Error(), Pos: pos, Err: err}
}

func (e *Error) Kind() Kind { return e.Code.Kind() }

func (e *Error) Error() string {
	b := &strings.Builder{}
	b.WriteString(e.Kind().String())
	b.WriteString(": ")
	b.WriteString(e.Msg)
	if e.Path != "" {
		fmt.Fprintf(b, " (member %s)", e.Path)
	}
	if e.Pos != nil {
		fmt.Fprintf(b, " at %s", e.Pos)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is e's Code.
func (e *Error) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.Code
}

// WithPath sets the member path on err if it is an *Error without one,
// prefixing name onto any path already present.
func WithPath(err error, name string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	switch {
	case e.Path == "":
		e.Path = name
	case strings.HasPrefix(e.Path, "["):
		e.Path = name + e.Path
	default:
		e.Path = name + "." + e.Path
	}
	return err
}

// CodeOf returns the code carried by err, or "" if err is not an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// PosOf returns the position carried by err, or nil.
func PosOf(err error) *Pos {
	var e *Error
	if errors.As(err, &e) {
		return e.Pos
	}
	return nil
}
