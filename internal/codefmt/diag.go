package codefmt

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

type (
	Pkger interface{ Pkg() *packages.Package }
	Poser interface{ Pos() token.Pos }
	Ender interface{ End() token.Pos }
)

// CodeError is a diagnostic at a position in user's source code. It matches
// its kind with errors.Is.
type CodeError struct {
	msg  error
	kind error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

// Unwrap returns the message without the position.
func (e CodeError) Unwrap() error { return e.msg }

// Is reports whether the diagnostic is of the given kind.
func (e CodeError) Is(target error) bool { return e.kind != nil && e.kind == target }

// Kind returns the kind of the diagnostic. It may be nil.
func (e CodeError) Kind() error { return e.kind }

func (e CodeError) Pos() token.Pos { return e.pos }
func (e CodeError) End() token.Pos { return e.end }

// Error prefixes the message with the position if it is known.
func (e CodeError) Error() string {
	if e.msg == nil {
		return ""
	}
	if !e.pos.IsValid() || e.fset == nil {
		return e.msg.Error()
	}
	return FormatPosition(e.fset.Position(e.pos)) + ": " + e.msg.Error()
}

// KindErrorf formats a diagnostic of kind at poser. The file set to locate
// poser is taken from pkger. Both pkger and poser may be nil. An error cannot
// be an argument; format its message instead.
//
//	codefmt.KindErrorf(p, model.ErrReference, field, "unknown field %s", name)
func KindErrorf(pkger Pkger, kind error, poser Poser, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error")
		}
	}

	e := &CodeError{msg: fmt.Errorf(format, args...), kind: kind}
	if pkger != nil {
		if pkg := pkger.Pkg(); pkg != nil {
			e.fset = pkg.Fset
		}
	}
	if poser != nil {
		e.pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			e.end = ender.End()
		}
	}
	return e
}

type pkger struct{ pkg *packages.Package }

func (p pkger) Pkg() *packages.Package { return p.pkg }

// Pkg adapts pkg to a [Pkger].
func Pkg(pkg *packages.Package) Pkger { return pkger{pkg} }

type poser struct{ pos token.Pos }

func (p poser) Pos() token.Pos { return p.pos }

// Pos adapts pos to a [Poser].
func Pos(pos token.Pos) Poser { return poser{pos} }

// wd is the cached working directory.
var wd, _ = os.Getwd()

// FormatPosition formats pos as "file:line:col". The file name is relative to
// the working directory if possible.
func FormatPosition(pos token.Position) string {
	if !pos.IsValid() {
		return "-:-"
	}

	filename := pos.Filename
	if rel, err := filepath.Rel(wd, filename); err == nil {
		filename = rel
	}
	return fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
}
