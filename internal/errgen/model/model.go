// Package model holds the validated form of errgen declarations. A model is
// built by the parse package for one package run and consumed by the emit
// package. Nothing in this package refers to the source syntax except the
// field type expressions, which are copied verbatim into generated code.
package model

import (
	"go/ast"
	"go/token"
	"strings"
)

// Kind distinguishes records from unions.
type Kind int

const (
	Record Kind = iota
	Union
)

func (k Kind) String() string {
	switch k {
	case Record:
		return "record"
	case Union:
		return "union"
	}
	return "unknown"
}

// Declaration is an annotated type declaration. A record is a struct type
// annotated with its own error mode. A union is an interface type whose
// variants are struct types declared in the same package.
//
// A record holds exactly one variant which describes the struct itself, so
// records and union variants share the same rules and the same generator.
type Declaration struct {
	Name     string
	Kind     Kind
	Variants []*Variant

	// Path is the override of the runtime package path. It is empty if the
	// declaration has no errgen:path directive.
	Path    string
	PathPos token.Pos

	// Markers are the unexported methods without parameters and results
	// declared by a union interface. Every variant implements them.
	Markers []string

	File *ast.File
	Pos  token.Pos
}

// IsUnion reports whether the declaration is a union.
func (d *Declaration) IsUnion() bool { return d.Kind == Union }

// Variant is a struct type with its own error mode. For a record, the variant
// is the record itself and its name equals the declaration name.
type Variant struct {
	Decl   *Declaration
	Name   string
	Fields []*Field
	Mode   Mode

	File *ast.File
	Pos  token.Pos
}

// String returns the name to use in diagnostics. Union variants are qualified
// by their union, e.g., "MyError.VariantA".
func (v *Variant) String() string {
	if v.Decl == nil || v.Decl.Kind == Record {
		return v.Name
	}
	return v.Decl.Name + "." + v.Name
}

// Source returns the field exposed as the cause, or nil.
func (v *Variant) Source() *Field { return v.withRole(RoleSource) }

// From returns the field which the conversion constructor takes, or nil.
func (v *Variant) From() *Field { return v.withRole(RoleFrom) }

// Backtrace returns the field holding a backtrace, or nil.
func (v *Variant) Backtrace() *Field { return v.withRole(RoleBacktrace) }

func (v *Variant) withRole(r Roles) *Field {
	for _, f := range v.Fields {
		if f.Roles.Has(r) {
			return f
		}
	}
	return nil
}

// Field is a struct field. Fields declared together like "A, B int" are
// separate fields sharing the same type expression.
type Field struct {
	// Name is the field name. For an embedded field, it is the name of the
	// embedded type. It may be "_".
	Name string

	// Index is the position of the field in its struct, starting from 0.
	Index int

	Type     ast.Expr
	Embedded bool
	Roles    Roles

	Pos token.Pos
}

// IsBlank reports whether the field cannot be referred to.
func (f *Field) IsBlank() bool { return f.Name == "_" }

// IsPointer reports whether the field type is syntactically a pointer.
func (f *Field) IsPointer() bool {
	_, ok := ast.Unparen(f.Type).(*ast.StarExpr)
	return ok
}

// Roles is a set of field role markers.
type Roles uint8

const (
	RoleSource Roles = 1 << iota
	RoleFrom
	RoleBacktrace
)

// Has reports whether all roles in r2 are set.
func (r Roles) Has(r2 Roles) bool { return r&r2 == r2 && r2 != 0 }

func (r Roles) String() string {
	var names []string
	if r.Has(RoleSource) {
		names = append(names, "source")
	}
	if r.Has(RoleFrom) {
		names = append(names, "from")
	}
	if r.Has(RoleBacktrace) {
		names = append(names, "backtrace")
	}
	return strings.Join(names, ",")
}
