package model

import (
	"go/token"
	"strings"
)

// Mode is the error mode of a record or a variant. It is either [Formatted]
// or [Transparent].
type Mode interface {
	mode()
}

// Formatted renders the error message from a template.
type Formatted struct {
	Template Template
}

// Transparent forwards both the message and the cause to the only field.
type Transparent struct {
	Pos token.Pos
}

func (Formatted) mode()   {}
func (Transparent) mode() {}

// Template is a resolved format template.
type Template struct {
	// Raw is the template text as written in the errgen:error directive.
	Raw      string
	Segments []Segment
	Pos      token.Pos
}

// HasRefs reports whether the template refers to any field.
func (t Template) HasRefs() bool {
	for _, seg := range t.Segments {
		if seg.IsRef() {
			return true
		}
	}
	return false
}

// Text returns the literal text of the template, ignoring field references.
func (t Template) Text() string {
	var b strings.Builder
	for _, seg := range t.Segments {
		b.WriteString(seg.Literal)
	}
	return b.String()
}

// Segment is either literal text or a field reference.
type Segment struct {
	Literal string

	// Field is the referred field. It is nil for literal text.
	Field *Field

	// Verb is the fmt verb to render the field with, such as "%v" or "%q".
	Verb string
}

// IsRef reports whether the segment refers to a field.
func (s Segment) IsRef() bool { return s.Field != nil }
