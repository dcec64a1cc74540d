// Package template resolves errgen:error templates against struct fields.
//
// A template is literal text with field references in braces:
//
//	"read {Path}: {Err}"       // by name
//	"code {0}"                 // by position
//	"quoted {Name:%q}"         // with a fmt verb
//	"debug {Value:?}"          // shorthand for %#v
//	"literal {{braces}}"       // escaped braces
//
// Resolving only validates and structures the template. Field values are
// rendered later by the generated Error method.
package template

import (
	"fmt"
	"go/token"
	"regexp"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/sublee/errgen/internal/errgen/model"
)

// Error reports an invalid template. Offset is the byte offset in the raw
// template where the problem starts. It matches [model.ErrReference] with
// errors.Is.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Is(target error) bool { return target == model.ErrReference }

func errorf(offset int, format string, args ...any) *Error {
	return &Error{offset, fmt.Sprintf(format, args...)}
}

// verbRe matches fmt verbs allowed in field references.
var verbRe = regexp.MustCompile(`^%[-+# 0]*[0-9]*(\.[0-9]+)?[vTtbcdoOqxXUeEfFgGsp]$`)

// table is a symbol table of fields by name and position.
type table struct {
	byName *linkedhashmap.Map // string -> *model.Field
	fields []*model.Field
}

func newTable(fields []*model.Field) table {
	byName := linkedhashmap.New()
	for _, f := range fields {
		if f.IsBlank() {
			continue
		}
		byName.Put(f.Name, f)
	}
	return table{byName, fields}
}

func (t table) names() []string {
	names := make([]string, 0, t.byName.Size())
	for _, k := range t.byName.Keys() {
		names = append(names, k.(string))
	}
	return names
}

// Resolve parses raw into a template whose references point to fields.
func Resolve(raw string, fields []*model.Field) (model.Template, error) {
	tbl := newTable(fields)
	tmpl := model.Template{Raw: raw}

	var lit strings.Builder
	flush := func() {
		if lit.Len() != 0 {
			tmpl.Segments = append(tmpl.Segments, model.Segment{Literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(raw); {
		switch raw[i] {
		case '{':
			if i+1 < len(raw) && raw[i+1] == '{' {
				lit.WriteByte('{')
				i += 2
				continue
			}

			end := strings.IndexAny(raw[i+1:], "{}")
			if end < 0 || raw[i+1+end] != '}' {
				return model.Template{}, errorf(i, "unclosed { in template")
			}

			seg, err := tbl.resolveRef(raw[i+1:i+1+end], i)
			if err != nil {
				return model.Template{}, err
			}

			flush()
			tmpl.Segments = append(tmpl.Segments, seg)
			i += end + 2

		case '}':
			if i+1 < len(raw) && raw[i+1] == '}' {
				lit.WriteByte('}')
				i += 2
				continue
			}
			return model.Template{}, errorf(i, "unmatched } in template; use }} for a literal brace")

		default:
			lit.WriteByte(raw[i])
			i++
		}
	}
	flush()

	return tmpl, nil
}

// resolveRef resolves the inside of a field reference like "Name:%q".
func (t table) resolveRef(ref string, offset int) (model.Segment, error) {
	name, spec, hasSpec := strings.Cut(ref, ":")

	verb := "%v"
	if hasSpec {
		switch {
		case spec == "?":
			verb = "%#v"
		case verbRe.MatchString(spec):
			verb = spec
		default:
			return model.Segment{}, errorf(offset, "invalid format verb %q in {%s}", spec, ref)
		}
	}

	if name == "" {
		return model.Segment{}, errorf(offset, "empty field reference {%s}", ref)
	}

	if isDigits(name) {
		index, err := strconv.Atoi(name)
		if err != nil || index >= len(t.fields) {
			return model.Segment{}, errorf(offset, "field index {%s} out of range; %s", name, fieldCount(len(t.fields)))
		}

		f := t.fields[index]
		if f.IsBlank() {
			return model.Segment{}, errorf(offset, "cannot refer to blank field {%s}", name)
		}
		return model.Segment{Field: f, Verb: verb}, nil
	}

	if !token.IsIdentifier(name) {
		return model.Segment{}, errorf(offset, "invalid field reference {%s}", ref)
	}

	f, ok := t.byName.Get(name)
	if !ok {
		msg := fmt.Sprintf("unknown field reference {%s}", name)
		if hint, ok := closest(name, t.names()); ok {
			msg += fmt.Sprintf("; did you mean {%s}?", hint)
		}
		return model.Segment{}, &Error{offset, msg}
	}
	return model.Segment{Field: f.(*model.Field), Verb: verb}, nil
}

func fieldCount(n int) string {
	switch n {
	case 0:
		return "no fields"
	case 1:
		return "only 1 field"
	}
	return fmt.Sprintf("only %d fields", n)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
