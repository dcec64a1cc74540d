package parse

import (
	"errors"
	"go/ast"
	"reflect"
	"strconv"
	"strings"

	"github.com/sublee/errgen/internal/codefmt"
	"github.com/sublee/errgen/internal/errgen/model"
	"github.com/sublee/errgen/internal/errgen/template"
)

// parseVariant parses a struct type annotated with its own error mode. The
// struct is either a record or a variant of a union.
//
//	//errgen:error "not found: {Name}"
//	type NotFoundError struct{ Name string }
//
//	//errgen:variant MyError
//	//errgen:transparent
//	type Other struct{ Err error }
func (p *Parser) parseVariant(a annotated, st *ast.StructType) (*model.Variant, error) {
	subject := a.subject()

	var errs error
	for it := a.dirs.Iterator(); it.Next(); {
		d := it.Value().(directive)
		switch d.name {
		case dirError, dirTransparent:
		case dirUnion:
			errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, d, "%s: errgen:union needs an interface type", subject))
		case dirVariant:
			if _, err := d.identArg(); err != nil {
				errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, d, "%s: %s", subject, err.Error()))
			}
		case dirPath:
			if _, ok := a.get(dirVariant); ok {
				errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, d, "%s: errgen:path is only allowed on records and unions", subject))
			}
		}
	}

	fields, err := p.parseFields(subject, st)
	errs = errors.Join(errs, err)

	v := &model.Variant{
		Name:   a.name(),
		Fields: fields,
		File:   a.file,
		Pos:    a.spec.Name.Pos(),
	}

	errTmpl, hasError := a.get(dirError)
	transparent, hasTransparent := a.get(dirTransparent)
	switch {
	case hasError && hasTransparent:
		errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, transparent, "%s: both errgen:error and errgen:transparent", subject))
	case !hasError && !hasTransparent:
		errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, a.spec.Name, "%s: missing errgen:error or errgen:transparent", subject))

	case hasError:
		raw, pos, err := errTmpl.stringArg()
		if err != nil {
			errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, errTmpl, "%s: %s", subject, err.Error()))
			break
		}

		tmpl, err := template.Resolve(raw, fields)
		if err != nil {
			var tmplErr *template.Error
			if errors.As(err, &tmplErr) {
				pos = offsetPos(errTmpl.args[0].lit, pos, raw, tmplErr.Offset)
			}
			errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrReference, codefmt.Pos(pos), "%s: %s", subject, err.Error()))
			break
		}
		tmpl.Pos = pos
		v.Mode = model.Formatted{Template: tmpl}

	case hasTransparent:
		if err := transparent.noArgs(); err != nil {
			errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, transparent, "%s: %s", subject, err.Error()))
			break
		}
		v.Mode = model.Transparent{Pos: transparent.Pos()}
	}

	if err := p.validateRoles(subject, v); err != nil {
		errs = errors.Join(errs, err)
	}

	if errs != nil {
		return nil, errs
	}
	return v, nil
}

// parseFields parses the fields of a struct type in order. Fields declared
// together are split.
func (p *Parser) parseFields(subject string, st *ast.StructType) ([]*model.Field, error) {
	var fields []*model.Field
	var errs error

	for _, f := range st.Fields.List {
		roles, err := p.parseRoles(subject, f)
		errs = errors.Join(errs, err)

		if len(f.Names) == 0 {
			fields = append(fields, &model.Field{
				Name:     embeddedName(f.Type),
				Index:    len(fields),
				Type:     f.Type,
				Embedded: true,
				Roles:    roles,
				Pos:      f.Pos(),
			})
			continue
		}

		for _, id := range f.Names {
			fields = append(fields, &model.Field{
				Name:  id.Name,
				Index: len(fields),
				Type:  f.Type,
				Roles: roles,
				Pos:   id.Pos(),
			})
		}
	}

	return fields, errs
}

// parseRoles parses role markers in the errgen key of a struct tag.
//
//	Err error `errgen:"from"`
//	Bt  errgen.Backtrace `json:"-" errgen:"backtrace"`
func (p *Parser) parseRoles(subject string, f *ast.Field) (model.Roles, error) {
	if f.Tag == nil {
		return 0, nil
	}

	tag, err := strconv.Unquote(f.Tag.Value)
	if err != nil {
		return 0, nil // unreachable for well-formed source
	}

	value, ok := reflect.StructTag(tag).Lookup("errgen")
	if !ok {
		return 0, nil
	}

	var roles model.Roles
	var errs error
	for _, role := range strings.Split(value, ",") {
		switch strings.TrimSpace(role) {
		case "":
		case "source":
			roles |= model.RoleSource
		case "from":
			roles |= model.RoleFrom | model.RoleSource
		case "backtrace":
			roles |= model.RoleBacktrace
		default:
			errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, f.Tag, "%s: unknown errgen role %q; want source, from or backtrace", subject, strings.TrimSpace(role)))
		}
	}
	return roles, errs
}

// embeddedName returns the field name of an embedded type.
//
//	*pkg.Type[T]
//	     ^^^^
func embeddedName(expr ast.Expr) string {
	switch expr := ast.Unparen(expr).(type) {
	case *ast.Ident:
		return expr.Name
	case *ast.StarExpr:
		return embeddedName(expr.X)
	case *ast.SelectorExpr:
		return expr.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(expr.X)
	case *ast.IndexListExpr:
		return embeddedName(expr.X)
	}
	return "_"
}
