package parse

import (
	"errors"
	"go/ast"
	"go/token"

	"github.com/sublee/errgen/internal/codefmt"
	"github.com/sublee/errgen/internal/errgen/ifacepath"
	"github.com/sublee/errgen/internal/errgen/model"
)

// parseUnion parses an interface type annotated with errgen:union. Variants
// are linked later by [Parser.Parse].
//
//	//errgen:union
//	type MyError interface{ myError() }
func (p *Parser) parseUnion(a annotated, iface *ast.InterfaceType) (*model.Declaration, error) {
	var errs error
	for it := a.dirs.Iterator(); it.Next(); {
		d := it.Value().(directive)
		switch d.name {
		case dirUnion, dirPath:
		case dirError, dirTransparent:
			errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, d, "%s: errgen:%s cannot annotate a union; annotate each variant instead", a.name(), d.name))
		default:
			errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, d, "%s: errgen:%s cannot annotate an interface type", a.name(), d.name))
		}
	}

	d, ok := a.get(dirUnion)
	if !ok {
		errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, a.spec.Name, "%s: missing errgen:union", a.name()))
		return nil, errs
	}
	if err := d.noArgs(); err != nil {
		errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, d, "%s: %s", a.name(), err.Error()))
	}

	decl := &model.Declaration{
		Name:    a.name(),
		Kind:    model.Union,
		Markers: markers(iface),
		File:    a.file,
		Pos:     a.spec.Name.Pos(),
	}

	path, pos, ok, err := p.parsePath(a)
	errs = errors.Join(errs, err)
	if ok {
		decl.Path, decl.PathPos = path, pos
	}

	if errs != nil {
		return nil, errs
	}
	return decl, nil
}

// markers returns the unexported methods of iface which take no parameters
// and return nothing. They seal the union to its variants.
func markers(iface *ast.InterfaceType) []string {
	var names []string
	for _, m := range iface.Methods.List {
		fn, ok := m.Type.(*ast.FuncType)
		if !ok || len(m.Names) == 0 {
			// Embedded interface or type constraint
			continue
		}
		if fn.Params.NumFields() != 0 || fn.Results.NumFields() != 0 {
			continue
		}
		for _, id := range m.Names {
			if !ast.IsExported(id.Name) && id.Name != "_" {
				names = append(names, id.Name)
			}
		}
	}
	return names
}

// parsePath parses the errgen:path directive of a record or a union. ok is
// false if there is no such directive.
//
//	//errgen:path "example.com/common/errgen"
func (p *Parser) parsePath(a annotated) (path string, pos token.Pos, ok bool, err error) {
	d, ok := a.get(dirPath)
	if !ok {
		return "", token.NoPos, false, nil
	}

	path, pos, err = d.stringArg()
	if err != nil {
		return "", token.NoPos, false, codefmt.KindErrorf(p, model.ErrPathSyntax, d, "%s: %s", a.name(), err.Error())
	}

	if err := ifacepath.Validate(path); err != nil {
		return "", token.NoPos, false, codefmt.KindErrorf(p, model.ErrPathSyntax, codefmt.Pos(pos), "%s: invalid errgen:path %q: %s", a.name(), path, err.Error())
	}
	return path, pos, true, nil
}
