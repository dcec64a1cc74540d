package parse

import (
	"errors"
	"go/ast"
	"slices"

	"github.com/sublee/errgen/internal/codefmt"
	"github.com/sublee/errgen/internal/errgen/model"
)

// validateRoles checks the field roles of a variant against its mode. It
// collects all errors instead of stopping at the first error.
func (p *Parser) validateRoles(subject string, v *model.Variant) error {
	var errs error

	if _, ok := v.Mode.(model.Transparent); ok {
		if len(v.Fields) != 1 {
			return codefmt.KindErrorf(p, model.ErrStructural, codefmt.Pos(v.Pos), "%s: errgen:transparent needs exactly one field, found %d", subject, len(v.Fields))
		}
		f := v.Fields[0]
		if f.IsBlank() {
			errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, codefmt.Pos(f.Pos), "%s: errgen:transparent cannot forward to blank field", subject))
		}
		if f.Roles != 0 {
			errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, codefmt.Pos(f.Pos), "%s: field %s of transparent error cannot be marked %s", subject, f.Name, f.Roles))
		}
		return errs
	}

	var sources, froms, backtraces []*model.Field
	for _, f := range v.Fields {
		if f.Roles == 0 {
			continue
		}
		if f.IsBlank() {
			errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, codefmt.Pos(f.Pos), "%s: blank field cannot be marked %s", subject, f.Roles))
			continue
		}
		if f.Roles.Has(model.RoleSource) && f.Roles.Has(model.RoleBacktrace) {
			errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrRoleConflict, codefmt.Pos(f.Pos), "%s: field %s cannot be both source and backtrace", subject, f.Name))
			continue
		}

		if f.Roles.Has(model.RoleSource) {
			sources = append(sources, f)
		}
		if f.Roles.Has(model.RoleFrom) {
			froms = append(froms, f)
		}
		if f.Roles.Has(model.RoleBacktrace) {
			backtraces = append(backtraces, f)
		}
	}

	switch {
	case len(froms) > 1:
		errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrRoleConflict, codefmt.Pos(froms[1].Pos), "%s: multiple from fields %s and %s", subject, froms[0].Name, froms[1].Name))
	case len(sources) > 1:
		errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrRoleConflict, codefmt.Pos(sources[1].Pos), "%s: multiple source fields %s and %s", subject, sources[0].Name, sources[1].Name))
	}
	if len(backtraces) > 1 {
		errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrRoleConflict, codefmt.Pos(backtraces[1].Pos), "%s: multiple backtrace fields %s and %s", subject, backtraces[0].Name, backtraces[1].Name))
	}

	// Fields and methods share a namespace.
	generated := generatedMethods(backtraces != nil)
	for _, f := range v.Fields {
		if slices.Contains(generated, f.Name) {
			errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, codefmt.Pos(f.Pos), "%s: field %s conflicts with generated method", subject, f.Name))
		}
	}

	return errs
}

// generatedMethods returns the method names to be generated on a record or a
// variant, except union markers.
func generatedMethods(backtrace bool) []string {
	names := []string{"Error", "Unwrap"}
	if backtrace {
		names = append(names, "Backtrace")
	}
	return names
}

// validateMethods checks that annotated types do not declare the methods to
// be generated.
func (p *Parser) validateMethods(decls []*model.Declaration) error {
	generated := make(map[string][]string) // type name -> method names
	for _, decl := range decls {
		for _, v := range decl.Variants {
			names := generatedMethods(v.Backtrace() != nil)
			names = append(names, decl.Markers...)
			generated[v.Name] = names
		}
	}

	var errs error
	for _, file := range p.files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || len(fn.Recv.List) == 0 {
				continue
			}

			recv := recvTypeName(fn.Recv.List[0].Type)
			if slices.Contains(generated[recv], fn.Name.Name) {
				errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, fn.Name, "%s: method %s is generated by errgen; remove it", recv, fn.Name.Name))
			}
		}
	}
	return errs
}

// recvTypeName returns the type name of a method receiver.
//
//	func (e *MyError[T]) Error() string
//	         ^^^^^^^
func recvTypeName(expr ast.Expr) string {
	switch expr := ast.Unparen(expr).(type) {
	case *ast.Ident:
		return expr.Name
	case *ast.StarExpr:
		return recvTypeName(expr.X)
	case *ast.IndexExpr:
		return recvTypeName(expr.X)
	case *ast.IndexListExpr:
		return recvTypeName(expr.X)
	}
	return ""
}
