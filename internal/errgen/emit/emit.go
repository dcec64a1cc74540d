// Package emit writes the generated implementation of errgen declarations.
//
// For each record or union variant T, it writes:
//
//	func (e T) Error() string
//	func (e T) Unwrap() error
//	func (e T) Backtrace() errgen.Backtrace // with a backtrace field
//	func (T) marker()                      // for each union marker
//	func DeclFromType(source Type) Decl     // with a from field
//
// and compile-time assertions that T implements errgen.Display and
// errgen.Error of the resolved runtime package.
package emit

import (
	"go/ast"
	"go/types"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/sublee/errgen/internal/codefmt"
	"github.com/sublee/errgen/internal/errgen/ifacepath"
	"github.com/sublee/errgen/internal/errgen/model"
)

// Check reports failures found only when the declaration is about to be
// generated. Two variants of a union cannot convert from the same type,
// because the conversion would be ambiguous.
func Check(pkger codefmt.Pkger, decl *model.Declaration) error {
	if !decl.IsUnion() {
		return nil
	}

	froms := linkedhashmap.New() // qualified type expression -> *model.Variant
	for _, v := range decl.Variants {
		f := v.From()
		if f == nil {
			continue
		}

		// Import names may differ between files.
		key := codefmt.QualifiedExpr(v.File, f.Type)
		if prev, ok := froms.Get(key); ok {
			return codefmt.KindErrorf(pkger, model.ErrRoleConflict, codefmt.Pos(f.Pos), "%s: variants %s and %s both convert from %s", decl.Name, prev.(*model.Variant).Name, v.Name, types.ExprString(f.Type))
		}
		froms.Put(key, v)
	}
	return nil
}

// Write writes the generated code of decl. [Check] must succeed before.
func Write(w *codefmt.Writer, decl *model.Declaration) {
	path := ifacepath.Resolve(decl)
	rt := w.Import(path, ifacepath.Name(path), true)

	g := generator{w: w, rt: rt, decl: decl}
	for _, v := range decl.Variants {
		g.writeVariant(v)
	}
	g.writeAssertions()
}

type generator struct {
	w    *codefmt.Writer
	rt   string // name of the imported runtime package
	decl *model.Declaration
}

func (g generator) writeVariant(v *model.Variant) {
	switch mode := v.Mode.(type) {
	case model.Formatted:
		g.writeError(v, mode.Template)
		g.writeUnwrap(v)
	case model.Transparent:
		g.writeTransparent(v)
	}

	if f := v.Backtrace(); f != nil {
		g.w.Printf("func (e %s) Backtrace() %s.Backtrace {\n", v.Name, g.rt)
		g.w.Printf("return e.%s\n", f.Name)
		g.w.Printf("}\n\n")
	}

	for _, m := range g.decl.Markers {
		g.w.Printf("func (%s) %s() {}\n\n", v.Name, m)
	}

	if f := v.From(); f != nil {
		g.writeFrom(v, f)
	}
}

// writeError writes the Error method which renders the template.
func (g generator) writeError(v *model.Variant, tmpl model.Template) {
	g.w.Printf("func (e %s) Error() string {\n", v.Name)
	defer g.w.Printf("}\n\n")

	if !tmpl.HasRefs() {
		g.w.Printf("return %s\n", strconv.Quote(tmpl.Text()))
		return
	}

	var format strings.Builder
	var args []string
	for _, seg := range tmpl.Segments {
		if !seg.IsRef() {
			format.WriteString(strings.ReplaceAll(seg.Literal, "%", "%%"))
			continue
		}
		format.WriteString(seg.Verb)
		args = append(args, "e."+seg.Field.Name)
	}

	fmtName := g.w.Import("fmt", "fmt", false)
	g.w.Printf("return %s.Sprintf(%s, %s)\n", fmtName, strconv.Quote(format.String()), strings.Join(args, ", "))
}

// writeUnwrap writes the Unwrap method which returns the source field. A nil
// pointer is not returned as a non-nil error.
func (g generator) writeUnwrap(v *model.Variant) {
	g.w.Printf("func (e %s) Unwrap() error {\n", v.Name)
	defer g.w.Printf("}\n\n")

	f := v.Source()
	if f == nil {
		g.w.Printf("return nil\n")
		return
	}

	if f.IsPointer() {
		g.w.Printf("if e.%s == nil {\n", f.Name)
		g.w.Printf("return nil\n")
		g.w.Printf("}\n")
	}
	g.w.Printf("return e.%s\n", f.Name)
}

// writeTransparent writes Error and Unwrap methods forwarding to the only
// field. A nil pointer is forwarded as a nil error.
func (g generator) writeTransparent(v *model.Variant) {
	f := v.Fields[0]

	g.w.Printf("func (e %s) Error() string {\n", v.Name)
	if f.IsPointer() {
		g.w.Printf("if e.%s == nil {\n", f.Name)
		g.w.Printf("return %s.Message(nil)\n", g.rt)
		g.w.Printf("}\n")
	}
	g.w.Printf("return %s.Message(e.%s)\n", g.rt, f.Name)
	g.w.Printf("}\n\n")

	g.w.Printf("func (e %s) Unwrap() error {\n", v.Name)
	if f.IsPointer() {
		g.w.Printf("if e.%s == nil {\n", f.Name)
		g.w.Printf("return nil\n")
		g.w.Printf("}\n")
	}
	g.w.Printf("return %s.Source(e.%s)\n", g.rt, f.Name)
	g.w.Printf("}\n\n")
}

// writeFrom writes the conversion constructor from the type of the from field.
// The other fields are left zero except the backtrace field.
//
//	func MyErrorFromPathError(source *fs.PathError) MyError {
//		return NotFound{Err: source}
//	}
func (g generator) writeFrom(v *model.Variant, f *model.Field) {
	name := g.w.Name(g.decl.Name + "From" + typeName(f.Type))
	typ := codefmt.RewriteImports(g.w, v.File, f.Type)

	values := []string{f.Name + ": source"}
	if bt := v.Backtrace(); bt != nil {
		values = append(values, bt.Name+": "+g.rt+".Capture()")
	}

	g.w.Printf("func %s(source %s) %s {\n", name, types.ExprString(typ), g.decl.Name)
	g.w.Printf("return %s{%s}\n", v.Name, strings.Join(values, ", "))
	g.w.Printf("}\n\n")
}

// writeAssertions writes compile-time assertions that every generated type
// implements the runtime interfaces, and the union if any.
func (g generator) writeAssertions() {
	g.w.Printf("var (\n")
	for _, v := range g.decl.Variants {
		g.w.Printf("_ %s.Display = %s{}\n", g.rt, v.Name)
		g.w.Printf("_ %s.Error = %s{}\n", g.rt, v.Name)
		if g.decl.IsUnion() {
			g.w.Printf("_ %s = %s{}\n", g.decl.Name, v.Name)
		}
	}
	g.w.Printf(")\n\n")
}

// typeName returns a readable name of a type for constructor names.
//
//	*fs.PathError => PathError
//	error         => Error
//	[]byte        => Byte
func typeName(expr ast.Expr) string {
	switch expr := ast.Unparen(expr).(type) {
	case *ast.Ident:
		return codefmt.Title(expr.Name)
	case *ast.StarExpr:
		return typeName(expr.X)
	case *ast.SelectorExpr:
		return codefmt.Title(expr.Sel.Name)
	case *ast.IndexExpr:
		return typeName(expr.X)
	case *ast.IndexListExpr:
		return typeName(expr.X)
	}
	return codefmt.Title(codefmt.NormalizeName(types.ExprString(expr)))
}
