package codefmt

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/types"
	"io"
	"iter"
	"path"
	"strconv"
	"strings"
	"unicode"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/mod/module"
	"golang.org/x/tools/go/ast/astutil"
)

// Writer is a writer for generated code.
type Writer struct {
	w       io.Writer
	imports *linkedhashmap.Map // name -> Import
	ns      NS
}

// NewWriter creates a new [Writer]. Import names and generated names are
// reserved in ns.
func NewWriter(w io.Writer, ns NS) *Writer {
	if ns == nil {
		ns = make(NS)
	}
	return &Writer{
		w:       w,
		imports: linkedhashmap.New(),
		ns:      ns,
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Printf writes a formatted string to the underlying writer.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.w, format, args...)
}

// Name returns a unique name in the namespace of the writer.
func (w *Writer) Name(name string) string {
	return w.ns.Name(name)
}

type Import struct {
	// Path is the import path.
	Path string

	// HasAlias indicates that the import needs an explicit name.
	HasAlias bool
}

// Imports iterates the collected imports by their names in the order they
// were added.
func (w *Writer) Imports() iter.Seq2[string, Import] {
	return func(yield func(string, Import) bool) {
		for it := w.imports.Iterator(); it.Next(); {
			if !yield(it.Key().(string), it.Value().(Import)) {
				return
			}
		}
	}
}

// Import adds an import for the package with the given path. name is the
// preferred name to refer to the package. If alias is true, the import is
// always written with an explicit name. It returns the name of the imported
// package. The name might be different if it has tried to resolve name
// conflicts.
//
//	// fmtName can be used to refer to the "fmt" package without any name conflict.
//	fmtName := w.Import("fmt", "fmt", false)
//	w.Printf("%s.Println(\"Hello, World!\")", fmtName)
func (w *Writer) Import(path, name string, alias bool) string {
	if name == "" {
		name = AssumedName(path)
	}

	for candidate := range DisambiguateName(name) {
		prev, ok := w.imports.Get(candidate)
		if ok {
			if prev.(Import).Path == path {
				// Already imported with the same name.
				return candidate
			}
			continue
		}
		if !w.ns.Reserve(candidate) {
			// Conflicts with a package-level name.
			continue
		}
		hasAlias := alias || candidate != AssumedName(path)
		w.imports.Put(candidate, Import{Path: path, HasAlias: hasAlias})
		return candidate
	}

	panic("unreachable")
}

// AssumedName returns the package name assumed from the import path when the
// package is imported without an explicit name. Major version suffixes are
// skipped.
//
// e.g., AssumedName("github.com/go-yaml/yaml/v3") => "yaml"
func AssumedName(importPath string) string {
	if prefix, major, ok := module.SplitPathVersion(importPath); ok && major != "" {
		importPath = prefix
	}

	base := path.Base(importPath)
	base = strings.TrimPrefix(base, "go-")
	if i := strings.IndexFunc(base, func(r rune) bool {
		return !(unicode.IsLetter(r) || r == '_' || unicode.IsDigit(r))
	}); i >= 0 {
		base = base[:i]
	}
	if base == "" || !unicode.IsLetter(rune(base[0])) && base[0] != '_' {
		return "pkg"
	}
	return base
}

// RewriteImports returns a copy of the given type expression declared in file.
// Packages referred by the expression are imported into the writer, and
// their qualifiers are rewritten to the imported names to ensure there is no
// name conflict.
func RewriteImports(w *Writer, file *ast.File, expr ast.Expr) ast.Expr {
	// Work on a fresh copy to keep the source AST intact.
	copied, err := parser.ParseExpr(types.ExprString(expr))
	if err != nil {
		panic(err) // should never happen because the expression was parsed from source
	}

	return astutil.Apply(copied, func(c *astutil.Cursor) bool {
		sel, ok := c.Node().(*ast.SelectorExpr)
		if !ok {
			return true
		}

		pkgIdent, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}

		imp, ok := lookupImport(file, pkgIdent.Name)
		if !ok {
			// The qualifier is not a package name.
			return true
		}

		newPkgName := w.Import(imp.path, pkgIdent.Name, imp.explicit)
		c.Replace(&ast.SelectorExpr{
			X:   &ast.Ident{Name: newPkgName},
			Sel: &ast.Ident{Name: sel.Sel.Name},
		})
		return false
	}, nil).(ast.Expr)
}

// QualifiedExpr returns the type expression declared in file with its package
// qualifiers replaced by their quoted import paths. Two expressions spelled
// with different import names for the same package give the same result.
//
//	import iofs "io/fs"
//	*iofs.PathError => *"io/fs".PathError
func QualifiedExpr(file *ast.File, expr ast.Expr) string {
	copied, err := parser.ParseExpr(types.ExprString(expr))
	if err != nil {
		panic(err) // should never happen because the expression was parsed from source
	}

	qualified := astutil.Apply(copied, func(c *astutil.Cursor) bool {
		sel, ok := c.Node().(*ast.SelectorExpr)
		if !ok {
			return true
		}

		pkgIdent, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}

		imp, ok := lookupImport(file, pkgIdent.Name)
		if !ok {
			return true
		}

		c.Replace(&ast.SelectorExpr{
			X:   &ast.Ident{Name: strconv.Quote(imp.path)},
			Sel: &ast.Ident{Name: sel.Sel.Name},
		})
		return false
	}, nil).(ast.Expr)
	return types.ExprString(qualified)
}

type fileImport struct {
	path     string
	explicit bool
}

// lookupImport finds the import of file which is referred by name.
func lookupImport(file *ast.File, name string) (fileImport, bool) {
	if file == nil {
		return fileImport{}, false
	}

	for _, spec := range file.Imports {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		if spec.Name != nil {
			if spec.Name.Name == name {
				return fileImport{importPath, true}, true
			}
			continue
		}

		if AssumedName(importPath) == name {
			return fileImport{importPath, false}, true
		}
	}
	return fileImport{}, false
}
