package codefmt

import (
	"fmt"
	"go/ast"
	"go/token"
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NS manages unique names in a namespace.
type NS map[string]struct{}

// NewNS creates a new namespace which reserves all package-level names
// declared in the given files. Methods are not package-level names.
func NewNS(files []*ast.File) NS {
	ns := make(NS)
	for _, file := range files {
		for _, decl := range file.Decls {
			switch decl := decl.(type) {
			case *ast.FuncDecl:
				if decl.Recv == nil {
					ns.Reserve(decl.Name.Name)
				}
			case *ast.GenDecl:
				for _, spec := range decl.Specs {
					switch spec := spec.(type) {
					case *ast.TypeSpec:
						ns.Reserve(spec.Name.Name)
					case *ast.ValueSpec:
						for _, id := range spec.Names {
							ns.Reserve(id.Name)
						}
					}
				}
			}
		}
	}
	delete(ns, "_")
	return ns
}

// Reserve marks a name as used in the namespace. If the name is already used,
// it returns false.
func (ns NS) Reserve(name string) bool {
	if _, ok := ns[name]; ok {
		return false
	}
	ns[name] = struct{}{}
	return true
}

// Name returns a unique name in its namespace. Once a name is used, it is
// reserved in the namespace to avoid conflicts. If conflicts occur, a numbering
// suffix is added.
//
// Panics if the name is empty.
func (ns NS) Name(name string) string {
	name = NormalizeName(name)
	if ns == nil {
		return name
	}
	if token.Lookup(name).IsKeyword() {
		name += "_"
	}
	for name := range DisambiguateName(name) {
		if ok := ns.Reserve(name); ok {
			return name
		}
	}
	panic("unreachable")
}

// NormalizeName removes characters not allowed in Go identifiers. Chunks
// separated by removed characters are joined in camel case.
//
// e.g., NormalizeName("io.Reader") => "ioReader"
func NormalizeName(name string) string {
	if name == "" {
		panic("empty name")
	}

	chunks := strings.FieldsFunc(name, func(r rune) bool {
		return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9' || r == '_')
	})
	if len(chunks) == 0 {
		panic(fmt.Sprintf("no valid characters in name %q", name))
	}

	for i := 1; i < len(chunks); i++ {
		chunks[i] = Title(chunks[i])
	}
	return strings.Join(chunks, "")
}

// Title upper-cases the first letter of s and keeps the rest as is.
//
// e.g., Title("pathError") => "PathError"
func Title(s string) string {
	if s == "" {
		return s
	}
	head := cases.Title(language.English).String(s[:1])
	return head + s[1:]
}

// DisambiguateName offers an alternative unique names.
func DisambiguateName(name string) iter.Seq[string] {
	if name == "" {
		panic("empty name")
	}

	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}

		// Postfix "_" to the name if it already ends with a number.
		// "answer42_2" is better than "answer422".
		sep := ""
		if name[len(name)-1] != '_' && name[len(name)-1] >= '0' && name[len(name)-1] <= '9' {
			sep = "_"
		}

		for i := 2; ; i++ {
			if !yield(fmt.Sprintf("%s%s%d", name, sep, i)) {
				return
			}
		}
	}
}
