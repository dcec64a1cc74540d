package parse

import (
	"cmp"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/hashset"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/errgen/internal/codefmt"
	"github.com/sublee/errgen/internal/errgen/model"
)

// Parser parses the syntax of the underlying package to collect errgen
// declarations. It needs no type information.
type Parser struct {
	pkg   *packages.Package
	files []*ast.File
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}

	var files []*ast.File
	for _, file := range pkg.Syntax {
		if ast.IsGenerated(file) {
			// Previous output of errgen or another generator.
			continue
		}
		files = append(files, file)
	}
	return &Parser{pkg: pkg, files: files}, nil
}

// Files returns the source files of the package except generated files.
func (p *Parser) Files() []*ast.File { return p.files }

// annotated is a type declaration with errgen directives.
type annotated struct {
	spec *ast.TypeSpec
	file *ast.File
	dirs *linkedhashmap.Map // name -> directive
}

func (a annotated) name() string { return a.spec.Name.Name }

func (a annotated) get(name string) (directive, bool) {
	d, ok := a.dirs.Get(name)
	if !ok {
		return directive{}, false
	}
	return d.(directive), true
}

// subject is the name to prefix diagnostics with. Variants are qualified by
// their union, e.g., "MyError.NotFound".
func (a annotated) subject() string {
	if d, ok := a.get(dirVariant); ok {
		if union, err := d.identArg(); err == nil {
			return union + "." + a.name()
		}
	}
	return a.name()
}

// Parse collects errgen declarations in the package. It collects all errors
// instead of stopping at the first error. The declarations are sorted by
// their positions.
func (p *Parser) Parse() ([]*model.Declaration, error) {
	found, rejected, errs := p.collect()

	// Unions first, so that variants can find them.
	unions := linkedhashmap.New() // name -> *model.Declaration
	var decls []*model.Declaration
	for _, a := range found {
		iface, ok := a.spec.Type.(*ast.InterfaceType)
		if !ok {
			continue
		}
		decl, err := p.parseUnion(a, iface)
		if err != nil {
			errs = errors.Join(errs, err)
			rejected.Add(a.name())
			continue
		}
		unions.Put(decl.Name, decl)
		decls = append(decls, decl)
	}

	incomplete := hashset.New() // union names with a broken variant
	for _, a := range found {
		st, ok := a.spec.Type.(*ast.StructType)
		if !ok {
			continue
		}

		v, err := p.parseVariant(a, st)
		if err != nil {
			errs = errors.Join(errs, err)
			if d, ok := a.get(dirVariant); ok {
				if union, err := d.identArg(); err == nil {
					incomplete.Add(union)
				}
			}
			continue
		}

		d, ok := a.get(dirVariant)
		if !ok {
			decl := &model.Declaration{
				Name:     v.Name,
				Kind:     model.Record,
				Variants: []*model.Variant{v},
				File:     a.file,
				Pos:      v.Pos,
			}
			v.Decl = decl

			if path, pos, ok, err := p.parsePath(a); err != nil {
				errs = errors.Join(errs, err)
				continue
			} else if ok {
				decl.Path, decl.PathPos = path, pos
			}

			decls = append(decls, decl)
			continue
		}

		unionName, _ := d.identArg()
		union, ok := unions.Get(unionName)
		if !ok {
			if rejected.Contains(unionName) {
				// The union has been reported already.
				continue
			}
			if p.isType(unionName) {
				errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, d.args[0], "%s: %s is not an errgen:union", v.Name, unionName))
			} else {
				errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, d.args[0], "%s: errgen:variant refers to unknown union %s", v.Name, unionName))
			}
			continue
		}
		v.Decl = union.(*model.Declaration)
		v.Decl.Variants = append(v.Decl.Variants, v)
	}

	for _, decl := range decls {
		if !decl.IsUnion() {
			continue
		}
		if len(decl.Variants) == 0 {
			if incomplete.Contains(decl.Name) {
				continue
			}
			errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, codefmt.Pos(decl.Pos), "%s: union has no variants; annotate struct types with errgen:variant %s", decl.Name, decl.Name))
			continue
		}
		slices.SortFunc(decl.Variants, func(a, b *model.Variant) int {
			return cmp.Compare(a.Pos, b.Pos)
		})
	}

	errs = errors.Join(errs, p.validateMethods(decls))
	if errs != nil {
		return nil, errs
	}

	slices.SortFunc(decls, func(a, b *model.Declaration) int {
		return cmp.Compare(a.Pos, b.Pos)
	})
	return decls, nil
}

// collect finds type declarations annotated with errgen directives. It also
// reports directives which do not annotate a type declaration. The names of
// annotated types rejected by [Parser.checkType] are returned as well.
func (p *Parser) collect() ([]annotated, *hashset.Set, error) {
	var found []annotated
	var errs error

	used := hashset.New() // *ast.Comment
	for _, file := range p.files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				spec := spec.(*ast.TypeSpec)

				doc := spec.Doc
				if doc == nil && !gen.Lparen.IsValid() {
					// type T struct{...}
					doc = gen.Doc
				}
				if doc == nil {
					continue
				}

				dirs := linkedhashmap.New()
				for _, c := range doc.List {
					if !isDirective(c) {
						continue
					}
					used.Add(c)

					d, err := parseDirective(c)
					if err != nil {
						errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, c, "%s: %s", spec.Name.Name, err.Error()))
						continue
					}

					switch d.name {
					case dirError, dirTransparent, dirUnion, dirVariant, dirPath:
					default:
						errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, d, "%s: unknown directive errgen:%s", spec.Name.Name, d.name))
						continue
					}

					if _, ok := dirs.Get(d.name); ok {
						errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, d, "%s: duplicate errgen:%s directive", spec.Name.Name, d.name))
						continue
					}
					dirs.Put(d.name, d)
				}

				if dirs.Empty() {
					continue
				}
				found = append(found, annotated{spec, file, dirs})
			}
		}
	}

	for _, file := range p.files {
		for _, group := range file.Comments {
			for _, c := range group.List {
				if !isDirective(c) || used.Contains(c) {
					continue
				}
				errs = errors.Join(errs, codefmt.KindErrorf(p, model.ErrStructural, c, "misplaced %s directive; it must annotate a type declaration", firstWord(c.Text[2:])))
			}
		}
	}

	// Exclude types which cannot be annotated at all.
	var valid []annotated
	rejected := hashset.New() // string
	for _, a := range found {
		if err := p.checkType(a); err != nil {
			errs = errors.Join(errs, err)
			rejected.Add(a.name())
			continue
		}
		valid = append(valid, a)
	}
	return valid, rejected, errs
}

// checkType checks the type declaration itself regardless of its directives.
func (p *Parser) checkType(a annotated) error {
	spec := a.spec
	switch {
	case spec.Assign.IsValid():
		return codefmt.KindErrorf(p, model.ErrStructural, spec.Name, "%s: errgen directives cannot annotate alias type", a.name())
	case spec.TypeParams != nil && len(spec.TypeParams.List) != 0:
		return codefmt.KindErrorf(p, model.ErrStructural, spec.Name, "%s: errgen directives cannot annotate generic type", a.name())
	}

	switch spec.Type.(type) {
	case *ast.StructType, *ast.InterfaceType:
		return nil
	}
	return codefmt.KindErrorf(p, model.ErrStructural, spec.Name, "%s: errgen directives need struct or interface type, got %s", a.name(), types.ExprString(spec.Type))
}

// isType reports whether name is a package-level type.
func (p *Parser) isType(name string) bool {
	for _, file := range p.files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				if spec.(*ast.TypeSpec).Name.Name == name {
					return true
				}
			}
		}
	}
	return false
}

func firstWord(s string) string {
	for i, r := range s {
		if r == ' ' || r == '\t' {
			return s[:i]
		}
	}
	return s
}
