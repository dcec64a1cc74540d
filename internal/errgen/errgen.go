package errgeninternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/errgen/internal/codefmt"
	"github.com/sublee/errgen/internal/errgen/emit"
	"github.com/sublee/errgen/internal/errgen/model"
	"github.com/sublee/errgen/internal/errgen/parse"
)

// Errgen generates error implementations for the target package. Call [Build]
// and then [Generate] to get the generated code. All potential errors are
// returned by [Build]. Once [Build] succeeds, [Generate] never fails.
type Errgen struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	// testOnly limits generation to declarations in _test.go files.
	testOnly bool

	decls []*model.Declaration
}

// New creates a new [Errgen] for the given package. The package must have its
// Name, Fset and Syntax. Type information is not needed.
func New(pkg *packages.Package) (*Errgen, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	ns := codefmt.NewNS(parser.Files())

	var buf bytes.Buffer
	return &Errgen{
		p:   parser,
		ns:  ns,
		buf: &buf,
		w:   codefmt.NewWriter(&buf, ns),
	}, nil
}

// Build prepares code generation by parsing and validating declarations. All
// potential errors are returned by this method. It must be called before
// [Generate].
func (eg *Errgen) Build() error {
	decls, err := eg.p.Parse()
	if err != nil {
		return err
	}

	var errs error
	for _, decl := range decls {
		errs = errors.Join(errs, emit.Check(eg.p, decl))
	}
	if errs != nil {
		return errs
	}

	for _, decl := range decls {
		if eg.testOnly != eg.isTestFile(decl) {
			continue
		}
		eg.decls = append(eg.decls, decl)
	}
	return nil
}

// Declarations returns the declarations to be generated. It is available
// after [Build] succeeds.
func (eg *Errgen) Declarations() []*model.Declaration {
	return eg.decls
}

func (eg *Errgen) isTestFile(decl *model.Declaration) bool {
	name := eg.p.Pkg().Fset.File(decl.Pos).Name()
	return strings.HasSuffix(name, "_test.go")
}

// Generate generates the code for the package. It must be called after
// [Build] succeeds. It returns nil if there is nothing to generate.
func (eg *Errgen) Generate() []byte {
	if len(eg.decls) == 0 {
		return nil
	}

	for _, decl := range eg.decls {
		emit.Write(eg.w, decl)
	}
	return eg.frameCode()
}

func (eg *Errgen) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/errgen%s. DO NOT EDIT.\n\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", eg.p.Pkg().Name)

	fmt.Fprintf(&buf, "import (\n")
	for name, imp := range eg.w.Imports() {
		if imp.HasAlias {
			fmt.Fprintf(&buf, "%s %q\n", name, imp.Path)
		} else {
			fmt.Fprintf(&buf, "%q\n", imp.Path)
		}
	}
	fmt.Fprintf(&buf, ")\n")

	_, _ = io.Copy(&buf, eg.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
