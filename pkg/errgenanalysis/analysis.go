// Package errgenanalysis reports errgen diagnostics through the Go analysis
// protocol.
package errgenanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/errgen/internal/codefmt"
	errgeninternal "github.com/sublee/errgen/internal/errgen"
)

// Analyzer validates errgen directives in the package.
var Analyzer = &analysis.Analyzer{
	Name: "errgen",
	Doc:  "linter for errgen directives",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	if len(pass.Files) == 0 {
		return nil, nil
	}

	pkg := &packages.Package{
		Name:   pass.Files[0].Name.Name,
		Fset:   pass.Fset,
		Syntax: pass.Files,
	}
	if pass.Pkg != nil {
		pkg.PkgPath = pass.Pkg.Path()
	}

	eg, err := errgeninternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := eg.Build(); err != nil {
		// Unroll all errors and report them
		errs := []error{err}
		for len(errs) != 0 {
			err := errs[0]
			errs = errs[1:]

			if codeErr, ok := err.(*codefmt.CodeError); ok {
				var category string
				if kind := codeErr.Kind(); kind != nil {
					category = kind.Error()
				}
				pass.Report(analysis.Diagnostic{
					Pos:      codeErr.Pos(),
					End:      codeErr.End(),
					Category: category,
					Message:  codeErr.Unwrap().Error(),
				})
				continue
			}

			if u, ok := err.(interface{ Unwrap() []error }); ok {
				errs = append(errs, u.Unwrap()...)
			}
		}
	}

	return nil, nil
}
