// Package golangcilinterrgen registers the errgen analyzer as a golangci-lint
// module plugin named "errgen". Build a custom binary from this directory:
//
//	golangci-lint custom
//
// The analyzer reports errgen directives that generation would reject:
// directives on the wrong kind of declaration, unknown or repeated
// directives, template placeholders naming missing fields, conflicting
// source, from and backtrace tags, malformed errgen:path values, and fields
// that collide with generated methods.
package golangcilinterrgen

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/errgen/pkg/errgenanalysis"
)

func init() {
	register.Plugin("errgen", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return ErrgenLinter{}, nil
}

type ErrgenLinter struct{}

func (ErrgenLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{errgenanalysis.Analyzer}, nil
}

// GetLoadMode returns the syntax mode because errgen needs no type
// information.
func (ErrgenLinter) GetLoadMode() string {
	return register.LoadModeSyntax
}
