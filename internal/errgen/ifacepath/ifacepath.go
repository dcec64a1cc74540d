// Package ifacepath resolves the import path of the package that defines the
// Display and Error interfaces implemented by generated code.
package ifacepath

import (
	"fmt"

	"golang.org/x/mod/module"

	"github.com/sublee/errgen/internal/codefmt"
	"github.com/sublee/errgen/internal/errgen/model"
)

// DefaultPath is the runtime package referred when a declaration has no
// errgen:path override.
const DefaultPath = "github.com/sublee/errgen"

// Resolve returns the runtime package path for decl. The override is used
// verbatim. It is not checked whether the package exists.
func Resolve(decl *model.Declaration) string {
	if decl.Path != "" {
		return decl.Path
	}
	return DefaultPath
}

// Name returns the preferred name to import path with.
//
// e.g., Name("example.com/common/errgen/v2") => "errgen"
func Name(path string) string {
	return codefmt.AssumedName(path)
}

// Validate checks the syntax of an override path.
func Validate(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}
	if err := module.CheckImportPath(path); err != nil {
		return err
	}
	return nil
}
