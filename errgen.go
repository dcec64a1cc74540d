// Package errgen provides the interfaces implemented by generated error types.
//
// Errgen removes the boilerplate of custom error types. Annotate a struct with
// a message template, and the generator produces its Error and Unwrap methods:
//
//	// source:
//	//errgen:error "failed to read {Path:%q}"
//	type ReadError struct {
//		Path string
//		Err  error `errgen:"source"`
//	}
//
//	// generated: (simplified)
//	func (e ReadError) Error() string {
//		return fmt.Sprintf("failed to read %q", e.Path)
//	}
//
//	func (e ReadError) Unwrap() error {
//		return e.Err
//	}
//
// After annotating types, run the errgen command. It will generate
// errgen_gen.go for your package:
//
//	go run github.com/sublee/errgen/cmd/errgen
//
// # Templates
//
// A template refers to fields by name ({Path}) or by position ({0}). A fmt
// verb may follow a colon ({Path:%q}), and {Path:?} is a shorthand for %#v.
// Literal braces are escaped by doubling them ({{ and }}). Unknown fields and
// out-of-range positions are reported at generation time.
//
// # Transparent errors
//
// A struct with exactly one field can forward both its message and its cause
// to that field:
//
//	//errgen:transparent
//	type Internal struct{ Err error }
//
// # Field roles
//
// Struct tags mark the roles of fields:
//
//   - errgen:"source" exposes the field by Unwrap.
//   - errgen:"from" implies source and also generates a conversion
//     constructor, e.g., ReadErrorFromPathError(*fs.PathError) ReadError.
//   - errgen:"backtrace" marks a [Backtrace] field which is returned by the
//     generated Backtrace method and filled by conversion constructors.
//
// # Unions
//
// A sealed interface groups error variants. Each variant is a struct with its
// own template or transparent mode:
//
//	//errgen:union
//	type ConfigError interface{ configError() }
//
//	//errgen:variant ConfigError
//	//errgen:error "missing key {0}"
//	type MissingKey struct{ Key string }
//
// Unexported methods without parameters and results, like configError above,
// are implemented on every variant.
//
// # Runtime package
//
// Generated code asserts that every type implements [Display] and [Error] of
// this package. A record or a union may refer to another package instead,
// which must declare the same identifiers, typically by aliasing them:
//
//	//errgen:path "example.com/common/errgen"
package errgen

import "errors"

// Display is the formatting capability of a generated error.
type Display interface {
	Error() string
}

// Error is the error-chaining capability of a generated error. Unwrap
// returns the cause, or nil if there is none.
type Error interface {
	error
	Unwrap() error
}

// Message returns the message of err. It is used by transparent errors.
func Message(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}

// Source returns the cause of err. It is used by transparent errors to expose
// the cause of the wrapped error.
func Source(err error) error {
	if err == nil {
		return nil
	}
	return errors.Unwrap(err)
}
