// Package errgen is a runtime package for errgen:path which labels messages of
// transparent errors.
package errgen

import (
	"errors"

	"github.com/sublee/errgen"
)

type (
	Display   = errgen.Display
	Error     = errgen.Error
	Backtrace = errgen.Backtrace
)

func Message(err error) string {
	return "[common] " + errgen.Message(err)
}

func Source(err error) error {
	if err == nil {
		return nil
	}
	return errors.Unwrap(err)
}

func Capture() Backtrace {
	return errgen.Capture()
}
