// Package clean has valid errgen declarations only.
package clean

import (
	"io/fs"
	"strconv"

	"github.com/sublee/errgen"
)

//errgen:union
type ConfigError interface {
	error
	configError()
}

//errgen:variant ConfigError
//errgen:error "cannot read {Path:%q}"
type ReadFailed struct {
	Path  string
	Err   *fs.PathError    `errgen:"from"`
	Trace errgen.Backtrace `errgen:"backtrace"`
}

//errgen:variant ConfigError
//errgen:error "invalid port {0}: {Err}"
type InvalidPort struct {
	Port string
	Err  *strconv.NumError `errgen:"from"`
}

//errgen:variant ConfigError
//errgen:transparent
type Other struct {
	Err error
}

type (
	//errgen:error "timeout after {Seconds}s"
	Timeout struct {
		Seconds int
	}

	//errgen:transparent
	Wrapped struct {
		error
	}
)
