package main

import (
	"errors"
	"fmt"
	"io/fs"
)

var ErrDiskFull = errors.New("disk full")

//errgen:error "write {Name}: {Err}"
type WriteError struct {
	Name string
	Err  error `errgen:"source"`
}

//errgen:error "open failed"
type OpenError struct {
	Err *fs.PathError `errgen:"source"`
}

func main() {
	err := WriteError{Name: "a.txt", Err: ErrDiskFull}

	// Output: write a.txt: disk full
	fmt.Println(err)

	// Output: true
	fmt.Println(errors.Is(err, ErrDiskFull))

	// A nil pointer source is not a cause.
	// Output: true
	fmt.Println(errors.Unwrap(OpenError{}) == nil)

	// Output: true
	pathErr := &fs.PathError{Op: "open", Path: "b.txt", Err: fs.ErrNotExist}
	fmt.Println(errors.Is(OpenError{Err: pathErr}, fs.ErrNotExist))
}
