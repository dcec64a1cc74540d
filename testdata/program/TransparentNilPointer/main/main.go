package main

import (
	"errors"
	"fmt"
	"io/fs"
)

//errgen:transparent
type Wrapped struct {
	Err *fs.PathError
}

func main() {
	// A nil pointer is forwarded as a nil error.
	// Output: <nil>
	fmt.Println(Wrapped{}.Error())

	// Output: true
	fmt.Println(errors.Unwrap(Wrapped{}) == nil)

	// Output: open db: file does not exist
	pathErr := &fs.PathError{Op: "open", Path: "db", Err: fs.ErrNotExist}
	fmt.Println(Wrapped{Err: pathErr})

	// Output: true
	fmt.Println(errors.Is(Wrapped{Err: pathErr}, fs.ErrNotExist))
}
