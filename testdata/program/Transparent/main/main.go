package main

import (
	"errors"
	"fmt"
	"io/fs"
)

//errgen:union
type StoreError interface {
	storeError()
}

//errgen:variant StoreError
//errgen:error "key {0:%q} not found"
type NotFound struct {
	Key string
}

//errgen:variant StoreError
//errgen:transparent
type Internal struct {
	Err error
}

//errgen:transparent
type Nothing struct {
	Err error
}

func main() {
	pathErr := &fs.PathError{Op: "open", Path: "db", Err: fs.ErrPermission}
	var err error = Internal{Err: pathErr}

	// Output: open db: permission denied
	fmt.Println(err)

	// The cause of the inner error is forwarded.
	// Output: true
	fmt.Println(errors.Unwrap(err) == fs.ErrPermission)

	// Output: key "x" not found
	fmt.Println(NotFound{Key: "x"})

	// Output: <nil>
	fmt.Println(Nothing{}.Error())
}
