package main

import (
	"errors"
	"fmt"
)

//errgen:error "simple error"
type SimpleError struct{}

func main() {
	var err error = SimpleError{}

	// Output: simple error
	fmt.Println(err)

	// Output: true
	fmt.Println(errors.Unwrap(err) == nil)
}
