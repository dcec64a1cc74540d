package main

import (
	"errors"
	"fmt"
)

//errgen:union
type MyError interface {
	error
	myError()
}

//errgen:variant MyError
//errgen:error "variant a"
type VariantA struct{}

//errgen:variant MyError
//errgen:error "variant b"
type VariantB struct{}

func check(b bool) MyError {
	if b {
		return VariantA{}
	}
	return VariantB{}
}

func main() {
	// Output: variant a
	fmt.Println(check(true))

	// Output: variant b
	fmt.Println(check(false))

	// Output: true
	var b VariantB
	fmt.Println(errors.As(check(false), &b))
}
