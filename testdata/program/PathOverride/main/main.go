package main

import (
	"errors"
	"fmt"
)

//errgen:union
//errgen:path "example.com/PathOverride/common/errgen"
type AppError interface {
	appError()
}

//errgen:variant AppError
//errgen:transparent
type Wrapped struct {
	Err error
}

//errgen:variant AppError
//errgen:error "bad request"
type BadRequest struct{}

//errgen:transparent
type Plain struct {
	Err error
}

func main() {
	boom := errors.New("boom")

	// Output: [common] boom
	fmt.Println(Wrapped{Err: boom})

	// Output: bad request
	fmt.Println(BadRequest{})

	// The default runtime package is used without errgen:path.
	// Output: boom
	fmt.Println(Plain{Err: boom})
}
