package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sublee/errgen"
)

//errgen:error "invalid port {Port:%q}: {Err}"
type PortError struct {
	Port  string
	Err   *strconv.NumError `errgen:"from"`
	Trace errgen.Backtrace  `errgen:"backtrace"`
}

func parsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		var numErr *strconv.NumError
		errors.As(err, &numErr)
		return 0, PortErrorFromNumError(numErr)
	}
	return port, nil
}

func main() {
	_, err := parsePort("http")

	// Other fields are left zero by the conversion.
	// Output: invalid port "": strconv.Atoi: parsing "http": invalid syntax
	fmt.Println(err)

	// Output: true
	fmt.Println(errors.Is(err, strconv.ErrSyntax))

	// The backtrace starts at the conversion constructor.
	// Output: main.PortErrorFromNumError
	// Output: main.parsePort
	var portErr PortError
	errors.As(err, &portErr)
	bt := portErr.Backtrace()
	fmt.Println(bt[0].Function)
	fmt.Println(bt[1].Function)
}
