package main

import "fmt"

//errgen:error "{Op} {1:%q} at {Line:%03d}: {{{Reason}}} 100%"
type SyntaxError struct {
	Op     string
	File   string
	Line   int
	Reason string
}

//errgen:error `unexpected {Value:?}`
type ValueError struct {
	Value any
}

func main() {
	// Output: parse "a.go" at 007: {eof} 100%
	fmt.Println(SyntaxError{Op: "parse", File: "a.go", Line: 7, Reason: "eof"})

	// Output: unexpected []int{1, 2}
	fmt.Println(ValueError{Value: []int{1, 2}})
}
