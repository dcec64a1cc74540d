package main

//errgen:union
type ReadError interface{ readError() }

//errgen:variant ReadError
//errgen:error "a"
type A struct {
	Err error `errgen:"from"`
}

//errgen:variant ReadError
//errgen:error "b"
type B struct {
	Err error `errgen:"from"`
}

func main() {
	panic("errgen will fail")
}
