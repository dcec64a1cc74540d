package main

//errgen:union
type QueryError interface{ queryError() }

//errgen:variant QueryError
type Timeout struct{}

//errgen:variant QueryErr
//errgen:error "canceled"
type Canceled struct{}

func main() {
	panic("errgen will fail")
}
