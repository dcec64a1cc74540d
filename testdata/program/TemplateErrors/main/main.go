package main

//errgen:error "user {nmae} not found"
type UserError struct {
	Name string
}

//errgen:error "{2} and {0}"
type PairError struct {
	A, B int
}

//errgen:error "unclosed {"
type BraceError struct{}

func main() {
	panic("errgen will fail")
}
