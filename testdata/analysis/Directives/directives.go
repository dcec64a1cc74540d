package directives

//errgen:error "bad path"
//errgen:path "not a path!" // want `BadPath: invalid errgen:path "not a path!"`
type BadPath struct{}

//errgen:error "path"
//errgen:path example // want `NoQuote: errgen:path needs a quoted string argument`
type NoQuote struct{}

//errgen:union
type U interface{ u() }

//errgen:variant U
//errgen:error "v"
//errgen:path "example.com/errgen" // want `U.V: errgen:path is only allowed on records and unions`
type V struct{}

//errgen:oops // want `Oops: unknown directive errgen:oops`
//errgen:error "oops"
type Oops struct{}

//errgen:error "a"
//errgen:error "b" // want `Dup: duplicate errgen:error directive`
type Dup struct{}

//errgen:union extra // want `Extra: errgen:union takes no arguments`
type Extra interface{ extra() }

//errgen:error "func" // want `misplaced errgen:error directive; it must annotate a type declaration`
func f() {}

var _ = f

//errgen:error "ok"
//errgen:path "example.com/common/errgen"
type Overridden struct{}
