package modes

//errgen:union
//errgen:error "oops" // want `Broken: errgen:error cannot annotate a union; annotate each variant instead`
type Broken interface{ broken() }

type NotUnion struct{}

//errgen:variant NotUnion // want `Orphan: NotUnion is not an errgen:union`
//errgen:error "orphan"
type Orphan struct{}

//errgen:variant Missing // want `Lost: errgen:variant refers to unknown union Missing`
//errgen:error "lost"
type Lost struct{}

//errgen:error "both"
//errgen:transparent // want `Both: both errgen:error and errgen:transparent`
type Both struct{ Err error }

//errgen:union
type QueryError interface{ queryError() }

//errgen:variant QueryError
type Timeout struct{} // want `QueryError.Timeout: missing errgen:error or errgen:transparent`

//errgen:union
type Empty interface{ empty() } // want `Empty: union has no variants; annotate struct types with errgen:variant Empty`

//errgen:error "alias"
type Alias = struct{} // want `Alias: errgen directives cannot annotate alias type`

//errgen:error "generic"
type Generic[T any] struct{ V T } // want `Generic: errgen directives cannot annotate generic type`

//errgen:error "number"
type Number int // want `Number: errgen directives need struct or interface type, got int`

//errgen:union
type Sealed interface{ sealed() }

//errgen:variant Sealed
//errgen:union // want `Sealed.Bad: errgen:union needs an interface type`
//errgen:error "bad"
type Bad struct{}
