package roles

import "github.com/sublee/errgen"

//errgen:error "multi"
type Multi struct {
	A error `errgen:"source"`
	B error `errgen:"source"` // want `Multi: multiple source fields A and B`
}

//errgen:error "froms"
type Froms struct {
	A error `errgen:"from"`
	B error `errgen:"from"` // want `Froms: multiple from fields A and B`
}

//errgen:error "traces"
type Traces struct {
	A errgen.Backtrace `errgen:"backtrace"`
	B errgen.Backtrace `errgen:"backtrace"` // want `Traces: multiple backtrace fields A and B`
}

//errgen:error "mixed"
type Mixed struct {
	A error `errgen:"source"`
	B error `errgen:"from"` // want `Mixed: multiple source fields A and B`
}

//errgen:error "both roles"
type BothRoles struct {
	Err error `errgen:"source,from"`
}

//errgen:error "unknown"
type Unknown struct {
	A error `errgen:"cause"` // want `Unknown: unknown errgen role "cause"; want source, from or backtrace`
}

//errgen:error "conflict"
type Conflict struct {
	Trace errgen.Backtrace `errgen:"source,backtrace"` // want `Conflict: field Trace cannot be both source and backtrace`
}

//errgen:transparent
type TooMany struct { // want `TooMany: errgen:transparent needs exactly one field, found 2`
	A, B error
}

//errgen:transparent
type Marked struct {
	Err error `errgen:"from"` // want `Marked: field Err of transparent error cannot be marked source,from`
}

//errgen:error "blank"
type Blank struct {
	_ error `errgen:"source"` // want `Blank: blank field cannot be marked source`
}

//errgen:error "shadow"
type Shadow struct {
	Error string // want `Shadow: field Error conflicts with generated method`
}

//errgen:error "custom"
type Custom struct{}

func (Custom) Unwrap() error { return nil } // want `Custom: method Unwrap is generated by errgen; remove it`

//errgen:union
type Sealed interface{ sealed() }

//errgen:variant Sealed
//errgen:error "member"
type Member struct{}

func (*Member) sealed() {} // want `Member: method sealed is generated by errgen; remove it`

//errgen:error "fine"
type Fine struct {
	Err   error            `errgen:"from" json:"err"`
	Trace errgen.Backtrace `errgen:"backtrace"`
	Note  string           `json:"note"`
}
