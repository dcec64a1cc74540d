package templates

//errgen:error "no {Nmae}" // want `NameError: unknown field reference \{Nmae\}; did you mean \{Name\}\?`
type NameError struct{ Name string }

//errgen:error "{0} {1}" // want `IndexError: field index \{1\} out of range; only 1 field`
type IndexError struct{ Code int }

//errgen:error "{Code:%y}" // want `VerbError: invalid format verb "%y" in \{Code:%y\}`
type VerbError struct{ Code int }

//errgen:error "{}" // want `EmptyError: empty field reference \{\}`
type EmptyError struct{}

//errgen:error "a } b" // want `BraceError: unmatched \} in template; use \}\} for a literal brace`
type BraceError struct{}

//errgen:error "{0}" // want `BlankError: cannot refer to blank field \{0\}`
type BlankError struct{ _ int }

//errgen:error missing // want `QuoteError: errgen:error needs a quoted string argument`
type QuoteError struct{}

//errgen:error "{{ok}} {Name:%q} {0:?}"
type GoodError struct{ Name string }
