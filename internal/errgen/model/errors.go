package model

import "errors"

// Diagnostic kinds. Every diagnostic errgen reports matches exactly one of
// them with [errors.Is].
var (
	// ErrStructural reports a missing or conflicting error mode, a wrong field
	// count for transparent mode, or a misplaced directive.
	ErrStructural = errors.New("structural")

	// ErrReference reports an invalid field reference in a template.
	ErrReference = errors.New("reference")

	// ErrRoleConflict reports a field role marked on more than one field, or
	// an ambiguous conversion between union variants.
	ErrRoleConflict = errors.New("role conflict")

	// ErrPathSyntax reports a malformed errgen:path override.
	ErrPathSyntax = errors.New("path syntax")
)
