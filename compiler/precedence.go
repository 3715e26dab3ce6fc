package compiler

// Precedence is the ordered ladder spec.md §4.4 prescribes. Higher values
// bind tighter. parsePrecedence consumes infix operators whose rule's
// precedence is at least as high as the level it was called with.
type Precedence int

const (
	PREC_NONE Precedence = iota
	PREC_ASSIGNMENT
	PREC_OR
	PREC_AND
	PREC_EQUALITY
	PREC_COMPARISON
	PREC_TERM
	PREC_FACTOR
	PREC_UNARY
	PREC_CALL
	PREC_PRIMARY
)
