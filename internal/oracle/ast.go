// Package oracle is a test-only differential-testing reference: a
// tree-walking evaluator of exactly glint's expression grammar (no
// statements, no variables, no control flow), used only from _test.go
// files in vm to cross-check the bytecode pipeline's
// results against an independent evaluation strategy.
//
// This is the teacher's ast+parser+interpreter trio (ast/, parser/,
// interpreter/ in informatter-nilan), trimmed to the Binary/Unary/
// Literal/Grouping subset glint's grammar actually has and rebuilt over
// value.Value instead of Go's `any`. It is deliberately never imported
// by any non-test file: persisting an AST in the production compiler is
// exactly what this core's grammar forbids.
package oracle

import "glint/token"

// Expression is the base interface every node implements, the same
// Visitor-dispatch shape as the teacher's ast.Expression.
type Expression interface {
	Accept(v Visitor) (interface{}, error)
}

// Visitor operates on each Expression variant. Returning (interface{},
// error) rather than bare `any` lets evaluation report a runtime type
// error without a panic/recover dance, matching how the rest of this
// module threads errors explicitly.
type Visitor interface {
	VisitBinary(b Binary) (interface{}, error)
	VisitUnary(u Unary) (interface{}, error)
	VisitLiteral(l Literal) (interface{}, error)
	VisitGrouping(g Grouping) (interface{}, error)
}

// Binary is a left-operator-right expression, e.g. "a + b".
type Binary struct {
	Left     Expression
	Operator token.Token
	Right    Expression
}

func (b Binary) Accept(v Visitor) (interface{}, error) { return v.VisitBinary(b) }

// Unary is a prefix operator applied to a single operand, e.g. "-a".
type Unary struct {
	Operator token.Token
	Right    Expression
}

func (u Unary) Accept(v Visitor) (interface{}, error) { return v.VisitUnary(u) }

// Literal wraps a number, bool, or nil constant. Value holds a float64,
// bool, or nil, matching exactly what the oracle parser's primary()
// can produce.
type Literal struct {
	Value interface{}
}

func (l Literal) Accept(v Visitor) (interface{}, error) { return v.VisitLiteral(l) }

// Grouping is a parenthesized sub-expression, kept only to control
// precedence during parsing — it carries no runtime behavior of its own.
type Grouping struct {
	Expression Expression
}

func (g Grouping) Accept(v Visitor) (interface{}, error) { return v.VisitGrouping(g) }
