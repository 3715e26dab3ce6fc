package oracle

import (
	"fmt"

	"glint/token"
	"glint/value"
)

// RuntimeError reports a type error discovered while evaluating an
// expression tree, the oracle's equivalent of the VM's RuntimeError.
type RuntimeError struct {
	Line    int
	Message string
}

func (e RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
}

// Interpreter evaluates an Expression tree directly against value.Value,
// the same walk the teacher's TreeWalkInterpreter performs over `any` —
// adapted to return (value.Value, error) instead of panicking, since
// this package exists purely to be called from tests that want a plain
// error to compare against, not a recovered panic.
type Interpreter struct{}

// Eval parses and evaluates source as a single expression.
func Eval(source string) (value.Value, error) {
	expr, err := Parse(source)
	if err != nil {
		return value.Nil, err
	}
	var interp Interpreter
	return interp.evaluate(expr)
}

func (interp *Interpreter) evaluate(expr Expression) (value.Value, error) {
	result, err := expr.Accept(interp)
	if err != nil {
		return value.Nil, err
	}
	return result.(value.Value), nil
}

func (interp *Interpreter) VisitLiteral(l Literal) (interface{}, error) {
	switch v := l.Value.(type) {
	case nil:
		return value.Nil, nil
	case bool:
		return value.Bool(v), nil
	case float64:
		return value.Number(v), nil
	default:
		return nil, fmt.Errorf("oracle: unsupported literal type %T", v)
	}
}

func (interp *Interpreter) VisitGrouping(g Grouping) (interface{}, error) {
	v, err := interp.evaluate(g.Expression)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (interp *Interpreter) VisitUnary(u Unary) (interface{}, error) {
	right, err := interp.evaluate(u.Right)
	if err != nil {
		return nil, err
	}

	switch u.Operator.Kind {
	case token.MINUS:
		if !right.IsNumber() {
			return nil, RuntimeError{Line: u.Operator.Line, Message: "Operand must be a number."}
		}
		return value.Number(-right.AsNumber()), nil
	case token.BANG:
		return value.Bool(value.IsFalsey(right)), nil
	default:
		return nil, RuntimeError{Line: u.Operator.Line, Message: "Unsupported unary operator."}
	}
}

func (interp *Interpreter) VisitBinary(b Binary) (interface{}, error) {
	left, err := interp.evaluate(b.Left)
	if err != nil {
		return nil, err
	}
	right, err := interp.evaluate(b.Right)
	if err != nil {
		return nil, err
	}

	switch b.Operator.Kind {
	case token.EQUAL_EQUAL:
		return value.Bool(value.Equal(left, right)), nil
	case token.BANG_EQUAL:
		return value.Bool(!value.Equal(left, right)), nil
	}

	numeric := func(combine func(a, b float64) value.Value) (interface{}, error) {
		if !left.IsNumber() || !right.IsNumber() {
			return nil, RuntimeError{Line: b.Operator.Line, Message: "Operands must be numbers."}
		}
		return combine(left.AsNumber(), right.AsNumber()), nil
	}

	// LESS_EQUAL/GREATER_EQUAL use direct comparisons here, unlike the
	// VM's !(a>b)/!(a<b) bytecode encoding — the two diverge on NaN, so
	// callers comparing against this oracle should avoid NaN operands
	// for these two operators.
	switch b.Operator.Kind {
	case token.PLUS:
		return numeric(func(a, c float64) value.Value { return value.Number(a + c) })
	case token.MINUS:
		return numeric(func(a, c float64) value.Value { return value.Number(a - c) })
	case token.STAR:
		return numeric(func(a, c float64) value.Value { return value.Number(a * c) })
	case token.SLASH:
		return numeric(func(a, c float64) value.Value { return value.Number(a / c) })
	case token.LESS:
		return numeric(func(a, c float64) value.Value { return value.Bool(a < c) })
	case token.GREATER:
		return numeric(func(a, c float64) value.Value { return value.Bool(a > c) })
	case token.LESS_EQUAL:
		return numeric(func(a, c float64) value.Value { return value.Bool(a <= c) })
	case token.GREATER_EQUAL:
		return numeric(func(a, c float64) value.Value { return value.Bool(a >= c) })
	default:
		return nil, RuntimeError{Line: b.Operator.Line, Message: "Unsupported binary operator."}
	}
}
