// Package value implements glint's tagged-union runtime value
// representation (spec.md §3, §4.3): booleans, nil, IEEE-754 numbers, and
// heap-allocated string objects.
//
// This is a deliberately plain sum type rather than the teacher's `any`-
// typed stack slots (vm.Stack is `[]any`) or a NaN-boxed pointer — the
// spec is explicit that a tagged representation is wanted here for
// clarity, so every Value carries its own Kind rather than relying on a
// Go interface's dynamic type.
package value

import (
	"fmt"
	"math"
	"strconv"
)

// Kind discriminates the variant held by a Value.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindObj
)

// Value is glint's tagged union. Exactly one of the payload fields is
// meaningful, selected by Kind; callers must test Kind before reading a
// payload accessor. On a mismatched Kind, AsBool, AsNumber and AsObj
// return their payload type's zero value, and AsString panics.
type Value struct {
	kind   Kind
	b      bool
	number float64
	obj    Obj
}

// Nil is the unit value.
var Nil = Value{kind: KindNil}

// Bool constructs a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number constructs a numeric Value.
func Number(x float64) Value { return Value{kind: KindNumber, number: x} }

// FromObj constructs a Value wrapping a heap object.
func FromObj(o Obj) Value { return Value{kind: KindObj, obj: o} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNil() bool    { return v.kind == KindNil }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsNumber() bool { return v.kind == KindNumber }
func (v Value) IsObj() bool    { return v.kind == KindObj }

// AsBool returns the boolean payload. It is only meaningful when IsBool
// is true.
func (v Value) AsBool() bool { return v.b }

// AsNumber returns the numeric payload. It is only meaningful when
// IsNumber is true.
func (v Value) AsNumber() float64 { return v.number }

// AsObj returns the object payload. It is only meaningful when IsObj is
// true.
func (v Value) AsObj() Obj { return v.obj }

// IsString reports whether v holds a String object.
func (v Value) IsString() bool {
	_, ok := v.obj.(*String)
	return v.kind == KindObj && ok
}

// AsString returns the underlying Go string of a String object Value.
// It is only meaningful when IsString is true.
func (v Value) AsString() string {
	return v.obj.(*String).chars
}

// IsFalsey reports whether v is considered false in a boolean context:
// Nil or Bool(false). Every other value, including Number(0) and the
// empty string, is truthy.
func IsFalsey(v Value) bool {
	return v.IsNil() || (v.IsBool() && !v.AsBool())
}

// Equal implements value equality (spec.md §3/§4.3):
//   - different Kinds are never equal
//   - Nil == Nil
//   - Bool compares by boolean value
//   - Number compares by IEEE-754 == (so NaN != NaN)
//   - Obj compares String payloads by content, not identity
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.number == b.number
	case KindObj:
		as, aok := a.obj.(*String)
		bs, bok := b.obj.(*String)
		if aok && bok {
			return as.chars == bs.chars
		}
		return a.obj == b.obj
	}
	return false
}

// String renders v the way the VM's OP_RETURN print path does: "true"/
// "false", "nil", a %g-formatted number, or a string's raw characters
// (no surrounding quotes).
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindNumber:
		return formatNumber(v.number)
	case KindObj:
		return v.obj.String()
	}
	return fmt.Sprintf("<invalid value kind %d>", v.kind)
}

// formatNumber mirrors C's "%g" formatting closely enough to satisfy
// spec.md's round-trip law: shortest representation that still
// round-trips, with the conventional "inf"/"-inf"/"nan" spellings for
// non-finite results of arithmetic like 1/0 and 0/0.
func formatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
}
