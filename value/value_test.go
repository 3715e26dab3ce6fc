package value

import (
	"math"
	"testing"
)

func TestEqualDifferentKinds(t *testing.T) {
	if Equal(Nil, Bool(false)) {
		t.Error("Nil should not equal Bool(false)")
	}
	if Equal(Bool(true), Number(1)) {
		t.Error("Bool should never equal Number")
	}
}

func TestEqualNumberNaN(t *testing.T) {
	nan := Number(math.NaN())
	if Equal(nan, nan) {
		t.Error("NaN should not equal itself")
	}
}

func TestEqualStringsByContent(t *testing.T) {
	a := FromObj(NewString("hi"))
	b := FromObj(NewString("hi"))
	if !Equal(a, b) {
		t.Error("distinct String objects with the same content should be equal")
	}
}

func TestIsFalsey(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{Nil, true},
		{Bool(false), true},
		{Bool(true), false},
		{Number(0), false},
		{FromObj(NewString("")), false},
	}
	for _, tt := range tests {
		if got := IsFalsey(tt.v); got != tt.want {
			t.Errorf("IsFalsey(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestStringFormatting(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Nil, "nil"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Number(7), "7"},
		{Number(1.5), "1.5"},
		{Number(math.Inf(1)), "inf"},
		{Number(math.Inf(-1)), "-inf"},
		{Number(math.NaN()), "nan"},
		{FromObj(NewString("hello")), "hello"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
