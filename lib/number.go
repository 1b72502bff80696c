package lib

import (
	"math"
	"strconv"
)

// Number is an arithmetic value that is either an exact integer or a
// floating-point value. Addition, subtraction, multiplication, and negation
// keep the integer tag when every operand is an integer; division always
// produces a float.
type Number struct {
	intVal   int64
	floatVal float64
	isFloat  bool
}

func intNumber(v int64) Number {
	return Number{intVal: v}
}

func floatNumber(v float64) Number {
	return Number{floatVal: v, isFloat: true}
}

// IsFloat reports whether the value carries the floating-point tag.
func (n Number) IsFloat() bool {
	return n.isFloat
}

// Float64 returns the value as a float64 regardless of its tag.
func (n Number) Float64() float64 {
	return n.asFloat()
}

func (n Number) asFloat() float64 {
	if n.isFloat {
		return n.floatVal
	}
	return float64(n.intVal)
}

func (n Number) add(other Number) Number {
	if n.isFloat || other.isFloat {
		return floatNumber(n.asFloat() + other.asFloat())
	}
	return intNumber(n.intVal + other.intVal)
}

func (n Number) sub(other Number) Number {
	if n.isFloat || other.isFloat {
		return floatNumber(n.asFloat() - other.asFloat())
	}
	return intNumber(n.intVal - other.intVal)
}

func (n Number) mul(other Number) Number {
	if n.isFloat || other.isFloat {
		return floatNumber(n.asFloat() * other.asFloat())
	}
	return intNumber(n.intVal * other.intVal)
}

// div always yields a float, even when the quotient is exact. The caller
// must reject a zero divisor first.
func (n Number) div(other Number) Number {
	return floatNumber(n.asFloat() / other.asFloat())
}

func (n Number) neg() Number {
	if n.isFloat {
		return floatNumber(-n.floatVal)
	}
	return intNumber(-n.intVal)
}

func (n Number) isZero() bool {
	if n.isFloat {
		return n.floatVal == 0
	}
	return n.intVal == 0
}

// String renders integers as-is; a float whose value equals its own
// truncation renders as a bare integer string, any other float via default
// formatting. This is purely presentational and never feeds back into
// arithmetic.
func (n Number) String() string {
	if !n.isFloat {
		return strconv.FormatInt(n.intVal, 10)
	}
	f := n.floatVal
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
