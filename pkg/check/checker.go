package check

import (
	"strconv"
)

// Checker is an immutable predicate over untyped values.
// The zero Checker rejects everything.
type Checker struct {
	desc     string
	fn       func(any) bool
	base     string // description of the operand wrapped by Optional
	optional bool
	compound bool
}

// Check reports whether v conforms to the checker's shape.
func (c Checker) Check(v any) bool {
	if c.fn == nil {
		return false
	}
	return c.fn(v)
}

// Func returns the checker as a plain predicate.
func (c Checker) Func() func(any) bool {
	return c.Check
}

// String describes the shape the checker accepts, e.g. "{name: string, age?: number}".
func (c Checker) String() string {
	if c.desc == "" {
		return "never"
	}
	return c.desc
}

// IsOptional reports whether the checker was built by Optional.
func (c Checker) IsOptional() bool { return c.optional }

func (Checker) operand() {}

// Scalar lists the Go types a literal can be built from.
type Scalar interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Lit is a literal operand. It matches candidates strictly equal to its value.
type Lit struct {
	val value
}

// L builds a literal operand for use inside combinators.
func L[T Scalar](v T) Lit {
	return Lit{val: inspect(v)}
}

func (Lit) operand() {}

// Check reports whether v is strictly equal to the literal.
// Strings, numbers and booleans never compare equal to each other.
func (l Lit) Check(v any) bool {
	cand := inspect(v)
	if cand.kind != l.val.kind {
		return false
	}
	switch cand.kind {
	case kindString:
		return cand.str == l.val.str
	case kindBool:
		return cand.b == l.val.b
	case kindNumber:
		return cand.num.equal(l.val.num)
	}
	return false
}

func (l Lit) String() string {
	switch l.val.kind {
	case kindString:
		return strconv.Quote(l.val.str)
	case kindBool:
		return strconv.FormatBool(l.val.b)
	case kindNumber:
		return l.val.num.String()
	}
	return "never"
}

// Operand is either a Checker or a Lit. No other implementations exist.
type Operand interface {
	operand()
}

// predicate resolves an operand to a checker. A nil operand rejects everything.
func predicate(op Operand) Checker {
	switch o := op.(type) {
	case Checker:
		return o
	case Lit:
		return Checker{desc: o.String(), fn: o.Check}
	case interface{ unwrap() Checker }:
		return o.unwrap()
	}
	return Checker{}
}

var (
	// Number accepts every numeric value, including NaN and ±Inf.
	Number = Checker{desc: "number", fn: func(v any) bool {
		return inspect(v).kind == kindNumber
	}}

	// String accepts every string, including the empty one.
	String = Checker{desc: "string", fn: func(v any) bool {
		return inspect(v).kind == kindString
	}}

	// Boolean accepts exactly true and false.
	Boolean = Checker{desc: "boolean", fn: func(v any) bool {
		return inspect(v).kind == kindBool
	}}
)

// Literal returns a checker accepting only values strictly equal to v.
func Literal[T Scalar](v T) Checker {
	return predicate(L(v))
}

// Func wraps a custom predicate as a leaf checker. A panic inside fn is
// reported as a rejection.
func Func(name string, fn func(any) bool) Checker {
	if fn == nil {
		return Checker{desc: name}
	}
	return Checker{desc: name, fn: func(v any) (ok bool) {
		defer func() {
			if recover() != nil {
				ok = false
			}
		}()
		return fn(v)
	}}
}
