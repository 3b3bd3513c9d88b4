package check

import (
	"strings"
)

// Optional accepts null, Undefined, or anything op accepts.
// Inside a Dict it marks the field as optional.
func Optional(op Operand) Checker {
	inner := predicate(op)
	return Checker{
		desc:     group(inner) + " | undefined",
		base:     inner.String(),
		optional: true,
		compound: true,
		fn: func(v any) bool {
			return isNullish(v) || inner.Check(v)
		},
	}
}

// Union accepts a value when at least one operand does. Operands are tried
// in order and evaluation stops at the first match. An empty union rejects
// everything.
func Union(ops ...Operand) Checker {
	members := resolve(ops)
	if len(members) == 0 {
		return Checker{desc: "never", fn: func(any) bool { return false }}
	}
	return Checker{
		desc:     join(members, " | "),
		compound: len(members) > 1 || members[0].compound,
		fn: func(v any) bool {
			for _, m := range members {
				if m.Check(v) {
					return true
				}
			}
			return false
		},
	}
}

// Intersection accepts a value when every operand does. Evaluation stops at
// the first rejection. An empty intersection accepts everything.
//
// A typical use pairs a structural check with a set of exact values:
//
//	Intersection(Union(L("a"), L(17), L(true)), Number)
func Intersection(ops ...Operand) Checker {
	members := resolve(ops)
	if len(members) == 0 {
		return Checker{desc: "unknown", fn: func(any) bool { return true }}
	}
	return Checker{
		desc:     join(members, " & "),
		compound: len(members) > 1 || members[0].compound,
		fn: func(v any) bool {
			for _, m := range members {
				if !m.Check(v) {
					return false
				}
			}
			return true
		},
	}
}

// resolve copies ops so later changes to the caller's slice have no effect.
func resolve(ops []Operand) []Checker {
	out := make([]Checker, len(ops))
	for i, op := range ops {
		out[i] = predicate(op)
	}
	return out
}

func join(members []Checker, sep string) string {
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = group(m)
	}
	return strings.Join(parts, sep)
}

// group parenthesizes the description of unions, intersections and optionals.
func group(c Checker) string {
	if c.compound {
		return "(" + c.String() + ")"
	}
	return c.String()
}
